package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	portssvc "github.com/dsarhan/fx_reval_app/internal/core/ports/services"
)

// ledgerSelectorService implements the LedgerSelectorSvc interface
type ledgerSelectorService struct {
	BaseService
	ledgerRepo portsrepo.LedgerItemReader
}

// NewLedgerSelectorService creates a new ledger selector service
func NewLedgerSelectorService(ledgerRepo portsrepo.LedgerItemReader) portssvc.LedgerSelectorSvc {
	return &ledgerSelectorService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerSelectorSvc = (*ledgerSelectorService)(nil)

// Select returns the candidate set of open foreign-currency items for the
// given parameters, ordered ascending by (date, ledger line id).
func (s *ledgerSelectorService) Select(ctx context.Context, params domain.ReportParameters, company domain.Company) ([]domain.LedgerItem, error) {
	categories, ok := domain.ScopeCategories[params.AccountScope]
	if !ok {
		// Unrecognized scopes fail fast instead of silently selecting everything.
		return nil, fmt.Errorf("%w: unrecognized account scope '%s'", apperrors.ErrValidation, params.AccountScope)
	}

	filter := portsrepo.LedgerItemFilter{
		CompanyID:        company.CompanyID,
		HomeCurrencyCode: company.CurrencyCode,
		IncludeUnposted:  params.IncludeUnposted,
		Categories:       categories,
	}

	items, err := s.ledgerRepo.FindOpenForeignCurrencyItems(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to select open foreign-currency items",
			slog.String("company_id", company.CompanyID),
			slog.String("account_scope", string(params.AccountScope)))
		return nil, fmt.Errorf("failed to select open foreign-currency items: %w", err)
	}

	s.LogDebug(ctx, "Selected open foreign-currency items",
		slog.String("company_id", company.CompanyID),
		slog.String("account_scope", string(params.AccountScope)),
		slog.Bool("include_unposted", params.IncludeUnposted),
		slog.Int("item_count", len(items)))
	return items, nil
}
