package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	portssvc "github.com/dsarhan/fx_reval_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ConverterService converts monetary amounts using the latest company-scoped
// exchange rate effective on or before a given date. Amounts are rounded
// exactly once, to the target currency's precision, at the point of
// conversion.
type ConverterService struct {
	BaseService
	rateRepo        portsrepo.ExchangeRateReader
	currencyService portssvc.CurrencySvcFacade
}

// NewConverterService creates a new ConverterService.
func NewConverterService(rateRepo portsrepo.ExchangeRateReader, currencyService portssvc.CurrencySvcFacade) *ConverterService {
	return &ConverterService{
		rateRepo:        rateRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.CurrencyConverterSvc = (*ConverterService)(nil)

// Convert converts amount from fromCurrencyCode to toCurrencyCode at the rate
// effective on or before asOf.
func (s *ConverterService) Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyCode, toCurrencyCode, companyID string, asOf time.Time) (decimal.Decimal, error) {
	converted, err := s.ConvertBatch(ctx, []decimal.Decimal{amount}, fromCurrencyCode, toCurrencyCode, companyID, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	return converted[0], nil
}

// ConvertBatch converts several amounts of the same source currency with a
// single rate lookup.
func (s *ConverterService) ConvertBatch(ctx context.Context, amounts []decimal.Decimal, fromCurrencyCode, toCurrencyCode, companyID string, asOf time.Time) ([]decimal.Decimal, error) {
	fromCurrencyCode = strings.ToUpper(fromCurrencyCode)
	toCurrencyCode = strings.ToUpper(toCurrencyCode)

	target, err := s.currencyService.GetCurrencyByCode(ctx, toCurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target currency '%s': %w", toCurrencyCode, err)
	}

	rate := decimal.NewFromInt(1)
	if fromCurrencyCode != toCurrencyCode {
		found, err := s.rateRepo.FindRateAsOf(ctx, fromCurrencyCode, toCurrencyCode, companyID, asOf)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, &apperrors.RateUnavailableError{
					FromCurrencyCode: fromCurrencyCode,
					ToCurrencyCode:   toCurrencyCode,
					AsOf:             asOf,
				}
			}
			return nil, fmt.Errorf("failed to look up exchange rate %s->%s: %w", fromCurrencyCode, toCurrencyCode, err)
		}
		rate = found.Rate
	}

	converted := make([]decimal.Decimal, len(amounts))
	for i, amount := range amounts {
		converted[i] = amount.Mul(rate).Round(target.Precision)
	}
	return converted, nil
}
