package repositories

import (
	"context"

	"github.com/dsarhan/fx_reval_app/internal/core/domain"
)

// LedgerItemFilter is the fully resolved predicate for selecting open
// foreign-currency items. HomeCurrencyCode excludes items denominated in the
// company's own currency; Categories is the already-resolved account category
// set (empty means no category restriction).
type LedgerItemFilter struct {
	CompanyID        string
	HomeCurrencyCode string
	IncludeUnposted  bool
	Categories       []domain.AccountCategory
}

// LedgerItemReader defines read operations against the external ledger store.
// The revaluation engine never writes to the ledger.
type LedgerItemReader interface {
	// FindOpenForeignCurrencyItems returns every ledger line matching the
	// filter, ordered ascending by (date, ledger_line_id). The full eligible
	// set is materialized; there is no pagination.
	FindOpenForeignCurrencyItems(ctx context.Context, filter LedgerItemFilter) ([]domain.LedgerItem, error)
}
