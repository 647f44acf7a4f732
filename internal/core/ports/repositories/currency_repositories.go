package repositories

import (
	"context"

	"github.com/dsarhan/fx_reval_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency master data.
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}
