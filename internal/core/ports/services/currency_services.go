package services

import (
	"context"
	"time"

	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencySvcFacade defines read operations over currency master data.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyConverterSvc converts monetary amounts between currencies using the
// latest rate effective on or before a given date.
type CurrencyConverterSvc interface {
	// Convert converts amount from one currency to another, scoped to the
	// company's rate table, rounding exactly once to the target currency's
	// precision. Returns a RateUnavailableError when no rate is effective on
	// or before asOf.
	Convert(ctx context.Context, amount decimal.Decimal, fromCurrencyCode, toCurrencyCode, companyID string, asOf time.Time) (decimal.Decimal, error)

	// ConvertBatch converts several amounts of the same source currency with a
	// single rate lookup. Results are positionally aligned with amounts and
	// identical to calling Convert once per amount.
	ConvertBatch(ctx context.Context, amounts []decimal.Decimal, fromCurrencyCode, toCurrencyCode, companyID string, asOf time.Time) ([]decimal.Decimal, error)
}
