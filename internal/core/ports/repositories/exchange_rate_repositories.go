package repositories

import (
	"context"
	"time"

	"github.com/dsarhan/fx_reval_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for the historical rate table.
type ExchangeRateReader interface {
	// FindRateAsOf retrieves the latest exchange rate for the currency pair
	// whose effective date is on or before asOf, scoped to the company.
	// Returns apperrors.ErrNotFound when no such rate exists.
	FindRateAsOf(ctx context.Context, fromCurrencyCode, toCurrencyCode, companyID string, asOf time.Time) (*domain.ExchangeRate, error)
}
