package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the ExchangeRateReader interface using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateReader {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateReader = (*PgxExchangeRateRepository)(nil)

// FindRateAsOf retrieves the latest rate for the pair whose effective date is
// on or before asOf, scoped to the company.
func (r *PgxExchangeRateRepository) FindRateAsOf(ctx context.Context, fromCurrencyCode, toCurrencyCode, companyID string, asOf time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, company_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1
			AND to_currency_code = $2
			AND company_id = $3
			AND date_effective <= $4
		ORDER BY date_effective DESC
		LIMIT 1
	`

	var rate domain.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, fromCurrencyCode, toCurrencyCode, companyID, asOf).Scan(
		&rate.ExchangeRateID,
		&rate.CompanyID,
		&rate.FromCurrencyCode,
		&rate.ToCurrencyCode,
		&rate.Rate,
		&rate.DateEffective,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: exchange rate %s->%s as of %s", apperrors.ErrNotFound,
				fromCurrencyCode, toCurrencyCode, asOf.Format("2006-01-02"))
		}
		return nil, fmt.Errorf("failed to find exchange rate %s->%s: %w", fromCurrencyCode, toCurrencyCode, err)
	}

	return &rate, nil
}
