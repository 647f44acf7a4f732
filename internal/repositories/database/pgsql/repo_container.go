package pgsql

import (
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:   newPgxLedgerRepository(dbPool),
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		RateRepo:     newPgxExchangeRateRepository(dbPool),
		CompanyRepo:  newPgxCompanyRepository(dbPool),
	}
}
