package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCompanyRepository implements the CompanyReader interface using pgxpool.
type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyReader {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyReader = (*PgxCompanyRepository)(nil)

// FindCompanyByID retrieves a company by its ID.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	query := `
		SELECT company_id, name, currency_code, created_at, created_by, last_updated_at, last_updated_by
		FROM companies
		WHERE company_id = $1
	`

	var company domain.Company
	err := r.Pool.QueryRow(ctx, query, companyID).Scan(
		&company.CompanyID,
		&company.Name,
		&company.CurrencyCode,
		&company.CreatedAt,
		&company.CreatedBy,
		&company.LastUpdatedAt,
		&company.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: company '%s'", apperrors.ErrNotFound, companyID)
		}
		return nil, fmt.Errorf("failed to find company %s: %w", companyID, err)
	}

	return &company, nil
}
