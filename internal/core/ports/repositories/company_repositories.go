package repositories

import (
	"context"

	"github.com/dsarhan/fx_reval_app/internal/core/domain"
)

// CompanyReader resolves a scoping entity to its home currency settings.
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)
}
