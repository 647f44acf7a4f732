package services

import (
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	portssvc "github.com/dsarhan/fx_reval_app/internal/core/ports/services"
)

// NewServiceContainer wires all application services from the repository
// provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	currencyService := NewCurrencyService(repos.CurrencyRepo)
	converterService := NewConverterService(repos.RateRepo, currencyService)
	selectorService := NewLedgerSelectorService(repos.LedgerRepo)
	revaluationService := NewRevaluationService(repos.CompanyRepo, currencyService, selectorService, converterService)

	return &portssvc.ServiceContainer{
		Currency:    currencyService,
		Converter:   converterService,
		Selector:    selectorService,
		Revaluation: revaluationService,
	}
}
