package repositories

// RepositoryProvider holds instances of all repositories the services need.
type RepositoryProvider struct {
	LedgerRepo   LedgerItemReader
	CurrencyRepo CurrencyReader
	RateRepo     ExchangeRateReader
	CompanyRepo  CompanyReader
}
