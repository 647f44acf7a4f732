package domain

// Company is the accounting entity whose books are revalued. All ledger items
// and rate lookups are scoped to a single company.
type Company struct {
	CompanyID    string `json:"companyID"`    // Primary Key (e.g., UUID)
	Name         string `json:"name"`         // Legal or display name
	CurrencyCode string `json:"currencyCode"` // Home (functional) currency, FK -> currencies.currency_code
	AuditFields
}
