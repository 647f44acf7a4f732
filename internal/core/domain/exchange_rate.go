package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a conversion rate between two currencies, effective
// from DateEffective until a later-dated rate supersedes it. Rates are scoped
// per company so entities can maintain independent rate tables.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary Key (e.g., UUID)
	CompanyID        string          `json:"companyID"`      // FK -> companies.company_id
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"` // Multiplier: amount(from) * Rate = amount(to)
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
