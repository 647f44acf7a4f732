package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountScope narrows which account categories are eligible for revaluation.
type AccountScope string

const (
	ScopeReceivablePayable AccountScope = "receivable_payable"
	ScopeLiquidity         AccountScope = "liquidity"
	ScopeAll               AccountScope = "all"
)

// ScopeCategories maps each account scope to the account categories it
// selects. The selector applies the category filter only when the resolved
// set is non-empty; a scope missing from this map is rejected outright.
var ScopeCategories = map[AccountScope][]AccountCategory{
	ScopeReceivablePayable: {AssetReceivable, LiabilityPayable},
	ScopeLiquidity:         {AssetCash, LiabilityCreditCard},
	ScopeAll:               {AssetReceivable, LiabilityPayable, AssetCash, LiabilityCreditCard},
}

// ReportParameters are the user-chosen inputs of a revaluation run. They are
// immutable once a recompute starts.
type ReportParameters struct {
	ReportDate      time.Time    `json:"reportDate"` // Defines the "current rate" instant
	CompanyID       string       `json:"companyID"`
	IncludeUnposted bool         `json:"includeUnposted"`
	AccountScope    AccountScope `json:"accountScope"`
}

// ComputedLine is one revalued ledger item. BalanceCurrent and Adjustment are
// in the company's home currency; AmountCurrency stays in the item's foreign
// currency.
type ComputedLine struct {
	LedgerLineID   string          `json:"ledgerLineID"`
	JournalEntryID string          `json:"journalEntryID"`
	AccountID      string          `json:"accountID"`
	PartnerID      string          `json:"partnerID"`
	CurrencyCode   string          `json:"currencyCode"`
	Date           time.Time       `json:"date"`
	MaturityDate   time.Time       `json:"maturityDate"`
	AmountCurrency decimal.Decimal `json:"amountCurrency"`

	BalanceOperation decimal.Decimal `json:"balanceOperation"` // Home currency at operation rate
	BalanceCurrent   decimal.Decimal `json:"balanceCurrent"`   // Home currency at report-date rate
	Adjustment       decimal.Decimal `json:"adjustment"`       // BalanceCurrent - BalanceOperation
}

// SessionState is the lifecycle state of a revaluation session.
type SessionState string

const (
	SessionEmpty    SessionState = "EMPTY"
	SessionComputed SessionState = "COMPUTED"
	SessionFailed   SessionState = "FAILED"
)
