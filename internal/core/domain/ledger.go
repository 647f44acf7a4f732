package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntryStatus indicates the posting state of a journal entry.
type JournalEntryStatus string

const (
	EntryDraft     JournalEntryStatus = "DRAFT"
	EntryPosted    JournalEntryStatus = "POSTED"
	EntryCancelled JournalEntryStatus = "CANCELLED"
)

// AccountCategory classifies an account for reporting purposes.
type AccountCategory string

const (
	AssetReceivable     AccountCategory = "ASSET_RECEIVABLE"
	LiabilityPayable    AccountCategory = "LIABILITY_PAYABLE"
	AssetCash           AccountCategory = "ASSET_CASH"
	LiabilityCreditCard AccountCategory = "LIABILITY_CREDIT_CARD"
)

// LedgerItem is a read-only view of a single ledger line, joined with the
// status attributes the revaluation filter needs. The engine never writes
// these back.
type LedgerItem struct {
	LedgerLineID   string          `json:"ledgerLineID"`   // Primary Key of the line
	JournalEntryID string          `json:"journalEntryID"` // Parent journal entry
	AccountID      string          `json:"accountID"`
	PartnerID      string          `json:"partnerID"` // Nullable counterparty reference
	CurrencyCode   string          `json:"currencyCode"`
	Date           time.Time       `json:"date"`
	MaturityDate   time.Time       `json:"maturityDate"`
	AmountCurrency decimal.Decimal `json:"amountCurrency"` // Signed balance in the item's foreign currency
	// BalanceOperation is the signed home-currency balance at the rate that
	// applied when the item was recorded. Ground truth from the ledger.
	BalanceOperation decimal.Decimal `json:"balanceOperation"`

	EntryStatus     JournalEntryStatus `json:"entryStatus"`
	Reconciled      bool               `json:"reconciled"`
	Reconcilable    bool               `json:"reconcilable"` // Account-level reconciliation eligibility
	AccountCategory AccountCategory    `json:"accountCategory"`
}
