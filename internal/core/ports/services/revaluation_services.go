package services

import (
	"context"

	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SessionSnapshot is a point-in-time view of a revaluation session handed to
// callers. TotalAdjustment is derived from Lines at snapshot time, never
// cached independently.
type SessionSnapshot struct {
	SessionID       string                   `json:"sessionID"`
	State           domain.SessionState      `json:"state"`
	Params          *domain.ReportParameters `json:"params,omitempty"`
	Lines           []domain.ComputedLine    `json:"lines"`
	TotalAdjustment decimal.Decimal          `json:"totalAdjustment"`
	ErrorDetail     string                   `json:"errorDetail,omitempty"` // Set when State is FAILED
}

// LedgerSelectorSvc produces the candidate set of open foreign-currency items
// for a revaluation run.
type LedgerSelectorSvc interface {
	// Select returns all eligible ledger items for the parameters, ordered
	// ascending by (date, ledger line id). Purely a read; no side effects.
	Select(ctx context.Context, params domain.ReportParameters, company domain.Company) ([]domain.LedgerItem, error)
}

// RevaluationSvc drives revaluation sessions: creation, recompute, and read
// access to the current line set and total.
type RevaluationSvc interface {
	// CreateSession starts a new empty session and returns its snapshot.
	CreateSession(ctx context.Context) SessionSnapshot

	// GetSession returns the current snapshot of a session.
	GetSession(ctx context.Context, sessionID string) (SessionSnapshot, error)

	// Recompute validates params, discards any previously computed lines and
	// rebuilds the full line set as one atomic replace. On an unrecoverable
	// selection or conversion error the session transitions to FAILED with no
	// lines; a half-built set is never observable.
	Recompute(ctx context.Context, sessionID string, params domain.ReportParameters) (SessionSnapshot, error)
}
