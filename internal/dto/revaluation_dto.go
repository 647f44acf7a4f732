package dto

import (
	"time"

	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	portssvc "github.com/dsarhan/fx_reval_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// RecomputeRequest carries the user-chosen report parameters.
// ReportDate defaults to today and AccountScope to receivable_payable when
// omitted.
type RecomputeRequest struct {
	ReportDate      string `json:"reportDate" binding:"omitempty,datetime=2006-01-02" example:"2026-08-31"`
	CompanyID       string `json:"companyID" binding:"required"`
	IncludeUnposted bool   `json:"includeUnposted"`
	AccountScope    string `json:"accountScope" binding:"omitempty,accountscope" example:"receivable_payable"`
}

// ToReportParameters converts the request into domain report parameters,
// applying defaults for omitted fields.
func (r RecomputeRequest) ToReportParameters() (domain.ReportParameters, error) {
	// Today per the local calendar, anchored at UTC midnight like parsed dates
	now := time.Now()
	reportDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if r.ReportDate != "" {
		parsed, err := time.Parse("2006-01-02", r.ReportDate)
		if err != nil {
			return domain.ReportParameters{}, err
		}
		reportDate = parsed
	}

	scope := domain.ScopeReceivablePayable
	if r.AccountScope != "" {
		scope = domain.AccountScope(r.AccountScope)
	}

	return domain.ReportParameters{
		ReportDate:      reportDate,
		CompanyID:       r.CompanyID,
		IncludeUnposted: r.IncludeUnposted,
		AccountScope:    scope,
	}, nil
}

// ComputedLineResponse represents one revalued ledger item in the report.
type ComputedLineResponse struct {
	LedgerLineID     string          `json:"ledgerLineID"`
	JournalEntryID   string          `json:"journalEntryID"`
	AccountID        string          `json:"accountID"`
	PartnerID        string          `json:"partnerID,omitempty"`
	CurrencyCode     string          `json:"currencyCode"`
	Date             string          `json:"date"`
	MaturityDate     string          `json:"maturityDate,omitempty"`
	AmountCurrency   decimal.Decimal `json:"amountCurrency"`
	BalanceOperation decimal.Decimal `json:"balanceOperation"`
	BalanceCurrent   decimal.Decimal `json:"balanceCurrent"`
	Adjustment       decimal.Decimal `json:"adjustment"`
}

// SessionResponse represents the current state of a revaluation session.
type SessionResponse struct {
	SessionID       string                 `json:"sessionID"`
	State           string                 `json:"state"`
	ReportDate      string                 `json:"reportDate,omitempty"`
	CompanyID       string                 `json:"companyID,omitempty"`
	IncludeUnposted bool                   `json:"includeUnposted"`
	AccountScope    string                 `json:"accountScope,omitempty"`
	Lines           []ComputedLineResponse `json:"lines"`
	TotalAdjustment decimal.Decimal        `json:"totalAdjustment"`
	Error           string                 `json:"error,omitempty"`
}

// ToSessionResponse converts a session snapshot into its response DTO.
func ToSessionResponse(snap portssvc.SessionSnapshot) SessionResponse {
	resp := SessionResponse{
		SessionID:       snap.SessionID,
		State:           string(snap.State),
		Lines:           make([]ComputedLineResponse, 0, len(snap.Lines)),
		TotalAdjustment: snap.TotalAdjustment,
		Error:           snap.ErrorDetail,
	}

	if snap.Params != nil {
		resp.ReportDate = snap.Params.ReportDate.Format("2006-01-02")
		resp.CompanyID = snap.Params.CompanyID
		resp.IncludeUnposted = snap.Params.IncludeUnposted
		resp.AccountScope = string(snap.Params.AccountScope)
	}

	for _, line := range snap.Lines {
		lineResp := ComputedLineResponse{
			LedgerLineID:     line.LedgerLineID,
			JournalEntryID:   line.JournalEntryID,
			AccountID:        line.AccountID,
			PartnerID:        line.PartnerID,
			CurrencyCode:     line.CurrencyCode,
			Date:             line.Date.Format("2006-01-02"),
			AmountCurrency:   line.AmountCurrency,
			BalanceOperation: line.BalanceOperation,
			BalanceCurrent:   line.BalanceCurrent,
			Adjustment:       line.Adjustment,
		}
		if !line.MaturityDate.IsZero() {
			lineResp.MaturityDate = line.MaturityDate.Format("2006-01-02")
		}
		resp.Lines = append(resp.Lines, lineResp)
	}

	return resp
}
