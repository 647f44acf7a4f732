package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	portssvc "github.com/dsarhan/fx_reval_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// revaluationSession holds the state of a single report session. The line
// slice is replaced wholesale on every successful recompute and never edited
// in place, so callers can only ever observe a fully committed set.
type revaluationSession struct {
	mu      sync.Mutex
	id      string
	state   domain.SessionState
	params  *domain.ReportParameters
	lines   []domain.ComputedLine
	lastErr error
}

// revaluationService implements the RevaluationSvc interface
type revaluationService struct {
	BaseService
	companyRepo     portsrepo.CompanyReader
	currencyService portssvc.CurrencySvcFacade
	selector        portssvc.LedgerSelectorSvc
	converter       portssvc.CurrencyConverterSvc

	mu       sync.RWMutex
	sessions map[string]*revaluationSession
}

// NewRevaluationService creates a new revaluation service
func NewRevaluationService(
	companyRepo portsrepo.CompanyReader,
	currencyService portssvc.CurrencySvcFacade,
	selector portssvc.LedgerSelectorSvc,
	converter portssvc.CurrencyConverterSvc,
) portssvc.RevaluationSvc {
	return &revaluationService{
		companyRepo:     companyRepo,
		currencyService: currencyService,
		selector:        selector,
		converter:       converter,
		sessions:        make(map[string]*revaluationSession),
	}
}

var _ portssvc.RevaluationSvc = (*revaluationService)(nil)

// CreateSession starts a new empty session.
func (s *revaluationService) CreateSession(ctx context.Context) portssvc.SessionSnapshot {
	session := &revaluationSession{
		id:    uuid.NewString(),
		state: domain.SessionEmpty,
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.LogInfo(ctx, "Revaluation session created", slog.String("session_id", session.id))
	return snapshot(session)
}

// GetSession returns the current snapshot of a session.
func (s *revaluationService) GetSession(ctx context.Context, sessionID string) (portssvc.SessionSnapshot, error) {
	session, err := s.findSession(sessionID)
	if err != nil {
		return portssvc.SessionSnapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return snapshot(session), nil
}

// Recompute validates params, then rebuilds the session's line set as one
// atomic replace. Selection and conversion failures leave the session FAILED
// with the prior lines discarded; a half-built set is never observable.
func (s *revaluationService) Recompute(ctx context.Context, sessionID string, params domain.ReportParameters) (portssvc.SessionSnapshot, error) {
	session, err := s.findSession(sessionID)
	if err != nil {
		return portssvc.SessionSnapshot{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	// Validation runs before any side effect; an invalid request leaves the
	// session exactly as it was.
	company, err := s.validateParams(ctx, params)
	if err != nil {
		s.LogWarn(ctx, "Rejected revaluation parameters",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return snapshot(session), err
	}

	lines, err := s.computeLines(ctx, params, *company)
	if err != nil {
		// The run is aborted as a whole: a partial total would be misleading
		// for a financial report. Prior lines are discarded, not kept stale.
		session.state = domain.SessionFailed
		session.params = &params
		session.lines = nil
		session.lastErr = err
		s.LogError(ctx, err, "Revaluation recompute failed",
			slog.String("session_id", sessionID),
			slog.String("company_id", params.CompanyID))
		return snapshot(session), err
	}

	session.state = domain.SessionComputed
	session.params = &params
	session.lines = lines
	session.lastErr = nil

	s.LogInfo(ctx, "Revaluation recompute succeeded",
		slog.String("session_id", sessionID),
		slog.String("company_id", params.CompanyID),
		slog.String("report_date", params.ReportDate.Format("2006-01-02")),
		slog.Int("line_count", len(lines)))
	return snapshot(session), nil
}

func (s *revaluationService) findSession(sessionID string) (*revaluationSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: revaluation session '%s'", apperrors.ErrNotFound, sessionID)
	}
	return session, nil
}

// validateParams checks the report parameters and resolves the scoping
// company. No query against the ledger runs until these pass.
func (s *revaluationService) validateParams(ctx context.Context, params domain.ReportParameters) (*domain.Company, error) {
	if params.ReportDate.IsZero() {
		return nil, fmt.Errorf("%w: report date is required", apperrors.ErrValidation)
	}
	if params.CompanyID == "" {
		return nil, fmt.Errorf("%w: company is required", apperrors.ErrValidation)
	}
	if _, ok := domain.ScopeCategories[params.AccountScope]; !ok {
		return nil, fmt.Errorf("%w: unrecognized account scope '%s'", apperrors.ErrValidation, params.AccountScope)
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, params.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve company '%s': %w", params.CompanyID, err)
	}
	return company, nil
}

// computeLines selects the candidate items and revalues each at the report
// date, preserving selector order. Conversions are batched per distinct
// foreign currency; per-item results are identical to converting one by one.
func (s *revaluationService) computeLines(ctx context.Context, params domain.ReportParameters, company domain.Company) ([]domain.ComputedLine, error) {
	items, err := s.selector.Select(ctx, params, company)
	if err != nil {
		return nil, err
	}

	// Group item indexes by foreign currency so each currency needs a single
	// rate lookup.
	indexesByCurrency := make(map[string][]int)
	for i, item := range items {
		indexesByCurrency[item.CurrencyCode] = append(indexesByCurrency[item.CurrencyCode], i)
	}

	balanceCurrent := make([]decimal.Decimal, len(items))
	skipped := make([]bool, len(items))

	for currencyCode, indexes := range indexesByCurrency {
		if _, err := s.currencyService.GetCurrencyByCode(ctx, currencyCode); err != nil {
			// No currency, no line: items referencing an unresolvable
			// currency are omitted, the rest of the report stays meaningful.
			s.LogWarn(ctx, "Skipping items with unresolvable currency",
				slog.String("currency_code", currencyCode),
				slog.Int("item_count", len(indexes)),
				slog.String("error", err.Error()))
			for _, i := range indexes {
				skipped[i] = true
			}
			continue
		}

		amounts := make([]decimal.Decimal, len(indexes))
		for j, i := range indexes {
			amounts[j] = items[i].AmountCurrency
		}

		converted, err := s.converter.ConvertBatch(ctx, amounts, currencyCode, company.CurrencyCode, company.CompanyID, params.ReportDate)
		if err != nil {
			// A missing rate aborts the whole run; an incomplete total must
			// not be reported.
			return nil, err
		}
		for j, i := range indexes {
			balanceCurrent[i] = converted[j]
		}
	}

	lines := make([]domain.ComputedLine, 0, len(items))
	for i, item := range items {
		if skipped[i] {
			continue
		}
		lines = append(lines, revalueItem(item, balanceCurrent[i]))
	}
	return lines, nil
}

// revalueItem derives one computed line. BalanceOperation is taken from the
// ledger as ground truth; the adjustment subtraction is applied uniformly to
// every account category because ledger balances are signed.
func revalueItem(item domain.LedgerItem, balanceCurrent decimal.Decimal) domain.ComputedLine {
	return domain.ComputedLine{
		LedgerLineID:     item.LedgerLineID,
		JournalEntryID:   item.JournalEntryID,
		AccountID:        item.AccountID,
		PartnerID:        item.PartnerID,
		CurrencyCode:     item.CurrencyCode,
		Date:             item.Date,
		MaturityDate:     item.MaturityDate,
		AmountCurrency:   item.AmountCurrency,
		BalanceOperation: item.BalanceOperation,
		BalanceCurrent:   balanceCurrent,
		Adjustment:       balanceCurrent.Sub(item.BalanceOperation),
	}
}

// snapshot builds the caller-facing view of a session. The total is summed
// from the current lines on every call, never cached. Caller must hold the
// session mutex.
func snapshot(session *revaluationSession) portssvc.SessionSnapshot {
	total := decimal.Zero
	for _, line := range session.lines {
		total = total.Add(line.Adjustment)
	}

	snap := portssvc.SessionSnapshot{
		SessionID:       session.id,
		State:           session.state,
		Params:          session.params,
		Lines:           session.lines,
		TotalAdjustment: total,
	}
	if session.lastErr != nil {
		snap.ErrorDetail = session.lastErr.Error()
	}
	return snap
}
