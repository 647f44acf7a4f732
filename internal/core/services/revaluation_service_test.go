package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	portssvc "github.com/dsarhan/fx_reval_app/internal/core/ports/services"
	"github.com/dsarhan/fx_reval_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CompanyRepository ---
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

// --- Test Suite ---
// The revaluation service is exercised through the real currency, converter
// and selector services over mocked repositories, so these tests cover the
// whole engine end to end.
type RevaluationServiceTestSuite struct {
	suite.Suite
	mockCompanyRepo  *MockCompanyRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	mockLedgerRepo   *MockLedgerRepository
	service          portssvc.RevaluationSvc

	reportDate time.Time
}

func (suite *RevaluationServiceTestSuite) SetupTest() {
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)

	currencyService := services.NewCurrencyService(suite.mockCurrencyRepo)
	converterService := services.NewConverterService(suite.mockRateRepo, currencyService)
	selectorService := services.NewLedgerSelectorService(suite.mockLedgerRepo)
	suite.service = services.NewRevaluationService(suite.mockCompanyRepo, currencyService, selectorService, converterService)

	suite.reportDate = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
}

func (suite *RevaluationServiceTestSuite) params() domain.ReportParameters {
	return domain.ReportParameters{
		ReportDate:   suite.reportDate,
		CompanyID:    "comp-1",
		AccountScope: domain.ScopeReceivablePayable,
	}
}

func (suite *RevaluationServiceTestSuite) expectCompany() {
	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, "comp-1").
		Return(&domain.Company{CompanyID: "comp-1", Name: "Acme Corp", CurrencyCode: "USD"}, nil)
}

func (suite *RevaluationServiceTestSuite) expectCurrencies() {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").
		Return(&domain.Currency{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2}, nil)
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "EUR").
		Return(&domain.Currency{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2}, nil)
}

func (suite *RevaluationServiceTestSuite) expectEURRate(rate string) {
	suite.mockRateRepo.On("FindRateAsOf", mock.Anything, "EUR", "USD", "comp-1", suite.reportDate).
		Return(&domain.ExchangeRate{
			FromCurrencyCode: "EUR",
			ToCurrencyCode:   "USD",
			Rate:             decimal.RequireFromString(rate),
			DateEffective:    suite.reportDate.AddDate(0, 0, -1),
		}, nil)
}

// eurItems is the worked example: item A booked at rate 1.10, item B likewise,
// both open receivables in EUR against a USD home currency.
func (suite *RevaluationServiceTestSuite) eurItems() []domain.LedgerItem {
	return []domain.LedgerItem{
		{
			LedgerLineID:     "line-a",
			JournalEntryID:   "entry-1",
			AccountID:        "acc-ar",
			CurrencyCode:     "EUR",
			Date:             time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
			AmountCurrency:   decimal.NewFromInt(1000),
			BalanceOperation: decimal.NewFromInt(1100),
			EntryStatus:      domain.EntryPosted,
			Reconcilable:     true,
			AccountCategory:  domain.AssetReceivable,
		},
		{
			LedgerLineID:     "line-b",
			JournalEntryID:   "entry-2",
			AccountID:        "acc-ar",
			CurrencyCode:     "EUR",
			Date:             time.Date(2026, 7, 2, 0, 0, 0, 0, time.UTC),
			AmountCurrency:   decimal.NewFromInt(-500),
			BalanceOperation: decimal.NewFromInt(-550),
			EntryStatus:      domain.EntryPosted,
			Reconcilable:     true,
			AccountCategory:  domain.AssetReceivable,
		},
	}
}

func (suite *RevaluationServiceTestSuite) createSession() string {
	return suite.service.CreateSession(context.Background()).SessionID
}

func (suite *RevaluationServiceTestSuite) TestCreateSession_StartsEmpty() {
	snap := suite.service.CreateSession(context.Background())

	suite.NotEmpty(snap.SessionID)
	suite.Equal(domain.SessionEmpty, snap.State)
	suite.Empty(snap.Lines)
	suite.True(snap.TotalAdjustment.IsZero())
}

func (suite *RevaluationServiceTestSuite) TestRecompute_WorkedExample() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.expectCompany()
	suite.expectCurrencies()
	suite.expectEURRate("1.15")
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, mock.Anything).
		Return(suite.eurItems(), nil).Once()

	snap, err := suite.service.Recompute(ctx, sessionID, suite.params())

	suite.Require().NoError(err)
	suite.Equal(domain.SessionComputed, snap.State)
	suite.Require().Len(snap.Lines, 2)

	// Item A: 1000 EUR at 1.15 = 1150, booked at 1100 -> +50 unrealized gain
	suite.Equal("line-a", snap.Lines[0].LedgerLineID)
	suite.True(snap.Lines[0].BalanceCurrent.Equal(decimal.NewFromInt(1150)), "got %s", snap.Lines[0].BalanceCurrent)
	suite.True(snap.Lines[0].Adjustment.Equal(decimal.NewFromInt(50)), "got %s", snap.Lines[0].Adjustment)

	// Item B: -500 EUR at 1.15 = -575, booked at -550 -> -25, no sign flipping
	suite.Equal("line-b", snap.Lines[1].LedgerLineID)
	suite.True(snap.Lines[1].BalanceCurrent.Equal(decimal.NewFromInt(-575)), "got %s", snap.Lines[1].BalanceCurrent)
	suite.True(snap.Lines[1].Adjustment.Equal(decimal.NewFromInt(-25)), "got %s", snap.Lines[1].Adjustment)

	suite.True(snap.TotalAdjustment.Equal(decimal.NewFromInt(25)), "got %s", snap.TotalAdjustment)
}

func (suite *RevaluationServiceTestSuite) TestRecompute_AdjustmentIdentityAndTotalConsistency() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.expectCompany()
	suite.expectCurrencies()
	suite.expectEURRate("1.087654")
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, mock.Anything).
		Return(suite.eurItems(), nil).Once()

	snap, err := suite.service.Recompute(ctx, sessionID, suite.params())
	suite.Require().NoError(err)

	total := decimal.Zero
	for _, line := range snap.Lines {
		suite.True(line.Adjustment.Equal(line.BalanceCurrent.Sub(line.BalanceOperation)))
		total = total.Add(line.Adjustment)
	}
	suite.True(snap.TotalAdjustment.Equal(total))
}

func (suite *RevaluationServiceTestSuite) TestRecompute_IsIdempotent() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.expectCompany()
	suite.expectCurrencies()
	suite.expectEURRate("1.15")
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, mock.Anything).
		Return(suite.eurItems(), nil).Twice()

	first, err := suite.service.Recompute(ctx, sessionID, suite.params())
	suite.Require().NoError(err)
	second, err := suite.service.Recompute(ctx, sessionID, suite.params())
	suite.Require().NoError(err)

	suite.Equal(first.State, second.State)
	suite.Require().Len(second.Lines, len(first.Lines))
	for i := range first.Lines {
		suite.Equal(first.Lines[i].LedgerLineID, second.Lines[i].LedgerLineID)
		suite.True(first.Lines[i].Adjustment.Equal(second.Lines[i].Adjustment))
	}
	suite.True(first.TotalAdjustment.Equal(second.TotalAdjustment))
}

func (suite *RevaluationServiceTestSuite) TestRecompute_FullReplaceAcrossParameterChanges() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.expectCompany()
	suite.expectCurrencies()
	suite.expectEURRate("1.15")

	receivableFilter := mock.MatchedBy(func(f portsrepo.LedgerItemFilter) bool {
		return len(f.Categories) == 2 && f.Categories[0] == domain.AssetReceivable
	})
	liquidityFilter := mock.MatchedBy(func(f portsrepo.LedgerItemFilter) bool {
		return len(f.Categories) == 2 && f.Categories[0] == domain.AssetCash
	})

	bankItem := domain.LedgerItem{
		LedgerLineID:     "line-c",
		JournalEntryID:   "entry-3",
		AccountID:        "acc-bank",
		CurrencyCode:     "EUR",
		Date:             time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		AmountCurrency:   decimal.NewFromInt(200),
		BalanceOperation: decimal.NewFromInt(220),
		EntryStatus:      domain.EntryPosted,
		Reconcilable:     true,
		AccountCategory:  domain.AssetCash,
	}

	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, receivableFilter).
		Return(suite.eurItems(), nil).Once()
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, liquidityFilter).
		Return([]domain.LedgerItem{bankItem}, nil).Once()

	_, err := suite.service.Recompute(ctx, sessionID, suite.params())
	suite.Require().NoError(err)

	liquidityParams := suite.params()
	liquidityParams.AccountScope = domain.ScopeLiquidity
	snap, err := suite.service.Recompute(ctx, sessionID, liquidityParams)
	suite.Require().NoError(err)

	// No line from the first run survives the second
	suite.Require().Len(snap.Lines, 1)
	suite.Equal("line-c", snap.Lines[0].LedgerLineID)
	suite.True(snap.TotalAdjustment.Equal(decimal.NewFromInt(10)), "got %s", snap.TotalAdjustment)
}

func (suite *RevaluationServiceTestSuite) TestRecompute_MissingRateFailsSessionAndDiscardsLines() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.expectCompany()
	suite.expectCurrencies()

	// First run succeeds
	suite.expectEURRate("1.15")
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, mock.Anything).
		Return(suite.eurItems(), nil).Once()
	_, err := suite.service.Recompute(ctx, sessionID, suite.params())
	suite.Require().NoError(err)

	// Second run hits a currency with no rate as of the report date
	chfItem := suite.eurItems()[0]
	chfItem.LedgerLineID = "line-chf"
	chfItem.CurrencyCode = "CHF"
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "CHF").
		Return(&domain.Currency{CurrencyCode: "CHF", Symbol: "Fr", Name: "Swiss Franc", Precision: 2}, nil)
	suite.mockRateRepo.On("FindRateAsOf", mock.Anything, "CHF", "USD", "comp-1", suite.reportDate).
		Return(nil, fmt.Errorf("%w: exchange rate CHF->USD", apperrors.ErrNotFound))
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, mock.Anything).
		Return([]domain.LedgerItem{chfItem}, nil).Once()

	snap, err := suite.service.Recompute(ctx, sessionID, suite.params())

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrRateUnavailable))
	suite.Equal(domain.SessionFailed, snap.State)
	// The prior committed lines are discarded, never kept stale
	suite.Empty(snap.Lines)
	suite.True(snap.TotalAdjustment.IsZero())
	suite.NotEmpty(snap.ErrorDetail)

	// The failed state is what a subsequent read observes too
	read, err := suite.service.GetSession(ctx, sessionID)
	suite.Require().NoError(err)
	suite.Equal(domain.SessionFailed, read.State)
	suite.Empty(read.Lines)
}

func (suite *RevaluationServiceTestSuite) TestRecompute_SkipsItemsWithUnresolvableCurrency() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.expectCompany()
	suite.expectCurrencies()
	suite.expectEURRate("1.15")

	ghostItem := suite.eurItems()[0]
	ghostItem.LedgerLineID = "line-ghost"
	ghostItem.CurrencyCode = "XXX"
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XXX").
		Return(nil, fmt.Errorf("%w: currency 'XXX'", apperrors.ErrNotFound))

	items := append(suite.eurItems(), ghostItem)
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, mock.Anything).
		Return(items, nil).Once()

	snap, err := suite.service.Recompute(ctx, sessionID, suite.params())

	// No currency, no line; the rest of the report is still meaningful
	suite.Require().NoError(err)
	suite.Equal(domain.SessionComputed, snap.State)
	suite.Require().Len(snap.Lines, 2)
	for _, line := range snap.Lines {
		suite.NotEqual("line-ghost", line.LedgerLineID)
	}
}

func (suite *RevaluationServiceTestSuite) TestRecompute_PreservesSelectorOrder() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.expectCompany()
	suite.expectCurrencies()
	suite.expectEURRate("1.15")
	suite.mockLedgerRepo.On("FindOpenForeignCurrencyItems", mock.Anything, mock.Anything).
		Return(suite.eurItems(), nil).Twice()

	first, err := suite.service.Recompute(ctx, sessionID, suite.params())
	suite.Require().NoError(err)
	second, err := suite.service.Recompute(ctx, sessionID, suite.params())
	suite.Require().NoError(err)

	suite.Equal([]string{"line-a", "line-b"}, lineIDs(first))
	suite.Equal(lineIDs(first), lineIDs(second))
}

func (suite *RevaluationServiceTestSuite) TestRecompute_ValidationLeavesSessionUntouched() {
	ctx := context.Background()
	sessionID := suite.createSession()

	cases := []struct {
		name   string
		params domain.ReportParameters
	}{
		{"missing report date", domain.ReportParameters{CompanyID: "comp-1", AccountScope: domain.ScopeAll}},
		{"missing company", domain.ReportParameters{ReportDate: suite.reportDate, AccountScope: domain.ScopeAll}},
		{"unrecognized scope", domain.ReportParameters{ReportDate: suite.reportDate, CompanyID: "comp-1", AccountScope: domain.AccountScope("bogus")}},
	}

	for _, tc := range cases {
		snap, err := suite.service.Recompute(ctx, sessionID, tc.params)
		suite.Require().Error(err, tc.name)
		suite.True(errors.Is(err, apperrors.ErrValidation), tc.name)
		suite.Equal(domain.SessionEmpty, snap.State, tc.name)
	}

	// Validation happens before any query runs
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "FindOpenForeignCurrencyItems", mock.Anything, mock.Anything)
}

func (suite *RevaluationServiceTestSuite) TestRecompute_UnknownCompany() {
	ctx := context.Background()
	sessionID := suite.createSession()

	suite.mockCompanyRepo.On("FindCompanyByID", mock.Anything, "comp-404").
		Return(nil, fmt.Errorf("%w: company 'comp-404'", apperrors.ErrNotFound))

	params := suite.params()
	params.CompanyID = "comp-404"
	_, err := suite.service.Recompute(ctx, sessionID, params)

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *RevaluationServiceTestSuite) TestGetSession_UnknownSession() {
	_, err := suite.service.GetSession(context.Background(), "no-such-session")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func lineIDs(snap portssvc.SessionSnapshot) []string {
	ids := make([]string, len(snap.Lines))
	for i, line := range snap.Lines {
		ids[i] = line.LedgerLineID
	}
	return ids
}

func TestRevaluationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RevaluationServiceTestSuite))
}
