package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	"github.com/dsarhan/fx_reval_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "eur")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_InvalidCode() {
	_, err := suite.service.GetCurrencyByCode(context.Background(), "EURO")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").
		Return(nil, fmt.Errorf("%w: currency 'XXX'", apperrors.ErrNotFound)).Once()

	_, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return([]domain.Currency(nil), nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
