package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
	"github.com/SscSPs/bank_account_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_account_app/internal/core/ports/services"
	"github.com/SscSPs/bank_account_app/internal/core/services"
	"github.com/SscSPs/bank_account_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func (suite *AccountServiceTestSuite) usdAccount(accountID string, balance int64) *domain.Account {
	usd, err := domain.NewCurrency("USD")
	suite.Require().NoError(err)
	account := domain.NewAccount(accountID, usd)
	if balance > 0 {
		money, err := domain.NewMoney(balance, usd)
		suite.Require().NoError(err)
		suite.Require().NoError(account.Credit(money))
	}
	return account
}

// --- OpenAccount ---

func (suite *AccountServiceTestSuite) TestOpenAccount_Success() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{CurrencyCode: "USD"}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.AccountID != "" && a.Currency().Code() == "USD" && a.Balance().Amount() == 0
	})).Return(nil).Once()

	resp, err := suite.service.OpenAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.NotEmpty(resp.AccountID)
	suite.Equal("USD", resp.CurrencyCode)
	suite.Equal(int64(0), resp.Balance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOpenAccount_AssignsUniqueIDs() {
	ctx := context.Background()
	req := dto.OpenAccountRequest{CurrencyCode: "EUR"}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Twice()

	first, err := suite.service.OpenAccount(ctx, req)
	suite.Require().NoError(err)
	second, err := suite.service.OpenAccount(ctx, req)
	suite.Require().NoError(err)

	suite.NotEqual(first.AccountID, second.AccountID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestOpenAccount_InvalidCurrency() {
	ctx := context.Background()

	resp, err := suite.service.OpenAccount(ctx, dto.OpenAccountRequest{CurrencyCode: "GBP"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidCurrencyCode)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestOpenAccount_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(expectedErr).Once()

	resp, err := suite.service.OpenAccount(ctx, dto.OpenAccountRequest{CurrencyCode: "USD"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Credit ---

func (suite *AccountServiceTestSuite) TestCredit_Success() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 0)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.AccountID == "acc-1" && a.Balance().Amount() == 10000
	})).Return(nil).Once()

	resp, err := suite.service.Credit(ctx, "acc-1", dto.TransactionRequest{Amount: 10000, CurrencyCode: "USD"})

	suite.Require().NoError(err)
	suite.Equal(int64(10000), resp.Balance)
	suite.Equal("USD", resp.CurrencyCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCredit_AccountNotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.Credit(ctx, "missing", dto.TransactionRequest{Amount: 100, CurrencyCode: "USD"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCredit_CurrencyMismatch() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 0)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	resp, err := suite.service.Credit(ctx, "acc-1", dto.TransactionRequest{Amount: 100, CurrencyCode: "EUR"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCurrencyMismatch)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCredit_NegativeAmount() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 0)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	resp, err := suite.service.Credit(ctx, "acc-1", dto.TransactionRequest{Amount: -1, CurrencyCode: "USD"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNegativeAmount)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

// --- Debit ---

func (suite *AccountServiceTestSuite) TestDebit_Success() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 100000)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Balance().Amount() == 89950
	})).Return(nil).Once()

	resp, err := suite.service.Debit(ctx, "acc-1", dto.TransactionRequest{
		Amount:       10000,
		CurrencyCode: "USD",
		Date:         "2025-03-13",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(10000), resp.Amount)
	suite.Equal("USD", resp.CurrencyCode)
	suite.Equal(int64(50), resp.Fee)
	suite.Equal(int64(89950), resp.RemainingBalance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDebit_TinyAmountHasZeroFee() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 100)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Once()

	resp, err := suite.service.Debit(ctx, "acc-1", dto.TransactionRequest{
		Amount:       1,
		CurrencyCode: "USD",
		Date:         "2025-03-13",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Amount)
	suite.Equal(int64(0), resp.Fee)
	suite.Equal(int64(99), resp.RemainingBalance)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDebit_InsufficientFundsNotSaved() {
	ctx := context.Background()
	// covers the amount but not the fee
	account := suite.usdAccount("acc-1", 10000)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	resp, err := suite.service.Debit(ctx, "acc-1", dto.TransactionRequest{
		Amount:       10000,
		CurrencyCode: "USD",
		Date:         "2025-03-13",
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestDebit_DailyLimitAcrossCalls() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 1000000)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Times(4)
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Times(3)

	req := dto.TransactionRequest{Amount: 10000, CurrencyCode: "USD", Date: "2025-03-13"}
	for i := 0; i < 3; i++ {
		_, err := suite.service.Debit(ctx, "acc-1", req)
		suite.Require().NoError(err)
	}

	resp, err := suite.service.Debit(ctx, "acc-1", req)
	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDailyDebitLimitReached)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDebit_NextDaySucceedsAfterLimit() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 1000000)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Times(5)
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Times(4)

	sameDay := dto.TransactionRequest{Amount: 10000, CurrencyCode: "USD", Date: "2025-03-13"}
	for i := 0; i < 3; i++ {
		_, err := suite.service.Debit(ctx, "acc-1", sameDay)
		suite.Require().NoError(err)
	}
	_, err := suite.service.Debit(ctx, "acc-1", sameDay)
	suite.Require().ErrorIs(err, apperrors.ErrDailyDebitLimitReached)

	nextDay := dto.TransactionRequest{Amount: 10000, CurrencyCode: "USD", Date: "2025-03-14"}
	resp, err := suite.service.Debit(ctx, "acc-1", nextDay)
	suite.Require().NoError(err)
	suite.Equal(int64(50), resp.Fee)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDebit_RFC3339DateBucketsByCalendarDay() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 1000000)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Times(4)
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("*domain.Account")).Return(nil).Times(3)

	// three debits at different times of the same day exhaust the limit
	times := []string{
		"2025-03-13T08:00:00Z",
		"2025-03-13T12:30:00Z",
		"2025-03-13T23:59:59Z",
	}
	for _, ts := range times {
		_, err := suite.service.Debit(ctx, "acc-1", dto.TransactionRequest{Amount: 100, CurrencyCode: "USD", Date: ts})
		suite.Require().NoError(err)
	}

	_, err := suite.service.Debit(ctx, "acc-1", dto.TransactionRequest{Amount: 100, CurrencyCode: "USD", Date: "2025-03-13T06:00:00Z"})
	suite.Require().ErrorIs(err, apperrors.ErrDailyDebitLimitReached)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDebit_InvalidDate() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 100000)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	resp, err := suite.service.Debit(ctx, "acc-1", dto.TransactionRequest{
		Amount:       100,
		CurrencyCode: "USD",
		Date:         "13/03/2025",
	})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

// --- GetBalance ---

func (suite *AccountServiceTestSuite) TestGetBalance_Success() {
	ctx := context.Background()
	account := suite.usdAccount("acc-1", 89950)

	suite.mockRepo.On("FindAccountByID", ctx, "acc-1").Return(account, nil).Once()

	resp, err := suite.service.GetBalance(ctx, "acc-1")

	suite.Require().NoError(err)
	suite.Equal("acc-1", resp.AccountID)
	suite.Equal(int64(89950), resp.Balance)
	suite.Equal("USD", resp.CurrencyCode)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetBalance_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetBalance(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
