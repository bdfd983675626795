package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
	"github.com/SscSPs/bank_account_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_account_app/internal/core/ports/services"
	"github.com/SscSPs/bank_account_app/internal/dto"
	"github.com/google/uuid"
)

// AccountService orchestrates load -> domain call -> save around the
// account aggregate. Domain errors propagate to the caller unchanged.
type AccountService struct {
	BaseService
	accountRepository portsrepo.AccountRepositoryFacade

	// accountLocks serializes the load-mutate-save sequence per account.
	// Credit and debit are read-modify-write against the stored account;
	// without per-account locking concurrent calls could lose balance
	// updates or double-count daily debits.
	accountLocks sync.Map // accountID -> *sync.Mutex
}

// NewAccountService creates an AccountService backed by the given repository.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) *AccountService {
	return &AccountService{accountRepository: repo}
}

// Ensure AccountService implements the service facade
var _ portssvc.AccountSvcFacade = (*AccountService)(nil)

// OpenAccount creates a new zero-balance account in the requested currency,
// assigns it a fresh unique identifier and persists it.
func (s *AccountService) OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*dto.AccountResponse, error) {
	currency, err := domain.NewCurrency(req.CurrencyCode)
	if err != nil {
		s.LogDebug(ctx, "Rejected account open for unsupported currency", slog.String("currency_code", req.CurrencyCode))
		return nil, err
	}

	now := time.Now()
	account := domain.NewAccount(uuid.NewString(), currency)
	account.AuditFields = domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}

	if err := s.accountRepository.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save new account", slog.String("account_id", account.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account opened", slog.String("account_id", account.AccountID), slog.String("currency_code", currency.Code()))
	resp := dto.ToAccountResponse(account)
	return &resp, nil
}

// Credit adds funds to the account and returns the resulting balance.
func (s *AccountService) Credit(ctx context.Context, accountID string, req dto.TransactionRequest) (*dto.BalanceResponse, error) {
	unlock := s.lockAccount(accountID)
	defer unlock()

	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	money, err := s.moneyFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := account.Credit(money); err != nil {
		s.LogDebug(ctx, "Credit rejected", slog.String("account_id", accountID), slog.String("reason", err.Error()))
		return nil, err
	}

	account.LastUpdatedAt = time.Now()
	if err := s.accountRepository.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account after credit", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account credited", slog.String("account_id", accountID), slog.Int64("amount", money.Amount()))
	resp := dto.ToBalanceResponse(account)
	return &resp, nil
}

// Debit withdraws funds plus the transaction fee and returns the amount,
// the fee charged and the remaining balance.
func (s *AccountService) Debit(ctx context.Context, accountID string, req dto.TransactionRequest) (*dto.DebitResponse, error) {
	unlock := s.lockAccount(accountID)
	defer unlock()

	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	money, err := s.moneyFromRequest(req)
	if err != nil {
		return nil, err
	}

	date, err := parseTransactionDate(req.Date)
	if err != nil {
		return nil, err
	}

	total, err := account.Debit(money, date)
	if err != nil {
		s.LogDebug(ctx, "Debit rejected", slog.String("account_id", accountID), slog.String("reason", err.Error()))
		return nil, err
	}

	account.LastUpdatedAt = time.Now()
	if err := s.accountRepository.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account after debit", slog.String("account_id", accountID))
		return nil, err
	}

	fee := total.Amount() - money.Amount()
	s.LogInfo(ctx, "Account debited",
		slog.String("account_id", accountID),
		slog.Int64("amount", money.Amount()),
		slog.Int64("fee", fee),
	)
	return &dto.DebitResponse{
		Amount:           money.Amount(),
		CurrencyCode:     money.Currency().Code(),
		Fee:              fee,
		RemainingBalance: account.Balance().Amount(),
	}, nil
}

// GetBalance returns the current balance of the account.
func (s *AccountService) GetBalance(ctx context.Context, accountID string) (*dto.BalanceResponse, error) {
	account, err := s.getAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToBalanceResponse(account)
	return &resp, nil
}

func (s *AccountService) getAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepository.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *AccountService) moneyFromRequest(req dto.TransactionRequest) (domain.Money, error) {
	currency, err := domain.NewCurrency(req.CurrencyCode)
	if err != nil {
		return domain.Money{}, err
	}
	return domain.NewMoney(req.Amount, currency)
}

// lockAccount acquires the per-account mutex and returns its unlock func.
func (s *AccountService) lockAccount(accountID string) func() {
	value, _ := s.accountLocks.LoadOrStore(accountID, &sync.Mutex{})
	mu := value.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// parseTransactionDate parses the request date as a bare calendar date or an
// RFC3339 timestamp; only the date portion matters for limit bucketing. An
// empty string means the current time.
func parseTransactionDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return date, nil
	}
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid transaction date %q", apperrors.ErrValidation, raw)
}
