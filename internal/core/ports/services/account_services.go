package services

import (
	"context"

	"github.com/SscSPs/bank_account_app/internal/dto"
)

// AccountReaderSvc defines read operations on accounts
type AccountReaderSvc interface {
	// GetBalance returns the current balance of an account.
	GetBalance(ctx context.Context, accountID string) (*dto.BalanceResponse, error)
}

// AccountWriterSvc defines the operations that mutate an account
type AccountWriterSvc interface {
	// OpenAccount creates a new zero-balance account in the requested
	// currency and returns it with its freshly assigned identifier.
	OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*dto.AccountResponse, error)

	// Credit adds funds to an account and returns the resulting balance.
	Credit(ctx context.Context, accountID string, req dto.TransactionRequest) (*dto.BalanceResponse, error)

	// Debit withdraws funds plus the transaction fee, subject to the daily
	// debit limit, and returns the amount, fee and remaining balance.
	Debit(ctx context.Context, accountID string, req dto.TransactionRequest) (*dto.DebitResponse, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
