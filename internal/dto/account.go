package dto

import (
	"time"

	"github.com/SscSPs/bank_account_app/internal/core/domain"
)

// OpenAccountRequest defines the data needed to open a new account.
type OpenAccountRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,supported_currency"`
}

// AccountResponse defines the data returned for a newly opened account.
type AccountResponse struct {
	AccountID     string    `json:"accountID"`
	CurrencyCode  string    `json:"currencyCode"`
	Balance       int64     `json:"balance"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// BalanceResponse defines the data returned for a balance query.
type BalanceResponse struct {
	AccountID    string `json:"accountID"`
	Balance      int64  `json:"balance"`
	CurrencyCode string `json:"currencyCode"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     account.AccountID,
		CurrencyCode:  account.Currency().Code(),
		Balance:       account.Balance().Amount(),
		CreatedAt:     account.CreatedAt,
		LastUpdatedAt: account.LastUpdatedAt,
	}
}

// ToBalanceResponse converts a domain.Account to a BalanceResponse DTO.
func ToBalanceResponse(account *domain.Account) BalanceResponse {
	return BalanceResponse{
		AccountID:    account.AccountID,
		Balance:      account.Balance().Amount(),
		CurrencyCode: account.Currency().Code(),
	}
}
