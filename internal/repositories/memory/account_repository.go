package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
	"github.com/SscSPs/bank_account_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_app/internal/core/ports/repositories"
)

// AccountRepository is an in-memory account store keyed by account ID.
// Accounts are cloned on save and on load, so callers always work on a
// snapshot and persisted state only changes through SaveAccount.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

// NewAccountRepository creates an empty in-memory account repository.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

// Ensure AccountRepository implements the repository facade
var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

// FindAccountByID retrieves a snapshot of the account.
func (r *AccountRepository) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return account.Clone(), nil
}

// SaveAccount stores a snapshot of the account, overwriting any previous state.
func (r *AccountRepository) SaveAccount(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.AccountID] = account.Clone()
	return nil
}
