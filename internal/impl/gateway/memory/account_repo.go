package memory

import (
	"context"
	"sync"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
)

var _ port_persistence.AccountRepository = (*AccountRepository)(nil)

// AccountRepository keeps accounts in process memory. The map lock only
// guards the index; balances are guarded by each account's own lock.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain_account.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain_account.Account),
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain_account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[a.ID()]; ok {
		return port_persistence.ErrAlreadyExists
	}

	r.accounts[a.ID()] = a
	return nil
}

func (r *AccountRepository) GetByID(ctx context.Context, accountID string) (*domain_account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[accountID]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	return a, nil
}

func (r *AccountRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.accounts)
}
