package port_persistence

import (
	"context"
	"errors"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
)

var (
	ErrNotFound      = errors.New("persistence: not found")
	ErrAlreadyExists = errors.New("persistence: already exists")
)

// AccountRepository hands out the single shared record per account id.
// Implementations must be safe for concurrent use.
type AccountRepository interface {
	Create(ctx context.Context, a *domain_account.Account) error
	GetByID(ctx context.Context, accountID string) (*domain_account.Account, error)
}
