package memory_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/PedroCamargo-dev/core-bank-ledger-service/internal/impl/gateway/memory"
	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newAccount(t *testing.T, id string) *domain_account.Account {
	t.Helper()

	a, err := domain_account.New(domain_account.NewParams{AccountID: id, Balance: decimal.NewFromInt(100)})
	require.NoError(t, err)
	return a
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	account := newAccount(t, "Id-123")

	require.NoError(t, repo.Create(ctx, account))

	got, err := repo.GetByID(ctx, "Id-123")
	require.NoError(t, err)
	assert.Same(t, account, got, "store must hand out the shared record")
}

func TestAccountRepository_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	original := newAccount(t, "Id-123")

	require.NoError(t, repo.Create(ctx, original))

	err := repo.Create(ctx, newAccount(t, "Id-123"))
	assert.True(t, errors.Is(err, port_persistence.ErrAlreadyExists), "got %v", err)

	got, err := repo.GetByID(ctx, "Id-123")
	require.NoError(t, err)
	assert.Same(t, original, got)
}

func TestAccountRepository_NotFound(t *testing.T) {
	_, err := memory.NewAccountRepository().GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, port_persistence.ErrNotFound), "got %v", err)
}

func TestAccountRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo := memory.NewAccountRepository()
	assert.ErrorIs(t, repo.Create(ctx, newAccount(t, "Id-123")), context.Canceled)

	_, err := repo.GetByID(ctx, "Id-123")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAccountRepository_Clear(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	require.NoError(t, repo.Create(ctx, newAccount(t, "Id-123")))

	repo.Clear()

	_, err := repo.GetByID(ctx, "Id-123")
	assert.ErrorIs(t, err, port_persistence.ErrNotFound)
}

func TestAccountRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	var g errgroup.Group
	for i := range 200 {
		id := fmt.Sprintf("acc-%d", i%50)
		g.Go(func() error {
			a, err := domain_account.New(domain_account.NewParams{AccountID: id})
			if err != nil {
				return err
			}
			if err := repo.Create(ctx, a); err != nil && !errors.Is(err, port_persistence.ErrAlreadyExists) {
				return err
			}
			_, err = repo.GetByID(ctx, id)
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i := range 50 {
		_, err := repo.GetByID(ctx, fmt.Sprintf("acc-%d", i))
		assert.NoError(t, err)
	}
}
