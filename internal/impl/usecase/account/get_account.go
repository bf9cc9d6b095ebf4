package impl_account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	port_persistence "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/gateway/persistence"
	port_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/ports/usecase/account"
)

type GetAccountUsecaseImpl struct {
	repo port_persistence.AccountRepository
}

func NewGetAccountUsecaseImpl(repo port_persistence.AccountRepository) *GetAccountUsecaseImpl {
	return &GetAccountUsecaseImpl{repo: repo}
}

func (u *GetAccountUsecaseImpl) Execute(ctx context.Context, accountID string) (port_account.AccountOutput, error) {
	accountID = strings.TrimSpace(accountID)

	a, err := u.repo.GetByID(ctx, accountID)
	if errors.Is(err, port_persistence.ErrNotFound) {
		return port_account.AccountOutput{}, fmt.Errorf("%w: account with id %s does not exist", ErrAccountNotFound, accountID)
	}
	if err != nil {
		return port_account.AccountOutput{}, fmt.Errorf("get account %s: %w", accountID, err)
	}

	return toOutput(a), nil
}
