package port_account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type CreateAccountInput struct {
	AccountID string
	Balance   decimal.Decimal
}

type AccountOutput struct {
	AccountID string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

type CreateAccountUseCase interface {
	Execute(ctx context.Context, input CreateAccountInput) (AccountOutput, error)
}

type GetAccountUseCase interface {
	Execute(ctx context.Context, accountID string) (AccountOutput, error)
}
