package port_transfer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransferMoneyInput struct {
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	CorrelationID string
}

type TransferMoneyOutput struct {
	TransferID    string
	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
	CorrelationID string
	CompletedAt   time.Time
}

type TransferMoneyUseCase interface {
	Execute(ctx context.Context, input TransferMoneyInput) (TransferMoneyOutput, error)
}
