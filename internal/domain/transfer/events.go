package domain_transfer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
	AggregateID() uuid.UUID
	CorrelationID() string
}

// MoneyTransferred describes a committed transfer. It is handed to
// collaborators (logs, notifications) and is not retained.
type MoneyTransferred struct {
	At             time.Time
	TransferID     uuid.UUID
	CorrelationID_ string

	FromAccountID string
	ToAccountID   string
	Amount        decimal.Decimal
}

func (e MoneyTransferred) EventName() string { return "money.transferred" }

func (e MoneyTransferred) OccurredAt() time.Time { return e.At }

func (e MoneyTransferred) AggregateID() uuid.UUID { return e.TransferID }

func (e MoneyTransferred) CorrelationID() string { return e.CorrelationID_ }
