package domain_transfer

import (
	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/shopspring/decimal"
)

// Request is a validated, not yet executed transfer. It is never stored.
type Request struct {
	from   *domain_account.Account
	to     *domain_account.Account
	amount decimal.Decimal
}

type NewParams struct {
	From   *domain_account.Account
	To     *domain_account.Account
	Amount decimal.Decimal
}

func NewRequest(p NewParams) (Request, error) {
	if p.From == nil || p.To == nil {
		return Request{}, ErrInvalidAccount
	}

	if !p.Amount.IsPositive() {
		return Request{}, ErrInvalidAmount
	}

	if !domain_account.WithinPrecision(p.Amount) {
		return Request{}, ErrAmountPrecision
	}

	if p.From == p.To || p.From.ID() == p.To.ID() {
		return Request{}, ErrSameAccount
	}

	return Request{
		from:   p.From,
		to:     p.To,
		amount: p.Amount,
	}, nil
}

func (r Request) From() *domain_account.Account { return r.from }

func (r Request) To() *domain_account.Account { return r.to }

func (r Request) Amount() decimal.Decimal { return r.amount }
