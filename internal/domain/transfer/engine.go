package domain_transfer

import (
	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/shopspring/decimal"
)

// Transfer moves amount from one account to the other. Validation happens
// before any lock is taken; on error neither balance is touched.
func Transfer(from, to *domain_account.Account, amount decimal.Decimal) error {
	r, err := NewRequest(NewParams{From: from, To: to, Amount: amount})
	if err != nil {
		return err
	}

	return r.Execute()
}

// Execute takes both account locks in global key order, so concurrent
// transfers touching the same pair (in either direction, or along a cycle)
// can never wait on each other circularly.
func (r Request) Execute() error {
	if r.from == nil || r.to == nil {
		return ErrInvalidAccount
	}

	first, second := domain_account.Ordered(r.from, r.to)

	first.Lock()
	defer first.Unlock()

	second.Lock()
	defer second.Unlock()

	// Re-read under the lock: the balance may have moved since validation.
	if r.from.BalanceLocked().LessThan(r.amount) {
		return ErrInsufficientBalance
	}

	r.from.DebitLocked(r.amount)
	r.to.CreditLocked(r.amount)

	return nil
}
