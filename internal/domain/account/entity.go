package domain_account

import (
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
)

var seqCounter atomic.Uint64

type Account struct {
	id        string
	seq       uint64
	createdAt time.Time

	// mu guards balance.
	mu      sync.Mutex
	balance decimal.Decimal
}

type NewParams struct {
	AccountID string
	Balance   decimal.Decimal
	Now       time.Time
}

func New(p NewParams) (*Account, error) {
	id := strings.TrimSpace(p.AccountID)
	if id == "" {
		return nil, ErrInvalidAccountID
	}

	if p.Balance.IsNegative() {
		return nil, ErrNegativeBalance
	}

	if !WithinPrecision(p.Balance) {
		return nil, ErrBalancePrecision
	}

	if p.Now.IsZero() {
		p.Now = time.Now().UTC()
	}

	return &Account{
		id:        id,
		seq:       seqCounter.Add(1),
		createdAt: p.Now,
		balance:   p.Balance,
	}, nil
}

func (a *Account) ID() string { return a.id }

func (a *Account) Seq() uint64 { return a.seq }

func (a *Account) Key() Key { return Key{ID: a.id, Seq: a.seq} }

func (a *Account) CreatedAt() time.Time { return a.createdAt }

func (a *Account) String() string { return a.id }

// Balance returns a consistent snapshot of the balance. It must not be called
// while holding the account lock.
func (a *Account) Balance() decimal.Decimal {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.balance
}

func (a *Account) Lock() { a.mu.Lock() }

func (a *Account) Unlock() { a.mu.Unlock() }

// The *Locked methods require the caller to hold a.Lock().

func (a *Account) BalanceLocked() decimal.Decimal { return a.balance }

func (a *Account) DebitLocked(amount decimal.Decimal) { a.balance = a.balance.Sub(amount) }

func (a *Account) CreditLocked(amount decimal.Decimal) { a.balance = a.balance.Add(amount) }
