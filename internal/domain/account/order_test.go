package domain_account_test

import (
	"testing"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
)

func TestLockOrder(t *testing.T) {
	tests := []struct {
		name       string
		a, b       domain_account.Key
		wantFirst  domain_account.Key
		wantSecond domain_account.Key
	}{
		{
			name:       "greater id first when given in order",
			a:          domain_account.Key{ID: "b", Seq: 1},
			b:          domain_account.Key{ID: "a", Seq: 2},
			wantFirst:  domain_account.Key{ID: "b", Seq: 1},
			wantSecond: domain_account.Key{ID: "a", Seq: 2},
		},
		{
			name:       "greater id first when given reversed",
			a:          domain_account.Key{ID: "a", Seq: 2},
			b:          domain_account.Key{ID: "b", Seq: 1},
			wantFirst:  domain_account.Key{ID: "b", Seq: 1},
			wantSecond: domain_account.Key{ID: "a", Seq: 2},
		},
		{
			name:       "lexicographic not numeric",
			a:          domain_account.Key{ID: "10", Seq: 1},
			b:          domain_account.Key{ID: "9", Seq: 2},
			wantFirst:  domain_account.Key{ID: "9", Seq: 2},
			wantSecond: domain_account.Key{ID: "10", Seq: 1},
		},
		{
			name:       "ties on id broken by seq",
			a:          domain_account.Key{ID: "x", Seq: 3},
			b:          domain_account.Key{ID: "x", Seq: 7},
			wantFirst:  domain_account.Key{ID: "x", Seq: 7},
			wantSecond: domain_account.Key{ID: "x", Seq: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, second := domain_account.LockOrder(tt.a, tt.b)

			if first != tt.wantFirst || second != tt.wantSecond {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tt.wantFirst, tt.wantSecond, first, second)
			}

			rf, rs := domain_account.LockOrder(tt.b, tt.a)
			if rf != first || rs != second {
				t.Fatalf("expected order to be independent of argument order, got (%v, %v)", rf, rs)
			}
		})
	}
}

func TestLockOrder_IsTransitive(t *testing.T) {
	a := domain_account.Key{ID: "A", Seq: 1}
	b := domain_account.Key{ID: "B", Seq: 2}
	c := domain_account.Key{ID: "C", Seq: 3}

	if f, _ := domain_account.LockOrder(a, b); f != b {
		t.Fatalf("expected B before A")
	}
	if f, _ := domain_account.LockOrder(b, c); f != c {
		t.Fatalf("expected C before B")
	}
	if f, _ := domain_account.LockOrder(c, a); f != c {
		t.Fatalf("expected C before A")
	}
}

func TestOrdered(t *testing.T) {
	low, _ := domain_account.New(domain_account.NewParams{AccountID: "account1-Id"})
	high, _ := domain_account.New(domain_account.NewParams{AccountID: "account2-Id"})

	first, second := domain_account.Ordered(low, high)
	if first != high || second != low {
		t.Errorf("expected %s then %s, got %s then %s", high, low, first, second)
	}

	first, second = domain_account.Ordered(high, low)
	if first != high || second != low {
		t.Errorf("expected %s then %s, got %s then %s", high, low, first, second)
	}
}
