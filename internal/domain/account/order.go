package domain_account

import "cmp"

// Key is the lock-ordering identity of an account. Seq breaks ties between
// distinct records that share an ID.
type Key struct {
	ID  string
	Seq uint64
}

func (k Key) Compare(other Key) int {
	if c := cmp.Compare(k.ID, other.ID); c != 0 {
		return c
	}
	return cmp.Compare(k.Seq, other.Seq)
}

// LockOrder returns the two keys in acquisition order: greater first.
func LockOrder(a, b Key) (first, second Key) {
	if a.Compare(b) >= 0 {
		return a, b
	}
	return b, a
}

// Ordered returns the two accounts in the order their locks must be taken.
func Ordered(a, b *Account) (first, second *Account) {
	if k, _ := LockOrder(a.Key(), b.Key()); k == a.Key() {
		return a, b
	}
	return b, a
}
