package impl_transfer

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidInput    = errors.New("invalid input data")
	ErrNotifierPanic   = errors.New("notifier panicked")
)
