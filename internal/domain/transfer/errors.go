package domain_transfer

import "errors"

var (
	ErrInvalidAccount      = errors.New("transfer: account is required")
	ErrSameAccount         = errors.New("transfer: from account equals to account")
	ErrInvalidAmount       = errors.New("transfer: amount must be > 0")
	ErrAmountPrecision     = errors.New("transfer: amount exceeds supported precision")
	ErrInsufficientBalance = errors.New("transfer: insufficient balance")
)
