package domain_account

import "errors"

var (
	ErrInvalidAccountID = errors.New("account: account_id is required")
	ErrNegativeBalance  = errors.New("account: balance must be >= 0")
	ErrBalancePrecision = errors.New("account: balance exceeds supported precision")
)
