package domain_account

import "github.com/shopspring/decimal"

// Monetary values carry at most MaxScale fractional digits and MaxIntegerDigits
// integer digits. Comparing or adding decimals rescales them to a common
// exponent, so an unbounded exponent would make every later operation on the
// same balance proportionally slow.
const (
	MaxScale         = 18
	MaxIntegerDigits = 20
)

// WithinPrecision reports whether d fits the bounds above. It only inspects
// the exponent and the coefficient length, never rescaling d.
func WithinPrecision(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -MaxScale || exp > MaxIntegerDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= MaxIntegerDigits
}
