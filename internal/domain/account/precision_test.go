package domain_account_test

import (
	"testing"

	domain_account "github.com/PedroCamargo-dev/core-bank-ledger-service/internal/domain/account"
	"github.com/shopspring/decimal"
)

func TestWithinPrecision(t *testing.T) {
	tests := []struct {
		name  string
		value decimal.Decimal
		want  bool
	}{
		{"zero", decimal.Zero, true},
		{"integer", decimal.NewFromInt(1000), true},
		{"trailing zero", decimal.RequireFromString("12.50"), true},
		{"smallest unit", decimal.RequireFromString("0.000000000000000001"), true},
		{"largest integer", decimal.RequireFromString("99999999999999999999"), true},
		{"largest value", decimal.RequireFromString("99999999999999999999.999999999999999999"), true},
		{"positive exponent in range", decimal.New(1, 19), true},
		{"below smallest unit", decimal.RequireFromString("0.0000000000000000001"), false},
		{"too many integer digits", decimal.RequireFromString("100000000000000000000"), false},
		{"positive exponent out of range", decimal.New(1, 20), false},
		{"huge negative exponent", decimal.New(1, -5_000_000), false},
		{"huge positive exponent", decimal.New(1, 5_000_000), false},
		{"negative below smallest unit", decimal.New(-1, -19), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := domain_account.WithinPrecision(tt.value); got != tt.want {
				t.Errorf("expected %v for exponent %d, got %v", tt.want, tt.value.Exponent(), got)
			}
		})
	}
}
