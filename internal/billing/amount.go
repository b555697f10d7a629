// Package billing parses money amounts and reconciles membership balances.
package billing

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount format")
	ErrNonPositive        = errors.New("amount must be greater than zero")
	ErrExceedsPrice       = errors.New("amount exceeds plan price")
	ErrExceedsBalance     = errors.New("amount exceeds outstanding balance")
	ErrNothingOutstanding = errors.New("no outstanding balance")
)

// Scale is the number of fraction digits stored for money columns.
const Scale = 2

// ParseAmount parses a decimal string with at most two significant fraction
// digits and requires it to be positive.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.Equal(amount.Round(Scale)) {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositive
	}
	return amount.Round(Scale), nil
}

// ParseOptionalAmount returns fallback when raw is blank.
func ParseOptionalAmount(raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return ParseAmount(raw)
}

// Format renders an amount with exactly two fraction digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
