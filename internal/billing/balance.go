package billing

import "github.com/shopspring/decimal"

// Balance is what is still owed on a membership: price minus everything
// paid, floored at zero. It is never stored.
func Balance(price, totalPaid decimal.Decimal) decimal.Decimal {
	b := price.Sub(totalPaid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b.Round(Scale)
}

// Sum adds amounts without rounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// CheckAgainstPrice rejects amounts above the plan price.
func CheckAgainstPrice(amount, price decimal.Decimal) error {
	if amount.GreaterThan(price) {
		return ErrExceedsPrice
	}
	return nil
}

// CheckAgainstBalance rejects payments that would push the total paid past
// the plan price.
func CheckAgainstBalance(amount, price, totalPaid decimal.Decimal) error {
	balance := Balance(price, totalPaid)
	if balance.IsZero() {
		return ErrNothingOutstanding
	}
	if amount.GreaterThan(balance) {
		return ErrExceedsBalance
	}
	return nil
}
