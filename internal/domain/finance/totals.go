package finance

import "github.com/shopspring/decimal"

// LineTotal computes the total of an order, sale or purchase line. Totals
// are recomputed from their factors on every write: a persisted total may be
// displayed as-is, but any change to quantity or price goes through here.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// ExpenseBalance returns the unpaid remainder of an expense, clamped at
// zero. Overpaying an expense never produces a negative balance.
func ExpenseBalance(amount, paid decimal.Decimal) decimal.Decimal {
	balance := amount.Sub(paid)
	if balance.Sign() < 0 {
		return decimal.Zero
	}
	return balance
}
