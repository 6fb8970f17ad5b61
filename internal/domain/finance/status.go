// Package finance is the pure computation layer behind every report and
// money field in the back office. It has no storage, no I/O and no notion
// of roles: callers fetch and scope records, finance turns them into
// derived figures. All functions are deterministic and safe to call from
// any goroutine.
package finance

import "github.com/shopspring/decimal"

// PaymentStatus classifies how much of an owed total has been paid.
type PaymentStatus string

const (
	StatusNoPaid      PaymentStatus = "No Paid"
	StatusPartialPaid PaymentStatus = "Partial Paid"
	StatusFullPaid    PaymentStatus = "Full Paid"
)

// PaymentStatusOf derives the three-tier payment status from the amount
// already paid against the total owed. Exact payment resolves to Full Paid,
// and so does overpayment; there is no separate overpaid tier.
func PaymentStatusOf(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.Sign() <= 0:
		return StatusNoPaid
	case paid.LessThan(total):
		return StatusPartialPaid
	default:
		return StatusFullPaid
	}
}
