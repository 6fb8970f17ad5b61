package expense

import (
	"time"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// Expense.Balance and Status are derived from amount/paid on every write;
// the balance is clamped at zero, never negative.
type Expense struct {
	ID          string
	Title       string
	Category    string
	Amount      decimal.Decimal
	Paid        decimal.Decimal
	Balance     decimal.Decimal
	Status      finance.PaymentStatus
	Description string
	Location    *string
	ManagerID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
