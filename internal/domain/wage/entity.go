package wage

import (
	"time"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// WageRecord is an immutable pay snapshot for one employee and one period.
// Rates are copied in at creation time so later employee edits never
// rewrite history; the collection is append-only.
type WageRecord struct {
	ID            string
	EmployeeID    string
	ManagerID     *string
	SalaryType    finance.SalaryType
	DaysWorked    int
	DailyRate     decimal.Decimal
	WeeklyRate    decimal.Decimal
	SaturdayDate  *string
	SaturdayBonus decimal.Decimal
	AdvancePaid   decimal.Decimal
	Gross         decimal.Decimal
	Balance       decimal.Decimal
	Status        finance.PaymentStatus
	CreatedAt     time.Time
}
