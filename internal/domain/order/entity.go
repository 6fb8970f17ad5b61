package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order.Total is persisted but derived: always quantity * unit price,
// recomputed on any write touching either factor.
type Order struct {
	ID          string
	Customer    string
	Item        string
	Category    string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Status      string
	Notes       string
	Phone       string
	AdvancePaid decimal.Decimal
	Location    *string
	ManagerID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
