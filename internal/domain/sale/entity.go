package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

type Sale struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Quantity    int
	Total       decimal.Decimal
	Description string
	Status      string
	Location    *string
	ManagerID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
