package purchase

import (
	"time"

	"github.com/shopspring/decimal"
)

type Purchase struct {
	ID        string
	Item      string
	Category  string
	Supplier  string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
	Status    string
	Notes     string
	Location  *string
	ManagerID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
