package order

import (
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	Customer    string          `json:"customer"`
	Item        string          `json:"item"`
	Category    string          `json:"category,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Status      string          `json:"status,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	AdvancePaid decimal.Decimal `json:"advancePaid"`
	Location    *string         `json:"location,omitempty"`
}

func (r *CreateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Customer) {
		errs = append(errs, validator.ValidationError{Field: "customer", Message: "is required"})
	}
	if validator.IsEmpty(r.Item) {
		errs = append(errs, validator.ValidationError{Field: "item", Message: "is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unitPrice", Message: "must be non-negative"})
	}
	if r.AdvancePaid.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advancePaid", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateOrderRequest struct {
	ID          string
	Customer    *string          `json:"customer,omitempty"`
	Item        *string          `json:"item,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	AdvancePaid *decimal.Decimal `json:"advancePaid,omitempty"`
	Location    *string          `json:"location,omitempty"`
}

func (r *UpdateOrderRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Quantity != nil && *r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unitPrice", Message: "must be non-negative"})
	}
	if r.AdvancePaid != nil && r.AdvancePaid.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "advancePaid", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OrderResponse struct {
	ID          string          `json:"id"`
	Customer    string          `json:"customer"`
	Item        string          `json:"item"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
	Phone       string          `json:"phone"`
	AdvancePaid decimal.Decimal `json:"advancePaid"`
	// PaymentStatus is derived from advancePaid against total, never stored.
	PaymentStatus string  `json:"paymentStatus"`
	Location      *string `json:"location,omitempty"`
	ManagerID     *string `json:"managerId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

type SummaryResponse struct {
	TotalOrders   int             `json:"totalOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	WeeklyOrders  int             `json:"weeklyOrders"`
	MonthlyOrders int             `json:"monthlyOrders"`
}
