package sale

import (
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status,omitempty"`
	Location    *string         `json:"location,omitempty"`
}

func (r *CreateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSaleRequest struct {
	ID          string
	Name        *string          `json:"name,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	Description *string          `json:"description,omitempty"`
	Status      *string          `json:"status,omitempty"`
	Location    *string          `json:"location,omitempty"`
}

func (r *UpdateSaleRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Quantity != nil && *r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "price", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaleResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Location    *string         `json:"location,omitempty"`
	ManagerID   *string         `json:"managerId,omitempty"`
	CreatedAt   string          `json:"createdAt"`
}
