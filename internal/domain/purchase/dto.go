package purchase

import (
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePurchaseRequest struct {
	Item      string          `json:"item"`
	Category  string          `json:"category,omitempty"`
	Supplier  string          `json:"supplier,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Status    string          `json:"status,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Location  *string         `json:"location,omitempty"`
}

func (r *CreatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Item) {
		errs = append(errs, validator.ValidationError{Field: "item", Message: "is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unitPrice", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePurchaseRequest struct {
	ID        string
	Item      *string          `json:"item,omitempty"`
	Category  *string          `json:"category,omitempty"`
	Supplier  *string          `json:"supplier,omitempty"`
	Quantity  *int             `json:"quantity,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty"`
	Status    *string          `json:"status,omitempty"`
	Notes     *string          `json:"notes,omitempty"`
	Location  *string          `json:"location,omitempty"`
}

func (r *UpdatePurchaseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Quantity != nil && *r.Quantity < 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be non-negative"})
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "unitPrice", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PurchaseResponse struct {
	ID        string          `json:"id"`
	Item      string          `json:"item"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	Notes     string          `json:"notes"`
	Location  *string         `json:"location,omitempty"`
	ManagerID *string         `json:"managerId,omitempty"`
	CreatedAt string          `json:"createdAt"`
}
