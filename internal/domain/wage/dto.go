package wage

import (
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// CreateWageRequest carries raw attendance/rate inputs. Gross, balance and
// status are always recomputed server-side; clients may send their own
// preview values but they are ignored.
type CreateWageRequest struct {
	EmployeeID    string          `json:"-"`
	SalaryType    string          `json:"salaryType"`
	DaysWorked    int             `json:"daysWorked"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	WeeklyRate    decimal.Decimal `json:"weeklyRate"`
	SaturdayDate  *string         `json:"saturdayDate,omitempty"`
	SaturdayBonus decimal.Decimal `json:"saturdayBonus"`
	AdvancePaid   decimal.Decimal `json:"advancePaid"`
}

func (r *CreateWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SalaryType != string(finance.SalaryTypeDaily) && r.SalaryType != string(finance.SalaryTypeWeekly) {
		errs = append(errs, validator.ValidationError{Field: "salaryType", Message: "must be 'daily' or 'weekly'"})
	}
	if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "dailyRate", Message: "must be non-negative"})
	}
	if r.WeeklyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weeklyRate", Message: "must be non-negative"})
	}
	if r.SaturdayBonus.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "saturdayBonus", Message: "must be non-negative"})
	}
	if r.SaturdayDate != nil {
		if _, ok := validator.IsValidDate(*r.SaturdayDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "saturdayDate", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WageResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employeeId"`
	SalaryType    string          `json:"salaryType"`
	DaysWorked    int             `json:"daysWorked"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	WeeklyRate    decimal.Decimal `json:"weeklyRate"`
	SaturdayDate  *string         `json:"saturdayDate,omitempty"`
	SaturdayBonus decimal.Decimal `json:"saturdayBonus"`
	AdvancePaid   decimal.Decimal `json:"advancePaid"`
	Gross         decimal.Decimal `json:"gross"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	CreatedAt     string          `json:"createdAt"`
}
