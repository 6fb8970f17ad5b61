package employee

import (
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName   string          `json:"fullName"`
	Phone      string          `json:"phone"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	SalaryType string          `json:"salaryType"`
	DailyRate  decimal.Decimal `json:"dailyRate"`
	WeeklyRate decimal.Decimal `json:"weeklyRate"`
	StartDate  string          `json:"startDate"`
	Status     string          `json:"status,omitempty"`
	Address    *string         `json:"address,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if r.SalaryType != string(finance.SalaryTypeDaily) && r.SalaryType != string(finance.SalaryTypeWeekly) {
		errs = append(errs, validator.ValidationError{Field: "salaryType", Message: "must be 'daily' or 'weekly'"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "dailyRate", Message: "must be non-negative"})
	}
	if r.WeeklyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weeklyRate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	FullName   *string          `json:"fullName,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Role       *string          `json:"role,omitempty"`
	Department *string          `json:"department,omitempty"`
	SalaryType *string          `json:"salaryType,omitempty"`
	DailyRate  *decimal.Decimal `json:"dailyRate,omitempty"`
	WeeklyRate *decimal.Decimal `json:"weeklyRate,omitempty"`
	StartDate  *string          `json:"startDate,omitempty"`
	Status     *string          `json:"status,omitempty"`
	Address    *string          `json:"address,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.SalaryType != nil && *r.SalaryType != string(finance.SalaryTypeDaily) && *r.SalaryType != string(finance.SalaryTypeWeekly) {
		errs = append(errs, validator.ValidationError{Field: "salaryType", Message: "must be 'daily' or 'weekly'"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}
	if r.DailyRate != nil && r.DailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "dailyRate", Message: "must be non-negative"})
	}
	if r.WeeklyRate != nil && r.WeeklyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "weeklyRate", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	FullName   string          `json:"fullName"`
	Phone      string          `json:"phone"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	SalaryType string          `json:"salaryType"`
	DailyRate  decimal.Decimal `json:"dailyRate"`
	WeeklyRate decimal.Decimal `json:"weeklyRate"`
	StartDate  string          `json:"startDate"`
	Status     string          `json:"status"`
	Address    *string         `json:"address,omitempty"`
	ManagerID  *string         `json:"managerId,omitempty"`
	CreatedAt  string          `json:"createdAt"`
}
