package employee

import (
	"time"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FullName   string
	Phone      string
	Role       string
	Department string
	SalaryType finance.SalaryType
	DailyRate  decimal.Decimal
	WeeklyRate decimal.Decimal
	StartDate  time.Time
	Status     Status
	Address    *string
	// ManagerID is the owning manager; nil for records created by admins.
	ManagerID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)
