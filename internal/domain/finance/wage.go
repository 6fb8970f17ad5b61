package finance

import "github.com/shopspring/decimal"

type SalaryType string

const (
	SalaryTypeDaily  SalaryType = "daily"
	SalaryTypeWeekly SalaryType = "weekly"
)

// MaxWeekdays caps the number of weekdays that count toward a daily wage.
// Saturday is paid separately through the bonus.
const MaxWeekdays = 5

type WageInput struct {
	SalaryType     SalaryType
	DaysWorked     int
	DailyRate      decimal.Decimal
	WeeklyRate     decimal.Decimal
	SaturdayWorked bool
	SaturdayBonus  decimal.Decimal
	AdvancePaid    decimal.Decimal
}

type WageResult struct {
	Gross   decimal.Decimal
	Balance decimal.Decimal
	Status  PaymentStatus
}

// ComputeWage converts attendance and rate inputs into gross pay, the
// remaining balance and a payment status. Days worked beyond the weekday
// cap are silently truncated, never rejected. The balance is not clamped:
// an overpaid wage goes negative, unlike an expense balance.
func ComputeWage(in WageInput) WageResult {
	days := in.DaysWorked
	if days > MaxWeekdays {
		days = MaxWeekdays
	}
	if days < 0 {
		days = 0
	}

	var gross decimal.Decimal
	if in.SalaryType == SalaryTypeWeekly {
		gross = in.WeeklyRate
	} else {
		gross = in.DailyRate.Mul(decimal.NewFromInt(int64(days)))
	}
	if in.SaturdayWorked {
		gross = gross.Add(in.SaturdayBonus)
	}

	return WageResult{
		Gross:   gross,
		Balance: gross.Sub(in.AdvancePaid),
		Status:  PaymentStatusOf(in.AdvancePaid, gross),
	}
}
