package report

import (
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/shopspring/decimal"
)

type LocationBucket struct {
	Location string          `json:"location"`
	Sum      decimal.Decimal `json:"sum"`
	Count    int             `json:"count"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ManagerBucket carries the display name joined from the user directory.
// When the directory has no entry for an id, ManagerName falls back to the
// raw id string; that is graceful degradation, not an error.
type ManagerBucket struct {
	ManagerID   string          `json:"managerId"`
	ManagerName string          `json:"managerName"`
	Sum         decimal.Decimal `json:"sum"`
	Count       int             `json:"count"`
	Quantity    decimal.Decimal `json:"quantity"`
}

type Report struct {
	Summary    finance.Summary  `json:"summary"`
	ByLocation []LocationBucket `json:"byLocation"`
	ByManager  []ManagerBucket  `json:"byManager"`
}

type WageSummary struct {
	TotalGross   decimal.Decimal `json:"totalGross"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	Count        int             `json:"count"`
}
