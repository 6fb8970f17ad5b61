package report

import (
	"context"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
)

// ReportService builds the admin rollup reports. Filters compose with AND
// semantics; an empty filter field is inactive.
type ReportService interface {
	Sales(ctx context.Context, filter finance.Filter) (Report, error)
	Orders(ctx context.Context, filter finance.Filter) (Report, error)
	Purchases(ctx context.Context, filter finance.Filter) (Report, error)
	Expenses(ctx context.Context, filter finance.Filter) (Report, error)
	Wages(ctx context.Context) (WageSummary, error)
}
