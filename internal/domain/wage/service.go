package wage

import "context"

type WageService interface {
	Create(ctx context.Context, req CreateWageRequest) (WageResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WageResponse, error)
}
