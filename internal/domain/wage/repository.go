package wage

import "context"

// WageRepository is append-only: records are created and listed, never
// updated. managerID scoping follows the same convention as the other
// repositories (nil = admin, unscoped).
type WageRepository interface {
	Create(ctx context.Context, w WageRecord) (WageRecord, error)
	ListByEmployee(ctx context.Context, employeeID string, managerID *string) ([]WageRecord, error)
	List(ctx context.Context, managerID *string) ([]WageRecord, error)
}
