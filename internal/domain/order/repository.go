package order

import "context"

type OrderRepository interface {
	Create(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, id string, managerID *string) (Order, error)
	List(ctx context.Context, managerID *string) ([]Order, error)
	// Update persists the full merged row; the service owns the
	// fetch-merge-recompute cycle so totals can never go stale.
	Update(ctx context.Context, o Order, managerID *string) error
	Delete(ctx context.Context, id string, managerID *string) error
}
