package purchase

import "context"

type PurchaseRepository interface {
	Create(ctx context.Context, p Purchase) (Purchase, error)
	GetByID(ctx context.Context, id string, managerID *string) (Purchase, error)
	List(ctx context.Context, managerID *string) ([]Purchase, error)
	Update(ctx context.Context, p Purchase, managerID *string) error
	Delete(ctx context.Context, id string, managerID *string) error
}
