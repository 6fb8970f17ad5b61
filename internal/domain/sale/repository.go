package sale

import "context"

type SaleRepository interface {
	Create(ctx context.Context, s Sale) (Sale, error)
	GetByID(ctx context.Context, id string, managerID *string) (Sale, error)
	List(ctx context.Context, managerID *string) ([]Sale, error)
	Update(ctx context.Context, s Sale, managerID *string) error
	Delete(ctx context.Context, id string, managerID *string) error
}
