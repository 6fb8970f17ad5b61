package purchase

import "context"

type PurchaseService interface {
	Create(ctx context.Context, req CreatePurchaseRequest) (PurchaseResponse, error)
	Get(ctx context.Context, id string) (PurchaseResponse, error)
	List(ctx context.Context) ([]PurchaseResponse, error)
	Update(ctx context.Context, req UpdatePurchaseRequest) (PurchaseResponse, error)
	Delete(ctx context.Context, id string) error
}
