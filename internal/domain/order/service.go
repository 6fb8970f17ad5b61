package order

import "context"

type OrderService interface {
	Create(ctx context.Context, req CreateOrderRequest) (OrderResponse, error)
	Get(ctx context.Context, id string) (OrderResponse, error)
	List(ctx context.Context) ([]OrderResponse, error)
	Update(ctx context.Context, req UpdateOrderRequest) (OrderResponse, error)
	Delete(ctx context.Context, id string) error
	// Summary backs the manager dashboard cards.
	Summary(ctx context.Context) (SummaryResponse, error)
}
