package expense

import "context"

type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	Get(ctx context.Context, id string) (ExpenseResponse, error)
	List(ctx context.Context) ([]ExpenseResponse, error)
	Update(ctx context.Context, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (SummaryResponse, error)
}
