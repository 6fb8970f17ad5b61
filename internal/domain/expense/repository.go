package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, e Expense) (Expense, error)
	GetByID(ctx context.Context, id string, managerID *string) (Expense, error)
	List(ctx context.Context, managerID *string) ([]Expense, error)
	Update(ctx context.Context, e Expense, managerID *string) error
	Delete(ctx context.Context, id string, managerID *string) error
}
