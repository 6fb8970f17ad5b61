package postgresql

import (
	"context"
	"fmt"

	"github.com/addis-furniture/backoffice-go/internal/domain/expense"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO expenses (
			id, title, category, amount, paid, balance, status,
			description, location, manager_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, category, amount, paid, balance, status,
			description, location, manager_id, created_at, updated_at
	`

	var created expense.Expense
	err := q.QueryRow(ctx, query,
		e.ID, e.Title, e.Category, e.Amount, e.Paid, e.Balance, string(e.Status),
		e.Description, e.Location, e.ManagerID,
	).Scan(
		&created.ID, &created.Title, &created.Category, &created.Amount, &created.Paid, &created.Balance, &created.Status,
		&created.Description, &created.Location, &created.ManagerID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string, managerID *string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, category, amount, paid, balance, status,
			description, location, manager_id, created_at, updated_at
		FROM expenses
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	var e expense.Expense
	err := q.QueryRow(ctx, query, id, managerID).Scan(
		&e.ID, &e.Title, &e.Category, &e.Amount, &e.Paid, &e.Balance, &e.Status,
		&e.Description, &e.Location, &e.ManagerID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) List(ctx context.Context, managerID *string) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, category, amount, paid, balance, status,
			description, location, manager_id, created_at, updated_at
		FROM expenses
		WHERE ($1::uuid IS NULL OR manager_id = $1)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(
			&e.ID, &e.Title, &e.Category, &e.Amount, &e.Paid, &e.Balance, &e.Status,
			&e.Description, &e.Location, &e.ManagerID, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	return expenses, nil
}

func (r *expenseRepository) Update(ctx context.Context, e expense.Expense, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE expenses SET
			title = $3, category = $4, amount = $5, paid = $6, balance = $7,
			status = $8, description = $9, location = $10, updated_at = NOW()
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	tag, err := q.Exec(ctx, query,
		e.ID, managerID,
		e.Title, e.Category, e.Amount, e.Paid, e.Balance,
		string(e.Status), e.Description, e.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)`

	tag, err := q.Exec(ctx, query, id, managerID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}
