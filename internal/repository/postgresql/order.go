package postgresql

import (
	"context"
	"fmt"

	"github.com/addis-furniture/backoffice-go/internal/domain/order"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type orderRepository struct {
	db *database.DB
}

func NewOrderRepository(db *database.DB) order.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, o order.Order) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	query := `
		INSERT INTO orders (
			id, customer, item, category, quantity, unit_price, total,
			status, notes, phone, advance_paid, location, manager_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, customer, item, category, quantity, unit_price, total,
			status, notes, phone, advance_paid, location, manager_id,
			created_at, updated_at
	`

	var created order.Order
	err := q.QueryRow(ctx, query,
		o.ID, o.Customer, o.Item, o.Category, o.Quantity, o.UnitPrice, o.Total,
		o.Status, o.Notes, o.Phone, o.AdvancePaid, o.Location, o.ManagerID,
	).Scan(
		&created.ID, &created.Customer, &created.Item, &created.Category, &created.Quantity, &created.UnitPrice, &created.Total,
		&created.Status, &created.Notes, &created.Phone, &created.AdvancePaid, &created.Location, &created.ManagerID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string, managerID *string) (order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, customer, item, category, quantity, unit_price, total,
			status, notes, phone, advance_paid, location, manager_id,
			created_at, updated_at
		FROM orders
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	var o order.Order
	err := q.QueryRow(ctx, query, id, managerID).Scan(
		&o.ID, &o.Customer, &o.Item, &o.Category, &o.Quantity, &o.UnitPrice, &o.Total,
		&o.Status, &o.Notes, &o.Phone, &o.AdvancePaid, &o.Location, &o.ManagerID,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return order.Order{}, order.ErrOrderNotFound
		}
		return order.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	return o, nil
}

func (r *orderRepository) List(ctx context.Context, managerID *string) ([]order.Order, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, customer, item, category, quantity, unit_price, total,
			status, notes, phone, advance_paid, location, manager_id,
			created_at, updated_at
		FROM orders
		WHERE ($1::uuid IS NULL OR manager_id = $1)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(
			&o.ID, &o.Customer, &o.Item, &o.Category, &o.Quantity, &o.UnitPrice, &o.Total,
			&o.Status, &o.Notes, &o.Phone, &o.AdvancePaid, &o.Location, &o.ManagerID,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *orderRepository) Update(ctx context.Context, o order.Order, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE orders SET
			customer = $3, item = $4, category = $5, quantity = $6,
			unit_price = $7, total = $8, status = $9, notes = $10,
			phone = $11, advance_paid = $12, location = $13,
			updated_at = NOW()
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	tag, err := q.Exec(ctx, query,
		o.ID, managerID,
		o.Customer, o.Item, o.Category, o.Quantity,
		o.UnitPrice, o.Total, o.Status, o.Notes,
		o.Phone, o.AdvancePaid, o.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id string, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM orders WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)`

	tag, err := q.Exec(ctx, query, id, managerID)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}
