package postgresql

import (
	"context"
	"fmt"

	"github.com/addis-furniture/backoffice-go/internal/domain/purchase"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type purchaseRepository struct {
	db *database.DB
}

func NewPurchaseRepository(db *database.DB) purchase.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, p purchase.Purchase) (purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	query := `
		INSERT INTO purchases (
			id, item, category, supplier, quantity, unit_price, total,
			status, notes, location, manager_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, item, category, supplier, quantity, unit_price, total,
			status, notes, location, manager_id, created_at, updated_at
	`

	var created purchase.Purchase
	err := q.QueryRow(ctx, query,
		p.ID, p.Item, p.Category, p.Supplier, p.Quantity, p.UnitPrice, p.Total,
		p.Status, p.Notes, p.Location, p.ManagerID,
	).Scan(
		&created.ID, &created.Item, &created.Category, &created.Supplier, &created.Quantity, &created.UnitPrice, &created.Total,
		&created.Status, &created.Notes, &created.Location, &created.ManagerID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return purchase.Purchase{}, fmt.Errorf("failed to create purchase: %w", err)
	}

	return created, nil
}

func (r *purchaseRepository) GetByID(ctx context.Context, id string, managerID *string) (purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, item, category, supplier, quantity, unit_price, total,
			status, notes, location, manager_id, created_at, updated_at
		FROM purchases
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	var p purchase.Purchase
	err := q.QueryRow(ctx, query, id, managerID).Scan(
		&p.ID, &p.Item, &p.Category, &p.Supplier, &p.Quantity, &p.UnitPrice, &p.Total,
		&p.Status, &p.Notes, &p.Location, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return purchase.Purchase{}, purchase.ErrPurchaseNotFound
		}
		return purchase.Purchase{}, fmt.Errorf("failed to get purchase: %w", err)
	}

	return p, nil
}

func (r *purchaseRepository) List(ctx context.Context, managerID *string) ([]purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, item, category, supplier, quantity, unit_price, total,
			status, notes, location, manager_id, created_at, updated_at
		FROM purchases
		WHERE ($1::uuid IS NULL OR manager_id = $1)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []purchase.Purchase
	for rows.Next() {
		var p purchase.Purchase
		if err := rows.Scan(
			&p.ID, &p.Item, &p.Category, &p.Supplier, &p.Quantity, &p.UnitPrice, &p.Total,
			&p.Status, &p.Notes, &p.Location, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}

	return purchases, nil
}

func (r *purchaseRepository) Update(ctx context.Context, p purchase.Purchase, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE purchases SET
			item = $3, category = $4, supplier = $5, quantity = $6,
			unit_price = $7, total = $8, status = $9, notes = $10,
			location = $11, updated_at = NOW()
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	tag, err := q.Exec(ctx, query,
		p.ID, managerID,
		p.Item, p.Category, p.Supplier, p.Quantity,
		p.UnitPrice, p.Total, p.Status, p.Notes,
		p.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return purchase.ErrPurchaseNotFound
	}

	return nil
}

func (r *purchaseRepository) Delete(ctx context.Context, id string, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM purchases WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)`

	tag, err := q.Exec(ctx, query, id, managerID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return purchase.ErrPurchaseNotFound
	}

	return nil
}
