package postgresql

import (
	"context"
	"fmt"

	"github.com/addis-furniture/backoffice-go/internal/domain/sale"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type saleRepository struct {
	db *database.DB
}

func NewSaleRepository(db *database.DB) sale.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	query := `
		INSERT INTO sales (
			id, name, category, price, quantity, total,
			description, status, location, manager_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, name, category, price, quantity, total,
			description, status, location, manager_id, created_at, updated_at
	`

	var created sale.Sale
	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.Category, s.Price, s.Quantity, s.Total,
		s.Description, s.Status, s.Location, s.ManagerID,
	).Scan(
		&created.ID, &created.Name, &created.Category, &created.Price, &created.Quantity, &created.Total,
		&created.Description, &created.Status, &created.Location, &created.ManagerID, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return sale.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	return created, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id string, managerID *string) (sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, price, quantity, total,
			description, status, location, manager_id, created_at, updated_at
		FROM sales
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	var s sale.Sale
	err := q.QueryRow(ctx, query, id, managerID).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Total,
		&s.Description, &s.Status, &s.Location, &s.ManagerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return sale.Sale{}, sale.ErrSaleNotFound
		}
		return sale.Sale{}, fmt.Errorf("failed to get sale: %w", err)
	}

	return s, nil
}

func (r *saleRepository) List(ctx context.Context, managerID *string) ([]sale.Sale, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, category, price, quantity, total,
			description, status, location, manager_id, created_at, updated_at
		FROM sales
		WHERE ($1::uuid IS NULL OR manager_id = $1)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []sale.Sale
	for rows.Next() {
		var s sale.Sale
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.Total,
			&s.Description, &s.Status, &s.Location, &s.ManagerID, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		sales = append(sales, s)
	}

	return sales, nil
}

func (r *saleRepository) Update(ctx context.Context, s sale.Sale, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sales SET
			name = $3, category = $4, price = $5, quantity = $6, total = $7,
			description = $8, status = $9, location = $10, updated_at = NOW()
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	tag, err := q.Exec(ctx, query,
		s.ID, managerID,
		s.Name, s.Category, s.Price, s.Quantity, s.Total,
		s.Description, s.Status, s.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}

func (r *saleRepository) Delete(ctx context.Context, id string, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM sales WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)`

	tag, err := q.Exec(ctx, query, id, managerID)
	if err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return sale.ErrSaleNotFound
	}

	return nil
}
