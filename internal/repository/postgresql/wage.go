package postgresql

import (
	"context"
	"fmt"

	"github.com/addis-furniture/backoffice-go/internal/domain/wage"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
)

type wageRepository struct {
	db *database.DB
}

func NewWageRepository(db *database.DB) wage.WageRepository {
	return &wageRepository{db: db}
}

func (r *wageRepository) Create(ctx context.Context, w wage.WageRecord) (wage.WageRecord, error) {
	q := GetQuerier(ctx, r.db)

	if w.ID == "" {
		w.ID = uuid.New().String()
	}

	query := `
		INSERT INTO wage_records (
			id, employee_id, manager_id, salary_type, days_worked,
			daily_rate, weekly_rate, saturday_date, saturday_bonus,
			advance_paid, gross, balance, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, employee_id, manager_id, salary_type, days_worked,
			daily_rate, weekly_rate, saturday_date, saturday_bonus,
			advance_paid, gross, balance, status, created_at
	`

	var created wage.WageRecord
	err := q.QueryRow(ctx, query,
		w.ID, w.EmployeeID, w.ManagerID, string(w.SalaryType), w.DaysWorked,
		w.DailyRate, w.WeeklyRate, w.SaturdayDate, w.SaturdayBonus,
		w.AdvancePaid, w.Gross, w.Balance, string(w.Status),
	).Scan(
		&created.ID, &created.EmployeeID, &created.ManagerID, &created.SalaryType, &created.DaysWorked,
		&created.DailyRate, &created.WeeklyRate, &created.SaturdayDate, &created.SaturdayBonus,
		&created.AdvancePaid, &created.Gross, &created.Balance, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return wage.WageRecord{}, fmt.Errorf("failed to create wage record: %w", err)
	}

	return created, nil
}

func (r *wageRepository) ListByEmployee(ctx context.Context, employeeID string, managerID *string) ([]wage.WageRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, manager_id, salary_type, days_worked,
			daily_rate, weekly_rate, saturday_date, saturday_bonus,
			advance_paid, gross, balance, status, created_at
		FROM wage_records
		WHERE employee_id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage records: %w", err)
	}
	defer rows.Close()

	var records []wage.WageRecord
	for rows.Next() {
		var w wage.WageRecord
		if err := rows.Scan(
			&w.ID, &w.EmployeeID, &w.ManagerID, &w.SalaryType, &w.DaysWorked,
			&w.DailyRate, &w.WeeklyRate, &w.SaturdayDate, &w.SaturdayBonus,
			&w.AdvancePaid, &w.Gross, &w.Balance, &w.Status, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wage record: %w", err)
		}
		records = append(records, w)
	}

	return records, nil
}

func (r *wageRepository) List(ctx context.Context, managerID *string) ([]wage.WageRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, manager_id, salary_type, days_worked,
			daily_rate, weekly_rate, saturday_date, saturday_bonus,
			advance_paid, gross, balance, status, created_at
		FROM wage_records
		WHERE ($1::uuid IS NULL OR manager_id = $1)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wage records: %w", err)
	}
	defer rows.Close()

	var records []wage.WageRecord
	for rows.Next() {
		var w wage.WageRecord
		if err := rows.Scan(
			&w.ID, &w.EmployeeID, &w.ManagerID, &w.SalaryType, &w.DaysWorked,
			&w.DailyRate, &w.WeeklyRate, &w.SaturdayDate, &w.SaturdayBonus,
			&w.AdvancePaid, &w.Gross, &w.Balance, &w.Status, &w.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wage record: %w", err)
		}
		records = append(records, w)
	}

	return records, nil
}
