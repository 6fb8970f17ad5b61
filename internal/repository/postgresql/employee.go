package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/addis-furniture/backoffice-go/internal/domain/employee"
	"github.com/addis-furniture/backoffice-go/internal/pkg/database"
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	query := `
		INSERT INTO employees (
			id, full_name, phone, role, department, salary_type,
			daily_rate, weekly_rate, start_date, status, address, manager_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, full_name, phone, role, department, salary_type,
			daily_rate, weekly_rate, start_date, status, address, manager_id,
			created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		e.ID, e.FullName, e.Phone, e.Role, e.Department, string(e.SalaryType),
		e.DailyRate, e.WeeklyRate, e.StartDate, string(e.Status), e.Address, e.ManagerID,
	).Scan(
		&created.ID, &created.FullName, &created.Phone, &created.Role, &created.Department, &created.SalaryType,
		&created.DailyRate, &created.WeeklyRate, &created.StartDate, &created.Status, &created.Address, &created.ManagerID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employees_manager") {
			return employee.Employee{}, employee.ErrManagerNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string, managerID *string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, phone, role, department, salary_type,
			daily_rate, weekly_rate, start_date, status, address, manager_id,
			created_at, updated_at
		FROM employees
		WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, managerID).Scan(
		&e.ID, &e.FullName, &e.Phone, &e.Role, &e.Department, &e.SalaryType,
		&e.DailyRate, &e.WeeklyRate, &e.StartDate, &e.Status, &e.Address, &e.ManagerID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, phone, role, department, salary_type,
			daily_rate, weekly_rate, start_date, status, address, manager_id,
			created_at, updated_at
		FROM employees
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.FullName, &e.Phone, &e.Role, &e.Department, &e.SalaryType,
			&e.DailyRate, &e.WeeklyRate, &e.StartDate, &e.Status, &e.Address, &e.ManagerID,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func (r *employeeRepository) Update(ctx context.Context, managerID *string, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, managerID}
	argIdx := 3

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.Phone != nil {
		setParts = append(setParts, fmt.Sprintf("phone = $%d", argIdx))
		args = append(args, *req.Phone)
		argIdx++
	}
	if req.Role != nil {
		setParts = append(setParts, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *req.Role)
		argIdx++
	}
	if req.Department != nil {
		setParts = append(setParts, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.SalaryType != nil {
		setParts = append(setParts, fmt.Sprintf("salary_type = $%d", argIdx))
		args = append(args, *req.SalaryType)
		argIdx++
	}
	if req.DailyRate != nil {
		setParts = append(setParts, fmt.Sprintf("daily_rate = $%d", argIdx))
		args = append(args, *req.DailyRate)
		argIdx++
	}
	if req.WeeklyRate != nil {
		setParts = append(setParts, fmt.Sprintf("weekly_rate = $%d", argIdx))
		args = append(args, *req.WeeklyRate)
		argIdx++
	}
	if req.StartDate != nil {
		startDate, _ := validator.IsValidDate(*req.StartDate)
		setParts = append(setParts, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, startDate)
		argIdx++
	}
	if req.Status != nil {
		setParts = append(setParts, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.Address != nil {
		setParts = append(setParts, fmt.Sprintf("address = $%d", argIdx))
		args = append(args, *req.Address)
		argIdx++
	}

	query := fmt.Sprintf(
		"UPDATE employees SET %s WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)",
		strings.Join(setParts, ", "),
	)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string, managerID *string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1 AND ($2::uuid IS NULL OR manager_id = $2)`

	tag, err := q.Exec(ctx, query, id, managerID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
