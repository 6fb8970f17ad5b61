package employee

import (
	"context"

	"github.com/addis-furniture/backoffice-go/internal/domain/employee"
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/addis-furniture/backoffice-go/internal/service/session"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Role:       req.Role,
		Department: req.Department,
		SalaryType: finance.SalaryType(req.SalaryType),
		DailyRate:  req.DailyRate,
		WeeklyRate: req.WeeklyRate,
		StartDate:  startDate,
		Status:     status,
		Address:    req.Address,
		ManagerID:  claims.OwnerID(),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id, claims.OwnerID())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(e), nil
}

// List is unscoped: the employee directory is shared across the business,
// regardless of which manager registered each person.
func (s *employeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}

	return responses, nil
}

func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, claims.OwnerID(), req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.ID, claims.OwnerID())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(e), nil
}

func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.employeeRepo.Delete(ctx, id, claims.OwnerID())
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		FullName:   e.FullName,
		Phone:      e.Phone,
		Role:       e.Role,
		Department: e.Department,
		SalaryType: string(e.SalaryType),
		DailyRate:  e.DailyRate,
		WeeklyRate: e.WeeklyRate,
		StartDate:  e.StartDate.Format("2006-01-02"),
		Status:     string(e.Status),
		Address:    e.Address,
		ManagerID:  e.ManagerID,
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
