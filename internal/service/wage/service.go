package wage

import (
	"context"
	"errors"

	"github.com/addis-furniture/backoffice-go/internal/domain/employee"
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/wage"
	"github.com/addis-furniture/backoffice-go/internal/service/session"
)

type wageServiceImpl struct {
	wageRepo     wage.WageRepository
	employeeRepo employee.EmployeeRepository
}

func NewWageService(wageRepo wage.WageRepository, employeeRepo employee.EmployeeRepository) wage.WageService {
	return &wageServiceImpl{
		wageRepo:     wageRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *wageServiceImpl) Create(ctx context.Context, req wage.CreateWageRequest) (wage.WageResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return wage.WageResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return wage.WageResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, claims.OwnerID()); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return wage.WageResponse{}, wage.ErrEmployeeNotFound
		}
		return wage.WageResponse{}, err
	}

	// Derived figures are always computed here. Whatever the client sent
	// for gross, balance or status is discarded.
	result := finance.ComputeWage(finance.WageInput{
		SalaryType:     finance.SalaryType(req.SalaryType),
		DaysWorked:     req.DaysWorked,
		DailyRate:      req.DailyRate,
		WeeklyRate:     req.WeeklyRate,
		SaturdayWorked: req.SaturdayDate != nil,
		SaturdayBonus:  req.SaturdayBonus,
		AdvancePaid:    req.AdvancePaid,
	})

	created, err := s.wageRepo.Create(ctx, wage.WageRecord{
		EmployeeID:    req.EmployeeID,
		ManagerID:     claims.OwnerID(),
		SalaryType:    finance.SalaryType(req.SalaryType),
		DaysWorked:    req.DaysWorked,
		DailyRate:     req.DailyRate,
		WeeklyRate:    req.WeeklyRate,
		SaturdayDate:  req.SaturdayDate,
		SaturdayBonus: req.SaturdayBonus,
		AdvancePaid:   req.AdvancePaid,
		Gross:         result.Gross,
		Balance:       result.Balance,
		Status:        result.Status,
	})
	if err != nil {
		return wage.WageResponse{}, err
	}

	return toResponse(created), nil
}

func (s *wageServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]wage.WageResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.wageRepo.ListByEmployee(ctx, employeeID, claims.OwnerID())
	if err != nil {
		return nil, err
	}

	responses := make([]wage.WageResponse, 0, len(records))
	for _, w := range records {
		responses = append(responses, toResponse(w))
	}

	return responses, nil
}

func toResponse(w wage.WageRecord) wage.WageResponse {
	return wage.WageResponse{
		ID:            w.ID,
		EmployeeID:    w.EmployeeID,
		SalaryType:    string(w.SalaryType),
		DaysWorked:    w.DaysWorked,
		DailyRate:     w.DailyRate,
		WeeklyRate:    w.WeeklyRate,
		SaturdayDate:  w.SaturdayDate,
		SaturdayBonus: w.SaturdayBonus,
		AdvancePaid:   w.AdvancePaid,
		Gross:         w.Gross,
		Balance:       w.Balance,
		Status:        string(w.Status),
		CreatedAt:     w.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
