package expense

import (
	"context"

	"github.com/addis-furniture/backoffice-go/internal/domain/expense"
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/service/session"
	"github.com/shopspring/decimal"
)

type expenseServiceImpl struct {
	expenseRepo expense.ExpenseRepository
}

func NewExpenseService(expenseRepo expense.ExpenseRepository) expense.ExpenseService {
	return &expenseServiceImpl{expenseRepo: expenseRepo}
}

func (s *expenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		Title:       req.Title,
		Category:    req.Category,
		Amount:      req.Amount,
		Paid:        req.Paid,
		Balance:     finance.ExpenseBalance(req.Amount, req.Paid),
		Status:      finance.PaymentStatusOf(req.Paid, req.Amount),
		Description: req.Description,
		Location:    req.Location,
		ManagerID:   claims.OwnerID(),
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toResponse(created), nil
}

func (s *expenseServiceImpl) Get(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	e, err := s.expenseRepo.GetByID(ctx, id, claims.OwnerID())
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toResponse(e), nil
}

func (s *expenseServiceImpl) List(ctx context.Context) ([]expense.ExpenseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.List(ctx, claims.OwnerID())
	if err != nil {
		return nil, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toResponse(e))
	}

	return responses, nil
}

// Update merges the patch, then rederives balance and status from the
// merged amount/paid pair. Stored derived fields never survive an edit.
func (s *expenseServiceImpl) Update(ctx context.Context, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	e, err := s.expenseRepo.GetByID(ctx, req.ID, claims.OwnerID())
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Category != nil {
		e.Category = *req.Category
	}
	if req.Amount != nil {
		e.Amount = *req.Amount
	}
	if req.Paid != nil {
		e.Paid = *req.Paid
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Location != nil {
		e.Location = req.Location
	}

	e.Balance = finance.ExpenseBalance(e.Amount, e.Paid)
	e.Status = finance.PaymentStatusOf(e.Paid, e.Amount)

	if err := s.expenseRepo.Update(ctx, e, claims.OwnerID()); err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toResponse(e), nil
}

func (s *expenseServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.expenseRepo.Delete(ctx, id, claims.OwnerID())
}

func (s *expenseServiceImpl) Summary(ctx context.Context) (expense.SummaryResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return expense.SummaryResponse{}, err
	}

	expenses, err := s.expenseRepo.List(ctx, claims.OwnerID())
	if err != nil {
		return expense.SummaryResponse{}, err
	}

	summary := expense.SummaryResponse{
		TotalAmount:  decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	for _, e := range expenses {
		summary.TotalAmount = summary.TotalAmount.Add(e.Amount)
		summary.TotalPaid = summary.TotalPaid.Add(e.Paid)
		summary.TotalBalance = summary.TotalBalance.Add(e.Balance)
		summary.Count++
	}

	return summary, nil
}

func toResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Category:    e.Category,
		Amount:      e.Amount,
		Paid:        e.Paid,
		Balance:     e.Balance,
		Status:      string(e.Status),
		Description: e.Description,
		Location:    e.Location,
		ManagerID:   e.ManagerID,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
