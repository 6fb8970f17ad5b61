package report

import (
	"context"

	"github.com/addis-furniture/backoffice-go/internal/domain/expense"
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/order"
	"github.com/addis-furniture/backoffice-go/internal/domain/purchase"
	"github.com/addis-furniture/backoffice-go/internal/domain/report"
	"github.com/addis-furniture/backoffice-go/internal/domain/sale"
	"github.com/addis-furniture/backoffice-go/internal/domain/user"
	"github.com/addis-furniture/backoffice-go/internal/domain/wage"
	"github.com/shopspring/decimal"
)

// Reports are admin-only at the router, so every repository read here is
// unscoped.
type reportServiceImpl struct {
	orderRepo    order.OrderRepository
	saleRepo     sale.SaleRepository
	purchaseRepo purchase.PurchaseRepository
	expenseRepo  expense.ExpenseRepository
	wageRepo     wage.WageRepository
	userRepo     user.UserRepository
}

func NewReportService(
	orderRepo order.OrderRepository,
	saleRepo sale.SaleRepository,
	purchaseRepo purchase.PurchaseRepository,
	expenseRepo expense.ExpenseRepository,
	wageRepo wage.WageRepository,
	userRepo user.UserRepository,
) report.ReportService {
	return &reportServiceImpl{
		orderRepo:    orderRepo,
		saleRepo:     saleRepo,
		purchaseRepo: purchaseRepo,
		expenseRepo:  expenseRepo,
		wageRepo:     wageRepo,
		userRepo:     userRepo,
	}
}

func (s *reportServiceImpl) Orders(ctx context.Context, filter finance.Filter) (report.Report, error) {
	orders, err := s.orderRepo.List(ctx, nil)
	if err != nil {
		return report.Report{}, err
	}

	records := make([]finance.Record, 0, len(orders))
	for _, o := range orders {
		records = append(records, finance.Record{
			Location:  deref(o.Location),
			ManagerID: deref(o.ManagerID),
			Category:  o.Category,
			Total:     o.Total,
			Quantity:  decimal.NewFromInt(int64(o.Quantity)),
		})
	}

	return s.build(ctx, records, filter)
}

func (s *reportServiceImpl) Sales(ctx context.Context, filter finance.Filter) (report.Report, error) {
	sales, err := s.saleRepo.List(ctx, nil)
	if err != nil {
		return report.Report{}, err
	}

	records := make([]finance.Record, 0, len(sales))
	for _, entity := range sales {
		records = append(records, finance.Record{
			Location:  deref(entity.Location),
			ManagerID: deref(entity.ManagerID),
			Category:  entity.Category,
			Total:     entity.Total,
			Quantity:  decimal.NewFromInt(int64(entity.Quantity)),
		})
	}

	return s.build(ctx, records, filter)
}

func (s *reportServiceImpl) Purchases(ctx context.Context, filter finance.Filter) (report.Report, error) {
	purchases, err := s.purchaseRepo.List(ctx, nil)
	if err != nil {
		return report.Report{}, err
	}

	records := make([]finance.Record, 0, len(purchases))
	for _, p := range purchases {
		records = append(records, finance.Record{
			Location:  deref(p.Location),
			ManagerID: deref(p.ManagerID),
			Category:  p.Category,
			Total:     p.Total,
			Quantity:  decimal.NewFromInt(int64(p.Quantity)),
		})
	}

	return s.build(ctx, records, filter)
}

func (s *reportServiceImpl) Expenses(ctx context.Context, filter finance.Filter) (report.Report, error) {
	expenses, err := s.expenseRepo.List(ctx, nil)
	if err != nil {
		return report.Report{}, err
	}

	records := make([]finance.Record, 0, len(expenses))
	for _, e := range expenses {
		records = append(records, finance.Record{
			Location:  deref(e.Location),
			ManagerID: deref(e.ManagerID),
			Category:  e.Category,
			Total:     e.Amount,
			Quantity:  decimal.NewFromInt(1),
		})
	}

	return s.build(ctx, records, filter)
}

func (s *reportServiceImpl) Wages(ctx context.Context) (report.WageSummary, error) {
	records, err := s.wageRepo.List(ctx, nil)
	if err != nil {
		return report.WageSummary{}, err
	}

	summary := report.WageSummary{
		TotalGross:   decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	for _, w := range records {
		summary.TotalGross = summary.TotalGross.Add(w.Gross)
		summary.TotalBalance = summary.TotalBalance.Add(w.Balance)
		summary.Count++
	}

	return summary, nil
}

func (s *reportServiceImpl) build(ctx context.Context, records []finance.Record, filter finance.Filter) (report.Report, error) {
	rep := report.Report{
		Summary:    finance.Summarize(records, filter),
		ByLocation: []report.LocationBucket{},
		ByManager:  []report.ManagerBucket{},
	}

	for _, b := range finance.GroupByLocation(records, filter) {
		rep.ByLocation = append(rep.ByLocation, report.LocationBucket{
			Location: b.Key,
			Sum:      b.Sum,
			Count:    b.Count,
			Quantity: b.Quantity,
		})
	}

	names := s.managerNames(ctx)
	for _, b := range finance.GroupByManager(records, filter) {
		name := b.Key
		if n, ok := names[b.Key]; ok {
			name = n
		}
		rep.ByManager = append(rep.ByManager, report.ManagerBucket{
			ManagerID:   b.Key,
			ManagerName: name,
			Sum:         b.Sum,
			Count:       b.Count,
			Quantity:    b.Quantity,
		})
	}

	return rep, nil
}

// managerNames loads the user directory for the id-to-name join. A directory
// failure degrades to raw ids rather than failing the whole report.
func (s *reportServiceImpl) managerNames(ctx context.Context) map[string]string {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	return names
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
