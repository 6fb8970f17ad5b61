package report

import (
	"context"
	"testing"

	"github.com/addis-furniture/backoffice-go/internal/domain/expense"
	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/order"
	"github.com/addis-furniture/backoffice-go/internal/domain/purchase"
	"github.com/addis-furniture/backoffice-go/internal/domain/sale"
	"github.com/addis-furniture/backoffice-go/internal/domain/user"
	"github.com/addis-furniture/backoffice-go/internal/domain/wage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSaleRepo struct{ sales []sale.Sale }

func (f *fakeSaleRepo) Create(ctx context.Context, s sale.Sale) (sale.Sale, error) { return s, nil }
func (f *fakeSaleRepo) GetByID(ctx context.Context, id string, managerID *string) (sale.Sale, error) {
	return sale.Sale{}, sale.ErrSaleNotFound
}
func (f *fakeSaleRepo) List(ctx context.Context, managerID *string) ([]sale.Sale, error) {
	return f.sales, nil
}
func (f *fakeSaleRepo) Update(ctx context.Context, s sale.Sale, managerID *string) error { return nil }
func (f *fakeSaleRepo) Delete(ctx context.Context, id string, managerID *string) error   { return nil }

type fakeOrderRepo struct{ orders []order.Order }

func (f *fakeOrderRepo) Create(ctx context.Context, o order.Order) (order.Order, error) {
	return o, nil
}
func (f *fakeOrderRepo) GetByID(ctx context.Context, id string, managerID *string) (order.Order, error) {
	return order.Order{}, order.ErrOrderNotFound
}
func (f *fakeOrderRepo) List(ctx context.Context, managerID *string) ([]order.Order, error) {
	return f.orders, nil
}
func (f *fakeOrderRepo) Update(ctx context.Context, o order.Order, managerID *string) error {
	return nil
}
func (f *fakeOrderRepo) Delete(ctx context.Context, id string, managerID *string) error { return nil }

type fakePurchaseRepo struct{}

func (f *fakePurchaseRepo) Create(ctx context.Context, p purchase.Purchase) (purchase.Purchase, error) {
	return p, nil
}
func (f *fakePurchaseRepo) GetByID(ctx context.Context, id string, managerID *string) (purchase.Purchase, error) {
	return purchase.Purchase{}, purchase.ErrPurchaseNotFound
}
func (f *fakePurchaseRepo) List(ctx context.Context, managerID *string) ([]purchase.Purchase, error) {
	return nil, nil
}
func (f *fakePurchaseRepo) Update(ctx context.Context, p purchase.Purchase, managerID *string) error {
	return nil
}
func (f *fakePurchaseRepo) Delete(ctx context.Context, id string, managerID *string) error {
	return nil
}

type fakeExpenseRepo struct{ expenses []expense.Expense }

func (f *fakeExpenseRepo) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	return e, nil
}
func (f *fakeExpenseRepo) GetByID(ctx context.Context, id string, managerID *string) (expense.Expense, error) {
	return expense.Expense{}, expense.ErrExpenseNotFound
}
func (f *fakeExpenseRepo) List(ctx context.Context, managerID *string) ([]expense.Expense, error) {
	return f.expenses, nil
}
func (f *fakeExpenseRepo) Update(ctx context.Context, e expense.Expense, managerID *string) error {
	return nil
}
func (f *fakeExpenseRepo) Delete(ctx context.Context, id string, managerID *string) error {
	return nil
}

type fakeWageRepo struct{ records []wage.WageRecord }

func (f *fakeWageRepo) Create(ctx context.Context, w wage.WageRecord) (wage.WageRecord, error) {
	return w, nil
}
func (f *fakeWageRepo) ListByEmployee(ctx context.Context, employeeID string, managerID *string) ([]wage.WageRecord, error) {
	return nil, nil
}
func (f *fakeWageRepo) List(ctx context.Context, managerID *string) ([]wage.WageRecord, error) {
	return f.records, nil
}

type fakeUserRepo struct{ users []user.User }

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return f.users, nil }
func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id string, req user.UpdateProfileRequest) error {
	return nil
}
func (f *fakeUserRepo) Exists(ctx context.Context, id string) (bool, error) { return false, nil }

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func newService(saleRepo *fakeSaleRepo, orderRepo *fakeOrderRepo, expenseRepo *fakeExpenseRepo, wageRepo *fakeWageRepo, userRepo *fakeUserRepo) *reportServiceImpl {
	return NewReportService(orderRepo, saleRepo, &fakePurchaseRepo{}, expenseRepo, wageRepo, userRepo).(*reportServiceImpl)
}

func TestSalesReport_GroupsAndJoinsManagerNames(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []sale.Sale{
		{Location: strPtr("Bole"), ManagerID: strPtr("m1"), Category: "chairs", Total: d("10"), Quantity: 1},
		{Location: strPtr("Bole"), ManagerID: strPtr("m2"), Category: "tables", Total: d("5"), Quantity: 2},
		{Location: strPtr("Piassa"), ManagerID: strPtr("m1"), Category: "chairs", Total: d("7"), Quantity: 3},
	}}
	userRepo := &fakeUserRepo{users: []user.User{
		{ID: "m1", Name: "Meles"},
	}}
	svc := newService(saleRepo, &fakeOrderRepo{}, &fakeExpenseRepo{}, &fakeWageRepo{}, userRepo)

	rep, err := svc.Sales(context.Background(), finance.Filter{})
	require.NoError(t, err)

	assert.True(t, rep.Summary.Sum.Equal(d("22")))
	assert.Equal(t, 3, rep.Summary.Count)
	assert.True(t, rep.Summary.Quantity.Equal(d("6")))

	// First-seen order: Bole then Piassa.
	require.Len(t, rep.ByLocation, 2)
	assert.Equal(t, "Bole", rep.ByLocation[0].Location)
	assert.True(t, rep.ByLocation[0].Sum.Equal(d("15")))
	assert.Equal(t, 2, rep.ByLocation[0].Count)
	assert.Equal(t, "Piassa", rep.ByLocation[1].Location)
	assert.True(t, rep.ByLocation[1].Sum.Equal(d("7")))

	require.Len(t, rep.ByManager, 2)
	assert.Equal(t, "m1", rep.ByManager[0].ManagerID)
	assert.Equal(t, "Meles", rep.ByManager[0].ManagerName)
	assert.True(t, rep.ByManager[0].Sum.Equal(d("17")))
	// m2 has no directory entry, so the raw id stands in for the name.
	assert.Equal(t, "m2", rep.ByManager[1].ManagerID)
	assert.Equal(t, "m2", rep.ByManager[1].ManagerName)
}

func TestSalesReport_SentinelsForMissingKeys(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []sale.Sale{
		{Category: "misc", Total: d("9"), Quantity: 1},
	}}
	svc := newService(saleRepo, &fakeOrderRepo{}, &fakeExpenseRepo{}, &fakeWageRepo{}, &fakeUserRepo{})

	rep, err := svc.Sales(context.Background(), finance.Filter{})
	require.NoError(t, err)

	require.Len(t, rep.ByLocation, 1)
	assert.Equal(t, finance.UnknownLocation, rep.ByLocation[0].Location)
	require.Len(t, rep.ByManager, 1)
	assert.Equal(t, finance.UnassignedManager, rep.ByManager[0].ManagerID)
	assert.Equal(t, finance.UnassignedManager, rep.ByManager[0].ManagerName)
}

func TestSalesReport_FiltersCompose(t *testing.T) {
	saleRepo := &fakeSaleRepo{sales: []sale.Sale{
		{Location: strPtr("Bole"), ManagerID: strPtr("m1"), Category: "chairs", Total: d("10"), Quantity: 1},
		{Location: strPtr("Bole"), ManagerID: strPtr("m2"), Category: "tables", Total: d("5"), Quantity: 2},
		{Location: strPtr("Piassa"), ManagerID: strPtr("m1"), Category: "chairs", Total: d("7"), Quantity: 3},
	}}
	svc := newService(saleRepo, &fakeOrderRepo{}, &fakeExpenseRepo{}, &fakeWageRepo{}, &fakeUserRepo{})

	rep, err := svc.Sales(context.Background(), finance.Filter{Location: "Bole", ManagerID: "m1"})
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Summary.Count)
	assert.True(t, rep.Summary.Sum.Equal(d("10")))
}

func TestExpensesReport_UsesAmountWithUnitQuantity(t *testing.T) {
	expenseRepo := &fakeExpenseRepo{expenses: []expense.Expense{
		{Amount: d("300"), Category: "materials"},
		{Amount: d("200"), Category: "rent"},
	}}
	svc := newService(&fakeSaleRepo{}, &fakeOrderRepo{}, expenseRepo, &fakeWageRepo{}, &fakeUserRepo{})

	rep, err := svc.Expenses(context.Background(), finance.Filter{})
	require.NoError(t, err)

	assert.True(t, rep.Summary.Sum.Equal(d("500")))
	assert.Equal(t, 2, rep.Summary.Count)
	assert.True(t, rep.Summary.Quantity.Equal(d("2")))
}

func TestWageSummaryReport(t *testing.T) {
	wageRepo := &fakeWageRepo{records: []wage.WageRecord{
		{Gross: d("1050"), Balance: d("450")},
		{Gross: d("900"), Balance: d("900")},
	}}
	svc := newService(&fakeSaleRepo{}, &fakeOrderRepo{}, &fakeExpenseRepo{}, wageRepo, &fakeUserRepo{})

	summary, err := svc.Wages(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.TotalGross.Equal(d("1950")))
	assert.True(t, summary.TotalBalance.Equal(d("1350")))
}
