package expense

import (
	"context"
	"testing"

	"github.com/addis-furniture/backoffice-go/internal/domain/expense"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext(t *testing.T, userID, role string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"email":   "test@example.com",
		"role":    role,
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeExpenseRepo struct {
	expenses map[string]expense.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]expense.Expense)}
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e expense.Expense) (expense.Expense, error) {
	e.ID = uuid.New().String()
	f.expenses[e.ID] = e
	return e, nil
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, id string, managerID *string) (expense.Expense, error) {
	e, ok := f.expenses[id]
	if !ok {
		return expense.Expense{}, expense.ErrExpenseNotFound
	}
	if managerID != nil && (e.ManagerID == nil || *e.ManagerID != *managerID) {
		return expense.Expense{}, expense.ErrExpenseNotFound
	}
	return e, nil
}

func (f *fakeExpenseRepo) List(ctx context.Context, managerID *string) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range f.expenses {
		if managerID != nil && (e.ManagerID == nil || *e.ManagerID != *managerID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, e expense.Expense, managerID *string) error {
	if _, ok := f.expenses[e.ID]; !ok {
		return expense.ErrExpenseNotFound
	}
	f.expenses[e.ID] = e
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id string, managerID *string) error {
	if _, ok := f.expenses[id]; !ok {
		return expense.ErrExpenseNotFound
	}
	delete(f.expenses, id)
	return nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateExpense_DerivesBalanceAndStatus(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo())
	ctx := authedContext(t, uuid.New().String(), "admin")

	resp, err := svc.Create(ctx, expense.CreateExpenseRequest{
		Title:  "Timber delivery",
		Amount: d("300"),
		Paid:   d("100"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Balance.Equal(d("200")), "balance = %s", resp.Balance)
	assert.Equal(t, "Partial Paid", resp.Status)
}

func TestCreateExpense_OverpaymentClampsToZero(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo())
	ctx := authedContext(t, uuid.New().String(), "admin")

	resp, err := svc.Create(ctx, expense.CreateExpenseRequest{
		Title:  "Varnish",
		Amount: d("100"),
		Paid:   d("150"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Balance.IsZero(), "balance = %s", resp.Balance)
	assert.Equal(t, "Full Paid", resp.Status)
}

func TestCreateExpense_ExactPaymentIsFullPaid(t *testing.T) {
	svc := NewExpenseService(newFakeExpenseRepo())
	ctx := authedContext(t, uuid.New().String(), "admin")

	resp, err := svc.Create(ctx, expense.CreateExpenseRequest{
		Title:  "Glue",
		Amount: d("300"),
		Paid:   d("300"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Balance.IsZero())
	assert.Equal(t, "Full Paid", resp.Status)
}

func TestUpdateExpense_RecomputesDerivedFields(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)
	ctx := authedContext(t, uuid.New().String(), "admin")

	created, err := svc.Create(ctx, expense.CreateExpenseRequest{
		Title:  "Workshop rent",
		Amount: d("500"),
		Paid:   d("0"),
	})
	require.NoError(t, err)
	assert.Equal(t, "No Paid", created.Status)

	paid := d("500")
	updated, err := svc.Update(ctx, expense.UpdateExpenseRequest{
		ID:   created.ID,
		Paid: &paid,
	})
	require.NoError(t, err)

	assert.True(t, updated.Balance.IsZero())
	assert.Equal(t, "Full Paid", updated.Status)
}

func TestExpenseSummary(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)
	ctx := authedContext(t, uuid.New().String(), "admin")

	_, err := svc.Create(ctx, expense.CreateExpenseRequest{Title: "A", Amount: d("300"), Paid: d("100")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, expense.CreateExpenseRequest{Title: "B", Amount: d("200"), Paid: d("200")})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Count)
	assert.True(t, summary.TotalAmount.Equal(d("500")))
	assert.True(t, summary.TotalPaid.Equal(d("300")))
	assert.True(t, summary.TotalBalance.Equal(d("200")))
}

func TestExpense_ManagerCannotSeeOthers(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	adminCtx := authedContext(t, uuid.New().String(), "admin")
	created, err := svc.Create(adminCtx, expense.CreateExpenseRequest{
		Title:  "Admin expense",
		Amount: d("100"),
	})
	require.NoError(t, err)

	managerCtx := authedContext(t, uuid.New().String(), "manager")
	_, err = svc.Get(managerCtx, created.ID)
	assert.ErrorIs(t, err, expense.ErrExpenseNotFound)
}
