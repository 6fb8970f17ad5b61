package order

import (
	"context"
	"testing"
	"time"

	"github.com/addis-furniture/backoffice-go/internal/domain/order"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedContext(t *testing.T, userID, role string, locations []string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	claims := map[string]interface{}{
		"user_id": userID,
		"email":   "test@example.com",
		"role":    role,
	}
	if locations != nil {
		claims["locations"] = locations
	}
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

type fakeOrderRepo struct {
	orders map[string]order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]order.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o order.Order) (order.Order, error) {
	o.ID = uuid.New().String()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string, managerID *string) (order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return order.Order{}, order.ErrOrderNotFound
	}
	if managerID != nil && (o.ManagerID == nil || *o.ManagerID != *managerID) {
		return order.Order{}, order.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) List(ctx context.Context, managerID *string) ([]order.Order, error) {
	var out []order.Order
	for _, o := range f.orders {
		if managerID != nil && (o.ManagerID == nil || *o.ManagerID != *managerID) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o order.Order, managerID *string) error {
	if _, ok := f.orders[o.ID]; !ok {
		return order.ErrOrderNotFound
	}
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string, managerID *string) error {
	if _, ok := f.orders[id]; !ok {
		return order.ErrOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCreateOrder_ComputesTotal(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())
	ctx := authedContext(t, uuid.New().String(), "admin", nil)

	resp, err := svc.Create(ctx, order.CreateOrderRequest{
		Customer:  "Hana",
		Item:      "Dining chair",
		Quantity:  3,
		UnitPrice: d("100"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(d("300")), "total = %s", resp.Total)
	assert.Equal(t, "No Paid", resp.PaymentStatus)
	assert.Equal(t, "pending", resp.Status)
}

func TestUpdateOrder_RecomputesTotalOnQuantityChange(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())
	ctx := authedContext(t, uuid.New().String(), "admin", nil)

	created, err := svc.Create(ctx, order.CreateOrderRequest{
		Customer:  "Hana",
		Item:      "Dining chair",
		Quantity:  3,
		UnitPrice: d("100"),
	})
	require.NoError(t, err)

	qty := 5
	updated, err := svc.Update(ctx, order.UpdateOrderRequest{
		ID:       created.ID,
		Quantity: &qty,
	})
	require.NoError(t, err)

	assert.True(t, updated.Total.Equal(d("500")), "total = %s", updated.Total)
}

func TestUpdateOrder_StaleClientTotalIsIgnored(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := authedContext(t, uuid.New().String(), "admin", nil)

	created, err := svc.Create(ctx, order.CreateOrderRequest{
		Customer:  "Hana",
		Item:      "Table",
		Quantity:  2,
		UnitPrice: d("250"),
	})
	require.NoError(t, err)

	// Touch an unrelated field; the total must still match its factors.
	notes := "deliver friday"
	updated, err := svc.Update(ctx, order.UpdateOrderRequest{
		ID:    created.ID,
		Notes: &notes,
	})
	require.NoError(t, err)

	assert.True(t, updated.Total.Equal(d("500")))
}

func TestCreateOrder_ManagerLocationRestriction(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo())
	ctx := authedContext(t, uuid.New().String(), "manager", []string{"Bole"})

	forbidden := "Piassa"
	_, err := svc.Create(ctx, order.CreateOrderRequest{
		Customer:  "Hana",
		Item:      "Sofa",
		Quantity:  1,
		UnitPrice: d("900"),
		Location:  &forbidden,
	})
	assert.ErrorIs(t, err, order.ErrForbiddenLocation)

	allowed := "Bole"
	resp, err := svc.Create(ctx, order.CreateOrderRequest{
		Customer:  "Hana",
		Item:      "Sofa",
		Quantity:  1,
		UnitPrice: d("900"),
		Location:  &allowed,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Location)
	assert.Equal(t, "Bole", *resp.Location)
}

func TestOrderSummary(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := authedContext(t, uuid.New().String(), "admin", nil)

	_, err := svc.Create(ctx, order.CreateOrderRequest{
		Customer: "A", Item: "Chair", Quantity: 3, UnitPrice: d("100"), AdvancePaid: d("50"),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, order.CreateOrderRequest{
		Customer: "B", Item: "Table", Quantity: 1, UnitPrice: d("400"), AdvancePaid: d("100"),
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalOrders)
	assert.True(t, summary.TotalRevenue.Equal(d("700")))
	assert.True(t, summary.TotalPaid.Equal(d("150")))
	assert.True(t, summary.TotalBalance.Equal(d("550")))
	assert.Equal(t, 2, summary.WeeklyOrders)
	assert.Equal(t, 2, summary.MonthlyOrders)
}

func TestOrderSummary_BalanceFloorsAtZero(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)
	ctx := authedContext(t, uuid.New().String(), "admin", nil)

	_, err := svc.Create(ctx, order.CreateOrderRequest{
		Customer: "A", Item: "Stool", Quantity: 1, UnitPrice: d("100"), AdvancePaid: d("250"),
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TotalBalance.IsZero(), "balance = %s", summary.TotalBalance)
}

func TestOrder_ManagerScope(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewOrderService(repo)

	m1 := uuid.New().String()
	m2 := uuid.New().String()

	_, err := svc.Create(authedContext(t, m1, "manager", nil), order.CreateOrderRequest{
		Customer: "A", Item: "Chair", Quantity: 1, UnitPrice: d("100"),
	})
	require.NoError(t, err)
	_, err = svc.Create(authedContext(t, m2, "manager", nil), order.CreateOrderRequest{
		Customer: "B", Item: "Table", Quantity: 1, UnitPrice: d("200"),
	})
	require.NoError(t, err)

	mine, err := svc.List(authedContext(t, m1, "manager", nil))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "A", mine[0].Customer)

	all, err := svc.List(authedContext(t, uuid.New().String(), "admin", nil))
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
