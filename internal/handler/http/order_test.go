package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/addis-furniture/backoffice-go/internal/domain/order"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubOrderService struct {
	gotID string
}

func (s *stubOrderService) Create(ctx context.Context, req order.CreateOrderRequest) (order.OrderResponse, error) {
	return order.OrderResponse{}, nil
}

func (s *stubOrderService) Get(ctx context.Context, id string) (order.OrderResponse, error) {
	s.gotID = id
	return order.OrderResponse{ID: id}, nil
}

func (s *stubOrderService) List(ctx context.Context) ([]order.OrderResponse, error) {
	return nil, nil
}

func (s *stubOrderService) Update(ctx context.Context, req order.UpdateOrderRequest) (order.OrderResponse, error) {
	s.gotID = req.ID
	return order.OrderResponse{}, nil
}

func (s *stubOrderService) Delete(ctx context.Context, id string) error {
	s.gotID = id
	return nil
}

func (s *stubOrderService) Summary(ctx context.Context) (order.SummaryResponse, error) {
	return order.SummaryResponse{}, nil
}

func requestWithID(method, target, id string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Malformed ids never reach the service; they are rejected at the handler
// before any repository query can see them.
func TestOrderHandlerRejectsMalformedID(t *testing.T) {
	cases := []struct {
		name string
		call func(h OrderHandler, w http.ResponseWriter, r *http.Request)
	}{
		{"get", func(h OrderHandler, w http.ResponseWriter, r *http.Request) { h.Get(w, r) }},
		{"update", func(h OrderHandler, w http.ResponseWriter, r *http.Request) { h.Update(w, r) }},
		{"delete", func(h OrderHandler, w http.ResponseWriter, r *http.Request) { h.Delete(w, r) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			svc := &stubOrderService{}
			h := NewOrderHandler(svc)

			rec := httptest.NewRecorder()
			c.call(h, rec, requestWithID(http.MethodGet, "/api/v1/orders/not-a-uuid", "not-a-uuid"))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, svc.gotID)
		})
	}
}

func TestOrderHandlerGetPassesValidID(t *testing.T) {
	svc := &stubOrderService{}
	h := NewOrderHandler(svc)

	id := "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	rec := httptest.NewRecorder()
	h.Get(rec, requestWithID(http.MethodGet, "/api/v1/orders/"+id, id))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.gotID)
}
