package order

import (
	"context"
	"time"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/order"
	"github.com/addis-furniture/backoffice-go/internal/service/session"
	"github.com/shopspring/decimal"
)

type orderServiceImpl struct {
	orderRepo order.OrderRepository
}

func NewOrderService(orderRepo order.OrderRepository) order.OrderService {
	return &orderServiceImpl{orderRepo: orderRepo}
}

func (s *orderServiceImpl) Create(ctx context.Context, req order.CreateOrderRequest) (order.OrderResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return order.OrderResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}
	if !claims.AllowsLocation(req.Location) {
		return order.OrderResponse{}, order.ErrForbiddenLocation
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	created, err := s.orderRepo.Create(ctx, order.Order{
		Customer:    req.Customer,
		Item:        req.Item,
		Category:    req.Category,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Total:       finance.LineTotal(decimal.NewFromInt(int64(req.Quantity)), req.UnitPrice),
		Status:      status,
		Notes:       req.Notes,
		Phone:       req.Phone,
		AdvancePaid: req.AdvancePaid,
		Location:    req.Location,
		ManagerID:   claims.OwnerID(),
	})
	if err != nil {
		return order.OrderResponse{}, err
	}

	return toResponse(created), nil
}

func (s *orderServiceImpl) Get(ctx context.Context, id string) (order.OrderResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return order.OrderResponse{}, err
	}

	o, err := s.orderRepo.GetByID(ctx, id, claims.OwnerID())
	if err != nil {
		return order.OrderResponse{}, err
	}

	return toResponse(o), nil
}

func (s *orderServiceImpl) List(ctx context.Context) ([]order.OrderResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.List(ctx, claims.OwnerID())
	if err != nil {
		return nil, err
	}

	responses := make([]order.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toResponse(o))
	}

	return responses, nil
}

// Update merges the patch into the stored row and recomputes the total
// whenever quantity or unit price changed, so the persisted total can
// never drift from its factors.
func (s *orderServiceImpl) Update(ctx context.Context, req order.UpdateOrderRequest) (order.OrderResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return order.OrderResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return order.OrderResponse{}, err
	}

	o, err := s.orderRepo.GetByID(ctx, req.ID, claims.OwnerID())
	if err != nil {
		return order.OrderResponse{}, err
	}

	if req.Customer != nil {
		o.Customer = *req.Customer
	}
	if req.Item != nil {
		o.Item = *req.Item
	}
	if req.Category != nil {
		o.Category = *req.Category
	}
	if req.Quantity != nil {
		o.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		o.UnitPrice = *req.UnitPrice
	}
	if req.Status != nil {
		o.Status = *req.Status
	}
	if req.Notes != nil {
		o.Notes = *req.Notes
	}
	if req.Phone != nil {
		o.Phone = *req.Phone
	}
	if req.AdvancePaid != nil {
		o.AdvancePaid = *req.AdvancePaid
	}
	if req.Location != nil {
		if !claims.AllowsLocation(req.Location) {
			return order.OrderResponse{}, order.ErrForbiddenLocation
		}
		o.Location = req.Location
	}

	o.Total = finance.LineTotal(decimal.NewFromInt(int64(o.Quantity)), o.UnitPrice)

	if err := s.orderRepo.Update(ctx, o, claims.OwnerID()); err != nil {
		return order.OrderResponse{}, err
	}

	return toResponse(o), nil
}

func (s *orderServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.orderRepo.Delete(ctx, id, claims.OwnerID())
}

func (s *orderServiceImpl) Summary(ctx context.Context) (order.SummaryResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return order.SummaryResponse{}, err
	}

	orders, err := s.orderRepo.List(ctx, claims.OwnerID())
	if err != nil {
		return order.SummaryResponse{}, err
	}

	now := time.Now()
	weekAgo := now.AddDate(0, 0, -7)

	summary := order.SummaryResponse{
		TotalRevenue: decimal.Zero,
		TotalPaid:    decimal.Zero,
		TotalBalance: decimal.Zero,
	}
	for _, o := range orders {
		summary.TotalOrders++
		summary.TotalRevenue = summary.TotalRevenue.Add(o.Total)
		summary.TotalPaid = summary.TotalPaid.Add(o.AdvancePaid)
		if o.CreatedAt.After(weekAgo) {
			summary.WeeklyOrders++
		}
		if o.CreatedAt.Year() == now.Year() && o.CreatedAt.Month() == now.Month() {
			summary.MonthlyOrders++
		}
	}

	// Outstanding balance floors at zero: overpayment across the book does
	// not produce a negative receivable.
	balance := summary.TotalRevenue.Sub(summary.TotalPaid)
	if balance.IsPositive() {
		summary.TotalBalance = balance
	}

	return summary, nil
}

func toResponse(o order.Order) order.OrderResponse {
	return order.OrderResponse{
		ID:            o.ID,
		Customer:      o.Customer,
		Item:          o.Item,
		Category:      o.Category,
		Quantity:      o.Quantity,
		UnitPrice:     o.UnitPrice,
		Total:         o.Total,
		Status:        o.Status,
		Notes:         o.Notes,
		Phone:         o.Phone,
		AdvancePaid:   o.AdvancePaid,
		PaymentStatus: string(finance.PaymentStatusOf(o.AdvancePaid, o.Total)),
		Location:      o.Location,
		ManagerID:     o.ManagerID,
		CreatedAt:     o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
