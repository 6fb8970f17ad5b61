package purchase

import (
	"context"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/purchase"
	"github.com/addis-furniture/backoffice-go/internal/service/session"
	"github.com/shopspring/decimal"
)

type purchaseServiceImpl struct {
	purchaseRepo purchase.PurchaseRepository
}

func NewPurchaseService(purchaseRepo purchase.PurchaseRepository) purchase.PurchaseService {
	return &purchaseServiceImpl{purchaseRepo: purchaseRepo}
}

func (s *purchaseServiceImpl) Create(ctx context.Context, req purchase.CreatePurchaseRequest) (purchase.PurchaseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	created, err := s.purchaseRepo.Create(ctx, purchase.Purchase{
		Item:      req.Item,
		Category:  req.Category,
		Supplier:  req.Supplier,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
		Total:     finance.LineTotal(decimal.NewFromInt(int64(req.Quantity)), req.UnitPrice),
		Status:    status,
		Notes:     req.Notes,
		Location:  req.Location,
		ManagerID: claims.OwnerID(),
	})
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	return toResponse(created), nil
}

func (s *purchaseServiceImpl) Get(ctx context.Context, id string) (purchase.PurchaseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	p, err := s.purchaseRepo.GetByID(ctx, id, claims.OwnerID())
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	return toResponse(p), nil
}

func (s *purchaseServiceImpl) List(ctx context.Context) ([]purchase.PurchaseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.List(ctx, claims.OwnerID())
	if err != nil {
		return nil, err
	}

	responses := make([]purchase.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		responses = append(responses, toResponse(p))
	}

	return responses, nil
}

func (s *purchaseServiceImpl) Update(ctx context.Context, req purchase.UpdatePurchaseRequest) (purchase.PurchaseResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	p, err := s.purchaseRepo.GetByID(ctx, req.ID, claims.OwnerID())
	if err != nil {
		return purchase.PurchaseResponse{}, err
	}

	if req.Item != nil {
		p.Item = *req.Item
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Supplier != nil {
		p.Supplier = *req.Supplier
	}
	if req.Quantity != nil {
		p.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		p.UnitPrice = *req.UnitPrice
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	if req.Location != nil {
		p.Location = req.Location
	}

	p.Total = finance.LineTotal(decimal.NewFromInt(int64(p.Quantity)), p.UnitPrice)

	if err := s.purchaseRepo.Update(ctx, p, claims.OwnerID()); err != nil {
		return purchase.PurchaseResponse{}, err
	}

	return toResponse(p), nil
}

func (s *purchaseServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.purchaseRepo.Delete(ctx, id, claims.OwnerID())
}

func toResponse(p purchase.Purchase) purchase.PurchaseResponse {
	return purchase.PurchaseResponse{
		ID:        p.ID,
		Item:      p.Item,
		Category:  p.Category,
		Supplier:  p.Supplier,
		Quantity:  p.Quantity,
		UnitPrice: p.UnitPrice,
		Total:     p.Total,
		Status:    p.Status,
		Notes:     p.Notes,
		Location:  p.Location,
		ManagerID: p.ManagerID,
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
