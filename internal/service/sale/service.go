package sale

import (
	"context"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/sale"
	"github.com/addis-furniture/backoffice-go/internal/service/session"
	"github.com/shopspring/decimal"
)

type saleServiceImpl struct {
	saleRepo sale.SaleRepository
}

func NewSaleService(saleRepo sale.SaleRepository) sale.SaleService {
	return &saleServiceImpl{saleRepo: saleRepo}
}

func (s *saleServiceImpl) Create(ctx context.Context, req sale.CreateSaleRequest) (sale.SaleResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	status := req.Status
	if status == "" {
		status = "completed"
	}

	created, err := s.saleRepo.Create(ctx, sale.Sale{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Total:       finance.LineTotal(decimal.NewFromInt(int64(req.Quantity)), req.Price),
		Description: req.Description,
		Status:      status,
		Location:    req.Location,
		ManagerID:   claims.OwnerID(),
	})
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return toResponse(created), nil
}

func (s *saleServiceImpl) Get(ctx context.Context, id string) (sale.SaleResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	entity, err := s.saleRepo.GetByID(ctx, id, claims.OwnerID())
	if err != nil {
		return sale.SaleResponse{}, err
	}

	return toResponse(entity), nil
}

func (s *saleServiceImpl) List(ctx context.Context) ([]sale.SaleResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.List(ctx, claims.OwnerID())
	if err != nil {
		return nil, err
	}

	responses := make([]sale.SaleResponse, 0, len(sales))
	for _, entity := range sales {
		responses = append(responses, toResponse(entity))
	}

	return responses, nil
}

func (s *saleServiceImpl) Update(ctx context.Context, req sale.UpdateSaleRequest) (sale.SaleResponse, error) {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return sale.SaleResponse{}, err
	}

	if err := req.Validate(); err != nil {
		return sale.SaleResponse{}, err
	}

	entity, err := s.saleRepo.GetByID(ctx, req.ID, claims.OwnerID())
	if err != nil {
		return sale.SaleResponse{}, err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.Category != nil {
		entity.Category = *req.Category
	}
	if req.Price != nil {
		entity.Price = *req.Price
	}
	if req.Quantity != nil {
		entity.Quantity = *req.Quantity
	}
	if req.Description != nil {
		entity.Description = *req.Description
	}
	if req.Status != nil {
		entity.Status = *req.Status
	}
	if req.Location != nil {
		entity.Location = req.Location
	}

	entity.Total = finance.LineTotal(decimal.NewFromInt(int64(entity.Quantity)), entity.Price)

	if err := s.saleRepo.Update(ctx, entity, claims.OwnerID()); err != nil {
		return sale.SaleResponse{}, err
	}

	return toResponse(entity), nil
}

func (s *saleServiceImpl) Delete(ctx context.Context, id string) error {
	claims, err := session.FromContext(ctx)
	if err != nil {
		return err
	}

	return s.saleRepo.Delete(ctx, id, claims.OwnerID())
}

func toResponse(s sale.Sale) sale.SaleResponse {
	return sale.SaleResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Price:       s.Price,
		Quantity:    s.Quantity,
		Total:       s.Total,
		Description: s.Description,
		Status:      s.Status,
		Location:    s.Location,
		ManagerID:   s.ManagerID,
		CreatedAt:   s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
