package http

import (
	"encoding/json"
	"net/http"

	"github.com/addis-furniture/backoffice-go/internal/domain/purchase"
	"github.com/addis-furniture/backoffice-go/internal/handler/http/response"
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type PurchaseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type purchaseHandlerImpl struct {
	purchaseService purchase.PurchaseService
}

func NewPurchaseHandler(purchaseService purchase.PurchaseService) PurchaseHandler {
	return &purchaseHandlerImpl{purchaseService: purchaseService}
}

func (h *purchaseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req purchase.CreatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.purchaseService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Purchase created", result)
}

func (h *purchaseHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid purchase ID", nil)
		return
	}

	result, err := h.purchaseService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *purchaseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.purchaseService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *purchaseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid purchase ID", nil)
		return
	}

	var req purchase.UpdatePurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.purchaseService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *purchaseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, "Invalid purchase ID", nil)
		return
	}

	if err := h.purchaseService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Purchase deleted", nil)
}
