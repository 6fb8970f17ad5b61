package http

import (
	"net/http"

	"github.com/addis-furniture/backoffice-go/internal/domain/finance"
	"github.com/addis-furniture/backoffice-go/internal/domain/report"
	"github.com/addis-furniture/backoffice-go/internal/handler/http/response"
)

type ReportHandler interface {
	Orders(w http.ResponseWriter, r *http.Request)
	Sales(w http.ResponseWriter, r *http.Request)
	Purchases(w http.ResponseWriter, r *http.Request)
	Expenses(w http.ResponseWriter, r *http.Request)
	Wages(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// filterFromQuery reads the optional location, manager and category query
// parameters. Absent parameters leave the filter field inactive.
func filterFromQuery(r *http.Request) finance.Filter {
	q := r.URL.Query()
	return finance.Filter{
		Location:  q.Get("location"),
		ManagerID: q.Get("manager"),
		Category:  q.Get("category"),
	}
}

func (h *reportHandlerImpl) Orders(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Orders(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Sales(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Sales(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Purchases(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Purchases(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Expenses(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Expenses(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Wages(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Wages(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
