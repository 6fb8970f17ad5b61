package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/addis-furniture/backoffice-go/internal/domain/wage"
	"github.com/stretchr/testify/assert"
)

type stubWageService struct {
	gotEmployeeID string
}

func (s *stubWageService) Create(ctx context.Context, req wage.CreateWageRequest) (wage.WageResponse, error) {
	s.gotEmployeeID = req.EmployeeID
	return wage.WageResponse{}, nil
}

func (s *stubWageService) ListByEmployee(ctx context.Context, employeeID string) ([]wage.WageResponse, error) {
	s.gotEmployeeID = employeeID
	return nil, nil
}

func TestWageHandlerRejectsMalformedEmployeeID(t *testing.T) {
	svc := &stubWageService{}
	h := NewWageHandler(svc)

	rec := httptest.NewRecorder()
	h.ListByEmployee(rec, requestWithID(http.MethodGet, "/api/v1/employees/xyz/wages", "xyz"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.gotEmployeeID)
}

func TestWageHandlerListPassesValidEmployeeID(t *testing.T) {
	svc := &stubWageService{}
	h := NewWageHandler(svc)

	id := "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	rec := httptest.NewRecorder()
	h.ListByEmployee(rec, requestWithID(http.MethodGet, "/api/v1/employees/"+id+"/wages", id))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, svc.gotEmployeeID)
}
