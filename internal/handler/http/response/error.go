package response

import (
	"errors"
	"net/http"

	"github.com/addis-furniture/backoffice-go/internal/domain/auth"
	"github.com/addis-furniture/backoffice-go/internal/domain/employee"
	"github.com/addis-furniture/backoffice-go/internal/domain/expense"
	"github.com/addis-furniture/backoffice-go/internal/domain/order"
	"github.com/addis-furniture/backoffice-go/internal/domain/purchase"
	"github.com/addis-furniture/backoffice-go/internal/domain/sale"
	"github.com/addis-furniture/backoffice-go/internal/domain/user"
	"github.com/addis-furniture/backoffice-go/internal/domain/wage"
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")

	// Wage domain errors
	case errors.Is(err, wage.ErrWageRecordNotFound):
		NotFound(w, "Wage record not found")
	case errors.Is(err, wage.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Transaction domain errors
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, order.ErrForbiddenLocation):
		Forbidden(w, "Location not assigned to this manager")
	case errors.Is(err, sale.ErrSaleNotFound):
		NotFound(w, "Sale not found")
	case errors.Is(err, purchase.ErrPurchaseNotFound):
		NotFound(w, "Purchase not found")
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
