package employee

import "context"

// EmployeeRepository defines data access for employees. Mutating methods
// take an optional owning-manager id: nil means unscoped (admin), non-nil
// restricts the statement to rows owned by that manager.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, managerID *string) (Employee, error)
	// List is deliberately unscoped: the employee directory is shared
	// across managers.
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, managerID *string, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string, managerID *string) error
}
