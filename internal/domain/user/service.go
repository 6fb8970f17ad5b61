package user

import "context"

type UserService interface {
	// CreateManager registers a manager account. Admin only; enforced at
	// the router, re-checked against the caller's claims.
	CreateManager(ctx context.Context, req CreateManagerRequest) (UserResponse, error)
	// List returns the user directory reports join manager ids against.
	List(ctx context.Context) ([]UserResponse, error)
	GetProfile(ctx context.Context) (UserResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (UserResponse, error)
}
