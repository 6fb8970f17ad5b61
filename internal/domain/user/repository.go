package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// GetByEmail matches case-insensitively; emails are unique per the
	// citext-style lowered index.
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) error
	// Exists reports whether a user id refers to a live row. Used to
	// validate owning-manager references at the storage boundary.
	Exists(ctx context.Context, id string) (bool, error)
}
