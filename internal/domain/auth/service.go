package auth

import "context"

type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair.
	// The refresh token travels in an HttpOnly cookie, not the body.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, string, int64, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, string, int64, error)
	Logout(ctx context.Context, refreshToken string) error
}
