// Package session extracts the authenticated caller from request context.
// Every scoped service goes through it, so owner scoping has exactly one
// definition: admins see everything, managers see their own rows.
package session

import (
	"context"
	"fmt"

	"github.com/addis-furniture/backoffice-go/internal/domain/user"
	"github.com/addis-furniture/backoffice-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type Claims struct {
	UserID    string
	Email     string
	Role      user.Role
	Locations []string
}

// FromContext reads the verified JWT claims placed in the context by the
// auth middleware.
func FromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, fmt.Errorf("user_id not found in token")
	}

	c := Claims{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		c.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		c.Role = user.Role(role)
	}
	// A decoded wire token carries the list as []interface{}; a token built
	// in-process carries []string.
	switch raw := claims["locations"].(type) {
	case []string:
		c.Locations = raw
	case []interface{}:
		for _, v := range raw {
			if loc, ok := v.(string); ok {
				c.Locations = append(c.Locations, loc)
			}
		}
	}

	return c, nil
}

// OwnerID returns the scoping key for repository queries: nil for admins
// (unscoped), the caller's own id for managers.
func (c Claims) OwnerID() *string {
	if c.Role == user.RoleAdmin {
		return nil
	}
	id := c.UserID
	return &id
}

// AllowsLocation reports whether the caller may write records under the
// given location. Admins may use any location; managers are limited to
// their assigned list. A nil location is always allowed.
func (c Claims) AllowsLocation(location *string) bool {
	if c.Role == user.RoleAdmin || location == nil {
		return true
	}
	return validator.IsInSlice(*location, c.Locations)
}

func (c Claims) IsAdmin() bool {
	return c.Role == user.RoleAdmin
}
