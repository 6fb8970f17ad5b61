package session

import (
	"context"
	"testing"

	"github.com/addis-furniture/backoffice-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithClaims(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestFromContext(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{
		"user_id":   "u-1",
		"email":     "meles@example.com",
		"role":      "manager",
		"locations": []string{"Bole", "Piassa"},
	})

	claims, err := FromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "meles@example.com", claims.Email)
	assert.Equal(t, user.RoleManager, claims.Role)
	assert.Equal(t, []string{"Bole", "Piassa"}, claims.Locations)
}

func TestFromContextMissingUserID(t *testing.T) {
	ctx := contextWithClaims(t, map[string]interface{}{"email": "x@example.com"})

	_, err := FromContext(ctx)
	assert.Error(t, err)
}

func TestFromContextNoToken(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.Error(t, err)
}

func TestOwnerID(t *testing.T) {
	admin := Claims{UserID: "a-1", Role: user.RoleAdmin}
	assert.Nil(t, admin.OwnerID())

	manager := Claims{UserID: "m-1", Role: user.RoleManager}
	owner := manager.OwnerID()
	require.NotNil(t, owner)
	assert.Equal(t, "m-1", *owner)
}

func TestAllowsLocation(t *testing.T) {
	bole := "Bole"
	piassa := "Piassa"

	admin := Claims{Role: user.RoleAdmin}
	manager := Claims{Role: user.RoleManager, Locations: []string{"Bole"}}

	assert.True(t, admin.AllowsLocation(&piassa))
	assert.True(t, manager.AllowsLocation(&bole))
	assert.False(t, manager.AllowsLocation(&piassa))
	assert.True(t, manager.AllowsLocation(nil))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, Claims{Role: user.RoleAdmin}.IsAdmin())
	assert.False(t, Claims{Role: user.RoleManager}.IsAdmin())
}
