package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

func newAuthTestService(t *testing.T) (AuthService, UserService) {
	t.Helper()
	userRepo := repository.NewUserRepository(setupTestDB(t))
	return NewAuthService(userRepo, "test-secret", 24), NewUserService(userRepo)
}

func seedUser(t *testing.T, users UserService, username, password, role string, active bool) {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
		IsActive: active,
	}
	require.NoError(t, users.CreateUser(user, password))
}

func TestLoginIssuesValidToken(t *testing.T) {
	auth, users := newAuthTestService(t)
	seedUser(t, users, "ravi", "plots123", string(models.RoleAgent), true)

	token, user, err := auth.Login("ravi", "plots123")
	require.NoError(t, err)
	assert.Equal(t, "ravi", user.Username)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, string(models.RoleAgent), claims.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	auth, users := newAuthTestService(t)
	seedUser(t, users, "ravi", "plots123", string(models.RoleAgent), true)

	_, _, err := auth.Login("ravi", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = auth.Login("nobody", "plots123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	auth, users := newAuthTestService(t)
	seedUser(t, users, "gone", "plots123", string(models.RoleAgent), false)

	_, _, err := auth.Login("gone", "plots123")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

// A user created with the flag off must be stored inactive, not silently
// activated by a column default.
func TestInactiveFlagSurvivesCreate(t *testing.T) {
	_, users := newAuthTestService(t)
	seedUser(t, users, "dormant", "plots123", string(models.RoleAgent), false)

	stored, err := users.GetUserByUsername("dormant")
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestValidateTokenRejectsForgedSecret(t *testing.T) {
	auth, users := newAuthTestService(t)
	seedUser(t, users, "ravi", "plots123", string(models.RoleAgent), true)

	other := NewAuthService(nil, "other-secret", 24)

	token, _, err := auth.Login("ravi", "plots123")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	_, users := newAuthTestService(t)

	err := users.CreateUser(&models.User{Username: "x", Email: "x@example.com", Role: "superhero"}, "pw")
	assert.Error(t, err)
}
