package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"storecore/internal/core/apperror"
	"storecore/internal/domain/auth"
	"storecore/internal/domain/domaintest"
)

type userRepo struct {
	users map[string]*auth.User
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, apperror.NewNotFound("User", username)
	}
	return u, nil
}

type roleRepo struct {
	grants map[string]map[string]bool
}

func (r *roleRepo) RoleHasPermission(_ context.Context, roleName, permissionName string) (bool, error) {
	return r.grants[roleName][permissionName], nil
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func newAuthService(t *testing.T, users map[string]*auth.User) *auth.Service {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "storecore",
		TokenTTL: time.Hour,
	})
	return auth.NewService(&userRepo{users: users}, &domaintest.TxManager{}, jwtService)
}

func activeUser(t *testing.T, username, password, role string) *auth.User {
	t.Helper()
	return &auth.User{
		ID:           1,
		Username:     username,
		PasswordHash: hash(t, password),
		IsActive:     true,
		Role:         &auth.Role{ID: 1, Name: role},
	}
}

func requireInvalidCredential(t *testing.T, err error) {
	t.Helper()
	require.True(t, apperror.IsInvalidCredential(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "incorrect username or password", appErr.Message)
}

func TestAuthenticateIssuesBearerToken(t *testing.T) {
	svc := newAuthService(t, map[string]*auth.User{
		"admin": activeUser(t, "admin", "secret", "owner"),
	})

	token, err := svc.Authenticate(context.Background(), auth.Credentials{Username: "admin", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)
	assert.True(t, token.ExpiresAt.After(time.Now()))

	// The issued token resolves back to the same user.
	user, err := svc.Verify(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "owner", user.Role)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	svc := newAuthService(t, map[string]*auth.User{})

	_, err := svc.Authenticate(context.Background(), auth.Credentials{Username: "ghost", Password: "secret"})

	requireInvalidCredential(t, err)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc := newAuthService(t, map[string]*auth.User{
		"admin": activeUser(t, "admin", "secret", "owner"),
	})

	_, err := svc.Authenticate(context.Background(), auth.Credentials{Username: "admin", Password: "wrong"})

	requireInvalidCredential(t, err)
}

func TestAuthenticateInactiveUser(t *testing.T) {
	u := activeUser(t, "admin", "secret", "owner")
	u.IsActive = false
	svc := newAuthService(t, map[string]*auth.User{"admin": u})

	_, err := svc.Authenticate(context.Background(), auth.Credentials{Username: "admin", Password: "secret"})

	requireInvalidCredential(t, err)
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	svc := newAuthService(t, map[string]*auth.User{})

	_, err := svc.Verify(context.Background(), "not-a-token")

	requireInvalidCredential(t, err)
}

func TestVerifyRejectsVanishedUser(t *testing.T) {
	users := map[string]*auth.User{
		"admin": activeUser(t, "admin", "secret", "owner"),
	}
	svc := newAuthService(t, users)

	token, err := svc.Authenticate(context.Background(), auth.Credentials{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	delete(users, "admin")
	_, err = svc.Verify(context.Background(), token.AccessToken)

	requireInvalidCredential(t, err)
}

func TestVerifyRejectsDeactivatedUser(t *testing.T) {
	u := activeUser(t, "admin", "secret", "owner")
	svc := newAuthService(t, map[string]*auth.User{"admin": u})

	token, err := svc.Authenticate(context.Background(), auth.Credentials{Username: "admin", Password: "secret"})
	require.NoError(t, err)

	u.IsActive = false
	_, err = svc.Verify(context.Background(), token.AccessToken)

	requireInvalidCredential(t, err)
}

func TestAuthorizerRoleHasPermission(t *testing.T) {
	authorizer := auth.NewAuthorizer(&roleRepo{grants: map[string]map[string]bool{
		"owner": {"brand_permission": true},
	}}, &domaintest.TxManager{})

	allowed, err := authorizer.RoleHasPermission(context.Background(), "owner", "brand_permission")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = authorizer.RoleHasPermission(context.Background(), "owner", "product_permission")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Unknown role is false, not an error.
	allowed, err = authorizer.RoleHasPermission(context.Background(), "ghost", "brand_permission")
	require.NoError(t, err)
	assert.False(t, allowed)
}
