package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"storecore/internal/core/apperror"
	"storecore/internal/core/appctx"
	"storecore/internal/core/tx"
	"storecore/pkg/logger"
)

// invalidCredentialMessage is deliberately identical for every failure
// mode of Authenticate and Verify so the response never reveals whether
// the username exists, the password was wrong or the account is disabled.
const invalidCredentialMessage = "incorrect username or password"

// Service provides authentication logic.
type Service struct {
	users UserRepository
	txm   tx.Manager
	jwt   *JWTService
}

// NewService creates a new auth service.
func NewService(users UserRepository, txm tx.Manager, jwt *JWTService) *Service {
	return &Service{users: users, txm: txm, jwt: jwt}
}

func invalidCredential() error {
	return apperror.NewInvalidCredential(invalidCredentialMessage)
}

// Authenticate verifies the credentials and issues an access token.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (*Token, error) {
	var user *User
	err := s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		u, err := s.users.FindByUsername(ctx, creds.Username)
		if err != nil {
			if apperror.IsNotFound(err) {
				return invalidCredential()
			}
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !user.IsActive {
		return nil, invalidCredential()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, invalidCredential()
	}

	tokenString, expiresAt, err := s.jwt.Issue(user.Username, user.RoleName())
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	logger.Info(ctx, "user logged in", "username", user.Username)

	return &Token{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify validates an access token and resolves its user. Any failure,
// whether a bad token, a vanished user or a disabled account, collapses to
// the same InvalidCredential error.
func (s *Service) Verify(ctx context.Context, tokenString string) (appctx.UserContext, error) {
	claims, err := s.jwt.Parse(tokenString)
	if err != nil {
		return appctx.UserContext{}, invalidCredential()
	}
	if claims.Subject == "" {
		return appctx.UserContext{}, invalidCredential()
	}

	var user *User
	err = s.txm.ReadOnly(ctx, func(ctx context.Context) error {
		u, err := s.users.FindByUsername(ctx, claims.Subject)
		if err != nil {
			if apperror.IsNotFound(err) {
				return invalidCredential()
			}
			return err
		}
		user = u
		return nil
	})
	if err != nil {
		return appctx.UserContext{}, err
	}
	if !user.IsActive {
		return appctx.UserContext{}, invalidCredential()
	}

	return appctx.UserContext{
		Username: user.Username,
		Role:     user.RoleName(),
	}, nil
}

// Authorizer answers role→permission questions for the HTTP layer.
type Authorizer struct {
	roles RoleRepository
	txm   tx.Manager
}

// NewAuthorizer creates a new authorizer.
func NewAuthorizer(roles RoleRepository, txm tx.Manager) *Authorizer {
	return &Authorizer{roles: roles, txm: txm}
}

// RoleHasPermission reports whether roleName carries permissionName.
// Unknown names are false, never an error.
func (a *Authorizer) RoleHasPermission(ctx context.Context, roleName, permissionName string) (bool, error) {
	var allowed bool
	err := a.txm.ReadOnly(ctx, func(ctx context.Context) error {
		ok, err := a.roles.RoleHasPermission(ctx, roleName, permissionName)
		if err != nil {
			return err
		}
		allowed = ok
		return nil
	})
	if err != nil {
		return false, err
	}
	return allowed, nil
}
