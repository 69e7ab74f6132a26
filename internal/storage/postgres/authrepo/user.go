// Package authrepo provides PostgreSQL implementations for user and role
// repositories.
package authrepo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storecore/internal/core/apperror"
	"storecore/internal/domain/auth"
	"storecore/internal/storage/postgres"
)

const (
	userTable      = "users"
	roleTable      = "roles"
	userRolesTable = "users_roles"
)

// UserRepo implements auth.UserRepository.
type UserRepo struct {
	txm *postgres.TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *postgres.TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// FindByUsername retrieves a live user by username with the role loaded.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	q := r.builder().
		Select("id", "username", "email", "first_name", "last_name", "phone",
			"password_hash", "is_active", "created_at", "updated_at", "deleted_at").
		From(userTable).
		Where(squirrel.Eq{"username": username, "deleted_at": nil}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)

	var user auth.User
	if err := pgxscan.Get(ctx, querier, &user, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("User", username)
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	role, err := r.loadRole(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Role = role

	return &user, nil
}

// loadRole retrieves the user's single role, nil when none is assigned.
func (r *UserRepo) loadRole(ctx context.Context, userID int64) (*auth.Role, error) {
	q := r.builder().
		Select("r.id", "r.name", "r.label", "r.description").
		From(roleTable+" r").
		Join(userRolesTable+" ur ON ur.role_id = r.id").
		Where(squirrel.Eq{"ur.user_id": userID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var role auth.Role
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &role, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user role: %w", err)
	}

	return &role, nil
}
