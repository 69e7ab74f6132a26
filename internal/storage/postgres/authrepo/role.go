package authrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"storecore/internal/storage/postgres"
)

const (
	permissionTable      = "permissions"
	rolePermissionsTable = "roles_permissions"
)

// RoleRepo implements auth.RoleRepository.
type RoleRepo struct {
	txm *postgres.TxManager
}

// NewRoleRepo creates a new role repository.
func NewRoleRepo(txm *postgres.TxManager) *RoleRepo {
	return &RoleRepo{txm: txm}
}

// RoleHasPermission reports whether the named role carries the named
// permission. Unknown role or permission is false, not an error.
func (r *RoleRepo) RoleHasPermission(ctx context.Context, roleName, permissionName string) (bool, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("1").
		From(roleTable+" r").
		Join(rolePermissionsTable+" rp ON rp.role_id = r.id").
		Join(permissionTable+" p ON p.id = rp.permission_id").
		Where(squirrel.Eq{"r.name": roleName, "p.name": permissionName}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var one int
	err = r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("role permission lookup: %w", err)
	}

	return true, nil
}
