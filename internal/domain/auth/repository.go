package auth

import "context"

// UserRepository defines user storage operations.
type UserRepository interface {
	// FindByUsername retrieves a live user by username with the role
	// loaded. Miss is apperror NotFound.
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// RoleRepository defines role and permission storage operations.
type RoleRepository interface {
	// RoleHasPermission reports whether the named role carries the named
	// permission. Unknown role or permission is false, not an error.
	RoleHasPermission(ctx context.Context, roleName, permissionName string) (bool, error)
}
