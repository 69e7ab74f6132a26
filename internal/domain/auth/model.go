// Package auth provides authentication and authorization domain logic.
package auth

import (
	"time"
)

// User represents a system user. Users follow the same soft-delete
// lifecycle as catalogs; every lookup sees live rows only.
type User struct {
	ID           int64      `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	FirstName    string     `db:"first_name" json:"firstName,omitempty"`
	LastName     string     `db:"last_name" json:"lastName,omitempty"`
	Phone        string     `db:"phone" json:"phone,omitempty"`
	PasswordHash string     `db:"password_hash" json:"-"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`

	// Role is the single role assigned to the user, loaded with the user.
	Role *Role `db:"-" json:"role,omitempty"`
}

// RoleName returns the user's role name, empty when no role is assigned.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// Role represents a user role. Permissions are attached many-to-many.
type Role struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Label       string  `db:"label" json:"label"`
	Description *string `db:"description" json:"description,omitempty"`

	Permissions []Permission `db:"-" json:"permissions,omitempty"`
}

// Permission represents a named capability, e.g. "brand_permission".
type Permission struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Label       string  `db:"label" json:"label"`
	Description *string `db:"description" json:"description,omitempty"`
}

// Credentials for login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}
