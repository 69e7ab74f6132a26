// Package entity defines the base row shape shared by every stored entity.
package entity

import (
	"context"
	"time"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with details otherwise.
	Validate(ctx context.Context) error
}

// Base contains the common fields of every entity.
//
// ID is assigned by the store on insert and never reassigned. UpdatedAt is
// set only when at least one mutable field actually changed. A non-nil
// DeletedAt marks the row as soft-deleted: it stays in storage but is
// invisible to every find and listing operation.
type Base struct {
	ID        int64      `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

// EntityID returns the store-assigned identity (zero before insert).
func (b *Base) EntityID() int64 { return b.ID }

// SetEntityID stamps the store-assigned identity after insert.
func (b *Base) SetEntityID(id int64) { b.ID = id }

// StampCreated initializes the lifecycle timestamps for a new row.
func (b *Base) StampCreated(now time.Time) {
	b.CreatedAt = now
	b.UpdatedAt = nil
	b.DeletedAt = nil
}

// Touch records a real field change.
func (b *Base) Touch(now time.Time) { b.UpdatedAt = &now }

// MarkDeleted soft-deletes the row.
func (b *Base) MarkDeleted(now time.Time) { b.DeletedAt = &now }

// IsDeleted reports whether the row is soft-deleted.
func (b *Base) IsDeleted() bool { return b.DeletedAt != nil }
