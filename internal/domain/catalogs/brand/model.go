// Package brand implements the product brand catalog.
package brand

import (
	"context"

	"storecore/internal/core/apperror"
	"storecore/internal/core/entity"
)

// Brand is a product brand. Name is unique among live brands.
type Brand struct {
	entity.Base
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description,omitempty"`
}

// Validate checks brand invariants.
func (b *Brand) Validate(_ context.Context) error {
	if b.Name == "" {
		return apperror.NewValidation("brand name is required")
	}
	return nil
}
