// Package category implements the product category catalog.
package category

import (
	"context"

	"storecore/internal/core/apperror"
	"storecore/internal/core/entity"
)

// Category is a product category. Code and Name are each unique among live
// categories.
type Category struct {
	entity.Base
	Code string `db:"code" json:"code"`
	Name string `db:"name" json:"name"`
}

// Validate checks category invariants.
func (c *Category) Validate(_ context.Context) error {
	if c.Code == "" {
		return apperror.NewValidation("category code is required")
	}
	if c.Name == "" {
		return apperror.NewValidation("category name is required")
	}
	return nil
}
