// Package warehouse implements the warehouse catalog.
package warehouse

import (
	"context"

	"storecore/internal/core/apperror"
	"storecore/internal/core/entity"
)

// Warehouse is a stock location. Name is unique among live warehouses.
type Warehouse struct {
	entity.Base
	Name   string  `db:"name" json:"name"`
	City   *string `db:"city" json:"city,omitempty"`
	Mobile *string `db:"mobile" json:"mobile,omitempty"`
	Email  *string `db:"email" json:"email,omitempty"`
	Zip    *string `db:"zip" json:"zip,omitempty"`
}

// Validate checks warehouse invariants.
func (w *Warehouse) Validate(_ context.Context) error {
	if w.Name == "" {
		return apperror.NewValidation("warehouse name is required")
	}
	return nil
}
