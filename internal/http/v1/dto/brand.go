package dto

import (
	"time"

	"storecore/internal/domain/catalogs/brand"
)

// BrandResponse contains brand fields.
type BrandResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// FromBrand creates BrandResponse from a brand.
func FromBrand(b *brand.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// CreateBrandRequest for creating brands.
type CreateBrandRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// UpdateBrandRequest for updating brands. The body carries the id.
type UpdateBrandRequest struct {
	ID          int64   `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}
