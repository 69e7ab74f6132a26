package dto

import (
	"time"

	"storecore/internal/domain/catalogs/category"
)

// CategoryResponse contains category fields.
type CategoryResponse struct {
	ID        int64      `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromCategory creates CategoryResponse from a category.
func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Code:      c.Code,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CreateCategoryRequest for creating categories.
type CreateCategoryRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// UpdateCategoryRequest for updating categories. The body carries the id.
type UpdateCategoryRequest struct {
	ID   int64  `json:"id" binding:"required"`
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}
