package dto

import (
	"time"

	"storecore/internal/domain/catalogs/warehouse"
)

// WarehouseResponse contains warehouse fields.
type WarehouseResponse struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	City      *string    `json:"city,omitempty"`
	Mobile    *string    `json:"mobile,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Zip       *string    `json:"zip,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// FromWarehouse creates WarehouseResponse from a warehouse.
func FromWarehouse(w *warehouse.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		City:      w.City,
		Mobile:    w.Mobile,
		Email:     w.Email,
		Zip:       w.Zip,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

// CreateWarehouseRequest for creating warehouses.
type CreateWarehouseRequest struct {
	Name   string  `json:"name" binding:"required"`
	City   *string `json:"city"`
	Mobile *string `json:"mobile"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Zip    *string `json:"zip"`
}

// UpdateWarehouseRequest for updating warehouses. The body carries the id.
type UpdateWarehouseRequest struct {
	ID     int64   `json:"id" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	City   *string `json:"city"`
	Mobile *string `json:"mobile"`
	Email  *string `json:"email" binding:"omitempty,email"`
	Zip    *string `json:"zip"`
}
