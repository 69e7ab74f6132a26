package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"storecore/internal/domain/catalogs/unit"
)

// UnitResponse contains unit fields.
type UnitResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	ShortName     string          `json:"shortName"`
	Operator      string          `json:"operator"`
	OperatorValue decimal.Decimal `json:"operatorValue"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// FromUnit creates UnitResponse from a unit.
func FromUnit(u *unit.Unit) UnitResponse {
	return UnitResponse{
		ID:            u.ID,
		Name:          u.Name,
		ShortName:     u.ShortName,
		Operator:      string(u.Operator),
		OperatorValue: u.OperatorValue,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

// CreateUnitRequest for creating units.
type CreateUnitRequest struct {
	Name          string          `json:"name" binding:"required"`
	ShortName     string          `json:"shortName" binding:"required"`
	Operator      string          `json:"operator" binding:"required,oneof=mul div"`
	OperatorValue decimal.Decimal `json:"operatorValue" binding:"required"`
}

// UpdateUnitRequest for updating units. The body carries the id.
type UpdateUnitRequest struct {
	ID            int64           `json:"id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	ShortName     string          `json:"shortName" binding:"required"`
	Operator      string          `json:"operator" binding:"required,oneof=mul div"`
	OperatorValue decimal.Decimal `json:"operatorValue" binding:"required"`
}
