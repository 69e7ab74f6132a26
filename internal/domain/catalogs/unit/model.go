// Package unit implements the measurement unit catalog.
package unit

import (
	"context"

	"github.com/shopspring/decimal"

	"storecore/internal/core/apperror"
	"storecore/internal/core/entity"
)

// Operator converts between a unit and its base unit.
type Operator string

const (
	OperatorMul Operator = "mul"
	OperatorDiv Operator = "div"
)

// Unit is a measurement unit. Name is unique among live units;
// OperatorValue is the conversion factor applied with Operator.
type Unit struct {
	entity.Base
	Name          string          `db:"name" json:"name"`
	ShortName     string          `db:"short_name" json:"shortName"`
	Operator      Operator        `db:"operator" json:"operator"`
	OperatorValue decimal.Decimal `db:"operator_value" json:"operatorValue"`
}

// Validate checks unit invariants.
func (u *Unit) Validate(_ context.Context) error {
	if u.Name == "" {
		return apperror.NewValidation("unit name is required")
	}
	if u.ShortName == "" {
		return apperror.NewValidation("unit short name is required")
	}
	if u.Operator != OperatorMul && u.Operator != OperatorDiv {
		return apperror.NewValidation("unit operator must be mul or div")
	}
	if u.OperatorValue.LessThanOrEqual(decimal.Zero) {
		return apperror.NewValidation("unit operator value must be positive")
	}
	return nil
}
