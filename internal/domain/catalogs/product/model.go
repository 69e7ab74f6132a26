// Package product implements the product catalog with optional variants.
package product

import (
	"context"

	"github.com/shopspring/decimal"

	"storecore/internal/core/apperror"
	"storecore/internal/core/entity"
)

// Type distinguishes plain products from products sold through variants.
type Type string

const (
	TypeStandard Type = "standard"
	TypeVariable Type = "variable"
)

// TaxMethod controls whether tax is added on top of the price or included.
type TaxMethod string

const (
	TaxExclusive TaxMethod = "exclusive"
	TaxInclusive TaxMethod = "inclusive"
)

// Product is a sellable item. Code and Name are each unique among live
// products. Variable products carry at least one variant; variants share
// the product's soft-delete lifecycle.
type Product struct {
	entity.Base
	CategoryID     int64            `db:"category_id" json:"categoryId"`
	BrandID        *int64           `db:"brand_id" json:"brandId,omitempty"`
	UnitID         int64            `db:"unit_id" json:"unitId"`
	UnitSaleID     int64            `db:"unit_sale_id" json:"unitSaleId"`
	UnitPurchaseID int64            `db:"unit_purchase_id" json:"unitPurchaseId"`
	Type           Type             `db:"type" json:"type"`
	Code           string           `db:"code" json:"code"`
	Name           string           `db:"name" json:"name"`
	Cost           decimal.Decimal  `db:"cost" json:"cost"`
	Price          decimal.Decimal  `db:"price" json:"price"`
	TaxNet         *decimal.Decimal `db:"tax_net" json:"taxNet,omitempty"`
	TaxMethod      TaxMethod        `db:"tax_method" json:"taxMethod"`
	Image          *string          `db:"image" json:"image,omitempty"`
	Qty            decimal.Decimal  `db:"qty" json:"qty"`
	Description    *string          `db:"description" json:"description,omitempty"`
	StockAlert     *decimal.Decimal `db:"stock_alert" json:"stockAlert,omitempty"`
	HasVariant     bool             `db:"has_variant" json:"hasVariant"`
	IsForSale      bool             `db:"is_for_sale" json:"isForSale"`
	IsActive       bool             `db:"is_active" json:"isActive"`

	// Variants are stored in their own table and loaded with the product.
	Variants []*Variant `db:"-" json:"variants,omitempty"`
}

// Variant is one sellable variation of a variable product.
type Variant struct {
	entity.Base
	ProductID int64           `db:"product_id" json:"productId"`
	Code      string          `db:"code" json:"code"`
	Name      string          `db:"name" json:"name"`
	Cost      decimal.Decimal `db:"cost" json:"cost"`
	Price     decimal.Decimal `db:"price" json:"price"`
	Qty       decimal.Decimal `db:"qty" json:"qty"`
	Image     *string         `db:"image" json:"image,omitempty"`
}

// Validate checks product invariants.
func (p *Product) Validate(_ context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("product name is required")
	}
	if p.Code == "" {
		return apperror.NewValidation("product code is required")
	}
	if p.Type != TypeStandard && p.Type != TypeVariable {
		return apperror.NewValidation("product type must be standard or variable")
	}
	if p.TaxMethod != TaxExclusive && p.TaxMethod != TaxInclusive {
		return apperror.NewValidation("product tax method must be exclusive or inclusive")
	}
	if p.Type == TypeVariable && len(p.Variants) == 0 {
		return apperror.NewValidation("variable product requires at least one variant")
	}
	if p.Type == TypeStandard && len(p.Variants) > 0 {
		return apperror.NewValidation("standard product cannot have variants")
	}
	for _, v := range p.Variants {
		if v.Name == "" {
			return apperror.NewValidation("variant name is required")
		}
		if v.Code == "" {
			return apperror.NewValidation("variant code is required")
		}
	}
	return nil
}
