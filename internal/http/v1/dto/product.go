package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"storecore/internal/domain/catalogs/product"
)

// VariantPayload carries one variant in create/update requests.
type VariantPayload struct {
	Code  string          `json:"code" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Cost  decimal.Decimal `json:"cost"`
	Price decimal.Decimal `json:"price"`
	Qty   decimal.Decimal `json:"qty"`
	Image *string         `json:"image"`
}

// ToVariant converts the payload to a domain variant.
func (p VariantPayload) ToVariant() *product.Variant {
	return &product.Variant{
		Code:  p.Code,
		Name:  p.Name,
		Cost:  p.Cost,
		Price: p.Price,
		Qty:   p.Qty,
		Image: p.Image,
	}
}

// VariantResponse contains variant fields.
type VariantResponse struct {
	ID    int64           `json:"id"`
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Cost  decimal.Decimal `json:"cost"`
	Price decimal.Decimal `json:"price"`
	Qty   decimal.Decimal `json:"qty"`
	Image *string         `json:"image,omitempty"`
}

// ProductResponse contains product fields.
type ProductResponse struct {
	ID             int64             `json:"id"`
	CategoryID     int64             `json:"categoryId"`
	BrandID        *int64            `json:"brandId,omitempty"`
	UnitID         int64             `json:"unitId"`
	UnitSaleID     int64             `json:"unitSaleId"`
	UnitPurchaseID int64             `json:"unitPurchaseId"`
	Type           string            `json:"type"`
	Code           string            `json:"code"`
	Name           string            `json:"name"`
	Cost           decimal.Decimal   `json:"cost"`
	Price          decimal.Decimal   `json:"price"`
	TaxNet         *decimal.Decimal  `json:"taxNet,omitempty"`
	TaxMethod      string            `json:"taxMethod"`
	Image          *string           `json:"image,omitempty"`
	Qty            decimal.Decimal   `json:"qty"`
	Description    *string           `json:"description,omitempty"`
	StockAlert     *decimal.Decimal  `json:"stockAlert,omitempty"`
	HasVariant     bool              `json:"hasVariant"`
	IsForSale      bool              `json:"isForSale"`
	IsActive       bool              `json:"isActive"`
	Variants       []VariantResponse `json:"variants,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      *time.Time        `json:"updatedAt,omitempty"`
}

// FromProduct creates ProductResponse from a product.
func FromProduct(p *product.Product) ProductResponse {
	variants := make([]VariantResponse, len(p.Variants))
	for i, v := range p.Variants {
		variants[i] = VariantResponse{
			ID:    v.ID,
			Code:  v.Code,
			Name:  v.Name,
			Cost:  v.Cost,
			Price: v.Price,
			Qty:   v.Qty,
			Image: v.Image,
		}
	}
	return ProductResponse{
		ID:             p.ID,
		CategoryID:     p.CategoryID,
		BrandID:        p.BrandID,
		UnitID:         p.UnitID,
		UnitSaleID:     p.UnitSaleID,
		UnitPurchaseID: p.UnitPurchaseID,
		Type:           string(p.Type),
		Code:           p.Code,
		Name:           p.Name,
		Cost:           p.Cost,
		Price:          p.Price,
		TaxNet:         p.TaxNet,
		TaxMethod:      string(p.TaxMethod),
		Image:          p.Image,
		Qty:            p.Qty,
		Description:    p.Description,
		StockAlert:     p.StockAlert,
		HasVariant:     p.HasVariant,
		IsForSale:      p.IsForSale,
		IsActive:       p.IsActive,
		Variants:       variants,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	CategoryID     int64            `json:"categoryId" binding:"required"`
	BrandID        *int64           `json:"brandId"`
	UnitID         int64            `json:"unitId" binding:"required"`
	UnitSaleID     int64            `json:"unitSaleId" binding:"required"`
	UnitPurchaseID int64            `json:"unitPurchaseId" binding:"required"`
	Type           string           `json:"type" binding:"required,oneof=standard variable"`
	Code           string           `json:"code" binding:"required"`
	Name           string           `json:"name" binding:"required"`
	Cost           decimal.Decimal  `json:"cost"`
	Price          decimal.Decimal  `json:"price"`
	TaxNet         *decimal.Decimal `json:"taxNet"`
	TaxMethod      string           `json:"taxMethod" binding:"required,oneof=exclusive inclusive"`
	Image          *string          `json:"image"`
	Qty            decimal.Decimal  `json:"qty"`
	Description    *string          `json:"description"`
	StockAlert     *decimal.Decimal `json:"stockAlert"`
	IsForSale      bool             `json:"isForSale"`
	IsActive       bool             `json:"isActive"`
	Variants       []VariantPayload `json:"variants"`
}

// ToProduct converts the request to a domain product.
func (r CreateProductRequest) ToProduct() *product.Product {
	variants := make([]*product.Variant, len(r.Variants))
	for i, v := range r.Variants {
		variants[i] = v.ToVariant()
	}
	return &product.Product{
		CategoryID:     r.CategoryID,
		BrandID:        r.BrandID,
		UnitID:         r.UnitID,
		UnitSaleID:     r.UnitSaleID,
		UnitPurchaseID: r.UnitPurchaseID,
		Type:           product.Type(r.Type),
		Code:           r.Code,
		Name:           r.Name,
		Cost:           r.Cost,
		Price:          r.Price,
		TaxNet:         r.TaxNet,
		TaxMethod:      product.TaxMethod(r.TaxMethod),
		Image:          r.Image,
		Qty:            r.Qty,
		Description:    r.Description,
		StockAlert:     r.StockAlert,
		IsForSale:      r.IsForSale,
		IsActive:       r.IsActive,
		Variants:       variants,
	}
}

// UpdateProductRequest for updating products. The body carries the id; a
// non-nil variants list replaces the product's variants.
type UpdateProductRequest struct {
	ID             int64            `json:"id" binding:"required"`
	CategoryID     int64            `json:"categoryId" binding:"required"`
	BrandID        *int64           `json:"brandId"`
	UnitID         int64            `json:"unitId" binding:"required"`
	UnitSaleID     int64            `json:"unitSaleId" binding:"required"`
	UnitPurchaseID int64            `json:"unitPurchaseId" binding:"required"`
	Type           string           `json:"type" binding:"required,oneof=standard variable"`
	Code           string           `json:"code" binding:"required"`
	Name           string           `json:"name" binding:"required"`
	Cost           decimal.Decimal  `json:"cost"`
	Price          decimal.Decimal  `json:"price"`
	TaxNet         *decimal.Decimal `json:"taxNet"`
	TaxMethod      string           `json:"taxMethod" binding:"required,oneof=exclusive inclusive"`
	Image          *string          `json:"image"`
	Qty            decimal.Decimal  `json:"qty"`
	Description    *string          `json:"description"`
	StockAlert     *decimal.Decimal `json:"stockAlert"`
	IsForSale      bool             `json:"isForSale"`
	IsActive       bool             `json:"isActive"`
	Variants       []VariantPayload `json:"variants"`
}

// ToInput converts the request to a service update input.
func (r UpdateProductRequest) ToInput() product.UpdateInput {
	var variants []*product.Variant
	if r.Variants != nil {
		variants = make([]*product.Variant, len(r.Variants))
		for i, v := range r.Variants {
			variants[i] = v.ToVariant()
		}
	}
	return product.UpdateInput{
		CategoryID:     r.CategoryID,
		BrandID:        r.BrandID,
		UnitID:         r.UnitID,
		UnitSaleID:     r.UnitSaleID,
		UnitPurchaseID: r.UnitPurchaseID,
		Type:           product.Type(r.Type),
		Code:           r.Code,
		Name:           r.Name,
		Cost:           r.Cost,
		Price:          r.Price,
		TaxNet:         r.TaxNet,
		TaxMethod:      product.TaxMethod(r.TaxMethod),
		Image:          r.Image,
		Qty:            r.Qty,
		Description:    r.Description,
		StockAlert:     r.StockAlert,
		IsForSale:      r.IsForSale,
		IsActive:       r.IsActive,
		Variants:       variants,
	}
}
