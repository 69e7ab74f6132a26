package product

import (
	"context"

	"github.com/shopspring/decimal"

	"storecore/internal/core/apperror"
	"storecore/internal/core/tx"
	"storecore/internal/domain"
	"storecore/internal/domain/catalogs/brand"
	"storecore/internal/domain/catalogs/category"
	"storecore/internal/domain/catalogs/unit"
)

const entityName = "Product"

// Repository defines storage operations for products. Loaded products carry
// their live variants; soft-deleting a product cascades to its variants.
type Repository interface {
	domain.CatalogRepository[*Product]

	// FindByName retrieves a live product by exact name.
	FindByName(ctx context.Context, name string) (*Product, error)

	// FindByCode retrieves a live product by exact code.
	FindByCode(ctx context.Context, code string) (*Product, error)

	// ReplaceVariants soft-deletes the product's current variants and
	// inserts variants in their place.
	ReplaceVariants(ctx context.Context, productID int64, variants []*Variant) error
}

// Service provides product business logic. It checks referenced catalogs
// (category, brand, units) for live existence on create and whenever a
// reference changes.
type Service struct {
	*domain.CatalogService[*Product]
	repo       Repository
	categories category.Repository
	brands     brand.Repository
	units      unit.Repository
}

// NewService creates the product service.
func NewService(repo Repository, categories category.Repository, brands brand.Repository, units unit.Repository, txm tx.Manager) *Service {
	s := &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Product]{
			Repo:       repo,
			TxManager:  txm,
			EntityName: entityName,
		}),
		repo:       repo,
		categories: categories,
		brands:     brands,
		units:      units,
	}

	s.Hooks().On(domain.BeforeCreate, func(ctx context.Context, p *Product) error {
		if err := s.ensureCodeFree(ctx, p.Code, p.ID); err != nil {
			return err
		}
		if err := s.ensureNameFree(ctx, p.Name, p.ID); err != nil {
			return err
		}
		if err := s.ensureCategoryExists(ctx, p.CategoryID); err != nil {
			return err
		}
		if err := s.ensureBrandExists(ctx, p.BrandID); err != nil {
			return err
		}
		for _, unitID := range []int64{p.UnitID, p.UnitSaleID, p.UnitPurchaseID} {
			if err := s.ensureUnitExists(ctx, unitID); err != nil {
				return err
			}
		}
		return nil
	})

	return s
}

// Create inserts the product with its variants. HasVariant is derived from
// the product type, not trusted from the caller.
func (s *Service) Create(ctx context.Context, p *Product) error {
	p.HasVariant = p.Type == TypeVariable
	return s.CatalogService.Create(ctx, p)
}

func (s *Service) ensureCodeFree(ctx context.Context, code string, excludeID int64) error {
	existing, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return apperror.NewUniqueViolation(entityName, "code")
}

func (s *Service) ensureNameFree(ctx context.Context, name string, excludeID int64) error {
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil
		}
		return err
	}
	if existing.ID == excludeID {
		return nil
	}
	return apperror.NewUniqueViolation(entityName, "name")
}

func (s *Service) ensureCategoryExists(ctx context.Context, id int64) error {
	if _, err := s.categories.FindByID(ctx, id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("Category", id)
		}
		return err
	}
	return nil
}

func (s *Service) ensureBrandExists(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	if _, err := s.brands.FindByID(ctx, *id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("Brand", *id)
		}
		return err
	}
	return nil
}

func (s *Service) ensureUnitExists(ctx context.Context, id int64) error {
	if _, err := s.units.FindByID(ctx, id); err != nil {
		if apperror.IsNotFound(err) {
			return apperror.NewNotFound("Unit", id)
		}
		return err
	}
	return nil
}

// UpdateInput carries the full mutable field set of a product. A non-nil
// Variants slice replaces the product's variants wholesale.
type UpdateInput struct {
	CategoryID     int64
	BrandID        *int64
	UnitID         int64
	UnitSaleID     int64
	UnitPurchaseID int64
	Type           Type
	Code           string
	Name           string
	Cost           decimal.Decimal
	Price          decimal.Decimal
	TaxNet         *decimal.Decimal
	TaxMethod      TaxMethod
	Image          *string
	Qty            decimal.Decimal
	Description    *string
	StockAlert     *decimal.Decimal
	IsForSale      bool
	IsActive       bool
	Variants       []*Variant
}

// Update applies in to the product. Uniqueness and reference checks run
// only for fields that actually change; variants, when provided, are
// replaced within the same scope.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Product, error) {
	return s.CatalogService.Update(ctx, id, func(ctx context.Context, p *Product) (bool, error) {
		changed := false

		if in.Code != p.Code {
			if err := s.ensureCodeFree(ctx, in.Code, p.ID); err != nil {
				return false, err
			}
			p.Code = in.Code
			changed = true
		}
		if in.Name != p.Name {
			if err := s.ensureNameFree(ctx, in.Name, p.ID); err != nil {
				return false, err
			}
			p.Name = in.Name
			changed = true
		}
		if in.CategoryID != p.CategoryID {
			if err := s.ensureCategoryExists(ctx, in.CategoryID); err != nil {
				return false, err
			}
			p.CategoryID = in.CategoryID
			changed = true
		}
		if !domain.EqualPtr(in.BrandID, p.BrandID) {
			if err := s.ensureBrandExists(ctx, in.BrandID); err != nil {
				return false, err
			}
			p.BrandID = in.BrandID
			changed = true
		}
		for _, ref := range []struct {
			in  int64
			cur *int64
		}{
			{in.UnitID, &p.UnitID},
			{in.UnitSaleID, &p.UnitSaleID},
			{in.UnitPurchaseID, &p.UnitPurchaseID},
		} {
			if ref.in != *ref.cur {
				if err := s.ensureUnitExists(ctx, ref.in); err != nil {
					return false, err
				}
				*ref.cur = ref.in
				changed = true
			}
		}

		if in.Type != p.Type {
			p.Type = in.Type
			p.HasVariant = in.Type == TypeVariable
			changed = true
		}
		if !in.Cost.Equal(p.Cost) {
			p.Cost = in.Cost
			changed = true
		}
		if !in.Price.Equal(p.Price) {
			p.Price = in.Price
			changed = true
		}
		if !equalDecimalPtr(in.TaxNet, p.TaxNet) {
			p.TaxNet = in.TaxNet
			changed = true
		}
		if in.TaxMethod != p.TaxMethod {
			p.TaxMethod = in.TaxMethod
			changed = true
		}
		if !domain.EqualPtr(in.Image, p.Image) {
			p.Image = in.Image
			changed = true
		}
		if !in.Qty.Equal(p.Qty) {
			p.Qty = in.Qty
			changed = true
		}
		if !domain.EqualPtr(in.Description, p.Description) {
			p.Description = in.Description
			changed = true
		}
		if !equalDecimalPtr(in.StockAlert, p.StockAlert) {
			p.StockAlert = in.StockAlert
			changed = true
		}
		if in.IsForSale != p.IsForSale {
			p.IsForSale = in.IsForSale
			changed = true
		}
		if in.IsActive != p.IsActive {
			p.IsActive = in.IsActive
			changed = true
		}

		if in.Variants != nil {
			if err := s.repo.ReplaceVariants(ctx, p.ID, in.Variants); err != nil {
				return false, err
			}
			p.Variants = in.Variants
			changed = true
		}

		return changed, nil
	})
}

func equalDecimalPtr(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
