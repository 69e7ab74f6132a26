package catalogrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"storecore/internal/domain"
	"storecore/internal/domain/catalogs/product"
	"storecore/internal/storage/postgres"
)

const (
	productTable = "products"
	variantTable = "product_variants"
)

// ProductRepo implements product.Repository. Products load their live
// variants on every read; soft deletion cascades to variants.
type ProductRepo struct {
	*Base[*product.Product]
	variantCols []string
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		Base: NewBase(
			txm,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			[]string{"name", "code"},
			func() *product.Product { return &product.Product{} },
		),
		variantCols: postgres.ExtractDBColumns[product.Variant](),
	}
}

// Create inserts the product row and its variants.
func (r *ProductRepo) Create(ctx context.Context, p *product.Product) error {
	if err := r.Base.Create(ctx, p); err != nil {
		return err
	}
	for _, v := range p.Variants {
		if err := r.insertVariant(ctx, p.ID, v, p.CreatedAt); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepo) insertVariant(ctx context.Context, productID int64, v *product.Variant, at time.Time) error {
	v.ProductID = productID
	v.StampCreated(at)

	data := postgres.StructToMap(v)
	filtered := make(map[string]any, len(r.variantCols))
	for _, col := range r.variantCols {
		if col == "id" {
			continue
		}
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	q := r.Builder().
		Insert(variantTable).
		SetMap(filtered).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build variant insert: %w", err)
	}

	var id int64
	if err := r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return fmt.Errorf("insert %s: %w", variantTable, err)
	}
	v.ID = id

	return nil
}

// FindByID retrieves a live product with variants.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	p, err := r.Base.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, []*product.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// FindByName retrieves a live product by exact name, with variants.
func (r *ProductRepo) FindByName(ctx context.Context, name string) (*product.Product, error) {
	p, err := r.FindOneBy(ctx, "name", name)
	if err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, []*product.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// FindByCode retrieves a live product by exact code, with variants.
func (r *ProductRepo) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	p, err := r.FindOneBy(ctx, "code", code)
	if err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, []*product.Product{p}); err != nil {
		return nil, err
	}
	return p, nil
}

// FindAllByIDs retrieves the live subset of ids, with variants.
func (r *ProductRepo) FindAllByIDs(ctx context.Context, ids []int64) ([]*product.Product, error) {
	items, err := r.Base.FindAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// List retrieves one page of live products, with variants.
func (r *ProductRepo) List(ctx context.Context, q domain.ListQuery) (domain.ListResult[*product.Product], error) {
	result, err := r.Base.List(ctx, q)
	if err != nil {
		return result, err
	}
	if err := r.loadVariants(ctx, result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// loadVariants attaches live variants to the given products in one query.
func (r *ProductRepo) loadVariants(ctx context.Context, products []*product.Product) error {
	if len(products) == 0 {
		return nil
	}

	ids := make([]int64, len(products))
	byID := make(map[int64]*product.Product, len(products))
	for i, p := range products {
		ids[i] = p.ID
		byID[p.ID] = p
		p.Variants = nil
	}

	q := r.Builder().
		Select(r.variantCols...).
		From(variantTable).
		Where(squirrel.Eq{"product_id": ids, "deleted_at": nil}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build variants query: %w", err)
	}

	var variants []*product.Variant
	if err := pgxscan.Select(ctx, r.querier(ctx), &variants, sql, args...); err != nil {
		return fmt.Errorf("load variants: %w", err)
	}

	for _, v := range variants {
		if p, ok := byID[v.ProductID]; ok {
			p.Variants = append(p.Variants, v)
		}
	}

	return nil
}

// ReplaceVariants soft-deletes the product's live variants and inserts
// variants in their place.
func (r *ProductRepo) ReplaceVariants(ctx context.Context, productID int64, variants []*product.Variant) error {
	now := time.Now()
	if err := r.softDeleteVariants(ctx, []int64{productID}, now); err != nil {
		return err
	}
	for _, v := range variants {
		if err := r.insertVariant(ctx, productID, v, now); err != nil {
			return err
		}
	}
	return nil
}

// SoftDelete marks the product and its variants deleted.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64, at time.Time) error {
	if err := r.Base.SoftDelete(ctx, id, at); err != nil {
		return err
	}
	return r.softDeleteVariants(ctx, []int64{id}, at)
}

// SoftDeleteAll marks the live subset of ids and their variants deleted.
func (r *ProductRepo) SoftDeleteAll(ctx context.Context, ids []int64, at time.Time) ([]int64, error) {
	deleted, err := r.Base.SoftDeleteAll(ctx, ids, at)
	if err != nil {
		return nil, err
	}
	if len(deleted) > 0 {
		if err := r.softDeleteVariants(ctx, deleted, at); err != nil {
			return nil, err
		}
	}
	return deleted, nil
}

func (r *ProductRepo) softDeleteVariants(ctx context.Context, productIDs []int64, at time.Time) error {
	q := r.Builder().
		Update(variantTable).
		Set("deleted_at", at).
		Where(squirrel.Eq{"product_id": productIDs, "deleted_at": nil})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build variant soft delete: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("soft delete %s: %w", variantTable, err)
	}

	return nil
}
