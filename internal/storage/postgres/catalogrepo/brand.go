package catalogrepo

import (
	"context"

	"storecore/internal/domain/catalogs/brand"
	"storecore/internal/storage/postgres"
)

const brandTable = "brands"

// BrandRepo implements brand.Repository.
type BrandRepo struct {
	*Base[*brand.Brand]
}

// NewBrandRepo creates a new brand repository.
func NewBrandRepo(txm *postgres.TxManager) *BrandRepo {
	return &BrandRepo{
		Base: NewBase(
			txm,
			brandTable,
			postgres.ExtractDBColumns[brand.Brand](),
			[]string{"name", "description"},
			func() *brand.Brand { return &brand.Brand{} },
		),
	}
}

// FindByName retrieves a live brand by exact name.
func (r *BrandRepo) FindByName(ctx context.Context, name string) (*brand.Brand, error) {
	return r.FindOneBy(ctx, "name", name)
}
