package catalogrepo

import (
	"context"

	"storecore/internal/domain/catalogs/category"
	"storecore/internal/storage/postgres"
)

const categoryTable = "categories"

// CategoryRepo implements category.Repository.
type CategoryRepo struct {
	*Base[*category.Category]
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txm *postgres.TxManager) *CategoryRepo {
	return &CategoryRepo{
		Base: NewBase(
			txm,
			categoryTable,
			postgres.ExtractDBColumns[category.Category](),
			[]string{"name", "code"},
			func() *category.Category { return &category.Category{} },
		),
	}
}

// FindByName retrieves a live category by exact name.
func (r *CategoryRepo) FindByName(ctx context.Context, name string) (*category.Category, error) {
	return r.FindOneBy(ctx, "name", name)
}

// FindByCode retrieves a live category by exact code.
func (r *CategoryRepo) FindByCode(ctx context.Context, code string) (*category.Category, error) {
	return r.FindOneBy(ctx, "code", code)
}
