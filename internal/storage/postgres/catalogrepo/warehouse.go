package catalogrepo

import (
	"context"

	"storecore/internal/domain/catalogs/warehouse"
	"storecore/internal/storage/postgres"
)

const warehouseTable = "warehouses"

// WarehouseRepo implements warehouse.Repository.
type WarehouseRepo struct {
	*Base[*warehouse.Warehouse]
}

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo(txm *postgres.TxManager) *WarehouseRepo {
	return &WarehouseRepo{
		Base: NewBase(
			txm,
			warehouseTable,
			postgres.ExtractDBColumns[warehouse.Warehouse](),
			[]string{"name", "city"},
			func() *warehouse.Warehouse { return &warehouse.Warehouse{} },
		),
	}
}

// FindByName retrieves a live warehouse by exact name.
func (r *WarehouseRepo) FindByName(ctx context.Context, name string) (*warehouse.Warehouse, error) {
	return r.FindOneBy(ctx, "name", name)
}
