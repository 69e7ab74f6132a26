package catalogrepo

import (
	"context"

	"storecore/internal/domain/catalogs/unit"
	"storecore/internal/storage/postgres"
)

const unitTable = "units"

// UnitRepo implements unit.Repository.
type UnitRepo struct {
	*Base[*unit.Unit]
}

// NewUnitRepo creates a new unit repository.
func NewUnitRepo(txm *postgres.TxManager) *UnitRepo {
	return &UnitRepo{
		Base: NewBase(
			txm,
			unitTable,
			postgres.ExtractDBColumns[unit.Unit](),
			[]string{"name", "short_name"},
			func() *unit.Unit { return &unit.Unit{} },
		),
	}
}

// FindByName retrieves a live unit by exact name.
func (r *UnitRepo) FindByName(ctx context.Context, name string) (*unit.Unit, error) {
	return r.FindOneBy(ctx, "name", name)
}
