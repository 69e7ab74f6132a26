package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storecore/internal/domain/catalogs/brand"
	"storecore/internal/storage/postgres"
)

type inner struct {
	Code string `db:"code"`
}

type outer struct {
	inner
	Name   string `db:"name"`
	Hidden string `db:"-"`
	NoTag  string
}

func TestExtractDBColumnsWalksEmbeddedStructs(t *testing.T) {
	cols := postgres.ExtractDBColumns[outer]()

	assert.Equal(t, []string{"code", "name"}, cols)
}

func TestExtractDBColumnsFromPointerType(t *testing.T) {
	cols := postgres.ExtractDBColumns[*brand.Brand]()

	assert.Contains(t, cols, "id")
	assert.Contains(t, cols, "created_at")
	assert.Contains(t, cols, "deleted_at")
	assert.Contains(t, cols, "name")
	assert.Contains(t, cols, "description")
}

func TestStructToMapIncludesEmbeddedFields(t *testing.T) {
	m := postgres.StructToMap(outer{
		inner:  inner{Code: "C1"},
		Name:   "first",
		Hidden: "nope",
		NoTag:  "nope",
	})

	assert.Equal(t, map[string]any{"code": "C1", "name": "first"}, m)
}

func TestStructToMapOnEntity(t *testing.T) {
	b := &brand.Brand{Name: "Acme"}
	b.SetEntityID(7)

	m := postgres.StructToMap(b)

	assert.Equal(t, int64(7), m["id"])
	assert.Equal(t, "Acme", m["name"])
	assert.Contains(t, m, "description")
}

func TestStructToMapNonStruct(t *testing.T) {
	assert.Nil(t, postgres.StructToMap(42))
}
