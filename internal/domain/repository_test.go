package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storecore/internal/domain"
)

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, domain.SortDesc, domain.ParseSortDirection("desc"))
	assert.Equal(t, domain.SortDesc, domain.ParseSortDirection("DESC"))
	assert.Equal(t, domain.SortAsc, domain.ParseSortDirection("asc"))
	assert.Equal(t, domain.SortAsc, domain.ParseSortDirection(""))
	assert.Equal(t, domain.SortAsc, domain.ParseSortDirection("sideways"))
}

func TestListQueryNormalize(t *testing.T) {
	q := domain.ListQuery{Page: 0, Size: -3}.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.Size)
	assert.Equal(t, domain.SortAsc, q.SortDir)
}

func TestListQueryOffset(t *testing.T) {
	assert.Equal(t, 0, domain.ListQuery{Page: 1, Size: 25}.Offset())
	assert.Equal(t, 50, domain.ListQuery{Page: 3, Size: 25}.Offset())
}

func TestListResultTotalPages(t *testing.T) {
	assert.EqualValues(t, 0, domain.ListResult[int]{TotalCount: 0, Size: 10}.TotalPages())
	assert.EqualValues(t, 1, domain.ListResult[int]{TotalCount: 10, Size: 10}.TotalPages())
	assert.EqualValues(t, 2, domain.ListResult[int]{TotalCount: 11, Size: 10}.TotalPages())
	assert.EqualValues(t, 0, domain.ListResult[int]{TotalCount: 5, Size: 0}.TotalPages())
}

func TestEqualPtr(t *testing.T) {
	a, b := "x", "x"
	c := "y"

	assert.True(t, domain.EqualPtr[string](nil, nil))
	assert.True(t, domain.EqualPtr(&a, &b))
	assert.False(t, domain.EqualPtr(&a, &c))
	assert.False(t, domain.EqualPtr(&a, nil))
}
