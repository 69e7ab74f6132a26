package brand_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/core/apperror"
	"storecore/internal/domain"
	"storecore/internal/domain/catalogs/brand"
	"storecore/internal/domain/domaintest"
)

type brandRepo struct {
	domaintest.MemRepo[*brand.Brand]
}

func (r *brandRepo) FindByName(_ context.Context, name string) (*brand.Brand, error) {
	return r.FindFirst(func(b *brand.Brand) bool { return b.Name == name })
}

func newBrandRepo() *brandRepo {
	return &brandRepo{domaintest.MemRepo[*brand.Brand]{
		EntityName: "brands",
		Clone: func(b *brand.Brand) *brand.Brand {
			c := *b
			return &c
		},
		MatchKeyword: func(b *brand.Brand, kw string) bool {
			if domaintest.ContainsFold(b.Name, kw) {
				return true
			}
			return b.Description != nil && domaintest.ContainsFold(*b.Description, kw)
		},
		SortLess: map[string]func(a, b *brand.Brand) bool{
			"id":   func(a, b *brand.Brand) bool { return a.ID < b.ID },
			"name": func(a, b *brand.Brand) bool { return a.Name < b.Name },
		},
	}}
}

func newService() (*brand.Service, *brandRepo) {
	repo := newBrandRepo()
	return brand.NewService(repo, &domaintest.TxManager{}), repo
}

func mustCreate(t *testing.T, svc *brand.Service, name string) *brand.Brand {
	t.Helper()
	b := &brand.Brand{Name: name}
	require.NoError(t, svc.Create(context.Background(), b))
	return b
}

func TestCreateAssignsIdentityAndTimestamps(t *testing.T) {
	svc, _ := newService()

	b := mustCreate(t, svc, "Acme")

	assert.Positive(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Nil(t, b.UpdatedAt)
	assert.Nil(t, b.DeletedAt)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc, _ := newService()

	err := svc.Create(context.Background(), &brand.Brand{})

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "Acme")

	err := svc.Create(context.Background(), &brand.Brand{Name: "Acme"})

	assert.True(t, apperror.IsUniqueViolation(err))
}

func TestNameIsReusableAfterDeletion(t *testing.T) {
	svc, _ := newService()
	first := mustCreate(t, svc, "Acme")

	require.NoError(t, svc.Delete(context.Background(), first.ID))

	second := &brand.Brand{Name: "Acme"}
	require.NoError(t, svc.Create(context.Background(), second))
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFindByIDMissesDeletedRows(t *testing.T) {
	svc, _ := newService()
	b := mustCreate(t, svc, "Acme")

	require.NoError(t, svc.Delete(context.Background(), b.ID))

	_, err := svc.FindByID(context.Background(), b.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	svc, _ := newService()
	b := mustCreate(t, svc, "Acme")

	require.NoError(t, svc.Delete(context.Background(), b.ID))
	err := svc.Delete(context.Background(), b.ID)

	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateWithoutChangesLeavesRowUntouched(t *testing.T) {
	svc, repo := newService()
	b := mustCreate(t, svc, "Acme")

	updated, err := svc.Update(context.Background(), b.ID, brand.UpdateInput{Name: "Acme"})

	require.NoError(t, err)
	assert.Nil(t, updated.UpdatedAt)
	assert.Zero(t, repo.UpdateCalls)
}

func TestUpdateStampsUpdatedAtOnRealChange(t *testing.T) {
	svc, repo := newService()
	b := mustCreate(t, svc, "Acme")

	updated, err := svc.Update(context.Background(), b.ID, brand.UpdateInput{Name: "Globex"})

	require.NoError(t, err)
	assert.Equal(t, "Globex", updated.Name)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, 1, repo.UpdateCalls)
}

func TestUpdateKeepingOwnNameIsNotACollision(t *testing.T) {
	svc, _ := newService()
	b := mustCreate(t, svc, "Acme")

	desc := "updated"
	updated, err := svc.Update(context.Background(), b.ID, brand.UpdateInput{Name: "Acme", Description: &desc})

	require.NoError(t, err)
	assert.Equal(t, &desc, updated.Description)
}

func TestUpdateToTakenNameFailsAndPreservesRow(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "Acme")
	b := mustCreate(t, svc, "Globex")

	_, err := svc.Update(context.Background(), b.ID, brand.UpdateInput{Name: "Acme"})

	assert.True(t, apperror.IsUniqueViolation(err))

	current, err := svc.FindByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Globex", current.Name)
	assert.Nil(t, current.UpdatedAt)
}

func TestUpdateMissingBrand(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 42, brand.UpdateInput{Name: "Acme"})

	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteAllByIDsPartitionsAbsentIDs(t *testing.T) {
	svc, _ := newService()
	a := mustCreate(t, svc, "Acme")
	b := mustCreate(t, svc, "Globex")
	require.NoError(t, svc.Delete(context.Background(), b.ID))

	result, err := svc.DeleteAllByIDs(context.Background(), []int64{a.ID, b.ID, 99})

	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, result.DeletedIDs)
	assert.Equal(t, []int64{b.ID, 99}, result.NotExistedIDs)
	assert.Empty(t, result.AlreadyDeletedIDs)
}

func TestDeleteAllByIDsWithOnlyAbsentIDsSucceeds(t *testing.T) {
	svc, _ := newService()

	result, err := svc.DeleteAllByIDs(context.Background(), []int64{1, 2, 3})

	require.NoError(t, err)
	assert.Empty(t, result.DeletedIDs)
	assert.Equal(t, []int64{1, 2, 3}, result.NotExistedIDs)
}

func TestFindAllKeywordSkipsDeletedRows(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "Acme Tools")
	gone := mustCreate(t, svc, "Acme Legacy")
	mustCreate(t, svc, "Globex")
	require.NoError(t, svc.Delete(context.Background(), gone.ID))

	result, err := svc.FindAll(context.Background(), domain.ListQuery{Keyword: "acme", Page: 1, Size: 10})

	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Acme Tools", result.Items[0].Name)
	assert.EqualValues(t, 1, result.TotalCount)
}

func TestFindAllSortsDescOnExactDirection(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "Alpha")
	mustCreate(t, svc, "Beta")

	result, err := svc.FindAll(context.Background(), domain.ListQuery{
		Page: 1, Size: 10, SortColumn: "name", SortDir: domain.ParseSortDirection("DESC"),
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Beta", result.Items[0].Name)
}

func TestFindAllUnknownSortColumnKeepsOrder(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "Beta")
	mustCreate(t, svc, "Alpha")

	result, err := svc.FindAll(context.Background(), domain.ListQuery{
		Page: 1, Size: 10, SortColumn: "bogus", SortDir: domain.SortDesc,
	})

	require.NoError(t, err)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Beta", result.Items[0].Name)
}

func TestFindAllPageBeyondEndIsEmpty(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "Acme")

	result, err := svc.FindAll(context.Background(), domain.ListQuery{Page: 5, Size: 10})

	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.EqualValues(t, 1, result.TotalCount)
	assert.EqualValues(t, 1, result.TotalPages())
}
