package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/core/apperror"
	"storecore/internal/domain/catalogs/category"
	"storecore/internal/domain/domaintest"
)

type categoryRepo struct {
	domaintest.MemRepo[*category.Category]
}

func (r *categoryRepo) FindByName(_ context.Context, name string) (*category.Category, error) {
	return r.FindFirst(func(c *category.Category) bool { return c.Name == name })
}

func (r *categoryRepo) FindByCode(_ context.Context, code string) (*category.Category, error) {
	return r.FindFirst(func(c *category.Category) bool { return c.Code == code })
}

func newService() (*category.Service, *categoryRepo) {
	repo := &categoryRepo{domaintest.MemRepo[*category.Category]{
		EntityName: "categories",
		Clone: func(c *category.Category) *category.Category {
			cp := *c
			return &cp
		},
		MatchKeyword: func(c *category.Category, kw string) bool {
			return domaintest.ContainsFold(c.Name, kw) || domaintest.ContainsFold(c.Code, kw)
		},
	}}
	return category.NewService(repo, &domaintest.TxManager{}), repo
}

func mustCreate(t *testing.T, svc *category.Service, code, name string) *category.Category {
	t.Helper()
	c := &category.Category{Code: code, Name: name}
	require.NoError(t, svc.Create(context.Background(), c))
	return c
}

func TestCreateRequiresCodeAndName(t *testing.T) {
	svc, _ := newService()

	err := svc.Create(context.Background(), &category.Category{Name: "Electronics"})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)

	err = svc.Create(context.Background(), &category.Category{Code: "EL"})
	require.Error(t, err)
}

func TestCreateRejectsDuplicateCode(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "EL", "Electronics")

	err := svc.Create(context.Background(), &category.Category{Code: "EL", Name: "Appliances"})

	require.True(t, apperror.IsUniqueViolation(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "code", appErr.Details["field"])
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "EL", "Electronics")

	err := svc.Create(context.Background(), &category.Category{Code: "AP", Name: "Electronics"})

	require.True(t, apperror.IsUniqueViolation(err))
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, "name", appErr.Details["field"])
}

func TestCodeAndNameReusableAfterDeletion(t *testing.T) {
	svc, _ := newService()
	old := mustCreate(t, svc, "EL", "Electronics")
	require.NoError(t, svc.Delete(context.Background(), old.ID))

	err := svc.Create(context.Background(), &category.Category{Code: "EL", Name: "Electronics"})

	assert.NoError(t, err)
}

func TestUpdateChecksOnlyChangedFields(t *testing.T) {
	svc, _ := newService()
	mustCreate(t, svc, "EL", "Electronics")
	c := mustCreate(t, svc, "AP", "Appliances")

	// Keeping its own code and name is never a collision.
	updated, err := svc.Update(context.Background(), c.ID, category.UpdateInput{Code: "AP", Name: "Appliances"})
	require.NoError(t, err)
	assert.Nil(t, updated.UpdatedAt)

	// Changing code to a taken value fails even when the name is untouched.
	_, err = svc.Update(context.Background(), c.ID, category.UpdateInput{Code: "EL", Name: "Appliances"})
	assert.True(t, apperror.IsUniqueViolation(err))

	// Changing name to a taken value fails even when the code is untouched.
	_, err = svc.Update(context.Background(), c.ID, category.UpdateInput{Code: "AP", Name: "Electronics"})
	assert.True(t, apperror.IsUniqueViolation(err))
}

func TestUpdateStampsUpdatedAt(t *testing.T) {
	svc, repo := newService()
	c := mustCreate(t, svc, "EL", "Electronics")

	updated, err := svc.Update(context.Background(), c.ID, category.UpdateInput{Code: "ELX", Name: "Electronics"})

	require.NoError(t, err)
	assert.Equal(t, "ELX", updated.Code)
	assert.NotNil(t, updated.UpdatedAt)
	assert.Equal(t, 1, repo.UpdateCalls)
}

func TestDeleteAllByIDsReportsAbsentIDs(t *testing.T) {
	svc, _ := newService()
	a := mustCreate(t, svc, "EL", "Electronics")
	b := mustCreate(t, svc, "AP", "Appliances")

	result, err := svc.DeleteAllByIDs(context.Background(), []int64{a.ID, 77, b.ID})

	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID}, result.DeletedIDs)
	assert.Equal(t, []int64{77}, result.NotExistedIDs)
}
