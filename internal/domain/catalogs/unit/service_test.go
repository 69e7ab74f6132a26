package unit_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/core/apperror"
	"storecore/internal/domain/catalogs/unit"
	"storecore/internal/domain/domaintest"
)

type unitRepo struct {
	domaintest.MemRepo[*unit.Unit]
}

func (r *unitRepo) FindByName(_ context.Context, name string) (*unit.Unit, error) {
	return r.FindFirst(func(u *unit.Unit) bool { return u.Name == name })
}

func newService() (*unit.Service, *unitRepo) {
	repo := &unitRepo{domaintest.MemRepo[*unit.Unit]{
		EntityName: "units",
		Clone: func(u *unit.Unit) *unit.Unit {
			c := *u
			return &c
		},
		MatchKeyword: func(u *unit.Unit, kw string) bool {
			return domaintest.ContainsFold(u.Name, kw) || domaintest.ContainsFold(u.ShortName, kw)
		},
	}}
	return unit.NewService(repo, &domaintest.TxManager{}), repo
}

func validUnit(name string) *unit.Unit {
	return &unit.Unit{
		Name:          name,
		ShortName:     "pc",
		Operator:      unit.OperatorMul,
		OperatorValue: decimal.NewFromInt(1),
	}
}

func TestCreateValidUnit(t *testing.T) {
	svc, _ := newService()
	u := validUnit("Piece")

	require.NoError(t, svc.Create(context.Background(), u))

	assert.Positive(t, u.ID)
}

func TestCreateRejectsUnknownOperator(t *testing.T) {
	svc, _ := newService()
	u := validUnit("Piece")
	u.Operator = "add"

	err := svc.Create(context.Background(), u)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreateRejectsNonPositiveOperatorValue(t *testing.T) {
	svc, _ := newService()
	u := validUnit("Piece")
	u.OperatorValue = decimal.Zero

	err := svc.Create(context.Background(), u)

	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	svc, _ := newService()
	require.NoError(t, svc.Create(context.Background(), validUnit("Piece")))

	err := svc.Create(context.Background(), validUnit("Piece"))

	assert.True(t, apperror.IsUniqueViolation(err))
}

func TestUpdateOperatorValueComparedByValue(t *testing.T) {
	svc, repo := newService()
	u := validUnit("Piece")
	require.NoError(t, svc.Create(context.Background(), u))

	// Same value in a different representation is not a change.
	updated, err := svc.Update(context.Background(), u.ID, unit.UpdateInput{
		Name:          u.Name,
		ShortName:     u.ShortName,
		Operator:      u.Operator,
		OperatorValue: decimal.RequireFromString("1.000"),
	})

	require.NoError(t, err)
	assert.Nil(t, updated.UpdatedAt)
	assert.Zero(t, repo.UpdateCalls)
}

func TestUpdateOperatorChange(t *testing.T) {
	svc, _ := newService()
	u := validUnit("Dozen")
	require.NoError(t, svc.Create(context.Background(), u))

	updated, err := svc.Update(context.Background(), u.ID, unit.UpdateInput{
		Name:          u.Name,
		ShortName:     "dz",
		Operator:      unit.OperatorDiv,
		OperatorValue: decimal.NewFromInt(12),
	})

	require.NoError(t, err)
	assert.Equal(t, unit.OperatorDiv, updated.Operator)
	assert.NotNil(t, updated.UpdatedAt)
}
