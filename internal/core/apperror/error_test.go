package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/core/apperror"
)

func TestFactoryStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, apperror.NewNotFound("Brand", 1).HTTPStatus)
	assert.Equal(t, http.StatusConflict, apperror.NewUniqueViolation("Brand", "name").HTTPStatus)
	assert.Equal(t, http.StatusConflict, apperror.NewDeletionError("Brand", 1).HTTPStatus)
	assert.Equal(t, http.StatusUnauthorized, apperror.NewInvalidCredential("nope").HTTPStatus)
	assert.Equal(t, http.StatusBadRequest, apperror.NewValidation("bad").HTTPStatus)
	assert.Equal(t, http.StatusForbidden, apperror.NewForbidden("denied").HTTPStatus)
	assert.Equal(t, http.StatusInternalServerError, apperror.NewInternal(nil).HTTPStatus)
}

func TestAsAppErrorThroughWrapping(t *testing.T) {
	base := apperror.NewNotFound("Brand", 7)
	wrapped := fmt.Errorf("find brand: %w", base)

	appErr, ok := apperror.AsAppError(wrapped)

	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	assert.Equal(t, 7, appErr.Details["id"])
	assert.True(t, apperror.IsNotFound(wrapped))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, apperror.GetHTTPStatus(apperror.NewUniqueViolation("Brand", "name")))
	assert.Equal(t, http.StatusInternalServerError, apperror.GetHTTPStatus(errors.New("boom")))
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("row gone")
	err := apperror.NewInternal(nil).
		WithDetail("entity", "Brand").
		WithCause(cause)

	assert.Equal(t, "Brand", err.Details["entity"])
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "row gone")
}

func TestKindPredicatesRejectOtherCodes(t *testing.T) {
	err := apperror.NewValidation("bad input")

	assert.False(t, apperror.IsNotFound(err))
	assert.False(t, apperror.IsUniqueViolation(err))
	assert.False(t, apperror.IsInvalidCredential(err))
}
