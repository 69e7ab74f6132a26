package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storecore/internal/core/apperror"
	"storecore/internal/core/appctx"
	"storecore/internal/http/v1/middleware"
)

type stubVerifier struct {
	user appctx.UserContext
	err  error
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (appctx.UserContext, error) {
	return v.user, v.err
}

type stubChecker struct {
	allowed bool
	err     error
}

func (c *stubChecker) RoleHasPermission(_ context.Context, _, _ string) (bool, error) {
	return c.allowed, c.err
}

func newRouter(verifier middleware.TokenVerifier, checker middleware.PermissionChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())

	group := router.Group("/brands")
	group.Use(middleware.Auth(verifier))
	if checker != nil {
		group.Use(middleware.RequirePermission(checker, "brand_permission"))
	}
	group.GET("", func(c *gin.Context) {
		user, _ := appctx.GetUser(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role})
	})

	return router
}

func do(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/brands", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthPassesUserContextThrough(t *testing.T) {
	verifier := &stubVerifier{user: appctx.UserContext{Username: "admin", Role: "owner"}}
	router := newRouter(verifier, nil)

	rec := do(router, "Bearer some-token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, "owner", body["role"])
}

func TestAuthMissingHeader(t *testing.T) {
	router := newRouter(&stubVerifier{}, nil)

	rec := do(router, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apperror.CodeInvalidCredential, body["code"])
	assert.Equal(t, "incorrect username or password", body["message"])
}

func TestAuthMalformedHeader(t *testing.T) {
	router := newRouter(&stubVerifier{}, nil)

	rec := do(router, "Token abc")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apperror.CodeInvalidCredential, body["code"])
}

func TestAuthRejectedToken(t *testing.T) {
	verifier := &stubVerifier{err: apperror.NewInvalidCredential("incorrect username or password")}
	router := newRouter(verifier, nil)

	rec := do(router, "Bearer expired-token")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "incorrect username or password", body["message"])
}

func TestRequirePermissionAllows(t *testing.T) {
	verifier := &stubVerifier{user: appctx.UserContext{Username: "admin", Role: "owner"}}
	router := newRouter(verifier, &stubChecker{allowed: true})

	rec := do(router, "Bearer some-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequirePermissionDenies(t *testing.T) {
	verifier := &stubVerifier{user: appctx.UserContext{Username: "clerk", Role: "cashier"}}
	router := newRouter(verifier, &stubChecker{allowed: false})

	rec := do(router, "Bearer some-token")

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apperror.CodeForbidden, body["code"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "brand_permission", details["permission"])
}
