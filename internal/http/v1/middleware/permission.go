package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"storecore/internal/core/apperror"
	"storecore/internal/core/appctx"
)

// PermissionChecker answers role→permission questions.
type PermissionChecker interface {
	RoleHasPermission(ctx context.Context, roleName, permissionName string) (bool, error)
}

// RequirePermission gates a route group behind a named permission. The
// caller's role is resolved from the authenticated user context, so this
// must run after Auth.
func RequirePermission(checker PermissionChecker, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := appctx.GetUser(c.Request.Context())
		if !ok {
			abortInvalidCredential(c)
			return
		}

		allowed, err := checker.RoleHasPermission(c.Request.Context(), user.Role, permission)
		if err != nil {
			_ = c.Error(apperror.NewInternal(err))
			c.Abort()
			return
		}
		if !allowed {
			_ = c.Error(
				apperror.NewForbidden("permission denied").
					WithDetail("permission", permission),
			)
			c.Abort()
			return
		}

		c.Next()
	}
}
