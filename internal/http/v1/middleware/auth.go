package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"storecore/internal/core/apperror"
	"storecore/internal/core/appctx"
)

// TokenVerifier validates an access token and resolves the caller.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (appctx.UserContext, error)
}

// Auth middleware validates bearer tokens and populates user context.
// Missing or malformed headers fail the same way a bad token does.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortInvalidCredential(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortInvalidCredential(c)
			return
		}

		user, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		c.Set("username", user.Username)
		c.Set("role", user.Role)

		c.Next()
	}
}

func abortInvalidCredential(c *gin.Context) {
	_ = c.Error(apperror.NewInvalidCredential("incorrect username or password"))
	c.Abort()
}
