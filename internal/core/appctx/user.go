// Package appctx carries request-scoped values through context.
package appctx

import "context"

type userKey struct{}

// UserContext is the authenticated caller as seen by the domain layer.
// Role is the single role name assigned to the user.
type UserContext struct {
	Username string
	Role     string
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user UserContext) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser extracts the authenticated user from the context.
func GetUser(ctx context.Context) (UserContext, bool) {
	user, ok := ctx.Value(userKey{}).(UserContext)
	return user, ok
}
