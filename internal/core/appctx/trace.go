package appctx

import "context"

type traceKey struct{}

// TraceContext identifies one request in logs and responses.
type TraceContext struct {
	TraceID   string
	RequestID string
}

// WithTrace returns a context carrying trace identifiers.
func WithTrace(ctx context.Context, tc TraceContext) context.Context {
	return context.WithValue(ctx, traceKey{}, tc)
}

// GetTrace extracts trace identifiers from the context.
func GetTrace(ctx context.Context) (TraceContext, bool) {
	tc, ok := ctx.Value(traceKey{}).(TraceContext)
	return tc, ok
}
