package core

import "context"

// Context keys for pipeline options
type contextKey string

const (
	readOnlyOrdersKey contextKey = "readOnlyOrders"
	suppressWarnKey   contextKey = "suppressWarnings"
)

// WithReadOnlyOrders makes the pipeline use stored journey orders without
// seeding or clearing them.
func WithReadOnlyOrders(ctx context.Context) context.Context {
	return context.WithValue(ctx, readOnlyOrdersKey, true)
}

// isReadOnlyOrders returns whether the order store must not be written
func isReadOnlyOrders(ctx context.Context) bool {
	val := ctx.Value(readOnlyOrdersKey)
	if val == nil {
		return false // default: keep the store in sync
	}
	readOnly, ok := val.(bool)
	return ok && readOnly
}

// WithSuppressWarnings keeps data-quality warnings in the layout only.
func WithSuppressWarnings(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressWarnKey, true)
}

// shouldSuppressWarnings returns whether warnings should stay off stderr
func shouldSuppressWarnings(ctx context.Context) bool {
	val := ctx.Value(suppressWarnKey)
	if val == nil {
		return false // default: print warnings
	}
	suppress, ok := val.(bool)
	return ok && suppress
}
