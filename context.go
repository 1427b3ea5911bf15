package dispatch

import "context"

type contextKey[T any] struct{}

// WithValue stores a typed value in ctx. For use in middleware.
func WithValue[T any](ctx context.Context, val T) context.Context {
	return context.WithValue(ctx, contextKey[T]{}, val)
}

// Value retrieves a typed value stored with WithValue.
func Value[T any](ctx context.Context) (T, bool) {
	val, ok := ctx.Value(contextKey[T]{}).(T)
	return val, ok
}
