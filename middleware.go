package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// DispatchFunc is the signature wrapped by middleware.
type DispatchFunc func(ctx context.Context, req *Request) (Status, error)

// Middleware wraps dispatch with cross-cutting behavior.
type Middleware func(next DispatchFunc) DispatchFunc

// Recovery returns middleware that turns a handler panic into StatusFailed
// and an error wrapping ErrHandlerPanic. The panic is logged with its stack.
func Recovery(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, req *Request) (st Status, err error) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.ErrorContext(ctx, "panic recovered",
						"panic", rec,
						"stack", string(debug.Stack()),
						"method", req.Method.String(),
						"path", req.Path.String(),
					)
					st, err = StatusFailed, fmt.Errorf("%w: %v", ErrHandlerPanic, rec)
				}
			}()
			return next(ctx, req)
		}
	}
}
