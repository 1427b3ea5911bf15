package dispatch

import (
	"context"
	"time"
)

// Timeout returns middleware that adds a deadline to the dispatch context.
// A request whose context is already done when it reaches Timeout is not
// dispatched; it fails with the context's error.
func Timeout(d time.Duration) Middleware {
	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, req *Request) (Status, error) {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()
			if err := ctx.Err(); err != nil {
				return StatusFailed, err
			}
			return next(ctx, req)
		}
	}
}
