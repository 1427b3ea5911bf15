package dispatch

import (
	"context"
	"fmt"
)

// BodyLimit returns middleware that rejects bodies longer than maxBytes
// with StatusFailed and an error wrapping ErrBodyTooLarge.
func BodyLimit(maxBytes int) Middleware {
	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, req *Request) (Status, error) {
			if len(req.Body) > maxBytes {
				return StatusFailed, fmt.Errorf("%w: %d > %d bytes", ErrBodyTooLarge, len(req.Body), maxBytes)
			}
			return next(ctx, req)
		}
	}
}
