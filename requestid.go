package dispatch

import (
	"context"

	"github.com/google/uuid"
)

type requestID string

// RequestIDConfig configures the RequestID middleware.
type RequestIDConfig struct {
	Generator func() string // default: random UUID
}

// RequestID returns middleware that makes sure every request carries an
// ID. An ID already set on the request by the transport is kept. The ID
// is also stored in the context for GetRequestID.
func RequestID(cfg ...RequestIDConfig) Middleware {
	gen := uuid.NewString
	if len(cfg) > 0 && cfg[0].Generator != nil {
		gen = cfg[0].Generator
	}

	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, req *Request) (Status, error) {
			if req.ID == "" {
				req.ID = gen()
			}
			return next(WithValue(ctx, requestID(req.ID)), req)
		}
	}
}

// GetRequestID returns the request ID stored by the RequestID middleware.
func GetRequestID(ctx context.Context) string {
	id, _ := Value[requestID](ctx)
	return string(id)
}
