package dispatch

import (
	"context"
	"log/slog"
	"time"
)

// Logger returns middleware that logs each dispatch using the provided
// slog.Logger. Routing and strict extraction errors are logged at Warn.
func Logger(logger *slog.Logger) Middleware {
	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, req *Request) (Status, error) {
			start := time.Now()
			st, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("method", req.Method.String()),
				slog.String("path", req.Path.String()),
				slog.String("status", st.String()),
				slog.Duration("latency", time.Since(start)),
				slog.Int("size", len(req.Body)),
			}
			if id := GetRequestID(ctx); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			level := slog.LevelInfo
			if err != nil {
				level = slog.LevelWarn
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			logger.LogAttrs(ctx, level, "dispatch", attrs...)
			return st, err
		}
	}
}
