package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig configures the RateLimit middleware.
type RateLimitConfig struct {
	Rate            float64                   // requests per second
	Burst           int                       // max burst
	KeyFunc         func(req *Request) string // default: method and path
	OnLimit         DispatchFunc              // default: StatusFailed, ErrRateLimited
	CleanupInterval time.Duration             // how often to prune idle limiters (default: 1m)
	MaxIdle         time.Duration             // remove limiters idle longer than this (default: 5m)
}

// RateLimit returns middleware that applies per-key rate limiting.
func RateLimit(cfg RateLimitConfig) Middleware {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(req *Request) string {
			return req.Method.String() + " " + req.Path.String()
		}
	}
	if cfg.OnLimit == nil {
		cfg.OnLimit = func(_ context.Context, req *Request) (Status, error) {
			return StatusFailed, fmt.Errorf("%w: %s %s", ErrRateLimited, req.Method, req.Path)
		}
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	maxIdle := cfg.MaxIdle
	if maxIdle <= 0 {
		maxIdle = 5 * time.Minute
	}

	var (
		mu          sync.Mutex
		limiters    = make(map[string]*limiterEntry)
		lastCleanup time.Time
	)

	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, req *Request) (Status, error) {
			key := cfg.KeyFunc(req)

			mu.Lock()
			now := time.Now()

			// Lazy cleanup of expired limiters.
			if now.Sub(lastCleanup) >= cleanupInterval {
				for k, e := range limiters {
					if now.Sub(e.lastSeen) > maxIdle {
						delete(limiters, k)
					}
				}
				lastCleanup = now
			}

			entry, ok := limiters[key]
			if !ok {
				entry = &limiterEntry{
					limiter: rate.NewLimiter(rate.Limit(cfg.Rate), cfg.Burst),
				}
				limiters[key] = entry
			}
			entry.lastSeen = now
			mu.Unlock()

			if !entry.limiter.Allow() {
				return cfg.OnLimit(ctx, req)
			}

			return next(ctx, req)
		}
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}
