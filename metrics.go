package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedPath labels requests that matched no registered route, whatever
// stopped them, so unknown paths cannot blow up label cardinality.
const unmatchedPath = "unmatched"

// Metrics returns middleware that records dispatch counts and latency in
// reg. The collectors are registered immediately; registering twice on the
// same registry panics.
func Metrics(reg prometheus.Registerer) Middleware {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dispatch",
			Name:      "requests_total",
			Help:      "Dispatched requests by method, path and outcome.",
		},
		[]string{"method", "path", "outcome"},
	)
	latency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dispatch",
			Name:      "duration_seconds",
			Help:      "Dispatch latency by method.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	reg.MustRegister(requests, latency)

	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, req *Request) (Status, error) {
			start := time.Now()
			st, err := next(ctx, req)

			method, path, outcome := req.Method.String(), unmatchedPath, st.String()
			if ri, ok := MatchedRoute(ctx); ok {
				path = ri.Path.String()
			}
			switch {
			case errors.Is(err, ErrNotFound):
				outcome = "not_found"
			case err != nil:
				outcome = "error"
			}

			requests.WithLabelValues(method, path, outcome).Inc()
			latency.WithLabelValues(method).Observe(time.Since(start).Seconds())
			return st, err
		}
	}
}
