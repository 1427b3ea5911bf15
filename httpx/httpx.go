// Package httpx serves a dispatch.Server over HTTP. GET and POST requests
// to any path are turned into dispatch requests whose body is the raw
// request body; the outcome is reported as an HTTP status code with no
// response body on success.
package httpx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bjaus/dispatch"
)

// DefaultMaxBody is the request body limit applied when WithMaxBody is not
// given.
const DefaultMaxBody = 1 << 20

type config struct {
	maxBody  int64
	mounts   []mount
	profiler string
}

type mount struct {
	pattern string
	handler http.Handler
}

// Option configures NewHandler.
type Option func(*config)

// WithMaxBody sets the maximum request body size in bytes. Larger bodies
// get 413 Request Entity Too Large before dispatch.
func WithMaxBody(n int64) Option {
	return func(c *config) {
		c.maxBody = n
	}
}

// WithHandler mounts an extra HTTP handler, such as a metrics endpoint,
// alongside the dispatcher. Mounted patterns take precedence over
// dispatched paths.
func WithHandler(pattern string, h http.Handler) Option {
	return func(c *config) {
		c.mounts = append(c.mounts, mount{pattern: pattern, handler: h})
	}
}

// WithProfiler serves the net/http/pprof endpoints under prefix, for
// example "/debug" for /debug/pprof/.
func WithProfiler(prefix string) Option {
	return func(c *config) {
		c.profiler = prefix
	}
}

// NewHandler returns an http.Handler that dispatches to s.
func NewHandler(s *dispatch.Server, opts ...Option) http.Handler {
	cfg := config{maxBody: DefaultMaxBody}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)

	for _, m := range cfg.mounts {
		r.Handle(m.pattern, m.handler)
	}
	if cfg.profiler != "" {
		r.Mount(cfg.profiler, middleware.Profiler())
	}

	r.Get("/*", serve(s, dispatch.MethodGet, cfg.maxBody))
	r.Post("/*", serve(s, dispatch.MethodPost, cfg.maxBody))
	return r
}

func serve(s *dispatch.Server, m dispatch.Method, maxBody int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		req := &dispatch.Request{
			Method: m,
			Path:   dispatch.Path(r.URL.Path),
			Body:   body,
			ID:     middleware.GetReqID(r.Context()),
		}

		st, err := s.Dispatch(r.Context(), req)
		code := StatusCode(st, err)
		if err != nil {
			http.Error(w, err.Error(), code)
			return
		}
		w.WriteHeader(code)
	}
}

// StatusCode maps a dispatch outcome to an HTTP status code.
func StatusCode(st dispatch.Status, err error) int {
	var extractErr *dispatch.ExtractionError
	switch {
	case errors.Is(err, dispatch.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, dispatch.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, dispatch.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &extractErr):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	case err != nil:
		return http.StatusInternalServerError
	case st == dispatch.StatusSuccess:
		return http.StatusNoContent
	default:
		return http.StatusUnprocessableEntity
	}
}

// ListenAndServe starts an HTTP server on the given address.
// It blocks until the context is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
