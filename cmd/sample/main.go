// Command sample serves the reference book/bill routes over HTTP.
//
// Run:
//
//	go run ./cmd/sample
//	go run ./cmd/sample -config sample.toml
//
// Print the route manifest:
//
//	go run ./cmd/sample -routes                    # YAML to stdout
//	go run ./cmd/sample -routes -o routes.yaml     # write to file
//
// Then explore (bodies are little-endian, see the manifest for layout):
//
//	GET  http://localhost:8080/          empty body
//	GET  http://localhost:8080/book      u64 book number
//	POST http://localhost:8080/bill      u64 bill number, f32 price
//	GET  http://localhost:8080/metrics   Prometheus metrics
//	GET  http://localhost:8080/debug/pprof/   profiles, when profiler = true
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bjaus/dispatch"
	"github.com/bjaus/dispatch/httpx"
	"github.com/bjaus/dispatch/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "Path to a TOML config file")
	envFlag := flag.String("env", ".env", "Dotenv file with DISPATCH_* overrides")
	addrFlag := flag.String("addr", "", "Listen address (overrides config)")
	routesFlag := flag.Bool("routes", false, "Print the route manifest as YAML and exit")
	outFlag := flag.String("o", "", "Output file for the manifest (requires -routes)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	env, err := config.ReadEnv(*envFlag)
	if err == nil {
		err = cfg.Overlay(env)
	}
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}

	level, err := cfg.Level()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	logger := newLogger(level)
	slog.SetDefault(logger)

	reg := prometheus.NewRegistry()
	s := newServer(cfg, logger, reg)

	if *routesFlag {
		if err := writeRoutes(s, *outFlag); err != nil {
			slog.Error("manifest generation failed", "err", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	hopts := []httpx.Option{
		httpx.WithMaxBody(int64(cfg.BodyLimit)),
		httpx.WithHandler("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	}
	if cfg.Profiler {
		hopts = append(hopts, httpx.WithProfiler("/debug"))
	}
	h := httpx.NewHandler(s, hopts...)

	slog.Info("starting server", "addr", cfg.Addr, "strict", cfg.StrictExtraction)

	if err := httpx.ListenAndServe(ctx, cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "err", err)
	}

	slog.Info("server stopped")
}

// newLogger writes text to a terminal and JSON otherwise.
func newLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func newServer(cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) *dispatch.Server {
	opts := []dispatch.Option{dispatch.WithLogger(logger)}
	if cfg.StrictExtraction {
		opts = append(opts, dispatch.WithStrictExtraction())
	}
	if cfg.ExactPayload {
		opts = append(opts, dispatch.WithExactPayload())
	}
	s := dispatch.New(opts...)

	s.Use(dispatch.Recovery(logger))
	s.Use(dispatch.RequestID())
	s.Use(dispatch.Logger(logger))
	s.Use(dispatch.Metrics(reg))
	s.Use(dispatch.BodyLimit(cfg.BodyLimit))
	if cfg.Timeout > 0 {
		s.Use(dispatch.Timeout(time.Duration(cfg.Timeout)))
	}
	if cfg.RateLimit.Rate > 0 {
		s.Use(dispatch.RateLimit(dispatch.RateLimitConfig{
			Rate:  cfg.RateLimit.Rate,
			Burst: cfg.RateLimit.Burst,
		}))
	}

	dispatch.Get0(s, "/", success)
	dispatch.Get1(s, "/book", queryBook)
	dispatch.Post2(s, "/bill", postBill)

	return s
}

func writeRoutes(s *dispatch.Server, outFile string) error {
	w := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile) //nolint:gosec // user-provided CLI flag
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				slog.Error("failed to close output file", "err", err)
			}
		}()
		w = f
	}
	return s.WriteRoutesYAML(w)
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func success() dispatch.Status {
	return dispatch.StatusSuccess
}

func queryBook(bookNo uint64) dispatch.Status {
	slog.Info("query book", "book_no", bookNo)
	return dispatch.StatusSuccess
}

func postBill(billNo uint64, price float32) dispatch.Status {
	slog.Info("post bill", "bill_no", billNo, "price", price)
	return dispatch.StatusSuccess
}
