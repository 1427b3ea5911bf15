package dispatch

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Server holds one route table per method. Routes are added during setup;
// once dispatching starts the tables are only read. The zero value is
// ready to use with default options.
type Server struct {
	tables     [methodCount]map[Path]*route
	middleware []Middleware

	logger *slog.Logger
	strict bool
	exact  bool

	mu sync.Mutex
}

type route struct {
	info RouteInfo
	svc  checkedService
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for extraction failures and route
// registration. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithStrictExtraction makes Dispatch return an *ExtractionError when a
// handler's arguments cannot be decoded, instead of only logging it.
func WithStrictExtraction() Option {
	return func(s *Server) {
		s.strict = true
	}
}

// WithExactPayload rejects request bodies that are longer than the
// handler's arguments. Unread bytes are otherwise ignored.
func WithExactPayload() Option {
	return func(s *Server) {
		s.exact = true
	}
}

// New creates a Server with the given options.
func New(opts ...Option) *Server {
	s := &Server{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	for m := range s.tables {
		s.tables[m] = make(map[Path]*route)
	}
	return s
}

// Use adds middleware around Dispatch. Middleware is applied in the order
// added and must be installed before dispatching starts.
func (s *Server) Use(mw ...Middleware) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.middleware = append(s.middleware, mw...)
}

// Dispatch routes req to its handler. It returns a *NotFoundError
// (matching ErrNotFound) when nothing is registered for the request's
// method and path; the returned Status is then StatusFailed and no handler
// runs. Safe for concurrent use once registration is complete.
//
// Middleware sees the route the request resolves to through MatchedRoute.
func (s *Server) Dispatch(ctx context.Context, req *Request) (Status, error) {
	var m matchedRoute
	if rt, ok := s.lookup(req.Method, req.Path); ok {
		m = matchedRoute{info: rt.info, ok: true}
	}
	ctx = WithValue(ctx, m)

	next := DispatchFunc(s.dispatch)
	for i := len(s.middleware) - 1; i >= 0; i-- {
		next = s.middleware[i](next)
	}
	return next(ctx, req)
}

func (s *Server) dispatch(_ context.Context, req *Request) (Status, error) {
	rt, ok := s.lookup(req.Method, req.Path)
	if !ok {
		return StatusFailed, &NotFoundError{Method: req.Method, Path: req.Path}
	}

	st, err := rt.svc.handle(NewPayload(req.Body))
	if err != nil && s.strict {
		return st, &ExtractionError{Method: req.Method, Path: req.Path, Err: err}
	}
	return st, nil
}

type matchedRoute struct {
	info RouteInfo
	ok   bool
}

// MatchedRoute returns the route registered for the request being
// dispatched with ctx. It reports false when the request matches no route.
func MatchedRoute(ctx context.Context) (RouteInfo, bool) {
	m, _ := Value[matchedRoute](ctx)
	return m.info, m.ok
}

func (s *Server) lookup(m Method, p Path) (*route, bool) {
	if !m.valid() {
		return nil, false
	}
	rt, ok := s.tables[m][p]
	return rt, ok
}

// Routes returns the registered routes ordered by method, then path.
func (s *Server) Routes() []RouteInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []RouteInfo
	for _, table := range s.tables {
		for _, rt := range table {
			out = append(out, rt.info)
		}
	}
	slices.SortFunc(out, compareRoutes)
	return out
}

// addRoute builds the route's service and stores it, replacing any route
// already registered under the same method and path.
func (s *Server) addRoute(ri RouteInfo, build serviceBuilder) error {
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		slog.String("method", ri.Method.String()),
		slog.String("path", ri.Path.String()),
	)
	svc, err := build(logger, s.exact)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tables[ri.Method] == nil {
		s.tables[ri.Method] = make(map[Path]*route)
	}
	if _, ok := s.tables[ri.Method][ri.Path]; ok {
		logger.Debug("replacing route")
	}
	s.tables[ri.Method][ri.Path] = &route{info: ri, svc: svc}
	return nil
}
