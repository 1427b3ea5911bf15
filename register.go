package dispatch

import (
	"fmt"
	"log/slog"
)

// Registrar is the interface accepted by the registration functions.
// Both *Server and *Group implement it.
type Registrar interface {
	addRoute(ri RouteInfo, build serviceBuilder) error
}

// serviceBuilder constructs a route's service once the owning server's
// logger and payload policy are known.
type serviceBuilder func(logger *slog.Logger, exact bool) (checkedService, error)

// Register adds h under method and path. The handler's argument and result
// types are resolved here and erased; a later registration for the same
// method and path replaces this one. It fails with ErrUnsupportedType if
// an argument type cannot be extracted. path may be any string type.
func Register[A any, R Result, P ~string](reg Registrar, method Method, path P, h Handler[A, R]) error {
	if !method.valid() {
		return fmt.Errorf("register %s %s: %w", method, path, ErrUnsupportedMethod)
	}

	ri := newRouteInfo[A, R](method, Path(path))
	build := func(logger *slog.Logger, exact bool) (checkedService, error) {
		svc, err := newService(h, logger, exact)
		if err != nil {
			return nil, err
		}
		return svc, nil
	}

	if err := reg.addRoute(ri, build); err != nil {
		return fmt.Errorf("register %s %s: %w", method, path, err)
	}
	return nil
}

// mustRegister is used by the GetN/PostN helpers. A handler that cannot be
// registered is a setup bug, so it panics.
func mustRegister[A any, R Result](reg Registrar, method Method, path Path, h Handler[A, R]) {
	if err := Register(reg, method, path, h); err != nil {
		panic(err)
	}
}

// Get0 registers a parameterless GET handler.
func Get0[R Result, P ~string](reg Registrar, path P, f func() R) {
	mustRegister(reg, MethodGet, Path(path), NewHandler[Void, R](Func0[R](f)))
}

// Post0 registers a parameterless POST handler.
func Post0[R Result, P ~string](reg Registrar, path P, f func() R) {
	mustRegister(reg, MethodPost, Path(path), NewHandler[Void, R](Func0[R](f)))
}
