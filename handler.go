package dispatch

// Factory is the invocation capability: a callable that takes its
// arguments packed into a single bundle value A.
type Factory[A any, R Result] interface {
	Call(args A) R
}

// Handler binds a callable to its argument bundle and result types. The
// pairing is fixed when the handler is built and never checked again.
type Handler[A any, R Result] struct {
	f Factory[A, R]
}

// NewHandler wraps f.
func NewHandler[A any, R Result](f Factory[A, R]) Handler[A, R] {
	return Handler[A, R]{f: f}
}

// Call invokes the wrapped callable.
func (h Handler[A, R]) Call(args A) R {
	return h.f.Call(args)
}

// Func0 adapts a parameterless function to Factory.
type Func0[R Result] func() R

// Call discards the empty bundle and calls f.
func (f Func0[R]) Call(Void) R { return f() }
