package dispatch

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrNotFound          = errors.New("handler not found")
	ErrInsufficientBytes = errors.New("insufficient bytes")
	ErrTrailingBytes     = errors.New("trailing bytes")
	ErrUnsupportedType   = errors.New("unsupported argument type")
	ErrUnsupportedMethod = errors.New("unsupported method")
	ErrBodyTooLarge      = errors.New("body too large")
	ErrRateLimited       = errors.New("rate limited")
	ErrHandlerPanic      = errors.New("handler panic")
)

// NotFoundError is returned by Dispatch when no handler is registered for
// the request's method and path.
type NotFoundError struct {
	Method Method
	Path   Path
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("missing %s handler for path %s", e.Method, e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ExtractionError is returned by Dispatch when the server was built with
// WithStrictExtraction and the handler's arguments could not be decoded.
// The handler was not invoked.
type ExtractionError struct {
	Method Method
	Path   Path
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ExtractionError) Unwrap() error { return e.Err }
