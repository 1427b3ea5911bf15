package dispatch

import (
	"fmt"
	"strings"
)

// Path is a route key. Paths with identical text are the same key.
type Path string

// PathOf builds a Path from any string-like value.
func PathOf[S ~string | ~[]byte](s S) Path {
	return Path(s)
}

func (p Path) String() string { return string(p) }

// Method selects the route table a request is dispatched against.
type Method uint8

// Supported methods.
const (
	MethodGet Method = iota
	MethodPost

	methodCount
)

// String returns the lowercase method name used in diagnostics.
func (m Method) String() string {
	switch m {
	case MethodGet:
		return "get"
	case MethodPost:
		return "post"
	default:
		return fmt.Sprintf("method(%d)", uint8(m))
	}
}

func (m Method) valid() bool { return m < methodCount }

// ParseMethod parses a method name, ignoring case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "get":
		return MethodGet, nil
	case "post":
		return MethodPost, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, s)
	}
}

// Status is the outcome of handling a request.
type Status uint8

// Status values.
const (
	StatusSuccess Status = iota
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Status implements Result, so handlers may return a Status directly.
func (s Status) Status() Status { return s }

// Result is implemented by handler return values that can be reported as a
// Status.
type Result interface {
	Status() Status
}
