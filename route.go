package dispatch

import (
	"cmp"
	"reflect"
	"strings"
)

// RouteInfo describes a registered route and the wire layout its handler
// expects.
type RouteInfo struct {
	Method Method
	Path   Path
	Args   []ArgInfo
	Result string

	// Size is the exact body length the handler consumes, or -1 when an
	// argument decodes itself and its length is not fixed.
	Size int
}

// ArgInfo describes one handler parameter. Size is -1 for Unmarshaler
// arguments.
type ArgInfo struct {
	Type string
	Size int
}

func newRouteInfo[A any, R Result](m Method, path Path) RouteInfo {
	ri := RouteInfo{
		Method: m,
		Path:   path,
		Result: reflect.TypeFor[R]().String(),
	}
	for _, t := range argTypes(reflect.TypeFor[A]()) {
		size := wireSize(t)
		ri.Args = append(ri.Args, ArgInfo{Type: t.String(), Size: size})
		switch {
		case size < 0 || ri.Size < 0:
			ri.Size = -1
		default:
			ri.Size += size
		}
	}
	return ri
}

// argTypes flattens a bundle type into its parameter types. A non-bundle
// type is a single parameter.
func argTypes(t reflect.Type) []reflect.Type {
	if b, ok := reflect.Zero(t).Interface().(bundle); ok {
		return b.argTypes()
	}
	return []reflect.Type{t}
}

func wireSize(t reflect.Type) int {
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return -1
	}
	if b, ok := reflect.Zero(t).Interface().(bundle); ok {
		total := 0
		for _, et := range b.argTypes() {
			n := wireSize(et)
			if n < 0 {
				return -1
			}
			total += n
		}
		return total
	}
	return scalarSize(t.Kind())
}

func compareRoutes(a, b RouteInfo) int {
	if c := cmp.Compare(a.Method, b.Method); c != 0 {
		return c
	}
	return strings.Compare(string(a.Path), string(b.Path))
}
