package dispatch

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"unsafe"
)

// Extractor decodes a T from the front of a payload. On failure the cursor
// is left where it was.
type Extractor[T any] func(p *Payload) (T, error)

// Unmarshaler is implemented by argument types that decode themselves.
// It is the extension point for anything that is not a fixed-width scalar.
type Unmarshaler interface {
	UnmarshalPayload(p *Payload) error
}

// Scalar is the set of fixed-width types decoded straight from payload
// bytes. int, uint and uintptr always occupy 8 bytes on the wire.
type Scalar interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64
}

// Void is the argument bundle of a handler that takes no parameters. It
// always extracts successfully and consumes nothing.
type Void struct{}

func (Void) bundleExtractor() (any, error) {
	return Extractor[Void](func(*Payload) (Void, error) { return Void{}, nil }), nil
}

func (Void) argTypes() []reflect.Type { return nil }

// bundle is implemented by Void and the generated ArgsN types.
type bundle interface {
	bundleExtractor() (any, error)
	argTypes() []reflect.Type
}

var unmarshalerType = reflect.TypeFor[Unmarshaler]()

// ExtractorFor resolves the extractor for T. Bundles extract their
// elements in order; types whose pointer implements Unmarshaler decode
// themselves; scalar kinds are read little-endian. Anything else fails
// with ErrUnsupportedType.
func ExtractorFor[T any]() (Extractor[T], error) {
	var zero T
	if b, ok := any(zero).(bundle); ok {
		ex, err := b.bundleExtractor()
		if err != nil {
			return nil, err
		}
		if typed, ok := ex.(Extractor[T]); ok {
			return typed, nil
		}
	}

	typ := reflect.TypeFor[T]()
	if reflect.PointerTo(typ).Implements(unmarshalerType) {
		return unmarshalerExtractor[T](typ), nil
	}
	if ex, ok := basicExtractor[T](); ok {
		return ex, nil
	}
	if scalarSize(typ.Kind()) > 0 {
		return namedScalarExtractor[T](typ), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
}

// Read decodes one little-endian scalar from p.
func Read[T Scalar](p *Payload) (T, error) {
	k := reflect.TypeFor[T]().Kind()
	b, err := p.Next(scalarSize(k))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("read %s: %w", k, err)
	}
	switch {
	case k == reflect.Float32:
		return T(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
	case isFloat(k):
		return T(decodeFloat(b)), nil
	case isSigned(k):
		return T(decodeInt(b)), nil
	default:
		return T(decodeUint(b)), nil
	}
}

func basicExtractor[T any]() (Extractor[T], bool) {
	var ex any
	switch any(*new(T)).(type) {
	case int8:
		ex = Extractor[int8](Read[int8])
	case int16:
		ex = Extractor[int16](Read[int16])
	case int32:
		ex = Extractor[int32](Read[int32])
	case int64:
		ex = Extractor[int64](Read[int64])
	case int:
		ex = Extractor[int](Read[int])
	case uint8:
		ex = Extractor[uint8](Read[uint8])
	case uint16:
		ex = Extractor[uint16](Read[uint16])
	case uint32:
		ex = Extractor[uint32](Read[uint32])
	case uint64:
		ex = Extractor[uint64](Read[uint64])
	case uint:
		ex = Extractor[uint](Read[uint])
	case uintptr:
		ex = Extractor[uintptr](Read[uintptr])
	case float32:
		ex = Extractor[float32](Read[float32])
	case float64:
		ex = Extractor[float64](Read[float64])
	}
	typed, ok := ex.(Extractor[T])
	return typed, ok
}

// namedScalarExtractor handles defined types such as `type BookNo uint64`,
// which the Scalar fast path cannot see through an `any` type parameter.
func namedScalarExtractor[T any](typ reflect.Type) Extractor[T] {
	k := typ.Kind()
	size := scalarSize(k)
	return func(p *Payload) (T, error) {
		var v T
		b, err := p.Next(size)
		if err != nil {
			return v, fmt.Errorf("read %s: %w", typ, err)
		}
		rv := reflect.ValueOf(&v).Elem()
		switch {
		case k == reflect.Float32:
			// SetFloat widens through float64, which quiets signaling NaNs.
			*(*float32)(unsafe.Pointer(&v)) = math.Float32frombits(binary.LittleEndian.Uint32(b))
		case isFloat(k):
			rv.SetFloat(decodeFloat(b))
		case isSigned(k):
			rv.SetInt(decodeInt(b))
		default:
			rv.SetUint(decodeUint(b))
		}
		return v, nil
	}
}

func unmarshalerExtractor[T any](typ reflect.Type) Extractor[T] {
	return func(p *Payload) (T, error) {
		var v T
		mark := p.Offset()
		u, _ := any(&v).(Unmarshaler)
		if err := u.UnmarshalPayload(p); err != nil {
			p.rewind(mark)
			return v, fmt.Errorf("decode %s: %w", typ, err)
		}
		return v, nil
	}
}

func scalarSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Int, reflect.Uint, reflect.Uintptr, reflect.Float64:
		return 8
	default:
		return 0
	}
}

func isFloat(k reflect.Kind) bool { return k == reflect.Float32 || k == reflect.Float64 }

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		return true
	default:
		return false
	}
}

func decodeUint(b []byte) uint64 {
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}

func decodeInt(b []byte) int64 {
	switch len(b) {
	case 1:
		return int64(int8(b[0]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(b)))
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(b)))
	default:
		return int64(binary.LittleEndian.Uint64(b))
	}
}

func decodeFloat(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}
