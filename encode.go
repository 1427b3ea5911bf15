package dispatch

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
)

// Marshaler is implemented by argument types that encode themselves. It is
// the counterpart of Unmarshaler.
type Marshaler interface {
	AppendPayload(b []byte) ([]byte, error)
}

// AppendScalar appends the little-endian wire form of v to b.
func AppendScalar[T Scalar](b []byte, v T) []byte {
	k := reflect.TypeFor[T]().Kind()
	switch {
	case k == reflect.Float32:
		return binary.LittleEndian.AppendUint32(b, math.Float32bits(float32(v)))
	case isFloat(k):
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(float64(v)))
	case isSigned(k):
		return appendUint(b, uint64(int64(v)), scalarSize(k))
	default:
		return appendUint(b, uint64(v), scalarSize(k))
	}
}

// Encode lays out vals back to back in the wire format a handler with the
// same parameter list expects.
func Encode(vals ...any) ([]byte, error) {
	var b []byte
	for i, v := range vals {
		var err error
		if b, err = appendValue(b, v); err != nil {
			return nil, fmt.Errorf("encode argument %d: %w", i, err)
		}
	}
	return b, nil
}

func appendValue(b []byte, v any) ([]byte, error) {
	if m, ok := v.(Marshaler); ok {
		return m.AppendPayload(b)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedType)
	}
	k := rv.Kind()
	size := scalarSize(k)
	switch {
	case size == 0:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
	case k == reflect.Float32:
		return binary.LittleEndian.AppendUint32(b, float32Bits(rv)), nil
	case isFloat(k):
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(rv.Float())), nil
	case isSigned(k):
		return appendUint(b, uint64(rv.Int()), size), nil
	default:
		return appendUint(b, rv.Uint(), size), nil
	}
}

func appendUint(b []byte, u uint64, size int) []byte {
	switch size {
	case 1:
		return append(b, byte(u))
	case 2:
		return binary.LittleEndian.AppendUint16(b, uint16(u))
	case 4:
		return binary.LittleEndian.AppendUint32(b, uint32(u))
	default:
		return binary.LittleEndian.AppendUint64(b, u)
	}
}

// float32Bits returns the bits of a float32-kind value without widening
// it through Value.Float, which would quiet signaling NaNs.
func float32Bits(rv reflect.Value) uint32 {
	cp := reflect.New(rv.Type())
	cp.Elem().Set(rv)
	return math.Float32bits(*(*float32)(cp.UnsafePointer()))
}
