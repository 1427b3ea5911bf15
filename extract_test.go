package dispatch_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dispatch"
)

type bookNo uint64

type celsius float32

// point decodes two int32 coordinates.
type point struct {
	X, Y int32
}

func (pt *point) UnmarshalPayload(p *dispatch.Payload) error {
	x, err := dispatch.Read[int32](p)
	if err != nil {
		return err
	}
	y, err := dispatch.Read[int32](p)
	if err != nil {
		return err
	}
	pt.X, pt.Y = x, y
	return nil
}

// label is a u8 length-prefixed string.
type label string

var errEmptyLabel = errors.New("empty label")

func (l *label) UnmarshalPayload(p *dispatch.Payload) error {
	n, err := dispatch.Read[uint8](p)
	if err != nil {
		return err
	}
	if n == 0 {
		return errEmptyLabel
	}
	b, err := p.Next(int(n))
	if err != nil {
		return err
	}
	*l = label(b)
	return nil
}

func (l label) AppendPayload(b []byte) ([]byte, error) {
	if len(l) == 0 || len(l) > math.MaxUint8 {
		return nil, errEmptyLabel
	}
	b = append(b, byte(len(l)))
	return append(b, l...), nil
}

func extract[T any](t *testing.T, body []byte) (T, *dispatch.Payload, error) {
	t.Helper()
	ex, err := dispatch.ExtractorFor[T]()
	require.NoError(t, err)
	p := dispatch.NewPayload(body)
	v, err := ex(p)
	return v, p, err
}

func TestExtract_integer_bundle(t *testing.T) {
	t.Parallel()

	var buf []byte
	buf = dispatch.AppendScalar(buf, uint8(10))
	buf = dispatch.AppendScalar(buf, uint16(10))
	buf = dispatch.AppendScalar(buf, uint32(10))
	buf = dispatch.AppendScalar(buf, uint64(10))
	buf = dispatch.AppendScalar(buf, uint(10))
	buf = dispatch.AppendScalar(buf, int8(-10))
	buf = dispatch.AppendScalar(buf, int16(-10))
	buf = dispatch.AppendScalar(buf, int32(-10))
	buf = dispatch.AppendScalar(buf, int64(-10))
	buf = dispatch.AppendScalar(buf, int(-10))
	require.Len(t, buf, 46)

	type bundle = dispatch.Args10[uint8, uint16, uint32, uint64, uint, int8, int16, int32, int64, int]
	got, p, err := extract[bundle](t, buf)
	require.NoError(t, err)
	assert.Equal(t, bundle{V0: 10, V1: 10, V2: 10, V3: 10, V4: 10, V5: -10, V6: -10, V7: -10, V8: -10, V9: -10}, got)
	assert.Equal(t, 0, p.Len())
}

func TestExtract_float_bundle(t *testing.T) {
	t.Parallel()

	buf := dispatch.AppendScalar(nil, float32(1.5))
	buf = dispatch.AppendScalar(buf, 1.6)

	got, p, err := extract[dispatch.Args2[float32, float64]](t, buf)
	require.NoError(t, err)
	assert.Equal(t, dispatch.Args2[float32, float64]{V0: 1.5, V1: 1.6}, got)
	assert.Equal(t, 0, p.Len())
}

func TestExtract_wire_layout_is_little_endian(t *testing.T) {
	t.Parallel()

	got, _, err := extract[dispatch.Args2[uint16, int32]](t, []byte{0x34, 0x12, 0xfe, 0xff, 0xff, 0xff})
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), got.V0)
	assert.Equal(t, int32(-2), got.V1)
}

func TestExtract_round_trip(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		want := dispatch.Args4[uint64, int16, float64, uintptr]{
			V0: r.Uint64(),
			V1: int16(r.IntN(math.MaxUint16) - math.MaxInt16),
			V2: r.NormFloat64(),
			V3: uintptr(r.Uint32()),
		}
		body, err := dispatch.Encode(want.V0, want.V1, want.V2, want.V3)
		require.NoError(t, err)
		require.Len(t, body, 8+2+8+8)

		got, p, err := extract[dispatch.Args4[uint64, int16, float64, uintptr]](t, body)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 0, p.Len())
	}
}

func TestExtract_named_scalars(t *testing.T) {
	t.Parallel()

	body, err := dispatch.Encode(bookNo(42), celsius(-3.5))
	require.NoError(t, err)

	got, p, err := extract[dispatch.Args2[bookNo, celsius]](t, body)
	require.NoError(t, err)
	assert.Equal(t, bookNo(42), got.V0)
	assert.Equal(t, celsius(-3.5), got.V1)
	assert.Equal(t, 0, p.Len())
}

func TestExtract_unmarshaler(t *testing.T) {
	t.Parallel()

	body, err := dispatch.Encode(int32(3), int32(-4), label("hi"), uint8(7))
	require.NoError(t, err)

	got, p, err := extract[dispatch.Args3[point, label, uint8]](t, body)
	require.NoError(t, err)
	assert.Equal(t, point{X: 3, Y: -4}, got.V0)
	assert.Equal(t, label("hi"), got.V1)
	assert.Equal(t, uint8(7), got.V2)
	assert.Equal(t, 0, p.Len())
}

func TestExtract_unmarshaler_failure_rewinds(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body    []byte
		wantErr error
	}{
		"second field short": {
			body:    []byte{1, 0, 0, 0, 2, 0},
			wantErr: dispatch.ErrInsufficientBytes,
		},
		"custom error": {
			body:    []byte{1, 0, 0, 0, 2, 0, 0, 0, 0},
			wantErr: errEmptyLabel,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, p, err := extract[dispatch.Args2[point, label]](t, tc.body)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, len(tc.body), p.Len())
		})
	}
}

func TestExtract_insufficient_bytes(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		extract func(p *dispatch.Payload) error
		body    []byte
	}{
		"uint64 from 7 bytes": {
			extract: func(p *dispatch.Payload) error { _, err := dispatch.Read[uint64](p); return err },
			body:    make([]byte, 7),
		},
		"float32 from empty": {
			extract: func(p *dispatch.Payload) error { _, err := dispatch.Read[float32](p); return err },
		},
		"named scalar from 3 bytes": {
			extract: func(p *dispatch.Payload) error {
				ex, err := dispatch.ExtractorFor[bookNo]()
				if err != nil {
					return err
				}
				_, err = ex(p)
				return err
			},
			body: make([]byte, 3),
		},
		"bundle fails on second element": {
			extract: func(p *dispatch.Payload) error {
				ex, err := dispatch.ExtractorFor[dispatch.Args2[uint64, float32]]()
				if err != nil {
					return err
				}
				_, err = ex(p)
				return err
			},
			body: make([]byte, 10),
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := dispatch.NewPayload(tc.body)
			err := tc.extract(p)
			require.ErrorIs(t, err, dispatch.ErrInsufficientBytes)
			assert.Equal(t, len(tc.body), p.Len())
		})
	}
}

func TestExtract_void_always_succeeds(t *testing.T) {
	t.Parallel()

	tests := map[string][]byte{
		"empty":     nil,
		"non-empty": {1, 2, 3},
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, p, err := extract[dispatch.Void](t, body)
			require.NoError(t, err)
			assert.Equal(t, dispatch.Void{}, got)
			assert.Equal(t, len(body), p.Len())
		})
	}
}

func TestExtractorFor_unsupported(t *testing.T) {
	t.Parallel()

	tests := map[string]func() error{
		"string": func() error { _, err := dispatch.ExtractorFor[string](); return err },
		"slice":  func() error { _, err := dispatch.ExtractorFor[[]byte](); return err },
		"bool":   func() error { _, err := dispatch.ExtractorFor[bool](); return err },
		"error":  func() error { _, err := dispatch.ExtractorFor[error](); return err },
		"bundle element": func() error {
			_, err := dispatch.ExtractorFor[dispatch.Args3[uint8, uint16, string]]()
			return err
		},
	}

	for name, resolve := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, resolve(), dispatch.ErrUnsupportedType)
		})
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	p := dispatch.NewPayload([]byte{0xff, 0xff, 0xff, 0xff, 0x01})

	i, err := dispatch.Read[int16](p)
	require.NoError(t, err)
	assert.Equal(t, int16(-1), i)

	u, err := dispatch.Read[uint16](p)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xffff), u)

	b, err := dispatch.Read[bookNo](p)
	require.ErrorIs(t, err, dispatch.ErrInsufficientBytes)
	assert.Zero(t, b)
	assert.Equal(t, 1, p.Len())
}

func TestExtract_float32_bits_preserved(t *testing.T) {
	t.Parallel()

	const signalingNaN = 0x7f800001
	body := []byte{0x01, 0x00, 0x80, 0x7f}

	tests := map[string]struct {
		read func(p *dispatch.Payload) (uint32, error)
	}{
		"Read": {
			read: func(p *dispatch.Payload) (uint32, error) {
				v, err := dispatch.Read[float32](p)
				return math.Float32bits(v), err
			},
		},
		"Read named": {
			read: func(p *dispatch.Payload) (uint32, error) {
				v, err := dispatch.Read[celsius](p)
				return math.Float32bits(float32(v)), err
			},
		},
		"extractor": {
			read: func(p *dispatch.Payload) (uint32, error) {
				ex, err := dispatch.ExtractorFor[float32]()
				if err != nil {
					return 0, err
				}
				v, err := ex(p)
				return math.Float32bits(v), err
			},
		},
		"named extractor": {
			read: func(p *dispatch.Payload) (uint32, error) {
				ex, err := dispatch.ExtractorFor[celsius]()
				if err != nil {
					return 0, err
				}
				v, err := ex(p)
				return math.Float32bits(float32(v)), err
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := dispatch.NewPayload(body)
			bits, err := tc.read(p)
			require.NoError(t, err)
			assert.Equal(t, uint32(signalingNaN), bits)
			assert.Equal(t, 0, p.Len())
		})
	}
}

func TestScalarSize(t *testing.T) {
	t.Parallel()

	tests := map[reflect.Kind]int{
		reflect.Int8:    1,
		reflect.Uint8:   1,
		reflect.Int16:   2,
		reflect.Uint16:  2,
		reflect.Int32:   4,
		reflect.Uint32:  4,
		reflect.Float32: 4,
		reflect.Int64:   8,
		reflect.Uint64:  8,
		reflect.Int:     8,
		reflect.Uint:    8,
		reflect.Uintptr: 8,
		reflect.Float64: 8,
		reflect.Bool:    0,
		reflect.String:  0,
		reflect.Struct:  0,
	}

	for kind, want := range tests {
		t.Run(kind.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, want, dispatch.ScalarSize(kind))
		})
	}
}
