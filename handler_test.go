package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/dispatch"
)

type outcome bool

func (o outcome) Status() dispatch.Status {
	if o {
		return dispatch.StatusSuccess
	}
	return dispatch.StatusFailed
}

func TestHandler_Call_forwards_arguments(t *testing.T) {
	t.Parallel()

	var got []any
	f := dispatch.Func3[uint8, int64, float32, outcome](func(a uint8, b int64, c float32) outcome {
		got = append(got, a, b, c)
		return c > 0
	})

	h := dispatch.NewHandler[dispatch.Args3[uint8, int64, float32], outcome](f)
	res := h.Call(dispatch.Args3[uint8, int64, float32]{V0: 1, V1: -2, V2: 0.5})

	assert.Equal(t, outcome(true), res)
	assert.Equal(t, []any{uint8(1), int64(-2), float32(0.5)}, got)
}

func TestFunc0_discards_void(t *testing.T) {
	t.Parallel()

	calls := 0
	h := dispatch.NewHandler[dispatch.Void, dispatch.Status](dispatch.Func0[dispatch.Status](func() dispatch.Status {
		calls++
		return dispatch.StatusFailed
	}))

	assert.Equal(t, dispatch.StatusFailed, h.Call(dispatch.Void{}))
	assert.Equal(t, 1, calls)
}

func TestFunc10_argument_order(t *testing.T) {
	t.Parallel()

	type args = dispatch.Args10[int8, int8, int8, int8, int8, int8, int8, int8, int8, int8]

	var order []int8
	f := dispatch.Func10[int8, int8, int8, int8, int8, int8, int8, int8, int8, int8, dispatch.Status](
		func(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9 int8) dispatch.Status {
			order = []int8{a0, a1, a2, a3, a4, a5, a6, a7, a8, a9}
			return dispatch.StatusSuccess
		},
	)

	f.Call(args{V0: 0, V1: 1, V2: 2, V3: 3, V4: 4, V5: 5, V6: 6, V7: 7, V8: 8, V9: 9})
	assert.Equal(t, []int8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, order)
}
