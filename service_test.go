package dispatch_test

import (
	"bytes"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dispatch"
)

func TestNewService_Handle(t *testing.T) {
	t.Parallel()

	var gotBill uint64
	var gotPrice float32
	h := dispatch.NewHandler[dispatch.Args2[uint64, float32], dispatch.Status](
		dispatch.Func2[uint64, float32, dispatch.Status](func(bill uint64, price float32) dispatch.Status {
			gotBill, gotPrice = bill, price
			return dispatch.StatusSuccess
		}),
	)

	svc, err := dispatch.NewService(h, nil)
	require.NoError(t, err)

	body, err := dispatch.Encode(uint64(20), float32(1.2))
	require.NoError(t, err)

	assert.Equal(t, dispatch.StatusSuccess, svc.Handle(dispatch.NewPayload(body)))
	assert.Equal(t, uint64(20), gotBill)
	assert.Equal(t, float32(1.2), gotPrice)
}

func TestNewService_extraction_failure(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	called := false
	h := dispatch.NewHandler[dispatch.Args1[uint64], dispatch.Status](
		dispatch.Func1[uint64, dispatch.Status](func(uint64) dispatch.Status {
			called = true
			return dispatch.StatusSuccess
		}),
	)

	svc, err := dispatch.NewService(h, logger)
	require.NoError(t, err)

	p := dispatch.NewPayload([]byte{1, 2, 3})
	assert.Equal(t, dispatch.StatusFailed, svc.Handle(p))
	assert.False(t, called)
	assert.Equal(t, 3, p.Len())

	out := buf.String()
	assert.Contains(t, out, "argument extraction failed")
	assert.Contains(t, out, "insufficient bytes")
}

func TestNewService_result_conversion(t *testing.T) {
	t.Parallel()

	h := dispatch.NewHandler[dispatch.Args1[int8], outcome](
		dispatch.Func1[int8, outcome](func(v int8) outcome { return v >= 0 }),
	)
	svc, err := dispatch.NewService(h, nil)
	require.NoError(t, err)

	assert.Equal(t, dispatch.StatusSuccess, svc.Handle(dispatch.NewPayload([]byte{5})))
	assert.Equal(t, dispatch.StatusFailed, svc.Handle(dispatch.NewPayload([]byte{0xfb})))
}

func TestNewService_unsupported_argument(t *testing.T) {
	t.Parallel()

	h := dispatch.NewHandler[dispatch.Args1[string], dispatch.Status](
		dispatch.Func1[string, dispatch.Status](func(string) dispatch.Status { return dispatch.StatusSuccess }),
	)

	svc, err := dispatch.NewService(h, nil)
	require.ErrorIs(t, err, dispatch.ErrUnsupportedType)
	assert.Nil(t, svc)
}

func TestService_concurrent_Handle(t *testing.T) {
	t.Parallel()

	var sum atomic.Uint64
	h := dispatch.NewHandler[dispatch.Args1[uint64], dispatch.Status](
		dispatch.Func1[uint64, dispatch.Status](func(v uint64) dispatch.Status {
			sum.Add(v)
			return dispatch.StatusSuccess
		}),
	)
	svc, err := dispatch.NewService(h, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			body := dispatch.AppendScalar(nil, uint64(i))
			assert.Equal(t, dispatch.StatusSuccess, svc.Handle(dispatch.NewPayload(body)))
		})
	}
	wg.Wait()

	assert.Equal(t, uint64(50*49/2), sum.Load())
}

func TestServiceFunc(t *testing.T) {
	t.Parallel()

	var svc dispatch.Service = dispatch.ServiceFunc(func(p *dispatch.Payload) dispatch.Status {
		if p.Len() == 0 {
			return dispatch.StatusSuccess
		}
		return dispatch.StatusFailed
	})

	assert.Equal(t, dispatch.StatusSuccess, svc.Handle(dispatch.NewPayload(nil)))
	assert.Equal(t, dispatch.StatusFailed, svc.Handle(dispatch.NewPayload([]byte{1})))
}
