package dispatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bjaus/dispatch"
)

func TestWithValueValue_roundTrip(t *testing.T) {
	t.Parallel()

	type tenant string

	ctx := dispatch.WithValue[tenant](context.Background(), "acme")

	val, ok := dispatch.Value[tenant](ctx)
	assert.True(t, ok)
	assert.Equal(t, tenant("acme"), val)
}

func TestValue_missing_returns_zero(t *testing.T) {
	t.Parallel()

	val, ok := dispatch.Value[int](context.Background())
	assert.False(t, ok)
	assert.Equal(t, 0, val)
}

func TestWithValue_different_types_no_collision(t *testing.T) {
	t.Parallel()

	ctx := dispatch.WithValue[string](context.Background(), "hello")
	ctx = dispatch.WithValue[int](ctx, 42)

	s, ok := dispatch.Value[string](ctx)
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	n, ok := dispatch.Value[int](ctx)
	assert.True(t, ok)
	assert.Equal(t, 42, n)
}
