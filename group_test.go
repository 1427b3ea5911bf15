package dispatch_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dispatch"
)

func TestGroup_prefix(t *testing.T) {
	t.Parallel()

	s := dispatch.New(dispatch.WithLogger(quietLogger()))
	v1 := s.Group("/v1")

	var got uint32
	dispatch.Get1(v1, "/book", func(n uint32) dispatch.Status {
		got = n
		return dispatch.StatusSuccess
	})

	st, err := s.Dispatch(context.Background(), dispatch.NewGet("/v1/book", dispatch.AppendScalar(nil, uint32(7))))
	require.NoError(t, err)
	assert.Equal(t, dispatch.StatusSuccess, st)
	assert.Equal(t, uint32(7), got)

	_, err = s.Dispatch(context.Background(), dispatch.NewGet("/book", nil))
	assert.EqualError(t, err, "missing get handler for path /book")
}

func TestGroup_nested(t *testing.T) {
	t.Parallel()

	s := dispatch.New(dispatch.WithLogger(quietLogger()))
	admin := s.Group("/api").Group("/admin")

	dispatch.Post0(admin, "/reset", func() dispatch.Status { return dispatch.StatusSuccess })
	dispatch.Get0(s.Group("/api"), "/ping", func() dispatch.Status { return dispatch.StatusSuccess })

	var paths []dispatch.Path
	for _, ri := range s.Routes() {
		paths = append(paths, ri.Path)
	}
	assert.Equal(t, []dispatch.Path{"/api/ping", "/api/admin/reset"}, paths)

	st, err := s.Dispatch(context.Background(), dispatch.NewPost("/api/admin/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, dispatch.StatusSuccess, st)
}

func TestGroup_register_error_includes_prefixed_path(t *testing.T) {
	t.Parallel()

	s := dispatch.New(dispatch.WithLogger(quietLogger()))
	g := s.Group("/v2")

	h := dispatch.NewHandler[dispatch.Args1[bool], dispatch.Status](
		dispatch.Func1[bool, dispatch.Status](func(bool) dispatch.Status { return dispatch.StatusSuccess }),
	)
	err := dispatch.Register(g, dispatch.MethodGet, "/flag", h)
	require.ErrorIs(t, err, dispatch.ErrUnsupportedType)
	assert.Empty(t, s.Routes())
}
