package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/dispatch"
)

func TestPathOf(t *testing.T) {
	t.Parallel()

	type route string

	assert.Equal(t, dispatch.Path("/book"), dispatch.PathOf("/book"))
	assert.Equal(t, dispatch.Path("/book"), dispatch.PathOf(route("/book")))
	assert.Equal(t, dispatch.Path("/book"), dispatch.PathOf([]byte("/book")))
	assert.Equal(t, "/book", dispatch.PathOf("/book").String())
}

func TestMethod_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "get", dispatch.MethodGet.String())
	assert.Equal(t, "post", dispatch.MethodPost.String())
	assert.Equal(t, "method(9)", dispatch.Method(9).String())
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in      string
		want    dispatch.Method
		wantErr bool
	}{
		"lower":   {in: "get", want: dispatch.MethodGet},
		"upper":   {in: "POST", want: dispatch.MethodPost},
		"mixed":   {in: "Get", want: dispatch.MethodGet},
		"unknown": {in: "PUT", wantErr: true},
		"empty":   {in: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := dispatch.ParseMethod(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, dispatch.ErrUnsupportedMethod)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success", dispatch.StatusSuccess.String())
	assert.Equal(t, "failed", dispatch.StatusFailed.String())
	assert.Equal(t, "status(7)", dispatch.Status(7).String())
	assert.Equal(t, dispatch.StatusFailed, dispatch.StatusFailed.Status())
}
