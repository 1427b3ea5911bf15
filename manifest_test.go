package dispatch_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/dispatch"
)

func manifestServer() *dispatch.Server {
	s := dispatch.New(dispatch.WithLogger(quietLogger()))
	dispatch.Get0(s, "/", func() dispatch.Status { return dispatch.StatusSuccess })
	dispatch.Post2(s, "/bill", func(uint64, float32) dispatch.Status { return dispatch.StatusSuccess })
	dispatch.Post3(s, "/tag", func(uint16, label, int8) outcome { return true })
	return s
}

func TestServer_Manifest(t *testing.T) {
	t.Parallel()

	m := manifestServer().Manifest()
	require.Len(t, m.Routes, 3)

	root := m.Routes[0]
	assert.Equal(t, "get", root.Method)
	assert.Equal(t, "/", root.Path)
	assert.Empty(t, root.Args)
	assert.Equal(t, "dispatch.Status", root.Result)
	assert.Equal(t, 0, root.Size)

	bill := m.Routes[1]
	assert.Equal(t, "/bill", bill.Path)
	assert.Equal(t, 12, bill.Size)
	assert.Equal(t, []dispatch.ManifestArg{
		{Index: 0, Type: "uint64", Offset: 0, Size: 8},
		{Index: 1, Type: "float32", Offset: 8, Size: 4},
	}, bill.Args)

	tag := m.Routes[2]
	assert.Equal(t, "/tag", tag.Path)
	assert.Equal(t, -1, tag.Size)
	assert.Equal(t, "dispatch_test.outcome", tag.Result)
	assert.Equal(t, []dispatch.ManifestArg{
		{Index: 0, Type: "uint16", Offset: 0, Size: 2},
		{Index: 1, Type: "dispatch_test.label", Offset: 2, Size: -1},
		{Index: 2, Type: "int8", Offset: -1, Size: 1},
	}, tag.Args)
}

func TestServer_WriteRoutes(t *testing.T) {
	t.Parallel()

	s := manifestServer()

	tests := map[string]struct {
		write  func(*bytes.Buffer) error
		decode func([]byte, any) error
	}{
		"json": {
			write:  func(b *bytes.Buffer) error { return s.WriteRoutes(b) },
			decode: json.Unmarshal,
		},
		"yaml": {
			write:  func(b *bytes.Buffer) error { return s.WriteRoutesYAML(b) },
			decode: yaml.Unmarshal,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, tc.write(&buf))

			var got dispatch.Manifest
			require.NoError(t, tc.decode(buf.Bytes(), &got))
			assert.Equal(t, s.Manifest(), got)
		})
	}
}
