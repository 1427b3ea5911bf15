package dispatch

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest is the serializable form of a server's route table.
type Manifest struct {
	Routes []ManifestRoute `json:"routes" yaml:"routes"`
}

// ManifestRoute is one entry of a Manifest.
type ManifestRoute struct {
	Method string        `json:"method" yaml:"method"`
	Path   string        `json:"path" yaml:"path"`
	Args   []ManifestArg `json:"args,omitempty" yaml:"args,omitempty"`
	Result string        `json:"result" yaml:"result"`
	Size   int           `json:"size" yaml:"size"`
}

// ManifestArg describes one parameter's position in the body.
type ManifestArg struct {
	Index  int    `json:"index" yaml:"index"`
	Type   string `json:"type" yaml:"type"`
	Offset int    `json:"offset" yaml:"offset"`
	Size   int    `json:"size" yaml:"size"`
}

// Manifest builds the route manifest. Offsets after a variable-length
// argument are reported as -1.
func (s *Server) Manifest() Manifest {
	routes := s.Routes()
	m := Manifest{Routes: make([]ManifestRoute, 0, len(routes))}
	for _, ri := range routes {
		mr := ManifestRoute{
			Method: ri.Method.String(),
			Path:   ri.Path.String(),
			Result: ri.Result,
			Size:   ri.Size,
		}
		off := 0
		for i, a := range ri.Args {
			mr.Args = append(mr.Args, ManifestArg{Index: i, Type: a.Type, Offset: off, Size: a.Size})
			if off >= 0 && a.Size >= 0 {
				off += a.Size
			} else {
				off = -1
			}
		}
		m.Routes = append(m.Routes, mr)
	}
	return m
}

// WriteRoutes writes the route manifest as indented JSON to w.
func (s *Server) WriteRoutes(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Manifest())
}

// WriteRoutesYAML writes the route manifest as YAML to w.
func (s *Server) WriteRoutesYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s.Manifest()); err != nil {
		return err
	}
	return enc.Close()
}
