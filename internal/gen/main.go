// Command gen writes arity_gen.go: the argument bundles, invocation
// adapters and GetN/PostN helpers for handlers of 1 to maxArity
// parameters. Every arity is produced from the same template so the
// calling convention cannot drift between them.
//
// Run from the module root:
//
//	go generate ./...
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strings"
	"text/template"
)

// maxArity is a hard limit. Raising it only requires regenerating.
const maxArity = 10

var words = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

type arity struct {
	N int
}

func (a arity) Word() string {
	if a.N < len(words) {
		return words[a.N]
	}
	return fmt.Sprint(a.N)
}

func (a arity) Plural() string {
	if a.N == 1 {
		return ""
	}
	return "s"
}

// Index lists 0..N-1 for ranging in the template.
func (a arity) Index() []int {
	out := make([]int, a.N)
	for i := range out {
		out[i] = i
	}
	return out
}

func (a arity) join(format string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i)
	}
	return strings.Join(parts, ", ")
}

// Types is the type parameter list, e.g. "A0, A1".
func (a arity) Types() string { return a.join("A%d") }

// Fields is the unpacked call argument list, e.g. "args.V0, args.V1".
func (a arity) Fields() string { return a.join("args.V%d") }

// TypeFors lists the reflect types of each parameter.
func (a arity) TypeFors() string { return a.join("reflect.TypeFor[A%d]()") }

const src = `// Code generated by internal/gen; DO NOT EDIT.

package dispatch

import "reflect"
{{range .}}
// Args{{.N}} is the argument bundle of a handler with {{.Word}} parameter{{.Plural}}.
type Args{{.N}}[{{.Types}} any] struct {
{{- range .Index}}
	V{{.}} A{{.}}
{{- end}}
}

func (Args{{.N}}[{{.Types}}]) bundleExtractor() (any, error) {
{{- range .Index}}
	e{{.}}, err := ExtractorFor[A{{.}}]()
	if err != nil {
		return nil, err
	}
{{- end}}
	return Extractor[Args{{.N}}[{{.Types}}]](func(p *Payload) (Args{{.N}}[{{.Types}}], error) {
		var (
			args Args{{.N}}[{{.Types}}]
			err  error
		)
		mark := p.Offset()
{{- $n := .N}}{{$types := .Types}}
{{- range .Index}}
		if args.V{{.}}, err = e{{.}}(p); err != nil {
			p.rewind(mark)
			return Args{{$n}}[{{$types}}]{}, err
		}
{{- end}}
		return args, nil
	}), nil
}

func (Args{{.N}}[{{.Types}}]) argTypes() []reflect.Type {
	return []reflect.Type{ {{- .TypeFors -}} }
}

// Func{{.N}} adapts a function of {{.Word}} parameter{{.Plural}} to Factory.
type Func{{.N}}[{{.Types}} any, R Result] func({{.Types}}) R

// Call unpacks args and calls f.
func (f Func{{.N}}[{{.Types}}, R]) Call(args Args{{.N}}[{{.Types}}]) R {
	return f({{.Fields}})
}

// Get{{.N}} registers a GET handler with {{.Word}} parameter{{.Plural}}.
func Get{{.N}}[{{.Types}} any, R Result, P ~string](reg Registrar, path P, f func({{.Types}}) R) {
	mustRegister(reg, MethodGet, Path(path), NewHandler[Args{{.N}}[{{.Types}}], R](Func{{.N}}[{{.Types}}, R](f)))
}

// Post{{.N}} registers a POST handler with {{.Word}} parameter{{.Plural}}.
func Post{{.N}}[{{.Types}} any, R Result, P ~string](reg Registrar, path P, f func({{.Types}}) R) {
	mustRegister(reg, MethodPost, Path(path), NewHandler[Args{{.N}}[{{.Types}}], R](Func{{.N}}[{{.Types}}, R](f)))
}
{{end -}}
`

func main() {
	out := flag.String("o", "arity_gen.go", "output file")
	flag.Parse()

	if err := run(*out); err != nil {
		slog.Error("generate failed", "err", err)
		os.Exit(1)
	}
}

func run(out string) error {
	tmpl, err := template.New("arity").Parse(src)
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, arity{N: n})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format output: %w", err)
	}

	//nolint:gosec // generated source is world-readable
	return os.WriteFile(out, formatted, 0o644)
}
