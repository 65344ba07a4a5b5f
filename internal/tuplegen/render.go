package tuplegen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
)

var fileTemplate = template.Must(template.New("tuples").Parse(`// Code generated by tuplegen; DO NOT EDIT.

package {{.Package}}

import "iter"
{{range .Arities}}
// Tuple{{.N}} holds one element from each of {{.N}} sequences.
type Tuple{{.N}}[{{.TypeParams}} any] struct {
{{- range .Slots}}
	V{{.}} T{{.}}
{{- end}}
}

// Zip{{.N}} zips {{.N}} sequences, stopping at the end of the shortest.
func Zip{{.N}}[{{.TypeParams}} any]({{.SeqParams}}) iter.Seq[{{.Tuple}}] {
	return Map(Zip(seq1, {{.Inner "Zip"}}), func(p {{.Nested}}) {{.Tuple}} {
		return {{.Tuple}}{ {{- .Fields -}} }
	})
}

// Product{{.N}} yields the Cartesian product of {{.N}} sequences in lexicographic
// order, the last sequence varying fastest. Every sequence but the first is
// ranged over repeatedly and must yield the same elements each time.
func Product{{.N}}[{{.TypeParams}} any]({{.SeqParams}}) iter.Seq[{{.Tuple}}] {
	return Map(Product(seq1, {{.Inner "Product"}}), func(p {{.Nested}}) {{.Tuple}} {
		return {{.Tuple}}{ {{- .Fields -}} }
	})
}
{{end}}`))

type fileData struct {
	Package string
	Arities []arity
}

// arity describes one member of the family. Arity n is built as the 2-ary
// combinator over the first sequence and arity n-1 over the rest.
type arity struct {
	N int
}

func (a arity) Slots() []int {
	slots := make([]int, a.N)
	for i := range slots {
		slots[i] = i + 1
	}
	return slots
}

func (a arity) join(from int, format func(int) string) string {
	parts := make([]string, 0, a.N-from+1)
	for i := from; i <= a.N; i++ {
		parts = append(parts, format(i))
	}
	return strings.Join(parts, ", ")
}

func (a arity) TypeParams() string {
	return a.join(1, func(i int) string { return "T" + strconv.Itoa(i) })
}

func (a arity) SeqParams() string {
	return a.join(1, func(i int) string { return fmt.Sprintf("seq%d iter.Seq[T%d]", i, i) })
}

func (a arity) Tuple() string {
	return fmt.Sprintf("Tuple%d[%s]", a.N, a.TypeParams())
}

func (a arity) innerType() string {
	params := a.join(2, func(i int) string { return "T" + strconv.Itoa(i) })
	if a.N == MinArity {
		return "Pair[" + params + "]"
	}
	return fmt.Sprintf("Tuple%d[%s]", a.N-1, params)
}

// Inner is the call building the tail of the tuple with the named combinator.
func (a arity) Inner(name string) string {
	args := a.join(2, func(i int) string { return "seq" + strconv.Itoa(i) })
	if a.N == MinArity {
		return name + "(" + args + ")"
	}
	return fmt.Sprintf("%s%d(%s)", name, a.N-1, args)
}

func (a arity) Nested() string {
	return "Pair[T1, " + a.innerType() + "]"
}

func (a arity) Fields() string {
	return a.join(1, func(i int) string {
		if i == 1 {
			return "V1: p.V1"
		}
		return fmt.Sprintf("V%d: p.V2.V%d", i, i-1)
	})
}

// Render produces the gofmt-ed source of the tuple family described by cfg.
func Render(cfg Config, log zerolog.Logger) ([]byte, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data := fileData{Package: cfg.Package}
	for n := MinArity; n <= cfg.MaxArity; n++ {
		data.Arities = append(data.Arities, arity{N: n})
		log.Debug().Int("arity", n).Msg("tuplegen: adding arity")
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("tuplegen: execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("tuplegen: format output: %w", err)
	}
	return src, nil
}
