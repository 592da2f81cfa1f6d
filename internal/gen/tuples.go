package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

// MaxTupleArity bounds GenerateTuples.
const MaxTupleArity = 128

type tupleData struct {
	Tool        string
	PackageName string
	HList       string
	Tuples      []tupleArity
}

type tupleArity struct {
	N       int
	Noun    string // "element" or "elements"
	Params  string // A0, A1
	Args    string // v0 A0, v1 A1
	Values  string // v0, v1
	Fields  []string
	List    string // hlist.Cons[A0, hlist.Cons[A1, hlist.Nil]]
	Of      string // hlist.Of(v0, hlist.Of(v1, hlist.Nil{}))
	Getters []aliasData
}

// GenerateTuples renders the tuple types T0 through Tmax into package pkg.
func (g *Generator) GenerateTuples(pkg, filename string, maxArity int) (*GeneratedFile, error) {
	if maxArity < 0 || maxArity > MaxTupleArity {
		return nil, fmt.Errorf("tuple arity %d out of range [0, %d]", maxArity, MaxTupleArity)
	}

	e := exprs{hlist: hlistPkg}

	data := &tupleData{
		Tool:        g.config.Tool,
		PackageName: pkg,
		HList:       g.libPath(hlistPkg),
	}

	for n := 1; n <= maxArity; n++ {
		t := tupleArity{N: n, Noun: "elements"}
		if n == 1 {
			t.Noun = "element"
		}

		params := make([]string, n)
		args := make([]string, n)
		values := make([]string, n)
		of := e.hlist + ".Nil{}"

		for i := n - 1; i >= 0; i-- {
			a := "A" + strconv.Itoa(i)
			v := "v" + strconv.Itoa(i)

			params[i] = a
			args[i] = v + " " + a
			values[i] = v
			of = e.hlist + ".Of(" + v + ", " + of + ")"
		}

		for i := range n {
			t.Fields = append(t.Fields, "V"+strconv.Itoa(i)+" A"+strconv.Itoa(i))
			t.Getters = append(t.Getters, aliasData{
				Alias: "V" + strconv.Itoa(i),
				Expr:  "l" + strings.Repeat(".Rest", i) + ".Value",
			})
		}

		t.Params = strings.Join(params, ", ")
		t.Args = strings.Join(args, ", ")
		t.Values = strings.Join(values, ", ")
		t.List = e.consChain(params)
		t.Of = of

		data.Tuples = append(data.Tuples, t)
	}

	var buf bytes.Buffer
	if err := tuplesTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return g.format(filename, buf.Bytes())
}

var tuplesTemplate = template.Must(template.New("tuples").Funcs(template.FuncMap{
	"tvalues": func(n int) string {
		out := make([]string, n)
		for i := range out {
			out[i] = "t.V" + strconv.Itoa(i)
		}

		return strings.Join(out, ", ")
	},
}).Parse(`// Code generated by {{.Tool}} tuples; DO NOT EDIT.

package {{.PackageName}}

import "{{.HList}}"

// T0 is the empty tuple.
type T0 struct{}

// List0 builds the list form of the empty tuple.
func List0() hlist.Nil {
	return hlist.Nil{}
}

// List converts t into its list form.
func (t T0) List() hlist.Nil {
	return hlist.Nil{}
}

// FromList0 converts the empty list into the empty tuple.
func FromList0(hlist.Nil) T0 {
	return T0{}
}
{{range .Tuples}}
// T{{.N}} is a tuple of {{.N}} {{.Noun}}.
type T{{.N}}[{{.Params}} any] struct {
{{range .Fields}}	{{.}}
{{end}}}

// Of{{.N}} builds a T{{.N}}.
func Of{{.N}}[{{.Params}} any]({{.Args}}) T{{.N}}[{{.Params}}] {
	return T{{.N}}[{{.Params}}]{ {{- .Values -}} }
}

// List{{.N}} builds the list form of a {{.N}}-tuple.
func List{{.N}}[{{.Params}} any]({{.Args}}) {{.List}} {
	return {{.Of}}
}

// List converts t into its list form.
func (t T{{.N}}[{{.Params}}]) List() {{.List}} {
	return List{{.N}}({{tvalues .N}})
}

// FromList{{.N}} converts the list form back into a {{.N}}-tuple.
func FromList{{.N}}[{{.Params}} any](l {{.List}}) T{{.N}}[{{.Params}}] {
	return T{{.N}}[{{.Params}}]{
{{range .Getters}}		{{.Alias}}: {{.Expr}},
{{end}}	}
}
{{end}}`))
