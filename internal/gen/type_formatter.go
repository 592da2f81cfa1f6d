package gen

import (
	"go/types"
	"sort"
	"strconv"
	"strings"

	"typelist/internal/common"
	"typelist/internal/plan"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// importSet collects the imports a generated file needs. Packages are
// referenced by their own name unless another import already claimed it.
type importSet struct {
	self   string
	byPath map[string]string
	byName map[string]string
	names  map[string]string
	used   map[string]bool
}

func newImportSet(self string) *importSet {
	return &importSet{
		self:   self,
		byPath: make(map[string]string),
		byName: make(map[string]string),
		names:  make(map[string]string),
		used:   make(map[string]bool),
	}
}

// reserve claims name for path without marking it used.
func (s *importSet) reserve(path, name string) string {
	if alias, ok := s.byPath[path]; ok {
		return alias
	}

	alias := name
	for i := 2; ; i++ {
		if other, taken := s.byName[alias]; !taken || other == path {
			break
		}

		alias = name + strconv.Itoa(i)
	}

	s.byPath[path] = alias
	s.byName[alias] = path
	s.names[path] = name

	return alias
}

// use marks path as imported and returns its qualifier.
func (s *importSet) use(path, name string) string {
	alias := s.reserve(path, name)
	s.used[path] = true

	return alias
}

// qualifier is a types.Qualifier that records every package it is asked about.
func (s *importSet) qualifier(p *types.Package) string {
	if p == nil || p.Path() == s.self {
		return ""
	}

	name := p.Name()
	if name == "" {
		name = common.PkgAlias(p.Path())
	}

	return s.use(p.Path(), name)
}

// typeExpr renders t as seen from the generated package.
func (s *importSet) typeExpr(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// specs returns the used imports sorted by path. The alias is only set when
// it differs from the package name.
func (s *importSet) specs() []importSpec {
	out := make([]importSpec, 0, len(s.used))

	for path := range s.used {
		spec := importSpec{Path: path}
		if alias := s.byPath[path]; alias != s.names[path] {
			spec.Alias = alias
		}

		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// exprs renders list types and witnesses. The hlist and anon qualifiers are
// the aliases the import set handed out for the library packages.
type exprs struct {
	hlist string
	anon  string
}

// chain renders the list type of the element aliases of fields.
func (e exprs) chain(fields []plan.Field) string {
	elems := make([]string, len(fields))
	for i, f := range fields {
		elems[i] = f.Elem
	}

	return e.consChain(elems)
}

func (e exprs) consChain(elems []string) string {
	var sb strings.Builder

	for _, el := range elems {
		sb.WriteString(e.hlist + ".Cons[" + el + ", ")
	}

	sb.WriteString(e.hlist + ".Nil")
	sb.WriteString(strings.Repeat("]", len(elems)))

	return sb.String()
}

// index renders the witness of one step: hlist.There for each skipped
// field around hlist.Here of the found one.
func (e exprs) index(s plan.Step) string {
	out := e.hlist + ".Here[" + s.Found.Elem + ", " + e.chain(s.Rest) + "]()"

	for i := len(s.Skip) - 1; i >= 0; i-- {
		out = e.hlist + ".There[" + s.Skip[i].Elem + "](" + out + ")"
	}

	return out
}

// selection renders the shuffle taking steps in order.
func (e exprs) selection(steps []plan.Step) string {
	if len(steps) == 0 {
		return e.hlist + ".SelectNone[" + e.hlist + ".Nil]()"
	}

	return e.hlist + ".Select(\n" + e.index(steps[0]) + ",\n" + e.selection(steps[1:]) + ",\n)"
}

// into renders the canonical list of the receiver v.
func (e exprs) into(r *plan.Record) string {
	var sb strings.Builder

	for i, f := range r.Fields {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(e.hlist + ".Of(")

		if r.Positional {
			sb.WriteString(e.anon + ".Pos(v." + f.Name + ")")
		} else {
			sb.WriteString(e.anon + ".Name[" + f.Label + "](v." + f.Name + ")")
		}

		sb.WriteString(",")
	}

	if len(r.Fields) > 0 {
		sb.WriteString(" ")
	}

	sb.WriteString(e.hlist + ".Nil{}")
	sb.WriteString(strings.Repeat(")", len(r.Fields)))

	return sb.String()
}

// access renders the value of the i-th element of the canonical list c.
func access(i int) string {
	return "c" + strings.Repeat(".Rest", i) + ".Value.Value"
}

// deep renders the converter of a deep pair.
func (e exprs) deep(p *plan.DeepPair, typeOf func(types.Type) string) string {
	var inner string

	if p.Target.Positional {
		inner = e.deepUnnamed(p.Steps, p.Dropped, typeOf)
	} else {
		rest := p.Source.Fields
		if n := len(p.Steps); n > 0 {
			rest = p.Steps[n-1].Remaining()
		}

		inner = e.deepFields(p.Steps, rest, typeOf)
	}

	return e.anon + ".DeepRecord[" + p.Target.Name + ", " + p.Source.Name + "](\n" + inner + ",\n)"
}

func (e exprs) deepFields(steps []plan.DeepStep, dropped []plan.Field, typeOf func(types.Type) string) string {
	if len(steps) == 0 {
		return e.anon + ".DeepNil[" + e.chain(dropped) + "]()"
	}

	s := steps[0]

	return e.anon + ".DeepField(\n" +
		e.index(s.Step) + ",\n" +
		e.value(s.Value, typeOf) + ",\n" +
		e.deepFields(steps[1:], dropped, typeOf) + ",\n)"
}

func (e exprs) deepUnnamed(steps []plan.DeepStep, dropped []plan.Field, typeOf func(types.Type) string) string {
	if len(steps) == 0 {
		return e.anon + ".DeepNil[" + e.chain(dropped) + "]()"
	}

	return e.anon + ".DeepUnnamed(\n" +
		e.value(steps[0].Value, typeOf) + ",\n" +
		e.deepUnnamed(steps[1:], dropped, typeOf) + ",\n)"
}

// value renders the converter of one field value.
func (e exprs) value(v *plan.ValueConv, typeOf func(types.Type) string) string {
	switch v.Kind {
	case plan.ValueRecord:
		return v.Pair.Var
	case plan.ValueSlice:
		return e.anon + ".Slice(" + e.value(v.Elem, typeOf) + ")"
	case plan.ValuePointer:
		return e.anon + ".Pointer(" + e.value(v.Elem, typeOf) + ")"
	default:
		return e.anon + ".Identity[" + typeOf(v.Type) + "]()"
	}
}
