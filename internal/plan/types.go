package plan

import (
	"go/token"
	"go/types"

	"typelist/internal/analyze"
	"typelist/internal/common"
	"typelist/internal/diagnostic"
	"typelist/internal/naming"
)

// Plan is everything generated into one package.
type Plan struct {
	// Package the records are declared in.
	Package *analyze.PackageInfo
	// Output is the generated file name.
	Output string
	// Records in declaration order.
	Records []*Record
	// Names are the distinct encoded field names, sorted.
	Names []Name
	// Conversions in config order.
	Conversions []*Conversion
	// Deep pairs, each after the pairs it uses.
	Deep []*DeepPair
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Name is one encoded field name.
type Name struct {
	Alias   string // e.g. nameOf_W
	Field   string // e.g. W
	Encoded string // character marker list
}

// Record is a struct with a derived canonical list.
type Record struct {
	Type       *analyze.TypeInfo
	Name       string
	Positional bool
	Fields     []Field
}

// Canon is the alias of the record's canonical list.
func (r *Record) Canon() string {
	return naming.CanonAlias(r.Name)
}

// FieldNames lists the field names in declaration order.
func (r *Record) FieldNames() []string {
	names := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		names[i] = f.Name
	}

	return names
}

// Field is one element of a canonical list.
type Field struct {
	Name  string // Go field name
	Index int    // position in the canonical list
	Type  types.Type
	Elem  string // alias of the wrapped element
	Label string // alias of the encoded name, empty for positional fields
	Pos   token.Position
}

// Step takes one element out of the source fields not picked yet.
//
// In the generated witness, Found is reached through hlist.There for each
// field of Skip, then hlist.Here with Rest as its remainder.
type Step struct {
	Target Field
	Skip   []Field
	Found  Field
	Rest   []Field
}

// Remaining is the list the next step picks from.
func (s Step) Remaining() []Field {
	return append(append([]Field{}, s.Skip...), s.Rest...)
}

// Conversion is one generated conversion function.
type Conversion struct {
	Func   string
	Source *Record
	Target *Record
	// Var holds the shuffle of a shallow conversion.
	Var   string
	Steps []Step
	// Deep is set for deep conversions.
	Deep *DeepPair
}

// IsDeep reports whether the conversion goes through a deep pair.
func (c *Conversion) IsDeep() bool {
	return c.Deep != nil
}

// DeepPair is a deep conversion between two records.
type DeepPair struct {
	Source *Record
	Target *Record
	Var    string
	Steps  []DeepStep
	// Dropped are the source fields the target does not declare.
	Dropped []Field

	uses []*DeepPair
	done bool
}

// Key identifies the pair.
func (p *DeepPair) Key() string {
	return p.Source.Name + "->" + p.Target.Name
}

// Uses lists the pairs this pair's fields convert through.
func (p *DeepPair) Uses() []*DeepPair {
	return p.uses
}

// DeepStep fills one target field.
type DeepStep struct {
	Step
	Value *ValueConv
}

// ValueKind says how a field value is converted.
type ValueKind int

const (
	ValueIdentity ValueKind = iota
	ValueRecord
	ValueSlice
	ValuePointer
)

// String returns a human-readable name for the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueIdentity:
		return "identity"
	case ValueRecord:
		return "record"
	case ValueSlice:
		return "slice"
	case ValuePointer:
		return "pointer"
	default:
		return common.UnknownStr
	}
}

// ValueConv converts one field value.
type ValueConv struct {
	Kind ValueKind
	Type types.Type // scalar type, for ValueIdentity
	Pair *DeepPair  // for ValueRecord
	Elem *ValueConv // for ValueSlice and ValuePointer
}
