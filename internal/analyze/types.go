package analyze

import (
	"go/token"
	"go/types"
	"reflect"

	"typelist/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "typelist/examples/vectors"
	Name    string // e.g., "Vec3"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindBasic            // type Celsius float64
	TypeKindStruct           // struct type with at least one field
	TypeKindUnit             // struct{}
	TypeKindOther            // slices, maps, interfaces, funcs, ...
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindUnit:
		return "unit struct"
	case TypeKindOther:
		return "other"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a named type declared in a loaded package.
type TypeInfo struct {
	ID     TypeID
	Kind   TypeKind
	Fields []FieldInfo // For structs, every declared field in order
	GoType *types.Named
	Pos    token.Position
}

// IsStruct returns true for struct types with fields.
func (t *TypeInfo) IsStruct() bool {
	return t.Kind == TypeKindStruct
}

// Field returns the field called name.
func (t *TypeInfo) Field(name string) (*FieldInfo, bool) {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i], true
		}
	}

	return nil, false
}

// FieldNames lists the field names in declaration order.
func (t *TypeInfo) FieldNames() []string {
	names := make([]string, 0, len(t.Fields))
	for _, f := range t.Fields {
		names = append(names, f.Name)
	}

	return names
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     types.Type        // Field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
	Pos      token.Position    // Declaration of the field
}

// PackageInfo holds one loaded package and the named types it declares.
type PackageInfo struct {
	Path  string // Import path
	Name  string // Package name
	Dir   string // Directory the package was loaded from
	Types *types.Package
	Fset  *token.FileSet
	Named map[string]*TypeInfo
	Order []string // Named type names in source order
}

// Position resolves pos against the file set the package was loaded with.
func (p *PackageInfo) Position(pos token.Pos) token.Position {
	if p.Fset == nil {
		return token.Position{}
	}

	return p.Fset.Position(pos)
}

// Lookup returns the named type called name.
func (p *PackageInfo) Lookup(name string) (*TypeInfo, bool) {
	t, ok := p.Named[name]
	return t, ok
}

// Struct returns the struct called name, with an error that says why it is
// not one otherwise.
func (p *PackageInfo) Struct(name string) (*TypeInfo, error) {
	t, ok := p.Named[name]
	if !ok {
		return nil, &LookupError{ID: TypeID{PkgPath: p.Path, Name: name}}
	}

	if !t.IsStruct() {
		return t, &LookupError{ID: t.ID, Kind: t.Kind}
	}

	return t, nil
}

// LookupError reports a missing type, or a type of the wrong kind.
type LookupError struct {
	ID   TypeID
	Kind TypeKind
}

func (e *LookupError) Error() string {
	if e.Kind == TypeKindUnknown {
		return "type " + e.ID.String() + " not found"
	}

	return "type " + e.ID.String() + " is not a struct with fields (kind: " + e.Kind.String() + ")"
}

// TypeGraph holds every package loaded by an Analyzer.
type TypeGraph struct {
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	pkg, ok := g.Packages[id.PkgPath]
	if !ok {
		return nil
	}

	return pkg.Named[id.Name]
}
