package analyze

import (
	"strings"
)

// TypePath is a readable location inside a record, used in diagnostics:
//   - "Vec3Ex" for the record itself
//   - "Vec3Ex.Z" for one of its fields
//   - "Track.Stops[].Z" for a field within slice elements
//   - "Track.*Head" for the value behind a pointer field
type TypePath struct {
	parts []string
}

// NewTypePath creates a new TypePath from a root type name.
func NewTypePath(root string) *TypePath {
	return &TypePath{
		parts: []string{root},
	}
}

// Field appends a field name to the path.
func (p *TypePath) Field(name string) *TypePath {
	return &TypePath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Slice marks the last element as a slice.
func (p *TypePath) Slice() *TypePath {
	return p.mapLast(func(s string) string { return s + "[]" })
}

// Pointer marks the last element as a pointer.
func (p *TypePath) Pointer() *TypePath {
	return p.mapLast(func(s string) string { return "*" + s })
}

func (p *TypePath) mapLast(fn func(string) string) *TypePath {
	if len(p.parts) == 0 {
		return &TypePath{parts: []string{fn("")}}
	}

	parts := make([]string, len(p.parts))
	copy(parts, p.parts)
	parts[len(parts)-1] = fn(parts[len(parts)-1])

	return &TypePath{parts: parts}
}

// String returns the full path string.
func (p *TypePath) String() string {
	return strings.Join(p.parts, ".")
}
