// Package analyze loads the package a typelist.yaml entry points at and
// extracts the struct declarations typelist-gen derives code for.
//
// It uses golang.org/x/tools/go/packages with syntax and go/types so every
// field keeps its type and its source position.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: a named type, its kind, and for structs its fields
//   - FieldInfo: field name, type, visibility, embedding, and position
package analyze
