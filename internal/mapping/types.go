package mapping

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	CurrentVersion = "1"
	DefaultOutput  = "typelist_gen.go"
)

// File is the root of typelist.yaml.
type File struct {
	// Version of the file format.
	Version string `yaml:"version,omitempty" jsonschema:"enum=1,default=1"`

	// Packages lists the packages to generate code into.
	Packages []Package `yaml:"packages" jsonschema:"minItems=1"`

	// BaseDir is the directory package paths are relative to.
	BaseDir string `yaml:"-" json:"-"`
}

// Package selects the records and conversions of one Go package.
type Package struct {
	// Path is the package directory.
	Path string `yaml:"path" jsonschema:"minLength=1"`

	// Output is the generated file name inside the package directory.
	Output string `yaml:"output,omitempty" jsonschema:"default=typelist_gen.go,pattern=^[^/\\\\]+\\.go$"`

	// Records lists the struct types to derive canonical lists for.
	Records []Record `yaml:"records,omitempty"`

	// Conversions lists the record conversions to emit.
	Conversions []Conversion `yaml:"conversions,omitempty"`
}

// Dir returns the package directory, resolved against base.
func (p Package) Dir(base string) string {
	if filepath.IsAbs(p.Path) || base == "" {
		return filepath.Clean(p.Path)
	}

	return filepath.Join(base, p.Path)
}

// Record names a struct type. YAML accepts either the bare type name or a
// mapping with the options below.
type Record struct {
	// Type is the struct type name.
	Type string `yaml:"type"`

	// Positional wraps fields as unnamed, matched by position and type.
	Positional bool `yaml:"positional,omitempty"`
}

// UnmarshalYAML accepts "Vec3" as well as {type: Vec3, positional: true}.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*r = Record{Type: name}

		return nil

	case yaml.MappingNode:
		type plain Record

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*r = Record(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected type name or record mapping", node.Line)
	}
}

// MarshalYAML writes the short form when no option is set.
func (r Record) MarshalYAML() (any, error) {
	if !r.Positional {
		return r.Type, nil
	}

	type plain Record

	return plain(r), nil
}

// Conversion asks for a function converting Source into Target.
type Conversion struct {
	// Source record type name.
	Source string `yaml:"source"`

	// Target record type name.
	Target string `yaml:"target"`

	// Deep converts nested records, slices and pointers of records, and drops
	// source fields the target does not declare.
	Deep bool `yaml:"deep,omitempty"`

	// Name of the generated function. Defaults to <Source>To<Target>.
	Name string `yaml:"name,omitempty"`
}

// Pair renders the conversion for diagnostics.
func (c Conversion) Pair() string {
	return c.Source + "->" + c.Target
}

// ErrEmpty is returned for a config file with no content.
var ErrEmpty = errors.New("config is empty")
