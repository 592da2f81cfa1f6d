package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"path"
	"text/template"

	"typelist/internal/plan"
)

// Library packages, relative to GeneratorConfig.Library.
const (
	hlistPkg     = "hlist"
	anonPkg      = "anon"
	characterPkg = anonPkg + "/character"
)

// ErrInvalidPlan is returned for plans that carry error diagnostics.
var ErrInvalidPlan = errors.New("plan has errors")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Tool is named in the generated file header.
	Tool string
	// Library is the import path of the typelist module.
	Library string
	// OutputDir receives the unformatted sidecar when formatting fails.
	// Empty disables it.
	OutputDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Tool:    "typelist-gen",
		Library: "typelist",
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
// Empty fields take their defaults.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()

	if config.Tool == "" {
		config.Tool = def.Tool
	}

	if config.Library == "" {
		config.Library = def.Library
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "typelist_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders the records, shuffles, deep converters and conversion
// functions of p into one file.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p == nil || p.Package == nil {
		return nil, errors.New("plan has no package")
	}

	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, p.Diagnostics.Error())
	}

	data, err := g.buildTemplateData(p)
	if err != nil {
		return nil, fmt.Errorf("ordering deep pairs of %s: %w", p.Package.Path, err)
	}

	var buf bytes.Buffer
	if err := recordsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return g.format(data.Filename, buf.Bytes())
}

// format runs gofmt over content. On failure the unformatted content is
// returned with the error and written next to the output for inspection.
func (g *Generator) format(filename string, content []byte) (*GeneratedFile, error) {
	formatted, err := format.Source(content)
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, content)
		}

		return &GeneratedFile{
			Filename: filename,
			Content:  content,
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) libPath(pkg string) string {
	return path.Join(g.config.Library, pkg)
}

// libName is the package name of a library package.
func libName(pkg string) string {
	return path.Base(pkg)
}

// Template for the records file

var recordsTemplate = template.Must(template.New("records").Parse(`// Code generated by {{.Tool}}. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}{{if .Names}}
// Field names.
type (
{{range .Names}}	{{.Alias}} = {{.Expr}}
{{end}})
{{end}}{{range .Records}}
// {{.Name}} fields.
type (
{{range .Elems}}	{{.Alias}} = {{.Expr}}
{{end}})

// {{.Canon}} is the canonical list of {{.Name}}.
type {{.Canon}} = {{.CanonExpr}}

// IntoCanon returns the fields of v as a canonical list.
func (v {{.Name}}) IntoCanon() {{.Canon}} {
	return {{.Into}}
}

// FromCanon sets the fields of v from c.
func (v *{{.Name}}) FromCanon(c {{.Canon}}) {
{{range .Assigns}}	v.{{.Alias}} = {{.Expr}}
{{end}}}
{{end}}{{range .Deep}}
var {{.Alias}} = {{.Expr}}
{{end}}{{range .Conversions}}{{if not .Deep}}
var {{.Var}} = {{.Expr}}
{{end}}
// {{.Func}} converts a {{.Source}} into a {{.Target}}.{{if .Dropped}}
// Fields of {{.Source}} that {{.Target}} does not declare are dropped.{{end}}
func {{.Func}}(v {{.Source}}) {{.Target}} {
{{if .Deep}}	return {{$.Anon}}.DeepTransform(v, {{.Var}})
{{else}}	return {{$.Anon}}.Convert[{{.Target}}](v, {{.Var}})
{{end}}}
{{end}}`))
