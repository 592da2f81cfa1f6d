package plan

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typelist/internal/analyze"
	"typelist/internal/diagnostic"
	"typelist/internal/mapping"
)

func loadRecords(t *testing.T) *analyze.PackageInfo {
	t.Helper()

	pkg, err := analyze.NewAnalyzer().LoadDir("testdata/records")
	require.NoError(t, err)

	return pkg
}

func resolve(t *testing.T, cfg mapping.Package) *Plan {
	t.Helper()

	p, err := Resolve(loadRecords(t), cfg)
	require.NoError(t, err)

	return p
}

func conv(source, target string, deep bool) mapping.Conversion {
	return mapping.Conversion{Source: source, Target: target, Deep: deep}
}

func stepNames(steps []Step) []string {
	var out []string
	for _, s := range steps {
		out = append(out, s.Found.Name)
	}

	return out
}

func TestResolveShuffle(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{conv("Vec3", "Point", false)}})
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Conversions, 1)

	c := p.Conversions[0]
	assert.Equal(t, "Vec3ToPoint", c.Func)
	assert.Equal(t, "vec3ToPointShuffle", c.Var)
	assert.False(t, c.IsDeep())
	assert.Equal(t, []string{"Y", "W", "Z", "X"}, stepNames(c.Steps))

	// Y is found after skipping W and X; W then heads what is left.
	assert.Equal(t, []string{"W", "X"}, names(c.Steps[0].Skip))
	assert.Equal(t, []string{"Z"}, names(c.Steps[0].Rest))
	assert.Empty(t, c.Steps[1].Skip)
	assert.Equal(t, []string{"X", "Z"}, names(c.Steps[1].Rest))
	assert.Equal(t, []string{"X"}, names(c.Steps[2].Skip))
	assert.Equal(t, []string{"X"}, names(c.Steps[2].Remaining()))

	require.Len(t, p.Records, 2)
	assert.Equal(t, "Vec3", p.Records[0].Name)
	assert.Equal(t, "Vec3Canon", p.Records[0].Canon())
	assert.Equal(t, "vec3_W", p.Records[0].Fields[0].Elem)
	assert.Equal(t, "nameOf_W", p.Records[0].Fields[0].Label)

	require.Len(t, p.Names, 4)
	assert.Equal(t, "W", p.Names[0].Field)
	assert.Equal(t, "hlist.Cons[character.W, hlist.Nil]", p.Names[0].Encoded)
}

func TestResolveCustomName(t *testing.T) {
	c := conv("Vec3", "Point", false)
	c.Name = "Reorder"

	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{c}})
	require.Len(t, p.Conversions, 1)
	assert.Equal(t, "Reorder", p.Conversions[0].Func)
}

func TestResolveDiagnostics(t *testing.T) {
	tests := []struct {
		name string
		cfg  mapping.Package
		code string
		sev  diagnostic.Severity
	}{
		{"unknown record", mapping.Package{Records: []mapping.Record{{Type: "Vec4"}}}, diagnostic.CodeUnknownRecord, diagnostic.SeverityError},
		{"not a struct", mapping.Package{Records: []mapping.Record{{Type: "Celsius"}}}, diagnostic.CodeNotAStruct, diagnostic.SeverityError},
		{"unit struct", mapping.Package{Records: []mapping.Record{{Type: "Unit"}}}, diagnostic.CodeEmptyStruct, diagnostic.SeverityError},
		{"unexported", mapping.Package{Records: []mapping.Record{{Type: "Hidden"}}}, diagnostic.CodeUnexportedField, diagnostic.SeverityError},
		{"embedded", mapping.Package{Records: []mapping.Record{{Type: "Embeds"}}}, diagnostic.CodeEmbeddedField, diagnostic.SeverityError},
		{"non-ascii", mapping.Package{Records: []mapping.Record{{Type: "Größe"}}}, diagnostic.CodeUnsupportedName, diagnostic.SeverityError},
		{"missing", mapping.Package{Conversions: []mapping.Conversion{conv("Vec2", "Vec3", false)}}, diagnostic.CodeMissingField, diagnostic.SeverityError},
		{"unused", mapping.Package{Conversions: []mapping.Conversion{conv("Vec3", "Vec2", false)}}, diagnostic.CodeUnusedField, diagnostic.SeverityError},
		{"type mismatch", mapping.Package{Conversions: []mapping.Conversion{conv("Vec3", "Vec3d", false)}}, diagnostic.CodeTypeMismatch, diagnostic.SeverityError},
		{"nested needs deep", mapping.Package{Conversions: []mapping.Conversion{conv("Vec3Ex", "PointEx", false)}}, diagnostic.CodeTypeMismatch, diagnostic.SeverityError},
		{
			"shape mismatch",
			mapping.Package{
				Records:     []mapping.Record{{Type: "Pair", Positional: true}},
				Conversions: []mapping.Conversion{conv("Pair", "Swapped", false)},
			},
			diagnostic.CodeShapeMismatch, diagnostic.SeverityError,
		},
		{"deep cycle", mapping.Package{Conversions: []mapping.Conversion{conv("Node", "Link", true)}}, diagnostic.CodeDeepCycle, diagnostic.SeverityError},
		{"deep unsupported", mapping.Package{Conversions: []mapping.Conversion{conv("Stamped", "Logged", true)}}, diagnostic.CodeUnsupportedDeepType, diagnostic.SeverityError},
		{"deep drops", mapping.Package{Conversions: []mapping.Conversion{conv("Vec3", "Vec2", true)}}, diagnostic.CodeDroppedField, diagnostic.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := resolve(t, tt.cfg)

			found := p.Diagnostics.ByCode(tt.code)
			require.NotEmpty(t, found, spew.Sdump(p.Diagnostics))
			assert.Equal(t, tt.sev, found[0].Severity)

			if tt.sev == diagnostic.SeverityError {
				assert.Empty(t, p.Conversions)
			}
		})
	}
}

func TestUnexportedFieldPosition(t *testing.T) {
	p := resolve(t, mapping.Package{Records: []mapping.Record{{Type: "Hidden"}}})

	found := p.Diagnostics.ByCode(diagnostic.CodeUnexportedField)
	require.Len(t, found, 1)
	assert.Equal(t, "secret", found[0].FieldPath)
	assert.True(t, found[0].Pos.IsValid())
	assert.Equal(t, "records.go", filepath.Base(found[0].Pos.Filename))
}

func TestMissingFieldSuggests(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{conv("Swapped", "Pair", false), conv("Extra", "Vec2", false)}})

	found := p.Diagnostics.ByCode(diagnostic.CodeMissingField)
	require.NotEmpty(t, found)
	assert.Contains(t, found[0].Message, "Extra has no field")
}

func TestResolvePositional(t *testing.T) {
	p := resolve(t, mapping.Package{
		Records: []mapping.Record{
			{Type: "Sample", Positional: true},
			{Type: "Reading", Positional: true},
		},
		Conversions: []mapping.Conversion{conv("Sample", "Reading", false)},
	})
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Conversions, 1)

	c := p.Conversions[0]
	assert.Equal(t, []string{"Count", "Label", "Value"}, stepNames(c.Steps))
	assert.Equal(t, "sample_2", c.Steps[0].Found.Elem)
	assert.Empty(t, c.Steps[0].Found.Label)
	assert.Empty(t, p.Names)
}

func TestResolvePositionalPrefersAligned(t *testing.T) {
	p := resolve(t, mapping.Package{
		Records: []mapping.Record{
			{Type: "Twins", Positional: true},
			{Type: "Vec2", Positional: true},
		},
		Conversions: []mapping.Conversion{conv("Twins", "Vec2", false)},
	})
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	assert.Empty(t, p.Diagnostics.Warnings)
	assert.Equal(t, []string{"A", "B"}, stepNames(p.Conversions[0].Steps))
}

func TestResolvePositionalAmbiguous(t *testing.T) {
	p := resolve(t, mapping.Package{
		Records: []mapping.Record{
			{Type: "Forecast", Positional: true},
			{Type: "Span", Positional: true},
		},
		Conversions: []mapping.Conversion{conv("Forecast", "Span", false)},
	})
	assert.False(t, p.Diagnostics.IsValid())
	assert.Empty(t, p.Conversions)

	// Span.0 could take High or Low, and neither is declared at index 0.
	found := p.Diagnostics.ByCode(diagnostic.CodeAmbiguousPosition)
	require.NotEmpty(t, found)
	assert.Equal(t, diagnostic.SeverityError, found[0].Severity)
	assert.Equal(t, "Low", found[0].FieldPath)
	assert.Equal(t, []string{"High", "Low"}, found[0].Suggestions)
	assert.Contains(t, found[0].Message, "could fill Span.0")
}

func TestResolveRecordCalledName(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{conv("Name", "Other", false)}})
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

	require.Len(t, p.Names, 1)
	assert.Equal(t, "nameOf_X", p.Names[0].Alias)
	assert.Equal(t, "name_X", p.Records[0].Fields[0].Elem)
}

func TestNameCollision(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{conv("NameOf", "Other", false)}})

	found := p.Diagnostics.ByCode(diagnostic.CodeNameCollision)
	require.Len(t, found, 1, spew.Sdump(p.Diagnostics))
	assert.Equal(t, diagnostic.SeverityError, found[0].Severity)
	assert.Equal(t, "nameOf_X", found[0].FieldPath)
	assert.Contains(t, found[0].Message, "field NameOf.X")
}

func TestNameCollisionWithPackage(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{conv("Clash", "Clash2", false)}})

	found := p.Diagnostics.ByCode(diagnostic.CodeNameCollision)
	require.Len(t, found, 1, spew.Sdump(p.Diagnostics))
	assert.Equal(t, "ClashToClash2", found[0].FieldPath)
	assert.Contains(t, found[0].Message, "already declared")
	assert.Equal(t, "records.go", filepath.Base(found[0].Pos.Filename))

	// A custom name avoids the clash.
	c := conv("Clash", "Clash2", false)
	c.Name = "CopyClash"

	p = resolve(t, mapping.Package{Conversions: []mapping.Conversion{c}})
	assert.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
}

func TestNestedTypeMismatchSuggestsDeep(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{conv("Vec3Ex", "PointEx", false)}})

	found := p.Diagnostics.ByCode(diagnostic.CodeTypeMismatch)
	require.Len(t, found, 1)
	assert.Equal(t, []string{"deep: true"}, found[0].Suggestions)
}

func TestResolveDeep(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{conv("Vec3Ex", "PointEx", true)}})
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Conversions, 1)

	c := p.Conversions[0]
	require.True(t, c.IsDeep())
	assert.Equal(t, "vec3ExToPointExDeep", c.Deep.Var)

	// Extra->Inner is emitted before the pair that uses it.
	require.Len(t, p.Deep, 2)
	assert.Equal(t, "Extra->Inner", p.Deep[0].Key())
	assert.Equal(t, "Vec3Ex->PointEx", p.Deep[1].Key())
	assert.Equal(t, []*DeepPair{p.Deep[0]}, p.Deep[1].Uses())

	steps := c.Deep.Steps
	require.Len(t, steps, 3)
	assert.Equal(t, ValueIdentity, steps[0].Value.Kind)
	assert.Equal(t, ValueRecord, steps[2].Value.Kind)
	assert.Equal(t, []string{"X"}, names(c.Deep.Dropped))

	drops := p.Diagnostics.ByCode(diagnostic.CodeDroppedField)
	require.Len(t, drops, 1)
	assert.Equal(t, "Vec3Ex.X", drops[0].FieldPath)

	// Records reached through the pair are registered as named records.
	var recs []string
	for _, r := range p.Records {
		recs = append(recs, r.Name)
	}

	assert.Equal(t, []string{"Extra", "Inner", "Vec3Ex", "PointEx"}, recs)
}

func TestResolveDeepContainers(t *testing.T) {
	p := resolve(t, mapping.Package{Conversions: []mapping.Conversion{
		conv("Vec3Ex", "PointEx", true),
		conv("Track", "Route", true),
	}})
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())
	require.Len(t, p.Deep, 3)
	assert.Equal(t, "Track->Route", p.Deep[2].Key())

	steps := p.Deep[2].Steps
	require.Len(t, steps, 3)
	assert.Equal(t, "Head", steps[0].Target.Name)
	assert.Equal(t, ValuePointer, steps[0].Value.Kind)
	assert.Equal(t, ValueRecord, steps[0].Value.Elem.Kind)
	assert.Same(t, p.Deep[1], steps[0].Value.Elem.Pair)
	assert.Equal(t, ValueSlice, steps[2].Value.Kind)
	assert.Equal(t, "slice", steps[2].Value.Kind.String())
}

func TestResolveDeepPositional(t *testing.T) {
	p := resolve(t, mapping.Package{
		Records: []mapping.Record{
			{Type: "Twins", Positional: true},
			{Type: "Sample", Positional: true},
			{Type: "Pair", Positional: true},
		},
		Conversions: []mapping.Conversion{conv("Pair", "Twins", true)},
	})

	require.True(t, p.Diagnostics.HasErrors())
	assert.NotEmpty(t, p.Diagnostics.ByCode(diagnostic.CodeUnsupportedDeepType))
}

func TestResolveNilPackage(t *testing.T) {
	_, err := Resolve(nil, mapping.Package{})
	require.Error(t, err)
}
