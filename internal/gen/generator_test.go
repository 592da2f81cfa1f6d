package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"typelist/internal/analyze"
	"typelist/internal/mapping"
	"typelist/internal/plan"
)

func resolveShapes(t *testing.T, cfg mapping.Package) *plan.Plan {
	t.Helper()

	pkg, err := analyze.NewAnalyzer().LoadDir("testdata/shapes")
	require.NoError(t, err)

	if cfg.Output == "" {
		cfg.Output = mapping.DefaultOutput
	}

	p, err := plan.Resolve(pkg, cfg)
	require.NoError(t, err)
	require.True(t, p.Diagnostics.IsValid(), p.Diagnostics.Error())

	return p
}

func generate(t *testing.T, cfg mapping.Package) string {
	t.Helper()

	file, err := NewGenerator(GeneratorConfig{}).Generate(resolveShapes(t, cfg))
	require.NoError(t, err)
	assert.Equal(t, mapping.DefaultOutput, file.Filename)

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err, string(file.Content))

	return string(file.Content)
}

func conv(source, target string, deep bool) mapping.Conversion {
	return mapping.Conversion{Source: source, Target: target, Deep: deep}
}

func TestGenerate_Shuffle(t *testing.T) {
	src := generate(t, mapping.Package{Conversions: []mapping.Conversion{conv("Vec2", "Pt2", false)}})

	for _, want := range []string{
		"// Code generated by typelist-gen. DO NOT EDIT.",
		"package shapes",
		`"typelist/anon"`,
		`"typelist/anon/character"`,
		`"typelist/hlist"`,
		"nameOf_X = hlist.Cons[character.X, hlist.Nil]",
		"vec2_X = anon.Named[float32, nameOf_X]",
		"type Vec2Canon = hlist.Cons[vec2_X, hlist.Cons[vec2_Y, hlist.Nil]]",
		"func (v Vec2) IntoCanon() Vec2Canon {",
		"func (v *Pt2) FromCanon(c Pt2Canon) {",
		"v.X = c.Rest.Value.Value",
		"hlist.There[vec2_X](hlist.Here[vec2_Y, hlist.Nil]())",
		"hlist.Here[vec2_X, hlist.Nil]()",
		"hlist.SelectNone[hlist.Nil]()",
		"func Vec2ToPt2(v Vec2) Pt2 {",
		"return anon.Convert[Pt2](v, vec2ToPt2Shuffle)",
	} {
		assert.Contains(t, src, want)
	}

	assert.NotContains(t, src, `"typelist/character"`)

	// Records are emitted in declaration order.
	assert.Less(t, strings.Index(src, "type Vec2Canon"), strings.Index(src, "type Pt2Canon"))
}

func TestGenerate_RecordCalledName(t *testing.T) {
	src := generate(t, mapping.Package{Conversions: []mapping.Conversion{conv("Name", "Other", false)}})

	assert.Contains(t, src, "nameOf_X = hlist.Cons[character.X, hlist.Nil]")
	assert.Contains(t, src, "name_X = anon.Named[float32, nameOf_X]")
	assert.Equal(t, 1, strings.Count(src, "\tname_X ="), src)
	assert.Equal(t, 1, strings.Count(src, "\tnameOf_X ="), src)
}

func TestGenerate_ImportsFieldPackages(t *testing.T) {
	src := generate(t, mapping.Package{Conversions: []mapping.Conversion{conv("Stamp", "Mark", false)}})

	assert.Contains(t, src, `"time"`)
	assert.Contains(t, src, "stamp_At  = anon.Named[time.Time, nameOf_At]")
	assert.Contains(t, src, "return anon.Convert[Mark](v, stampToMarkShuffle)")
}

func TestGenerate_Positional(t *testing.T) {
	src := generate(t, mapping.Package{
		Records: []mapping.Record{
			{Type: "Pair", Positional: true},
			{Type: "Swap", Positional: true},
		},
		Conversions: []mapping.Conversion{conv("Pair", "Swap", false)},
	})

	assert.NotContains(t, src, "character", "positional records need no names")
	assert.Contains(t, src, "swap_0 = anon.Unnamed[int]")
	assert.Contains(t, src, "anon.Pos(v.A)")
	assert.Contains(t, src, "hlist.There[pair_0](hlist.Here[pair_1, hlist.Nil]())")
	assert.Contains(t, src, "hlist.Here[pair_0, hlist.Nil]()")
}

func TestGenerate_Deep(t *testing.T) {
	src := generate(t, mapping.Package{Conversions: []mapping.Conversion{
		conv("Tree", "Tree2", true),
		conv("Leaf", "Leaf2", true),
	}})

	for _, want := range []string{
		"var leafToLeaf2Deep = anon.DeepRecord[Leaf2, Leaf](",
		"anon.DeepNil[hlist.Cons[leaf_Extra, hlist.Nil]]()",
		"anon.Identity[int]()",
		"var treeToTree2Deep = anon.DeepRecord[Tree2, Tree](",
		"anon.Pointer(leafToLeaf2Deep)",
		"anon.Slice(leafToLeaf2Deep)",
		"return anon.DeepTransform(v, treeToTree2Deep)",
		"// Fields of Leaf that Leaf2 does not declare are dropped.",
	} {
		assert.Contains(t, src, want)
	}

	assert.NotContains(t, src, "// Fields of Tree that")
	assert.NotContains(t, src, "Shuffle")
	assert.Less(t, strings.Index(src, "var leafToLeaf2Deep"), strings.Index(src, "var treeToTree2Deep"))
	assert.Equal(t, 1, strings.Count(src, "var leafToLeaf2Deep"))
}

func TestGenerate_Deterministic(t *testing.T) {
	cfg := mapping.Package{Conversions: []mapping.Conversion{
		conv("Vec2", "Pt2", false),
		conv("Stamp", "Mark", false),
		conv("Tree", "Tree2", true),
	}}

	assert.Equal(t, generate(t, cfg), generate(t, cfg))
}

func TestGenerate_CustomLibrary(t *testing.T) {
	g := NewGenerator(GeneratorConfig{Tool: "tl", Library: "example.com/tl"})

	file, err := g.Generate(resolveShapes(t, mapping.Package{
		Conversions: []mapping.Conversion{conv("Vec2", "Pt2", false)},
	}))
	require.NoError(t, err)

	src := string(file.Content)
	assert.Contains(t, src, "// Code generated by tl. DO NOT EDIT.")
	assert.Contains(t, src, `"example.com/tl/hlist"`)
	assert.Contains(t, src, `"example.com/tl/anon/character"`)
}

func TestGenerate_InvalidPlan(t *testing.T) {
	pkg, err := analyze.NewAnalyzer().LoadDir("testdata/shapes")
	require.NoError(t, err)

	p, err := plan.Resolve(pkg, mapping.Package{
		Output:      mapping.DefaultOutput,
		Conversions: []mapping.Conversion{conv("Vec2", "Vec9", false)},
	})
	require.NoError(t, err)

	_, err = NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.ErrorIs(t, err, ErrInvalidPlan)
	assert.Contains(t, err.Error(), "Vec9")

	_, err = NewGenerator(DefaultGeneratorConfig()).Generate(nil)
	require.Error(t, err)
}

func TestGenerate_FormatFailureWritesSidecar(t *testing.T) {
	dir := t.TempDir()
	g := NewGenerator(GeneratorConfig{OutputDir: dir})

	file, err := g.format("broken.go", []byte("package broken\nfunc {"))
	require.Error(t, err)
	require.NotNil(t, file)
	assert.Equal(t, "package broken\nfunc {", string(file.Content))

	b, err := os.ReadFile(filepath.Join(dir, "broken.unformatted.go.txt"))
	require.NoError(t, err)
	assert.Equal(t, file.Content, b)
}

func TestOrderDeepPairs(t *testing.T) {
	p := resolveShapes(t, mapping.Package{Conversions: []mapping.Conversion{conv("Tree", "Tree2", true)}})
	require.Len(t, p.Deep, 2, spew.Sdump(p.Deep))

	// Reversed input still comes out dependencies first.
	ordered, err := orderDeepPairs([]*plan.DeepPair{p.Deep[1], p.Deep[0]})
	require.NoError(t, err)
	assert.Equal(t, "Leaf->Leaf2", ordered[0].Key())
	assert.Equal(t, "Tree->Tree2", ordered[1].Key())
}

func TestGenerateTuples_MatchesTuplePackage(t *testing.T) {
	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateTuples("tuple", "tuple_gen.go", 16)
	require.NoError(t, err)

	want, err := os.ReadFile(filepath.Join("..", "..", "tuple", "tuple_gen.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(file.Content))
}

func TestGenerateTuples_Arity(t *testing.T) {
	g := NewGenerator(DefaultGeneratorConfig())

	file, err := g.GenerateTuples("tup", "tup.go", 0)
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), "type T0 struct{}")
	assert.NotContains(t, string(file.Content), "T1")

	file, err = g.GenerateTuples("tup", "tup.go", 1)
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), "// T1 is a tuple of 1 element.")
	assert.Contains(t, string(file.Content), "return T1[A0]{v0}")

	_, err = g.GenerateTuples("tup", "tup.go", MaxTupleArity+1)
	require.Error(t, err)
}

func TestGenerateTuples_Widest(t *testing.T) {
	file, err := NewGenerator(DefaultGeneratorConfig()).GenerateTuples("tup", "tup.go", 128)
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), file.Filename, file.Content, parser.AllErrors)
	require.NoError(t, err)

	src := string(file.Content)
	assert.Contains(t, src, "// T128 is a tuple of 128 elements.")
	assert.Contains(t, src, "V127 A127")
	assert.Contains(t, src, "V127: l"+strings.Repeat(".Rest", 127)+".Value,")
	assert.NotContains(t, src, "T129")
}

func TestStale(t *testing.T) {
	dir := t.TempDir()
	file := GeneratedFile{Filename: "a.go", Content: []byte("package a\n")}

	stale, err := Stale(file, dir)
	require.NoError(t, err)
	assert.True(t, stale, "missing file")

	require.NoError(t, WriteFiles([]GeneratedFile{file}, dir))

	stale, err = Stale(file, dir)
	require.NoError(t, err)
	assert.False(t, stale)

	file.Content = []byte("package b\n")
	stale, err = Stale(file, dir)
	require.NoError(t, err)
	assert.True(t, stale)
}
