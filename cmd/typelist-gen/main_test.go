package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recordsSrc = `package scratch

type Vec2 struct {
	X, Y float32
}

type Pt2 struct {
	Y, X float32
}
`

const configSrc = `version: "1"
packages:
  - path: .
    records:
      - Vec2
    conversions:
      - source: Vec2
        target: Pt2
`

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	if _, ok := files["go.mod"]; !ok {
		files["go.mod"] = "module scratch\n\ngo 1.24\n"
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	return dir
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(t.Context(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage:")

	code, stdout, _ := runCmd(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "TYPELIST_MAX_TUPLE")

	code, _, stderr = runCmd(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)
}

func TestRun_GenAndCheck(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"records.go":    recordsSrc,
		"typelist.yaml": configSrc,
	})
	config := filepath.Join(dir, "typelist.yaml")

	code, _, stderr := runCmd(t, "check", "-config", config)
	assert.Equal(t, 1, code, "nothing generated yet")
	assert.Contains(t, stderr, "out of date")

	code, _, stderr = runCmd(t, "gen", "-config", config)
	require.Equal(t, 0, code, stderr)

	out, err := os.ReadFile(filepath.Join(dir, "typelist_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "package scratch")
	assert.Contains(t, string(out), `"typelist/hlist"`)
	assert.Contains(t, string(out), "func Vec2ToPt2(v Vec2) Pt2 {")

	code, _, stderr = runCmd(t, "check", "-config", config)
	assert.Equal(t, 0, code, stderr)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "typelist_gen.go"), []byte("package scratch\n"), 0o644))

	code, _, _ = runCmd(t, "check", "-config", config)
	assert.Equal(t, 1, code)
}

func TestRun_GenReportsDiagnostics(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"records.go": recordsSrc,
		"typelist.yaml": `packages:
  - path: .
    conversions:
      - source: Vec2
        target: Pt3
`,
	})

	code, _, stderr := runCmd(t, "gen", "-config", filepath.Join(dir, "typelist.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error: ")
	assert.Contains(t, stderr, "[unknown_record]")
	assert.Contains(t, stderr, "did you mean Pt2?")
	assert.NoFileExists(t, filepath.Join(dir, "typelist_gen.go"))
}

func TestRun_GenRejectsInvalidConfig(t *testing.T) {
	dir := writeModule(t, map[string]string{
		"records.go":    recordsSrc,
		"typelist.yaml": "version: \"9\"\npackages: []\n",
	})

	code, _, stderr := runCmd(t, "gen", "-config", filepath.Join(dir, "typelist.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[config_invalid]")
}

func TestRun_GenMissingConfig(t *testing.T) {
	code, _, stderr := runCmd(t, "gen", "-config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "nope.yaml")
}

func TestRun_Tuples(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCmd(t, "tuples", "-max", "2", "-pkg", "tup", "-out", "tup_gen.go", "-dir", dir, "-lib", "example.com/typelist")
	require.Equal(t, 0, code, stderr)

	out, err := os.ReadFile(filepath.Join(dir, "tup_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "package tup")
	assert.Contains(t, string(out), `import "example.com/typelist/hlist"`)
	assert.Contains(t, string(out), "type T2[A0, A1 any] struct {")
	assert.NotContains(t, string(out), "T3")
}

func TestRun_TuplesWidest(t *testing.T) {
	dir := t.TempDir()

	code, _, stderr := runCmd(t, "tuples", "-max", "128", "-dir", dir, "-lib", "typelist")
	require.Equal(t, 0, code, stderr)

	out, err := os.ReadFile(filepath.Join(dir, "tuple_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "type T128[")

	code, _, stderr = runCmd(t, "tuples", "-max", "129", "-dir", dir, "-lib", "typelist")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "out of range")
}

func TestRun_TuplesArityFromEnv(t *testing.T) {
	t.Setenv("TYPELIST_MAX_TUPLE", "3")

	dir := t.TempDir()

	code, _, stderr := runCmd(t, "tuples", "-dir", dir, "-lib", "typelist")
	require.Equal(t, 0, code, stderr)

	out, err := os.ReadFile(filepath.Join(dir, "tuple_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "type T3[")
	assert.NotContains(t, string(out), "T4")
}

func TestRun_Schema(t *testing.T) {
	code, stdout, stderr := runCmd(t, "schema")
	require.Equal(t, 0, code, stderr)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "typelist-gen configuration", doc["title"])
	assert.Contains(t, doc["properties"], "packages")

	out := filepath.Join(t.TempDir(), "schema.json")
	code, _, _ = runCmd(t, "schema", "-out", out)
	require.Equal(t, 0, code)
	assert.FileExists(t, out)
}

func TestResolveLibrary(t *testing.T) {
	lib, err := resolveLibrary(".")
	require.NoError(t, err)
	assert.Equal(t, "typelist", lib)

	dir := writeModule(t, map[string]string{
		"go.mod": "module example.com/app\n\ngo 1.24\n\nrequire github.com/acme/typelist v1.2.0\n",
	})

	lib, err = resolveLibrary(dir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/acme/typelist", lib)

	dir = writeModule(t, map[string]string{})

	lib, err = resolveLibrary(dir)
	require.NoError(t, err)
	assert.Equal(t, defaultLibrary, lib)
}

func TestRelevant(t *testing.T) {
	outputs := map[string]bool{filepath.Clean("pkg/typelist_gen.go"): true}
	ev := func(name string, op fsnotify.Op) fsnotify.Event {
		return fsnotify.Event{Name: name, Op: op}
	}

	assert.True(t, relevant(ev("pkg/records.go", fsnotify.Write), "typelist.yaml", outputs))
	assert.True(t, relevant(ev("typelist.yaml", fsnotify.Write), "typelist.yaml", outputs))
	assert.True(t, relevant(ev("pkg/old.go", fsnotify.Remove), "typelist.yaml", outputs))
	assert.False(t, relevant(ev("pkg/typelist_gen.go", fsnotify.Write), "typelist.yaml", outputs))
	assert.False(t, relevant(ev("pkg/records_test.go", fsnotify.Write), "typelist.yaml", outputs))
	assert.False(t, relevant(ev("pkg/notes.txt", fsnotify.Write), "typelist.yaml", outputs))
	assert.False(t, relevant(ev("pkg/records.go", fsnotify.Chmod), "typelist.yaml", outputs))
}
