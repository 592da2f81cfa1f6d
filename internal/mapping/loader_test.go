package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
version: "1"
packages:
  - path: ./examples/vectors
    records:
      - Vec3
      - type: TuplePoint
        positional: true
    conversions:
      - source: Vec3
        target: Point
      - source: Vec3Ex
        target: PointEx
        deep: true
        name: Flatten
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Packages, 1)

	p := f.Packages[0]
	assert.Equal(t, "./examples/vectors", p.Path)
	assert.Equal(t, DefaultOutput, p.Output)
	assert.Equal(t, []Record{{Type: "Vec3"}, {Type: "TuplePoint", Positional: true}}, p.Records)

	require.Len(t, p.Conversions, 2)
	assert.Equal(t, "Vec3ToPoint", p.Conversions[0].Name)
	assert.False(t, p.Conversions[0].Deep)
	assert.Equal(t, "Flatten", p.Conversions[1].Name)
	assert.True(t, p.Conversions[1].Deep)
	assert.Equal(t, "Vec3Ex->PointEx", p.Conversions[1].Pair())
}

func TestParseDefaultsVersion(t *testing.T) {
	f, err := Parse([]byte("packages:\n  - path: .\n"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("packages:\n  - path: .\n    mappings: []\n"))
	require.Error(t, err)
}

func TestParseRejectsBadRecord(t *testing.T) {
	_, err := Parse([]byte("packages:\n  - path: .\n    records:\n      - [Vec3]\n"))
	require.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "- Vec3\n")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "typelist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), filePerm))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, f.BaseDir)
	assert.Equal(t, filepath.Join(dir, "examples", "vectors"), f.Packages[0].Dir(f.BaseDir))

	out := filepath.Join(dir, "copy.yaml")
	require.NoError(t, WriteFile(f, out))

	again, err := LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, f.Packages, again.Packages)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestPackageDir(t *testing.T) {
	abs := filepath.Join(string(filepath.Separator), "src", "vectors")
	assert.Equal(t, abs, Package{Path: abs}.Dir("/elsewhere"))
	assert.Equal(t, "vectors", Package{Path: "./vectors"}.Dir(""))
}
