package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	// The sidecar must not be compiled with the package.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go.txt"

	return os.WriteFile(filepath.Join(outDir, debugName), content, filePerm)
}
