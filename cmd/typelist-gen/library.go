package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// defaultLibrary is the module path of typelist.
const defaultLibrary = "typelist"

// resolveLibrary returns the import path generated code in dir uses for the
// typelist packages: the enclosing module when it is typelist itself, else
// the required module whose path ends in /typelist.
func resolveLibrary(dir string) (string, error) {
	gomod, err := findGoMod(dir)
	if err != nil {
		return "", err
	}

	if gomod == "" {
		return defaultLibrary, nil
	}

	data, err := os.ReadFile(gomod)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", gomod, err)
	}

	mf, err := modfile.ParseLax(gomod, data, nil)
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", gomod, err)
	}

	if mf.Module != nil && isLibrary(mf.Module.Mod.Path) {
		return mf.Module.Mod.Path, nil
	}

	for _, r := range mf.Require {
		if isLibrary(r.Mod.Path) {
			return r.Mod.Path, nil
		}
	}

	return defaultLibrary, nil
}

func isLibrary(path string) bool {
	return path == defaultLibrary || strings.HasSuffix(path, "/"+defaultLibrary)
}

// findGoMod returns the go.mod governing dir, or "" outside any module.
func findGoMod(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		p := filepath.Join(abs, "go.mod")

		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}

		abs = parent
	}
}
