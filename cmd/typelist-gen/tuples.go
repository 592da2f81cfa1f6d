package main

import (
	"flag"
	"fmt"

	"typelist/internal/gen"
)

func (a *app) cmdTuples(args []string) int {
	fs := flag.NewFlagSet("tuples", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	maxArity := fs.Int("max", a.env.MaxTuple, "widest tuple to generate")
	pkg := fs.String("pkg", "tuple", "package name")
	out := fs.String("out", "tuple_gen.go", "output file name")
	dir := fs.String("dir", ".", "output directory")
	lib := fs.String("lib", "", "import path of the typelist module (default: from go.mod)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *lib == "" {
		var err error
		if *lib, err = resolveLibrary(*dir); err != nil {
			return a.fail(err)
		}
	}

	g := gen.NewGenerator(gen.GeneratorConfig{Library: *lib, OutputDir: *dir})

	file, err := g.GenerateTuples(*pkg, *out, *maxArity)
	if err != nil {
		return a.fail(fmt.Errorf("generating tuples: %w", err))
	}

	if err := gen.WriteFiles([]gen.GeneratedFile{*file}, *dir); err != nil {
		return a.fail(err)
	}

	a.log.Info("generated", "file", file.Filename, "max", *maxArity, "lib", *lib)

	return 0
}
