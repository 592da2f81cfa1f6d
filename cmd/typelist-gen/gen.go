package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"typelist/internal/analyze"
	"typelist/internal/diagnostic"
	"typelist/internal/gen"
	"typelist/internal/mapping"
	"typelist/internal/plan"
)

// errDiagnostics marks a failure already reported diagnostic by diagnostic.
var errDiagnostics = errors.New("configuration has errors")

// dump prints plans without descending into go/types internals.
var dump = spew.ConfigState{Indent: "  ", MaxDepth: 4, DisablePointerAddresses: true, SortKeys: true}

// genFlags are the flags shared by gen, check and watch.
type genFlags struct {
	config  string
	lib     string
	verbose bool
}

func (a *app) parseGenFlags(name string, args []string) (*genFlags, error) {
	f := &genFlags{}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&f.config, "config", a.env.Config, "config file")
	fs.StringVar(&f.lib, "lib", "", "import path of the typelist module (default: from go.mod)")
	fs.BoolVar(&f.verbose, "v", false, "report info diagnostics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return f, nil
}

// target is one configured package after generation.
type target struct {
	cfg  mapping.Package
	dir  string
	plan *plan.Plan
	file *gen.GeneratedFile
}

// render loads the config and generates every package in it. Packages are
// analyzed concurrently; all diagnostics are reported before returning.
func (a *app) render(ctx context.Context, f *genFlags) ([]*target, error) {
	file, err := mapping.LoadFile(f.config)
	if err != nil {
		return nil, err
	}

	if diags := mapping.Validate(file); diags.HasErrors() {
		a.report(diags, f.verbose)
		return nil, errDiagnostics
	}

	targets := make([]*target, len(file.Packages))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, pc := range file.Packages {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			t, err := a.renderPackage(pc, file.BaseDir, f.lib)
			if err != nil {
				return fmt.Errorf("package %s: %w", pc.Path, err)
			}

			targets[i] = t

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var diags diagnostic.Diagnostics
	for _, t := range targets {
		diags.Merge(t.plan.Diagnostics)
	}

	a.report(&diags, f.verbose)

	if diags.HasErrors() {
		return nil, errDiagnostics
	}

	for _, t := range targets {
		if err := a.generate(t, f.lib); err != nil {
			return nil, err
		}
	}

	return targets, nil
}

func (a *app) renderPackage(pc mapping.Package, base, lib string) (*target, error) {
	dir := pc.Dir(base)

	pkg, err := analyze.NewAnalyzer().LoadDir(dir, pc.Output)
	if err != nil {
		return nil, err
	}

	p, err := plan.Resolve(pkg, pc)
	if err != nil {
		return nil, err
	}

	a.log.Debug("resolved", "package", pkg.Path, "records", len(p.Records),
		"conversions", len(p.Conversions), "deep", len(p.Deep))

	if a.env.Debug {
		a.log.Debug("plan", "package", pkg.Path, "conversions", dump.Sdump(p.Conversions))
	}

	return &target{cfg: pc, dir: dir, plan: p}, nil
}

func (a *app) generate(t *target, lib string) error {
	if lib == "" {
		var err error
		if lib, err = resolveLibrary(t.dir); err != nil {
			return err
		}
	}

	g := gen.NewGenerator(gen.GeneratorConfig{Library: lib, OutputDir: t.dir})

	file, err := g.Generate(t.plan)
	if err != nil {
		return fmt.Errorf("generating %s: %w", t.plan.Package.Path, err)
	}

	t.file = file

	return nil
}

// report prints errors and warnings, and infos when verbose.
func (a *app) report(d *diagnostic.Diagnostics, verbose bool) {
	for _, diag := range d.All() {
		if diag.Severity == diagnostic.SeverityInfo && !verbose {
			continue
		}

		fmt.Fprintf(a.stderr, "%s: %s\n", diag.Severity, diag)
	}
}

func (a *app) fail(err error) int {
	if !errors.Is(err, errDiagnostics) {
		a.log.Error("failed", "err", err)
	}

	return 1
}

func (a *app) cmdGen(ctx context.Context, args []string) int {
	f, err := a.parseGenFlags("gen", args)
	if err != nil {
		return 2
	}

	if err := a.genOnce(ctx, f); err != nil {
		return a.fail(err)
	}

	return 0
}

func (a *app) genOnce(ctx context.Context, f *genFlags) error {
	targets, err := a.render(ctx, f)
	if err != nil {
		return err
	}

	for _, t := range targets {
		if err := gen.WriteFiles([]gen.GeneratedFile{*t.file}, t.dir); err != nil {
			return err
		}

		a.log.Info("generated", "package", t.plan.Package.Path, "file", t.file.Filename)
	}

	return nil
}

func (a *app) cmdCheck(ctx context.Context, args []string) int {
	f, err := a.parseGenFlags("check", args)
	if err != nil {
		return 2
	}

	targets, err := a.render(ctx, f)
	if err != nil {
		return a.fail(err)
	}

	code := 0

	for _, t := range targets {
		stale, err := gen.Stale(*t.file, t.dir)
		if err != nil {
			return a.fail(err)
		}

		if stale {
			fmt.Fprintf(a.stderr, "%s: %s/%s is out of date\n", appName, t.dir, t.file.Filename)

			code = 1
		}
	}

	return code
}
