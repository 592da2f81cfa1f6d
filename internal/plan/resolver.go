package plan

import (
	"errors"
	"fmt"
	"sort"

	"typelist/internal/analyze"
	"typelist/internal/diagnostic"
	"typelist/internal/mapping"
	"typelist/internal/match"
	"typelist/internal/naming"
)

// MaxSuggestions is the number of field names offered for a typo.
const MaxSuggestions = 3

// Resolver performs the resolution pipeline for one package.
type Resolver struct {
	pkg   *analyze.PackageInfo
	cfg   mapping.Package
	diags *diagnostic.Diagnostics

	// records caches registrations by type name; a nil entry marks a type
	// that was rejected, so it is diagnosed once.
	records map[string]*Record
	// positional holds the configured record options.
	positional map[string]bool
	pairs      map[string]*DeepPair
	order      []*DeepPair
}

// NewResolver creates a new Resolver.
func NewResolver(pkg *analyze.PackageInfo, cfg mapping.Package) *Resolver {
	return &Resolver{
		pkg:        pkg,
		cfg:        cfg,
		records:    make(map[string]*Record),
		positional: make(map[string]bool),
		pairs:      make(map[string]*DeepPair),
	}
}

// Resolve runs the full resolution pipeline. The plan is returned even when
// it carries error diagnostics, so callers can report all of them.
func (r *Resolver) Resolve() (*Plan, error) {
	if r.pkg == nil {
		return nil, errors.New("package is required")
	}

	plan := &Plan{
		Package: r.pkg,
		Output:  r.cfg.Output,
	}
	r.diags = &plan.Diagnostics

	for _, rc := range r.cfg.Records {
		r.positional[rc.Type] = rc.Positional
	}

	for _, rc := range r.cfg.Records {
		r.record(rc.Type, "")
	}

	for _, cc := range r.cfg.Conversions {
		if conv := r.resolveConversion(cc); conv != nil {
			plan.Conversions = append(plan.Conversions, conv)
		}
	}

	plan.Records = r.sortedRecords()
	plan.Names = r.names(plan.Records)
	plan.Deep = r.order

	r.checkNames(plan)

	return plan, nil
}

// Resolve is a shorthand for NewResolver(pkg, cfg).Resolve().
func Resolve(pkg *analyze.PackageInfo, cfg mapping.Package) (*Plan, error) {
	return NewResolver(pkg, cfg).Resolve()
}

func (r *Resolver) resolveConversion(cc mapping.Conversion) *Conversion {
	pair := cc.Pair()

	src := r.record(cc.Source, pair)
	dst := r.record(cc.Target, pair)

	if src == nil || dst == nil {
		return nil
	}

	conv := &Conversion{
		Func:   cc.Name,
		Source: src,
		Target: dst,
	}

	if conv.Func == "" {
		conv.Func = naming.ConvertFunc(src.Name, dst.Name)
	}

	if cc.Deep {
		conv.Deep = r.deepPair(src, dst, analyze.NewTypePath(src.Name))
		if conv.Deep == nil {
			return nil
		}

		return conv
	}

	steps, ok := r.shuffle(src, dst)
	if !ok {
		return nil
	}

	conv.Var = naming.ShuffleVar(src.Name, dst.Name)
	conv.Steps = steps

	return conv
}

func (r *Resolver) sortedRecords() []*Record {
	rank := make(map[string]int, len(r.pkg.Order))
	for i, name := range r.pkg.Order {
		rank[name] = i
	}

	var out []*Record

	for _, rec := range r.records {
		if rec != nil {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return rank[out[i].Name] < rank[out[j].Name]
	})

	return out
}

func (r *Resolver) names(records []*Record) []Name {
	seen := map[string]Name{}

	for _, rec := range records {
		if rec.Positional {
			continue
		}

		for _, f := range rec.Fields {
			if _, ok := seen[f.Name]; ok {
				continue
			}

			encoded, err := naming.Encode(f.Name, naming.DefaultQualifiers)
			if err != nil {
				continue
			}

			seen[f.Name] = Name{Alias: f.Label, Field: f.Name, Encoded: encoded}
		}
	}

	out := make([]Name, 0, len(seen))
	for _, n := range seen {
		out = append(out, n)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Field < out[j].Field
	})

	return out
}

// checkNames reports generated identifiers that are declared twice, either by
// the generated file itself or by the package it is generated into.
func (r *Resolver) checkNames(p *Plan) {
	owners := make(map[string]string)

	claim := func(ident, owner string, opts ...diagnostic.Option) {
		if prev, ok := owners[ident]; ok {
			if prev != owner {
				r.diags.AddError(diagnostic.CodeNameCollision,
					fmt.Sprintf("%s is generated for both %s and %s", ident, prev, owner), "", ident, opts...)
			}

			return
		}

		owners[ident] = owner

		if r.pkg.Types == nil {
			return
		}

		if obj := r.pkg.Types.Scope().Lookup(ident); obj != nil {
			r.diags.AddError(diagnostic.CodeNameCollision,
				fmt.Sprintf("%s, generated for %s, is already declared in package %s", ident, owner, r.pkg.Path),
				"", ident, diagnostic.At(r.pkg.Position(obj.Pos())))
		}
	}

	for _, n := range p.Names {
		claim(n.Alias, "the name "+n.Field)
	}

	for _, rec := range p.Records {
		claim(rec.Canon(), "record "+rec.Name, diagnostic.At(rec.Type.Pos))

		for _, f := range rec.Fields {
			claim(f.Elem, "field "+label(rec, f), diagnostic.At(f.Pos))
		}
	}

	for _, d := range p.Deep {
		claim(d.Var, "deep conversion "+d.Key())
	}

	for _, c := range p.Conversions {
		owner := "conversion " + c.Source.Name + "->" + c.Target.Name

		claim(c.Func, owner)

		if c.Var != "" {
			claim(c.Var, owner)
		}
	}
}

func (r *Resolver) suggestRecords(name string) []string {
	var structs []string

	for _, n := range r.pkg.Order {
		if t := r.pkg.Named[n]; t != nil && t.IsStruct() {
			structs = append(structs, n)
		}
	}

	return match.Suggest(name, structs, MaxSuggestions)
}

func (r *Resolver) addFieldError(code, msg, pair string, f Field, opts ...diagnostic.Option) {
	r.diags.AddError(code, msg, pair, f.Name, append([]diagnostic.Option{diagnostic.At(f.Pos)}, opts...)...)
}

func describe(f Field) string {
	return fmt.Sprintf("%s %s", f.Name, f.Type)
}
