package gen

import (
	"typelist/internal/common"
	"typelist/internal/plan"
)

// templateData holds data for the records template.
type templateData struct {
	Tool        string
	PackageName string
	Filename    string
	Anon        string
	Imports     []importSpec
	Names       []aliasData
	Records     []recordData
	Deep        []aliasData
	Conversions []conversionData
}

// aliasData is one name = expression line.
type aliasData struct {
	Alias string
	Expr  string
}

type recordData struct {
	Name      string
	Canon     string
	Elems     []aliasData
	CanonExpr string
	Into      string
	Assigns   []aliasData
}

type conversionData struct {
	Func    string
	Source  string
	Target  string
	Var     string
	Expr    string
	Deep    bool
	Dropped bool
}

// buildTemplateData renders every expression of p. Imports are collected
// while rendering, so they are filled in last.
func (g *Generator) buildTemplateData(p *plan.Plan) (*templateData, error) {
	imports := newImportSet(p.Package.Path)

	// The library names are reserved first so encoded names, which use
	// the plain package names, stay valid.
	e := exprs{
		hlist: imports.reserve(g.libPath(hlistPkg), hlistPkg),
		anon:  imports.reserve(g.libPath(anonPkg), anonPkg),
	}
	imports.reserve(g.libPath(characterPkg), libName(characterPkg))

	data := &templateData{
		Tool:        g.config.Tool,
		PackageName: p.Package.Name,
		Filename:    p.Output,
		Anon:        e.anon,
	}

	if !common.IsEmpty(p.Names) {
		imports.use(g.libPath(characterPkg), libName(characterPkg))
	}

	for _, n := range p.Names {
		data.Names = append(data.Names, aliasData{Alias: n.Alias, Expr: n.Encoded})
	}

	for _, r := range p.Records {
		data.Records = append(data.Records, g.buildRecord(r, e, imports))
	}

	if !common.IsEmpty(p.Records) {
		imports.use(g.libPath(hlistPkg), hlistPkg)
		imports.use(g.libPath(anonPkg), anonPkg)
	}

	deep, err := orderDeepPairs(p.Deep)
	if err != nil {
		return nil, err
	}

	for _, d := range deep {
		data.Deep = append(data.Deep, aliasData{Alias: d.Var, Expr: e.deep(d, imports.typeExpr)})
	}

	for _, c := range p.Conversions {
		cd := conversionData{
			Func:   c.Func,
			Source: c.Source.Name,
			Target: c.Target.Name,
			Var:    c.Var,
		}

		if c.IsDeep() {
			cd.Deep = true
			cd.Var = c.Deep.Var
			cd.Dropped = !common.IsEmpty(c.Deep.Dropped)
		} else {
			cd.Expr = e.selection(c.Steps)
		}

		data.Conversions = append(data.Conversions, cd)
	}

	data.Imports = imports.specs()

	return data, nil
}

func (g *Generator) buildRecord(r *plan.Record, e exprs, imports *importSet) recordData {
	rd := recordData{
		Name:      r.Name,
		Canon:     r.Canon(),
		CanonExpr: e.chain(r.Fields),
		Into:      e.into(r),
	}

	for i, f := range r.Fields {
		var expr string
		if r.Positional {
			expr = e.anon + ".Unnamed[" + imports.typeExpr(f.Type) + "]"
		} else {
			expr = e.anon + ".Named[" + imports.typeExpr(f.Type) + ", " + f.Label + "]"
		}

		rd.Elems = append(rd.Elems, aliasData{Alias: f.Elem, Expr: expr})
		rd.Assigns = append(rd.Assigns, aliasData{Alias: f.Name, Expr: access(i)})
	}

	return rd
}

// orderDeepPairs sorts pairs so each one follows the pairs it uses. Pairs
// with no dependency between them keep their plan order.
func orderDeepPairs(pairs []*plan.DeepPair) ([]*plan.DeepPair, error) {
	index := make(map[*plan.DeepPair]int, len(pairs))
	for i, p := range pairs {
		index[p] = i
	}

	order, err := topoSort(len(pairs), func(i int) []int {
		var deps []int

		for _, u := range pairs[i].Uses() {
			if j, ok := index[u]; ok {
				deps = append(deps, j)
			}
		}

		return deps
	})
	if err != nil {
		return nil, err
	}

	out := make([]*plan.DeepPair, len(order))
	for i, j := range order {
		out[i] = pairs[j]
	}

	return out, nil
}
