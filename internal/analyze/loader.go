package analyze

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// LoadPackages loads the specified packages and adds them to the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/vectors").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	_, err := a.load(&packages.Config{Mode: LoadMode}, patterns...)
	if err != nil {
		return nil, err
	}

	return a.graph, nil
}

// LoadDir loads the package in dir. The files named in exclude are replaced
// by an empty file of the same package, so a stale or broken generated file
// does not stop the package from type-checking.
func (a *Analyzer) LoadDir(dir string, exclude ...string) (*PackageInfo, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	overlay, err := excludeOverlay(abs, exclude)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     abs,
		Overlay: overlay,
	}

	infos, err := a.load(cfg, ".")
	if err != nil {
		return nil, err
	}

	if len(infos) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(infos))
	}

	infos[0].Dir = abs

	return infos[0], nil
}

func (a *Analyzer) load(cfg *packages.Config, patterns ...string) ([]*PackageInfo, error) {
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	infos := make([]*PackageInfo, 0, len(pkgs))

	for _, pkg := range pkgs {
		info := a.processPackage(pkg)
		a.graph.Packages[pkg.PkgPath] = info
		infos = append(infos, info)
	}

	return infos, nil
}

// processPackage extracts the named types of a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Types: pkg.Types,
		Fset:  pkg.Fset,
		Named: make(map[string]*TypeInfo),
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	var objs []*types.TypeName

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		if _, ok := typeName.Type().(*types.Named); !ok {
			continue
		}

		objs = append(objs, typeName)
	}

	// Files are parsed concurrently, so positions only order types within
	// one file.
	sort.SliceStable(objs, func(i, j int) bool {
		pi, pj := pkg.Fset.Position(objs[i].Pos()), pkg.Fset.Position(objs[j].Pos())
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}

		return pi.Offset < pj.Offset
	})

	for _, obj := range objs {
		ti := analyzeNamed(pkg.Fset, obj.Type().(*types.Named))
		info.Named[obj.Name()] = ti
		info.Order = append(info.Order, obj.Name())
	}

	return info
}

func analyzeNamed(fset *token.FileSet, named *types.Named) *TypeInfo {
	obj := named.Obj()
	info := &TypeInfo{
		ID: TypeID{
			PkgPath: obj.Pkg().Path(),
			Name:    obj.Name(),
		},
		GoType: named,
		Pos:    fset.Position(obj.Pos()),
	}

	switch ut := named.Underlying().(type) {
	case *types.Struct:
		if ut.NumFields() == 0 {
			info.Kind = TypeKindUnit
			break
		}

		info.Kind = TypeKindStruct
		info.Fields = analyzeStructFields(fset, ut)

	case *types.Basic:
		info.Kind = TypeKindBasic

	default:
		info.Kind = TypeKindOther
	}

	return info
}

// analyzeStructFields extracts every field, exported or not, so callers can
// point at the ones they reject.
func analyzeStructFields(fset *token.FileSet, st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := range st.NumFields() {
		field := st.Field(i)
		fields = append(fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
			Pos:      fset.Position(field.Pos()),
		})
	}

	return fields
}

func excludeOverlay(dir string, exclude []string) (map[string][]byte, error) {
	if len(exclude) == 0 {
		return nil, nil
	}

	overlay := make(map[string][]byte)

	for _, name := range exclude {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}

		pkgName, err := packageName(dir, exclude)
		if err != nil {
			return nil, err
		}

		overlay[p] = []byte("package " + pkgName + "\n")
	}

	return overlay, nil
}

// packageName reads the package clause of the first non-test Go file in dir
// that is not excluded.
func packageName(dir string, exclude []string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", dir, err)
	}

	skip := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		skip[name] = true
	}

	fset := token.NewFileSet()

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || skip[name] || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		f, err := parser.ParseFile(fset, filepath.Join(dir, name), nil, parser.PackageClauseOnly)
		if err != nil {
			continue
		}

		return f.Name.Name, nil
	}

	return "", fmt.Errorf("no Go source besides %s in %s", strings.Join(exclude, ", "), dir)
}
