package load

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// basePkgPath is the import path of the package that declares the base
// Repository contract. Interfaces embedding it are picked up as contracts.
const basePkgPath = "github.com/syssam/repogen"

// Config holds the configuration for loading contracts from user packages.
type Config struct {
	// Patterns are the package patterns to scan, in go/packages syntax.
	Patterns []string
	// Names optionally restricts loading to the given interface names.
	// When empty, every exported interface embedding the base contract
	// is loaded.
	Names []string
	// BuildFlags are custom build flags passed to the package loader.
	BuildFlags []string
}

// Load loads the contracts declared in the configured packages.
func (c *Config) Load() ([]*Contract, error) {
	if len(c.Patterns) == 0 {
		return nil, fmt.Errorf("load: missing package patterns")
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		BuildFlags: c.BuildFlags,
	}
	pkgs, err := packages.Load(cfg, c.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	var contracts []*Contract
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("load: package %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		loaded, err := contractsOf(pkg, c.Names)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, loaded...)
	}
	if err := checkNames(contracts, c.Names); err != nil {
		return nil, err
	}
	return contracts, nil
}

// contractsOf extracts the contracts declared in a single package.
// Scope names are already sorted, which keeps the result deterministic.
func contractsOf(pkg *packages.Package, names []string) ([]*Contract, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var contracts []*Contract
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() {
			continue
		}
		iface, ok := types.Unalias(obj.Type()).Underlying().(*types.Interface)
		if !ok {
			if wanted[name] {
				return nil, fmt.Errorf("load: contract %s.%s is not an interface", pkg.PkgPath, name)
			}
			continue
		}
		if len(names) > 0 && !wanted[name] {
			continue
		}
		if len(names) == 0 && !embedsBase(iface) {
			continue
		}
		contract, err := newContract(pkg, obj, iface)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, contract)
	}
	return contracts, nil
}

// checkNames verifies that every explicitly requested contract was found.
func checkNames(contracts []*Contract, names []string) error {
	for _, n := range names {
		found := false
		for _, c := range contracts {
			if c.Name == n {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("load: contract %q not found", n)
		}
	}
	return nil
}

// embedsBase reports whether the interface embeds repogen.Repository,
// directly or through another embedded interface.
func embedsBase(iface *types.Interface) bool {
	for i := 0; i < iface.NumEmbeddeds(); i++ {
		named, ok := types.Unalias(iface.EmbeddedType(i)).(*types.Named)
		if !ok {
			continue
		}
		obj := named.Obj()
		if obj.Pkg() != nil && obj.Pkg().Path() == basePkgPath && obj.Name() == "Repository" {
			return true
		}
		if embedded, ok := named.Underlying().(*types.Interface); ok && embedsBase(embedded) {
			return true
		}
	}
	return false
}

// newContract builds the loaded model for one interface. Methods from
// embedded interfaces come first (in the type-checker's name order), then
// the explicitly declared methods in source order.
func newContract(pkg *packages.Package, obj *types.TypeName, iface *types.Interface) (*Contract, error) {
	pos := pkg.Fset.Position(obj.Pos())
	contract := &Contract{
		Name:    obj.Name(),
		PkgPath: pkg.PkgPath,
		PkgName: pkg.Name,
		Dir:     filepath.Dir(pos.Filename),
		Pos:     pos.String(),
	}
	decl := interfaceDecl(pkg, obj.Name())
	if decl == nil {
		return nil, fmt.Errorf("load: missing declaration for contract %s", contract.FQN())
	}
	explicit := explicitMethods(decl)
	for i := 0; i < iface.NumMethods(); i++ {
		fn := iface.Method(i)
		if _, ok := explicit[fn.Name()]; ok {
			continue
		}
		m := newMethod(pkg, fn)
		m.Embedded = true
		contract.Methods = append(contract.Methods, m)
	}
	for _, em := range ordered(explicit) {
		fn := methodByName(iface, em.name)
		if fn == nil {
			// Type parameters or unexported embedded methods have no
			// place in a generated implementation.
			continue
		}
		m := newMethod(pkg, fn)
		m.Custom = em.custom
		m.Provided = em.provided
		m.Doc = em.doc
		contract.Methods = append(contract.Methods, m)
	}
	return contract, nil
}

// newMethod converts a type-checked method to the loaded model.
func newMethod(pkg *packages.Package, fn *types.Func) *Method {
	sig := fn.Type().(*types.Signature)
	m := &Method{
		Name: fn.Name(),
		Pos:  pkg.Fset.Position(fn.Pos()).String(),
	}
	for i := 0; i < sig.Params().Len(); i++ {
		p := sig.Params().At(i)
		name := p.Name()
		if name == "" {
			name = fmt.Sprintf("p%d", i)
		}
		m.Params = append(m.Params, &Param{Name: name, Type: typeInfo(p.Type())})
	}
	for i := 0; i < sig.Results().Len(); i++ {
		m.Results = append(m.Results, typeInfo(sig.Results().At(i).Type()))
	}
	return m
}

// typeInfo converts a go/types type to the serializable TypeInfo form.
func typeInfo(t types.Type) *TypeInfo {
	info := &TypeInfo{}
	t = types.Unalias(t)
	if s, ok := t.(*types.Slice); ok {
		info.Slice = true
		t = types.Unalias(s.Elem())
	}
	if p, ok := t.(*types.Pointer); ok {
		info.Pointer = true
		t = types.Unalias(p.Elem())
	}
	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()
		info.Ident = obj.Name()
		if obj.Pkg() != nil {
			info.PkgPath = obj.Pkg().Path()
		}
	case *types.Basic:
		info.Ident = t.Name()
	case *types.Interface:
		info.Ident = "any"
	default:
		info.Ident = t.String()
	}
	return info
}

// methodByName scans the complete method set of the interface.
func methodByName(iface *types.Interface, name string) *types.Func {
	for i := 0; i < iface.NumMethods(); i++ {
		if fn := iface.Method(i); fn.Name() == name {
			return fn
		}
	}
	return nil
}

// interfaceDecl finds the AST declaration of the named interface.
func interfaceDecl(pkg *packages.Package, name string) *ast.InterfaceType {
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Name != name {
					continue
				}
				if it, ok := ts.Type.(*ast.InterfaceType); ok {
					return it
				}
			}
		}
	}
	return nil
}

// explicitMethod carries the source-level information of a declared method.
type explicitMethod struct {
	name     string
	index    int
	custom   bool
	provided bool
	doc      string
}

// explicitMethods collects the methods declared directly on the interface,
// together with their annotation markers.
func explicitMethods(decl *ast.InterfaceType) map[string]*explicitMethod {
	methods := make(map[string]*explicitMethod)
	idx := 0
	for _, field := range decl.Methods.List {
		if len(field.Names) == 0 {
			continue // embedded interface
		}
		em := &explicitMethod{name: field.Names[0].Name, index: idx}
		em.custom, em.provided, em.doc = parseMarkers(field.Doc, field.Comment)
		methods[em.name] = em
		idx++
	}
	return methods
}

// ordered returns the explicit methods in source order.
func ordered(methods map[string]*explicitMethod) []*explicitMethod {
	out := make([]*explicitMethod, len(methods))
	for _, em := range methods {
		out[em.index] = em
	}
	return out
}

// parseMarkers extracts repogen markers from the method's comment groups.
// Non-marker lines are joined into the method documentation.
func parseMarkers(groups ...*ast.CommentGroup) (custom, provided bool, doc string) {
	var lines []string
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, cmt := range g.List {
			text := strings.TrimSpace(strings.TrimPrefix(cmt.Text, "//"))
			switch text {
			case "repogen:custom":
				custom = true
			case "repogen:provided":
				provided = true
			default:
				if text != "" {
					lines = append(lines, text)
				}
			}
		}
	}
	return custom, provided, strings.Join(lines, " ")
}
