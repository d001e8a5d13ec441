package analyze

import (
	"context"
	"fmt"
	"go/types"
	"path/filepath"
	"sort"

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
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/wellknown",
// "google.golang.org/protobuf/types/known/structpb").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Register every package first so cross-package references resolve
	// against loaded packages rather than being marked external.
	for _, pkg := range pkgs {
		a.graph.Packages[pkg.PkgPath] = &PackageInfo{
			Path: pkg.PkgPath,
			Name: pkg.Name,
			Dir:  packageDir(pkg),
		}
	}

	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// ResolvePackage resolves a single package pattern to its import path,
// name and directory without type-checking it.
func (a *Analyzer) ResolvePackage(ctx context.Context, pattern string) (*PackageInfo, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package %s: %w", pattern, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("pattern %s matches %d packages, want exactly one", pattern, len(pkgs))
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("package errors: %v", pkg.Errors)
	}

	return &PackageInfo{Path: pkg.PkgPath, Name: pkg.Name, Dir: packageDir(pkg)}, nil
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return ""
	}

	return filepath.Dir(pkg.GoFiles[0])
}

// processPackage extracts types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	scope := pkg.Types.Scope()

	var (
		named      []*types.TypeName
		interfaces []*TypeInfo
	)

	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named = append(named, typeName)
	}

	// Declaration order (file name, then offset), not scope order.
	sort.SliceStable(named, func(i, j int) bool {
		pi, pj := pkg.Fset.Position(named[i].Pos()), pkg.Fset.Position(named[j].Pos())
		if pi.Filename != pj.Filename {
			return pi.Filename < pj.Filename
		}

		return pi.Offset < pj.Offset
	})

	for _, typeName := range named {
		typeInfo := a.analyzeType(typeName.Type())
		typeInfo.ID = TypeID{PkgPath: pkg.PkgPath, Name: typeName.Name()}
		typeInfo.Pos = pkg.Fset.Position(typeName.Pos())

		a.graph.AddType(typeInfo)

		if typeInfo.Kind == TypeKindInterface {
			interfaces = append(interfaces, typeInfo)
		}
	}

	for _, iface := range interfaces {
		a.collectVariants(iface, named)
	}

	return nil
}

// collectVariants records the types of the same package implementing iface,
// in declaration order.
func (a *Analyzer) collectVariants(iface *TypeInfo, named []*types.TypeName) {
	it, ok := iface.GoType.Underlying().(*types.Interface)
	if !ok || it.NumMethods() == 0 {
		return
	}

	for _, tn := range named {
		t := tn.Type()
		if types.IsInterface(t) {
			continue
		}

		if n, ok := t.(*types.Named); ok && n.TypeParams().Len() > 0 {
			continue
		}

		switch {
		case types.Implements(t, it):
			iface.Variants = append(iface.Variants, Variant{Type: a.typeCache[t]})
		case types.Implements(types.NewPointer(t), it):
			iface.Variants = append(iface.Variants, Variant{Type: a.typeCache[t], Pointer: true})
		}
	}
}

// analyzeType recursively analyzes a go/types.Type and returns a TypeInfo.
func (a *Analyzer) analyzeType(t types.Type) *TypeInfo {
	// Check cache to handle recursive types
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{
		GoType: t,
	}

	// Pre-cache to handle recursive types (we'll fill in details)
	a.typeCache[t] = info

	switch tt := t.(type) {
	case *types.Named:
		a.analyzeNamedType(tt, info)

	case *types.Basic:
		info.Kind = TypeKindBasic
		info.ID = TypeID{Name: tt.Name()}

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Map:
		info.Kind = TypeKindMap
		info.KeyType = a.analyzeType(tt.Key())
		info.ElemType = a.analyzeType(tt.Elem())

	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(tt, info)

	case *types.Interface:
		info.Kind = TypeKindInterface
		a.analyzeInterfaceMethods(tt, info)

	default:
		// Channels, functions, type parameters, etc. are unsupported
		info.Kind = TypeKindUnknown
	}

	return info
}

// analyzeNamedType analyzes a named type.
func (a *Analyzer) analyzeNamedType(named *types.Named, info *TypeInfo) {
	obj := named.Obj()
	if obj.Pkg() == nil {
		// Universe types such as error.
		info.ID = TypeID{Name: obj.Name()}
		info.Kind = TypeKindInterface

		return
	}

	info.ID = TypeID{
		PkgPath: obj.Pkg().Path(),
		Name:    obj.Name(),
	}

	if named.TypeParams().Len() > 0 {
		info.Kind = TypeKindUnknown

		return
	}

	underlying := named.Underlying()

	switch ut := underlying.(type) {
	case *types.Struct:
		info.Kind = TypeKindStruct
		a.analyzeStructFields(ut, info)

	case *types.Interface:
		info.Kind = TypeKindInterface
		a.analyzeInterfaceMethods(ut, info)

	case *types.Basic:
		// Named basic type (e.g., type Syntax string)
		info.Kind = TypeKindAlias
		info.Underlying = a.analyzeType(ut)

	default:
		if a.isExternalPackage(obj.Pkg().Path()) {
			info.Kind = TypeKindExternal
		} else {
			// Named type wrapping something else in our packages
			info.Kind = TypeKindAlias
			info.Underlying = a.analyzeType(ut)
		}
	}
}

// isExternalPackage returns true if the package is not in our analyzed set.
func (a *Analyzer) isExternalPackage(pkgPath string) bool {
	_, ok := a.graph.Packages[pkgPath]
	return !ok
}

// analyzeStructFields extracts fields from a struct type. Unexported fields
// are kept: generated code lives in the same package as native types.
func (a *Analyzer) analyzeStructFields(st *types.Struct, info *TypeInfo) {
	for i := range st.NumFields() {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     a.analyzeType(field.Type()),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}
}

// analyzeInterfaceMethods records the method names of an interface.
func (a *Analyzer) analyzeInterfaceMethods(it *types.Interface, info *TypeInfo) {
	for i := range it.NumMethods() {
		info.Methods = append(info.Methods, it.Method(i).Name())
	}
}
