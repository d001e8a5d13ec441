package gen

import (
	"path"
	"sort"
	"strconv"

	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string // empty when the package name matches the path
	Path  string
}

// importSet collects the imports of one generated file.
type importSet struct {
	byPath  map[string]string // path -> name used in code
	byAlias map[string]string // name -> path
}

func newImportSet() *importSet {
	return &importSet{
		byPath:  make(map[string]string),
		byAlias: make(map[string]string),
	}
}

// add registers pkgPath under name and returns the name to qualify with.
// A name taken by another path gets a numeric suffix.
func (s *importSet) add(pkgPath, name string) string {
	if alias, ok := s.byPath[pkgPath]; ok {
		return alias
	}

	alias := name
	for i := 2; ; i++ {
		if _, taken := s.byAlias[alias]; !taken {
			break
		}

		alias = name + strconv.Itoa(i)
	}

	s.byPath[pkgPath] = alias
	s.byAlias[alias] = pkgPath

	return alias
}

// specs returns the imports sorted by path.
func (s *importSet) specs() []importSpec {
	specs := make([]importSpec, 0, len(s.byPath))

	for p, alias := range s.byPath {
		spec := importSpec{Path: p}
		if alias != path.Base(p) {
			spec.Alias = alias
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Path < specs[j].Path })

	return specs
}

// getPkgName returns the package name for a given package path.
// It tries to look up the name from the type graph, falling back to the path base alias.
func (g *Generator) getPkgName(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	if g.graph != nil {
		if pkgInfo, ok := g.graph.Packages[pkgPath]; ok && pkgInfo.Name != "" {
			return pkgInfo.Name
		}
	}

	return common.PkgAlias(pkgPath)
}

// qualifier returns the name to qualify identifiers of pkgPath with,
// importing it when needed. It is empty for the generated package.
func (g *Generator) qualifier(imports *importSet, pkgPath string) string {
	if pkgPath == "" || pkgPath == g.contextPkgPath {
		return ""
	}

	return imports.add(pkgPath, g.getPkgName(pkgPath))
}

// qualify renders a named type.
func (g *Generator) qualify(imports *importSet, id analyze.TypeID) string {
	if q := g.qualifier(imports, id.PkgPath); q != "" {
		return q + "." + id.Name
	}

	return id.Name
}

// typeRefString returns the string representation of a type for use in generated code.
func (g *Generator) typeRefString(t *analyze.TypeInfo, imports *importSet) string {
	if t == nil {
		return "any"
	}

	switch t.Kind {
	case analyze.TypeKindBasic:
		return t.ID.Name

	case analyze.TypeKindPointer:
		return "*" + g.typeRefString(t.ElemType, imports)

	case analyze.TypeKindSlice:
		return "[]" + g.typeRefString(t.ElemType, imports)

	case analyze.TypeKindMap:
		return "map[" + g.typeRefString(t.KeyType, imports) + "]" + g.typeRefString(t.ElemType, imports)

	default:
		if t.IsNamed() {
			return g.qualify(imports, t.ID)
		}

		return "any"
	}
}
