package analyze

import (
	"go/token"
	"go/types"

	"pbconvert-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "google.golang.org/protobuf/types/known/structpb"
	Name    string // e.g., "Value"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Well-known type IDs with dedicated conversions.
var (
	TimeID     = TypeID{PkgPath: "time", Name: "Time"}
	DurationID = TypeID{PkgPath: "time", Name: "Duration"}
)

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindAlias              // named type wrapping a basic type (type Syntax string)
	TypeKindInterface          // interface type
	TypeKindExternal           // opaque type of a package that was not loaded
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindAlias:
		return "alias"
	case TypeKindInterface:
		return "interface"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID         // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind       // Kind of type
	Underlying *TypeInfo      // For named types, the underlying type
	ElemType   *TypeInfo      // For pointers, slices, arrays and maps, the element type
	KeyType    *TypeInfo      // For maps, the key type
	Fields     []FieldInfo    // For structs, the list of fields
	Methods    []string       // For interfaces, the method names
	Variants   []Variant      // For interfaces, the implementing types of the same package
	GoType     types.Type     // The original go/types.Type
	Pos        token.Position // Declaration position of named types
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// IsSealed reports whether an interface has an unexported method, so only
// types of its own package can implement it.
func (t *TypeInfo) IsSealed() bool {
	if t.Kind != TypeKindInterface {
		return false
	}

	for _, m := range t.Methods {
		if !token.IsExported(m) {
			return true
		}
	}

	return false
}

// Field returns the field with the given name, or nil.
func (t *TypeInfo) Field(name string) *FieldInfo {
	for i := range t.Fields {
		if t.Fields[i].Name == name {
			return &t.Fields[i]
		}
	}

	return nil
}

// ExportedFields returns the exported fields in declaration order.
func (t *TypeInfo) ExportedFields() []FieldInfo {
	var out []FieldInfo

	for _, f := range t.Fields {
		if f.Exported {
			out = append(out, f)
		}
	}

	return out
}

// Variant is a named type implementing an interface.
type Variant struct {
	Type *TypeInfo
	// Pointer is set when only the pointer type implements the interface.
	Pointer bool
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string    // Go field name
	Exported bool      // Whether the field is exported
	Type     *TypeInfo // Field type
	Embedded bool      // Whether the field is embedded (anonymous)
	Index    int       // Field index in the struct
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// AddType registers a named type under its ID and package.
func (g *TypeGraph) AddType(t *TypeInfo) {
	g.Types[t.ID] = t

	pkg, ok := g.Packages[t.ID.PkgPath]
	if !ok {
		pkg = &PackageInfo{Path: t.ID.PkgPath, Name: common.PkgAlias(t.ID.PkgPath)}
		g.Packages[t.ID.PkgPath] = pkg
	}

	pkg.Types = append(pkg.Types, t.ID)
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Types []TypeID // Named types defined in this package, in declaration order
}
