package mapping

import (
	"fmt"
	"strings"

	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/naming"
)

//go:generate go tool stringer -type=DirectiveKind -output=directivekind_string.go

// DirectiveKind selects how a field is converted.
type DirectiveKind int

const (
	DirectiveDefault DirectiveKind = iota // converted according to its type
	DirectiveSkip                         // never converted
	DirectiveWith                         // delegated to a custom converter
)

// ConversionDirective is the resolved directive of one field.
type ConversionDirective struct {
	Kind DirectiveKind
	With string // converter path, set for DirectiveWith
}

// RenamePolicy derives oneof slot names from variant names.
type RenamePolicy int

const (
	RenameIdentity RenamePolicy = iota
	RenameSnakeCase
)

// ParseRenameCase parses the value of rename.case.
func ParseRenameCase(s string) (RenamePolicy, error) {
	switch s {
	case "snake_case":
		return RenameSnakeCase, nil
	default:
		return RenameIdentity, fmt.Errorf("malformed case value %q: only snake_case is supported", s)
	}
}

// Apply returns the slot name of a variant.
func (p RenamePolicy) Apply(variant string) string {
	if p == RenameSnakeCase {
		return naming.SnakeCase(variant)
	}

	return variant
}

func (p RenamePolicy) String() string {
	if p == RenameSnakeCase {
		return "snake_case"
	}

	return "identity"
}

// WithPath is a parsed with option.
type WithPath struct {
	// ImportPath is empty for identifiers of the described package.
	ImportPath string
	// Ident is empty when the path names a whole package.
	Ident string
}

// ParseWithPath parses "ident", "importpath" or "importpath.Ident".
// A last element "x.y" is split only when y is exported, so "gopkg.in/yaml.v3"
// names a package. A package whose last element ends in an exported word,
// like "example.com/conv.V2", can only be named together with an identifier.
func ParseWithPath(s string) (WithPath, error) {
	if s == "" {
		return WithPath{}, fmt.Errorf("empty with path")
	}

	if !strings.ContainsAny(s, "./") {
		if !naming.IsIdent(s) {
			return WithPath{}, fmt.Errorf("with path %q is not an identifier", s)
		}

		return WithPath{Ident: s}, nil
	}

	lastSeg := s[strings.LastIndex(s, "/")+1:]
	if !strings.Contains(lastSeg, ".") {
		return WithPath{ImportPath: s}, nil
	}

	dot := strings.LastIndex(s, ".")

	wp := WithPath{ImportPath: s[:dot], Ident: s[dot+1:]}
	if !naming.IsExported(wp.Ident) {
		return WithPath{ImportPath: s}, nil
	}

	if !naming.IsIdent(wp.Ident) {
		return WithPath{}, fmt.Errorf("with path %q must end in an exported identifier", s)
	}

	return wp, nil
}

func (w WithPath) String() string {
	switch {
	case w.ImportPath == "":
		return w.Ident
	case w.Ident == "":
		return w.ImportPath
	default:
		return w.ImportPath + "." + w.Ident
	}
}

// ParseSource parses "importpath.Message" into a TypeID.
func ParseSource(s string) (analyze.TypeID, error) {
	dot := strings.LastIndex(s, ".")
	if dot <= 0 || strings.LastIndex(s, "/") > dot {
		return analyze.TypeID{}, fmt.Errorf("source %q must be package-qualified (importpath.Message)", s)
	}

	id := analyze.TypeID{PkgPath: s[:dot], Name: s[dot+1:]}
	if !naming.IsIdent(id.Name) || !naming.IsExported(id.Name) {
		return analyze.TypeID{}, fmt.Errorf("source %q must end in an exported message name", s)
	}

	return id, nil
}
