package mapping

import "sort"

// DirectiveFile is the root of a directive file.
type DirectiveFile struct {
	// Version is the schema version (currently "1").
	Version string `yaml:"version"`
	// Types lists the described native types in generation order.
	Types []TypeDirective `yaml:"types"`
	// Unknown holds unrecognized top-level keys.
	Unknown []UnknownOption `yaml:"-"`
}

// TypeDirective describes one native struct or enum.
type TypeDirective struct {
	// Type is the native type name in the described package.
	Type string `yaml:"type"`
	// Source is the external protobuf message, "importpath.Message".
	Source string `yaml:"source"`
	// SerdePbConvert routes JSON and binary encoding through the message.
	SerdePbConvert bool `yaml:"serde_pb_convert,omitempty"`
	// ImplFromTrait emits wrap/unwrap conversions per variant. Enums only.
	ImplFromTrait bool `yaml:"impl_from_trait,omitempty"`
	// Rename selects the variant-to-slot naming policy. Enums only.
	Rename *RenameDirective `yaml:"rename,omitempty"`
	// OneofField names the oneof holding the variants. Enums only.
	OneofField string `yaml:"oneof_field,omitempty"`
	// Fields holds per-field directives keyed by Go field name.
	Fields map[string]FieldDirective `yaml:"fields,omitempty"`

	// Line is the YAML line of the entry.
	Line int `yaml:"-"`
	// Unknown holds unrecognized keys of this entry.
	Unknown []UnknownOption `yaml:"-"`
}

// RenameDirective is the value of the rename option.
type RenameDirective struct {
	Case    string          `yaml:"case"`
	Unknown []UnknownOption `yaml:"-"`
}

// FieldDirective is the directive of a single struct field.
type FieldDirective struct {
	Skip bool   `yaml:"skip,omitempty"`
	With string `yaml:"with,omitempty"`

	Line    int             `yaml:"-"`
	Unknown []UnknownOption `yaml:"-"`
}

// UnknownOption is an option name the schema does not define.
type UnknownOption struct {
	Name string
	Line int
}

// Option names accepted at each level.
var (
	fileOptions   = []string{"version", "types"}
	typeOptions   = []string{"type", "source", "serde_pb_convert", "impl_from_trait", "rename", "oneof_field", "fields"}
	renameOptions = []string{"case"}
	fieldOptions  = []string{"skip", "with"}
)

// enumOnlyOptions are rejected on struct entries.
var enumOnlyOptions = []string{"impl_from_trait", "rename", "oneof_field"}

// DefaultOneofField is the oneof name used when oneof_field is unset.
const DefaultOneofField = "kind"

// OneofFieldName returns the oneof name, applying the default.
func (t *TypeDirective) OneofFieldName() string {
	if t.OneofField == "" {
		return DefaultOneofField
	}

	return t.OneofField
}

// RenamePolicy returns the policy selected by the rename option.
func (t *TypeDirective) RenamePolicy() (RenamePolicy, error) {
	if t.Rename == nil {
		return RenameIdentity, nil
	}

	return ParseRenameCase(t.Rename.Case)
}

// EnumOptions returns the enum-only options set on the entry.
func (t *TypeDirective) EnumOptions() []string {
	var set []string

	if t.ImplFromTrait {
		set = append(set, enumOnlyOptions[0])
	}

	if t.Rename != nil {
		set = append(set, enumOnlyOptions[1])
	}

	if t.OneofField != "" {
		set = append(set, enumOnlyOptions[2])
	}

	return set
}

// DirectiveFor returns the directive of a field. Fields without an entry
// get the default directive.
func (t *TypeDirective) DirectiveFor(name string) ConversionDirective {
	fd, ok := t.Fields[name]
	if !ok {
		return ConversionDirective{Kind: DirectiveDefault}
	}

	return fd.Directive()
}

// Directive resolves the field entry. skip wins over with.
func (f FieldDirective) Directive() ConversionDirective {
	switch {
	case f.Skip:
		return ConversionDirective{Kind: DirectiveSkip}
	case f.With != "":
		return ConversionDirective{Kind: DirectiveWith, With: f.With}
	default:
		return ConversionDirective{Kind: DirectiveDefault}
	}
}

// SourcePackages returns the sorted import paths of all well-formed sources.
func (df *DirectiveFile) SourcePackages() []string {
	seen := make(map[string]bool)

	var pkgs []string

	for _, td := range df.Types {
		id, err := ParseSource(td.Source)
		if err != nil || seen[id.PkgPath] {
			continue
		}

		seen[id.PkgPath] = true
		pkgs = append(pkgs, id.PkgPath)
	}

	sort.Strings(pkgs)

	return pkgs
}
