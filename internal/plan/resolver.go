package plan

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/diagnostic"
	"pbconvert-generator/internal/mapping"
	"pbconvert-generator/internal/match"
	"pbconvert-generator/internal/naming"
)

// ResolutionConfig holds configuration for the resolution process.
type ResolutionConfig struct {
	// PackagePath is the import path of the native package.
	PackagePath string
	// RequireExternal fails when a source message is not in the type graph.
	// Without it, contract checks are skipped for messages that were not loaded.
	RequireExternal bool
}

// DefaultConfig returns the default resolution configuration.
func DefaultConfig(pkgPath string) ResolutionConfig {
	return ResolutionConfig{
		PackagePath:     pkgPath,
		RequireExternal: true,
	}
}

// Resolver performs the resolution pipeline.
type Resolver struct {
	graph      *analyze.TypeGraph
	directives *mapping.DirectiveFile
	config     ResolutionConfig
	// sources maps described native type names to their external message.
	sources map[string]analyze.TypeID
}

// NewResolver creates a new Resolver.
func NewResolver(
	graph *analyze.TypeGraph,
	directives *mapping.DirectiveFile,
	config ResolutionConfig,
) *Resolver {
	return &Resolver{
		graph:      graph,
		directives: directives,
		config:     config,
		sources:    make(map[string]analyze.TypeID),
	}
}

// Resolve runs the full resolution pipeline and returns a Plan.
// The plan is returned with its diagnostics even when resolution fails.
func (r *Resolver) Resolve() (*Plan, error) {
	pkg, ok := r.graph.Packages[r.config.PackagePath]
	if !ok {
		return nil, fmt.Errorf("native package %s not loaded", r.config.PackagePath)
	}

	p := &Plan{
		Package:   pkg,
		TypeGraph: r.graph,
	}

	p.Diagnostics.Merge(*mapping.Validate(r.directives))

	if p.Diagnostics.HasErrors() {
		return p, fmt.Errorf("invalid directives: %w", p.Diagnostics.Error())
	}

	for _, td := range r.directives.Types {
		source, err := mapping.ParseSource(td.Source)
		if err != nil {
			return p, fmt.Errorf("type %s: %w", td.Type, err)
		}

		r.sources[td.Type] = source
	}

	for i := range r.directives.Types {
		if unit, ok := r.resolveType(&r.directives.Types[i], &p.Diagnostics); ok {
			p.Units = append(p.Units, unit)
		}
	}

	if p.Diagnostics.HasErrors() {
		return p, fmt.Errorf("resolution failed: %w", p.Diagnostics.Error())
	}

	return p, nil
}

func (r *Resolver) resolveType(td *mapping.TypeDirective, diags *diagnostic.Diagnostics) (Unit, bool) {
	native := r.graph.GetType(analyze.TypeID{PkgPath: r.config.PackagePath, Name: td.Type})
	if native == nil {
		diags.AddErrorWithSuggestions(diagnostic.CodeUnknownType,
			"type not found in "+r.config.PackagePath, td.Type, "",
			match.Suggest(td.Type, r.packageTypeNames(r.config.PackagePath)))

		return Unit{}, false
	}

	source := r.sources[td.Type]

	external, ok := r.external(source, td.Type, diags)
	if !ok {
		return Unit{}, false
	}

	before := len(diags.Errors)

	var unit Unit

	switch native.Kind {
	case analyze.TypeKindStruct:
		unit.Struct = r.buildStruct(native, source, external, td, diags)
	case analyze.TypeKindInterface:
		unit.Enum = r.buildEnum(native, source, external, td, diags)
	default:
		diags.AddError(diagnostic.CodeUnsupportedType,
			fmt.Sprintf("%s types cannot be described, only structs and sealed interfaces", native.Kind),
			td.Type, "")
	}

	return unit, len(diags.Errors) == before
}

// external returns the loaded source message. A nil message with ok set
// means the package was not loaded and contract checks are skipped.
func (r *Resolver) external(
	source analyze.TypeID,
	typeName string,
	diags *diagnostic.Diagnostics,
) (*analyze.TypeInfo, bool) {
	ext := r.graph.GetType(source)

	switch {
	case ext != nil && ext.Kind == analyze.TypeKindStruct:
		return ext, true
	case ext != nil:
		diags.AddError(diagnostic.CodeUnknownMessage,
			fmt.Sprintf("source %s is a %s, not a message", source, ext.Kind), typeName, "source")

		return nil, false
	case r.config.RequireExternal:
		diags.AddErrorWithSuggestions(diagnostic.CodeUnknownMessage,
			fmt.Sprintf("source message %s not found", source), typeName, "source",
			match.Suggest(source.Name, r.packageTypeNames(source.PkgPath)))

		return nil, false
	default:
		return nil, true
	}
}

func (r *Resolver) buildStruct(
	native *analyze.TypeInfo,
	source analyze.TypeID,
	external *analyze.TypeInfo,
	td *mapping.TypeDirective,
	diags *diagnostic.Diagnostics,
) *StructDescriptor {
	for _, opt := range td.EnumOptions() {
		diags.AddError(diagnostic.CodeEnumOnlyOption,
			fmt.Sprintf("option %q only applies to enums", opt), td.Type, opt)
	}

	sd := &StructDescriptor{
		Type:      native,
		Source:    source,
		External:  external,
		SerdeShim: td.SerdePbConvert,
	}

	names := make([]string, 0, len(native.Fields))

	for _, f := range native.Fields {
		if f.Name == "_" {
			continue
		}

		names = append(names, f.Name)

		fd := FieldDescriptor{
			Name:      f.Name,
			Slot:      naming.SnakeCase(f.Name),
			Directive: td.DirectiveFor(f.Name),
		}
		fd.GoSlot = naming.GoCamelCase(fd.Slot)

		if fd.Directive.Kind == mapping.DirectiveSkip {
			fd.Conversion = Conversion{Strategy: StrategySkip, Native: f.Type}
			sd.Fields = append(sd.Fields, fd)

			continue
		}

		var extType *analyze.TypeInfo

		if external != nil {
			ef := external.Field(fd.GoSlot)
			if ef == nil || !ef.Exported {
				diags.AddErrorWithSuggestions(diagnostic.CodeMissingAccessor,
					fmt.Sprintf("%s has no field %s (getter %s)", source.Name, fd.GoSlot, naming.Getter(fd.GoSlot)),
					td.Type, f.Name, match.Suggest(fd.GoSlot, exportedFieldNames(external)))

				continue
			}

			extType = ef.Type
		}

		conv, iss := r.conversion(f.Type, extType, fd.Directive)
		if iss != nil {
			diags.AddError(iss.code, iss.message, td.Type, f.Name)

			continue
		}

		fd.Conversion = conv
		sd.Fields = append(sd.Fields, fd)
	}

	checkFieldKeys(td, names, diags)

	return sd
}

func (r *Resolver) buildEnum(
	native *analyze.TypeInfo,
	source analyze.TypeID,
	external *analyze.TypeInfo,
	td *mapping.TypeDirective,
	diags *diagnostic.Diagnostics,
) *EnumDescriptor {
	if !native.IsSealed() {
		diags.AddError(diagnostic.CodeUnsealedEnum,
			"interface has no unexported method, only sealed interfaces can be described", td.Type, "")

		return nil
	}

	if len(native.Variants) == 0 {
		diags.AddError(diagnostic.CodeNoVariants,
			"no type of the package implements the interface", td.Type, "")

		return nil
	}

	policy, err := td.RenamePolicy()
	if err != nil {
		diags.AddError(diagnostic.CodeInvalidCase, err.Error(), td.Type, "rename.case")

		return nil
	}

	ed := &EnumDescriptor{
		Type:          native,
		Source:        source,
		External:      external,
		OneofField:    td.OneofFieldName(),
		Rename:        policy,
		ImplFromTrait: td.ImplFromTrait,
		SerdeShim:     td.SerdePbConvert,
	}
	ed.GoOneofField = naming.GoCamelCase(ed.OneofField)

	if external != nil {
		f := external.Field(ed.GoOneofField)
		if f == nil || !f.Exported || f.Type.Kind != analyze.TypeKindInterface {
			diags.AddError(diagnostic.CodeMissingOneof,
				fmt.Sprintf("%s has no oneof %s (field %s)", source.Name, ed.OneofField, ed.GoOneofField),
				td.Type, "oneof_field")

			return nil
		}
	}

	names := make([]string, 0, len(native.Variants))
	bySlot := make(map[string]string)

	for _, v := range native.Variants {
		names = append(names, variantName(native.ID.Name, v.Type.ID.Name))

		vd, ok := r.buildVariant(ed, v, td, diags)
		if !ok {
			continue
		}

		if prev, dup := bySlot[vd.GoSlot]; dup {
			diags.AddError(diagnostic.CodeDuplicateVariant,
				fmt.Sprintf("variants %s and %s both map to oneof case %s", prev, v.Type.ID.Name, vd.GoSlot),
				td.Type, v.Type.ID.Name)

			continue
		}

		bySlot[vd.GoSlot] = v.Type.ID.Name
		ed.Variants = append(ed.Variants, vd)
	}

	checkFieldKeys(td, names, diags)

	if ed.ImplFromTrait {
		checkPayloads(ed, td.Type, diags)
	}

	return ed
}

func (r *Resolver) buildVariant(
	ed *EnumDescriptor,
	v analyze.Variant,
	td *mapping.TypeDirective,
	diags *diagnostic.Diagnostics,
) (VariantDescriptor, bool) {
	typeName := v.Type.ID.Name

	if v.Type.Kind != analyze.TypeKindStruct {
		diags.AddError(diagnostic.CodeUnsupportedShape,
			fmt.Sprintf("unsupported shape: variant is a %s, not a struct", v.Type.Kind), td.Type, typeName)

		return VariantDescriptor{}, false
	}

	switch n := len(v.Type.Fields); {
	case n == 0:
		diags.AddError(diagnostic.CodeUnsupportedShape,
			"unsupported shape: no payload field", td.Type, typeName)

		return VariantDescriptor{}, false
	case n > 1:
		diags.AddError(diagnostic.CodeTooManyFields,
			fmt.Sprintf("too many fields: %d, a variant carries exactly one payload", n), td.Type, typeName)

		return VariantDescriptor{}, false
	}

	field := v.Type.Fields[0]
	if !nameable(field.Type) {
		diags.AddError(diagnostic.CodeUnsupportedShape,
			fmt.Sprintf("unsupported shape: payload %s is not a named type", analyze.TypeString(field.Type)),
			td.Type, typeName)

		return VariantDescriptor{}, false
	}

	vd := VariantDescriptor{
		Name:         variantName(ed.Type.ID.Name, typeName),
		Type:         v.Type,
		Pointer:      v.Pointer,
		PayloadField: field.Name,
		Payload:      field.Type,
		PayloadIdent: analyze.Ident(field.Type),
	}
	vd.Slot = ed.Rename.Apply(vd.Name)
	vd.GoSlot = naming.GoCamelCase(vd.Slot)
	vd.Wrapper = analyze.TypeID{
		PkgPath: ed.Source.PkgPath,
		Name:    naming.OneofWrapper(ed.Source.Name, vd.GoSlot),
	}

	directive := td.DirectiveFor(vd.Name)
	if directive.Kind == mapping.DirectiveSkip {
		diags.AddError(diagnostic.CodeSkippedVariant,
			"variants cannot be skipped", td.Type, vd.Name)

		return VariantDescriptor{}, false
	}

	var extType *analyze.TypeInfo

	if ed.External != nil {
		wrapper := r.graph.GetType(vd.Wrapper)

		var wf *analyze.FieldInfo
		if wrapper != nil {
			wf = wrapper.Field(vd.GoSlot)
		}

		if wf == nil {
			diags.AddErrorWithSuggestions(diagnostic.CodeMissingWrapper,
				fmt.Sprintf("oneof %s has no case %s (type %s)", ed.OneofField, vd.Slot, vd.Wrapper.Name),
				td.Type, typeName, r.wrapperNames(ed, vd.Wrapper.Name))

			return VariantDescriptor{}, false
		}

		extType = wf.Type
	}

	conv, iss := r.conversion(field.Type, extType, directive)
	if iss != nil {
		diags.AddError(iss.code, iss.message, td.Type, typeName)

		return VariantDescriptor{}, false
	}

	vd.Conversion = conv

	return vd, true
}

// variantName trims the enum name from the front of a variant type name,
// so ScalarNumberValue of Scalar is NumberValue.
func variantName(enum, typeName string) string {
	name := strings.TrimPrefix(typeName, enum)
	if name == "" || name == typeName || !naming.IsExported(name) {
		return typeName
	}

	return name
}

// nameable reports whether a payload type can be spelled by name.
func nameable(t *analyze.TypeInfo) bool {
	switch t.Kind {
	case analyze.TypeKindPointer, analyze.TypeKindSlice:
		return nameable(t.ElemType)
	case analyze.TypeKindBasic, analyze.TypeKindAlias, analyze.TypeKindStruct,
		analyze.TypeKindInterface, analyze.TypeKindExternal:
		return t.IsNamed()
	default:
		return false
	}
}

// checkPayloads enforces that wrap functions are unambiguous.
func checkPayloads(ed *EnumDescriptor, typeName string, diags *diagnostic.Diagnostics) {
	byType := make(map[string]string)
	byIdent := make(map[string]string)

	for _, vd := range ed.Variants {
		key := analyze.TypeString(vd.Payload)

		if prev, dup := byType[key]; dup {
			diags.AddError(diagnostic.CodeAmbiguousPayload,
				fmt.Sprintf("payload %s is shared by %s and %s, impl_from_trait needs distinct payloads",
					key, prev, vd.Name), typeName, vd.Name)

			continue
		}

		if prev, dup := byIdent[vd.PayloadIdent]; dup {
			diags.AddError(diagnostic.CodeAmbiguousPayload,
				fmt.Sprintf("payloads of %s and %s both name wrap functions %s",
					prev, vd.Name, naming.Ident(typeName, "From", vd.PayloadIdent)), typeName, vd.Name)

			continue
		}

		byType[key] = vd.Name
		byIdent[vd.PayloadIdent] = vd.Name
	}
}

// checkFieldKeys reports fields entries naming no field or variant.
func checkFieldKeys(td *mapping.TypeDirective, known []string, diags *diagnostic.Diagnostics) {
	keys := make([]string, 0, len(td.Fields))
	for name := range td.Fields {
		keys = append(keys, name)
	}

	sort.Strings(keys)

	for _, name := range keys {
		if slices.Contains(known, name) {
			continue
		}

		diags.AddErrorWithSuggestions(diagnostic.CodeUnknownField,
			fmt.Sprintf("%s has no member %s", td.Type, name), td.Type, name,
			match.Suggest(name, known))
	}
}

func (r *Resolver) packageTypeNames(pkgPath string) []string {
	pkg, ok := r.graph.Packages[pkgPath]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		names = append(names, id.Name)
	}

	return names
}

func (r *Resolver) wrapperNames(ed *EnumDescriptor, want string) []string {
	prefix := ed.Source.Name + "_"

	var names []string

	for _, name := range r.packageTypeNames(ed.Source.PkgPath) {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	return match.Suggest(want, names)
}

func exportedFieldNames(t *analyze.TypeInfo) []string {
	var names []string
	for _, f := range t.ExportedFields() {
		names = append(names, f.Name)
	}

	return names
}
