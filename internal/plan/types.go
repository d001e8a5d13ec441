package plan

import (
	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/common"
	"pbconvert-generator/internal/diagnostic"
	"pbconvert-generator/internal/mapping"
)

// Plan is the final output of the resolution pipeline.
// It contains everything needed for code generation.
type Plan struct {
	// Package is the native package holding the described types.
	Package *analyze.PackageInfo
	// Units lists one descriptor per described type, in directive order.
	Units []Unit
	// TypeGraph holds all analyzed types and packages to allow looking up package names.
	TypeGraph *analyze.TypeGraph
	// Diagnostics contains all warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// Unit is a described type. Exactly one of Struct and Enum is set.
type Unit struct {
	Struct *StructDescriptor
	Enum   *EnumDescriptor
}

// Name returns the native type name of the unit.
func (u Unit) Name() string {
	switch {
	case u.Struct != nil:
		return u.Struct.Type.ID.Name
	case u.Enum != nil:
		return u.Enum.Type.ID.Name
	default:
		return common.UnknownStr
	}
}

// Source returns the external message of the unit.
func (u Unit) Source() analyze.TypeID {
	if u.Struct != nil {
		return u.Struct.Source
	}

	if u.Enum != nil {
		return u.Enum.Source
	}

	return analyze.TypeID{}
}

// SerdeShim reports whether the unit requested serialization shims.
func (u Unit) SerdeShim() bool {
	return (u.Struct != nil && u.Struct.SerdeShim) || (u.Enum != nil && u.Enum.SerdeShim)
}

// StructDescriptor describes the mapping of a native struct.
type StructDescriptor struct {
	// Type is the native struct.
	Type *analyze.TypeInfo
	// Source is the external message.
	Source analyze.TypeID
	// External is the loaded external message, nil when its package was not loaded.
	External *analyze.TypeInfo
	// Fields in declaration order.
	Fields []FieldDescriptor
	// SerdeShim requests JSON and binary encoding through the message.
	SerdeShim bool
}

// FieldDescriptor describes one struct field.
type FieldDescriptor struct {
	// Name is the Go field name.
	Name string
	// Slot is the proto field name, snake_case(Name).
	Slot string
	// GoSlot is the Go field name protoc-gen-go derives from Slot.
	GoSlot string
	// Directive is the resolved field directive.
	Directive mapping.ConversionDirective
	// Conversion is how the field value is converted.
	Conversion Conversion
}

// EnumDescriptor describes the mapping of a sealed interface onto a oneof.
type EnumDescriptor struct {
	// Type is the native interface.
	Type *analyze.TypeInfo
	// Source is the external message.
	Source analyze.TypeID
	// External is the loaded external message, nil when its package was not loaded.
	External *analyze.TypeInfo
	// OneofField is the proto oneof name.
	OneofField string
	// GoOneofField is the Go field holding the oneof.
	GoOneofField string
	// Rename maps variant names to oneof slots.
	Rename mapping.RenamePolicy
	// ImplFromTrait requests wrap and unwrap functions per variant.
	ImplFromTrait bool
	// SerdeShim requests JSON and binary encoding through the message.
	SerdeShim bool
	// Variants in declaration order.
	Variants []VariantDescriptor
}

// VariantDescriptor describes one enum variant.
type VariantDescriptor struct {
	// Name is the variant name, the type name without the enum prefix.
	Name string
	// Type is the variant struct.
	Type *analyze.TypeInfo
	// Pointer is set when the variant implements the enum with a pointer receiver.
	Pointer bool
	// PayloadField is the name of the single struct field.
	PayloadField string
	// Payload is the payload type.
	Payload *analyze.TypeInfo
	// PayloadIdent names the payload in wrap/unwrap function names.
	PayloadIdent string
	// Slot is the oneof case name, Rename.Apply(Name).
	Slot string
	// GoSlot is the Go name of the case.
	GoSlot string
	// Wrapper is the oneof wrapper message type, <Message>_<GoSlot>.
	Wrapper analyze.TypeID
	// Conversion is how the payload is converted.
	Conversion Conversion
}

// Strategy describes how a value is converted.
type Strategy int

const (
	// StrategyIdentity - assigned as is.
	StrategyIdentity Strategy = iota
	// StrategyConvert - explicit Go type conversion.
	StrategyConvert
	// StrategyClone - slice of basic values, copied.
	StrategyClone
	// StrategyNested - calls the generated functions of another described type.
	StrategyNested
	// StrategyNestedPointer - nested described type behind a pointer, nil preserved.
	StrategyNestedPointer
	// StrategyNestedSlice - slice of a described type, mapped element-wise.
	StrategyNestedSlice
	// StrategyTimestamp - time.Time to timestamppb.Timestamp.
	StrategyTimestamp
	// StrategyDuration - time.Duration to durationpb.Duration.
	StrategyDuration
	// StrategyCustom - delegated to a with converter.
	StrategyCustom
	// StrategySkip - never converted.
	StrategySkip
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyIdentity:
		return "identity"
	case StrategyConvert:
		return "convert"
	case StrategyClone:
		return "clone"
	case StrategyNested:
		return "nested"
	case StrategyNestedPointer:
		return "nested_pointer"
	case StrategyNestedSlice:
		return "nested_slice"
	case StrategyTimestamp:
		return "timestamp"
	case StrategyDuration:
		return "duration"
	case StrategyCustom:
		return "custom"
	case StrategySkip:
		return "skip"
	default:
		return common.UnknownStr
	}
}

// Conversion is the statically resolved conversion of a field or payload.
type Conversion struct {
	Strategy Strategy
	// Native is the native field or payload type.
	Native *analyze.TypeInfo
	// External is the external field type, nil when the message was not loaded.
	External *analyze.TypeInfo
	// Nested is the described type called for the Nested strategies.
	Nested string
	// With is the converter of StrategyCustom.
	With mapping.WithPath
}

// Fallible reports whether the FromProto direction can fail.
func (c Conversion) Fallible() bool {
	switch c.Strategy {
	case StrategyNested, StrategyNestedPointer, StrategyNestedSlice,
		StrategyTimestamp, StrategyDuration, StrategyCustom:
		return true
	default:
		return false
	}
}
