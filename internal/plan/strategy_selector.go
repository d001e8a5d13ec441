package plan

import (
	"fmt"

	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/diagnostic"
	"pbconvert-generator/internal/mapping"
)

// Well-known messages with dedicated conversions.
var (
	timestampID = analyze.TypeID{PkgPath: "google.golang.org/protobuf/types/known/timestamppb", Name: "Timestamp"}
	durationID  = analyze.TypeID{PkgPath: "google.golang.org/protobuf/types/known/durationpb", Name: "Duration"}
)

// issue is a classification failure, reported against the field or variant.
type issue struct {
	code    string
	message string
}

func mismatch(ext *analyze.TypeInfo, want string) *issue {
	return &issue{
		code:    diagnostic.CodeTypeMismatch,
		message: fmt.Sprintf("external field is %s, want %s", analyze.TypeString(ext), want),
	}
}

// conversion resolves the conversion of a native value whose external
// counterpart has type ext. ext is nil when the message was not loaded.
func (r *Resolver) conversion(
	native, ext *analyze.TypeInfo,
	directive mapping.ConversionDirective,
) (Conversion, *issue) {
	if directive.Kind == mapping.DirectiveWith {
		with, err := mapping.ParseWithPath(directive.With)
		if err != nil {
			return Conversion{}, &issue{code: diagnostic.CodeInvalidWith, message: err.Error()}
		}

		return Conversion{Strategy: StrategyCustom, Native: native, External: ext, With: with}, nil
	}

	return r.classify(native, ext)
}

// classify determines the strategy from the native and external types.
func (r *Resolver) classify(native, ext *analyze.TypeInfo) (Conversion, *issue) {
	conv := Conversion{Native: native, External: ext}

	switch native.ID {
	case analyze.TimeID:
		conv.Strategy = StrategyTimestamp

		return conv, expectMessage(ext, timestampID)
	case analyze.DurationID:
		conv.Strategy = StrategyDuration

		return conv, expectMessage(ext, durationID)
	}

	if name, source, ok := r.described(native); ok {
		conv.Strategy, conv.Nested = StrategyNested, name

		return conv, expectMessage(ext, source)
	}

	switch native.Kind {
	case analyze.TypeKindPointer:
		if name, source, ok := r.described(native.ElemType); ok {
			conv.Strategy, conv.Nested = StrategyNestedPointer, name

			return conv, expectMessage(ext, source)
		}

	case analyze.TypeKindSlice:
		if name, source, ok := r.described(native.ElemType); ok {
			conv.Strategy, conv.Nested = StrategyNestedSlice, name

			return conv, expectMessageSlice(ext, source)
		}

		if native.ElemType.Kind == analyze.TypeKindBasic {
			conv.Strategy = StrategyClone

			return conv, expectSame(ext, native)
		}

	case analyze.TypeKindBasic, analyze.TypeKindAlias:
		if basicName(native) != "" {
			return classifyScalar(conv)
		}
	}

	if r.foreign(native) {
		conv.Strategy = StrategyIdentity

		return conv, expectSame(ext, native)
	}

	return Conversion{}, &issue{
		code:    diagnostic.CodeUnsupportedField,
		message: fmt.Sprintf("unsupported field type %s, use with to convert it", analyze.TypeString(native)),
	}
}

// classifyScalar picks Identity when the types match and Convert when both
// share the same basic kind, so the Go conversion loses nothing either way.
func classifyScalar(conv Conversion) (Conversion, *issue) {
	conv.Strategy = StrategyIdentity

	if conv.External == nil || analyze.TypeString(conv.Native) == analyze.TypeString(conv.External) {
		return conv, nil
	}

	nb, eb := basicName(conv.Native), basicName(conv.External)
	if nb == "" || eb == "" {
		return Conversion{}, mismatch(conv.External, analyze.TypeString(conv.Native))
	}

	if canonicalBasic(nb) != canonicalBasic(eb) {
		return Conversion{}, &issue{
			code:    diagnostic.CodeTypeMismatch,
			message: fmt.Sprintf("external field is %s, want %s: converting %s to %s loses values, use with to convert it",
				analyze.TypeString(conv.External), analyze.TypeString(conv.Native), nb, eb),
		}
	}

	conv.Strategy = StrategyConvert

	return conv, nil
}

// described returns the described type name and source message of t.
func (r *Resolver) described(t *analyze.TypeInfo) (string, analyze.TypeID, bool) {
	if t == nil || !t.IsNamed() || t.ID.PkgPath != r.config.PackagePath {
		return "", analyze.TypeID{}, false
	}

	source, ok := r.sources[t.ID.Name]

	return t.ID.Name, source, ok
}

// foreign reports whether t is, or points to or holds, a named type of
// another package. Those are assigned as is.
func (r *Resolver) foreign(t *analyze.TypeInfo) bool {
	switch t.Kind {
	case analyze.TypeKindPointer, analyze.TypeKindSlice:
		return r.foreign(t.ElemType)
	default:
		return t.IsNamed() && t.ID.PkgPath != "" && t.ID.PkgPath != r.config.PackagePath
	}
}

// messageID returns the message a *Message type points to.
func messageID(t *analyze.TypeInfo) (analyze.TypeID, bool) {
	if t == nil || t.Kind != analyze.TypeKindPointer || t.ElemType == nil || !t.ElemType.IsNamed() {
		return analyze.TypeID{}, false
	}

	return t.ElemType.ID, true
}

func expectMessage(ext *analyze.TypeInfo, want analyze.TypeID) *issue {
	if ext == nil {
		return nil
	}

	if id, ok := messageID(ext); ok && id == want {
		return nil
	}

	return mismatch(ext, "*"+want.String())
}

func expectMessageSlice(ext *analyze.TypeInfo, want analyze.TypeID) *issue {
	if ext == nil {
		return nil
	}

	if ext.Kind == analyze.TypeKindSlice {
		if id, ok := messageID(ext.ElemType); ok && id == want {
			return nil
		}
	}

	return mismatch(ext, "[]*"+want.String())
}

func expectSame(ext, native *analyze.TypeInfo) *issue {
	if ext == nil || analyze.TypeString(ext) == analyze.TypeString(native) {
		return nil
	}

	return mismatch(ext, analyze.TypeString(native))
}

// basicName returns the basic type underlying t, or "".
func basicName(t *analyze.TypeInfo) string {
	switch {
	case t.Kind == analyze.TypeKindBasic:
		return t.ID.Name
	case t.Kind == analyze.TypeKindAlias && t.Underlying != nil && t.Underlying.Kind == analyze.TypeKindBasic:
		return t.Underlying.ID.Name
	default:
		return ""
	}
}

// canonicalBasic resolves the byte and rune aliases.
func canonicalBasic(name string) string {
	switch name {
	case "byte":
		return "uint8"
	case "rune":
		return "int32"
	default:
		return name
	}
}
