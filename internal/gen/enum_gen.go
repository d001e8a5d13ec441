package gen

import (
	"fmt"
	"strconv"
	"strings"

	"pbconvert-generator/internal/naming"
	"pbconvert-generator/internal/plan"
)

// enumData holds the per-variant code of an enum unit.
type enumData struct {
	// OneofGetter reads the oneof of the message.
	OneofGetter string
	Variants    []variantData
	// Traits requests wrap and unwrap functions.
	Traits bool
	// VariantName names the helper returning the variant name of a value.
	VariantName string
}

// variantData is the code of one variant.
type variantData struct {
	Name string
	// Case is the type switch case matching the variant.
	Case string
	// Wrapper is the qualified oneof wrapper type.
	Wrapper string
	// ToProto is the body of the ToProto case.
	ToProto string
	// FromProto is the body of the FromProto case.
	FromProto string

	// Wrap and Unwrap name the trait functions.
	Wrap   string
	Unwrap string
	// Payload is the payload type.
	Payload      string
	PayloadField string
	// WrapExpr builds the variant from a payload v.
	WrapExpr string
	Pointer  bool
}

// buildEnum renders the type switch cases of both directions.
func (g *Generator) buildEnum(ed *plan.EnumDescriptor, imports *importSet) *enumData {
	enum := ed.Type.ID.Name

	data := &enumData{
		OneofGetter: naming.Getter(ed.GoOneofField),
		Traits:      ed.ImplFromTrait,
		VariantName: naming.MatchExport("x", enum+"Variant"),
	}

	for _, vd := range ed.Variants {
		typeName := vd.Type.ID.Name

		v := variantData{
			Name:         vd.Name,
			Case:         typeName,
			Wrapper:      g.qualify(imports, vd.Wrapper),
			Payload:      g.typeRefString(vd.Payload, imports),
			PayloadField: vd.PayloadField,
			WrapExpr:     typeName + "{" + vd.PayloadField + ": v}",
			Pointer:      vd.Pointer,
			Wrap:         naming.Ident(enum, "From", vd.PayloadIdent),
			Unwrap:       naming.MatchExport(enum, vd.PayloadIdent+"From"+naming.Exported(enum)),
		}

		if vd.Pointer {
			v.Case = "*" + typeName
			v.WrapExpr = "&" + v.WrapExpr
		}

		v.ToProto = g.variantToProto(ed, vd, v, imports)
		v.FromProto = g.variantFromProto(ed, vd, imports)

		data.Variants = append(data.Variants, v)
	}

	return data
}

// variantToProto sets the oneof from the variant held in v.
func (g *Generator) variantToProto(
	ed *plan.EnumDescriptor,
	vd plan.VariantDescriptor,
	v variantData,
	imports *importSet,
) string {
	src := "v." + vd.PayloadField

	var body string

	if expr, ok := g.toProtoExpr(vd.Conversion, src, imports); ok {
		body = fmt.Sprintf("out.%s = &%s{%s: %s}", ed.GoOneofField, v.Wrapper, vd.GoSlot, expr)
	} else {
		body = strings.Join([]string{
			"w := &" + v.Wrapper + "{}",
			g.toProtoStmt(vd.Conversion, "w."+vd.GoSlot, src, imports),
			"out." + ed.GoOneofField + " = w",
		}, "\n")
	}

	if vd.Pointer {
		body = "if v != nil {\n" + body + "\n}"
	}

	return body
}

// variantFromProto builds the variant from the oneof case held in k.
func (g *Generator) variantFromProto(
	ed *plan.EnumDescriptor,
	vd plan.VariantDescriptor,
	imports *importSet,
) string {
	typeName := vd.Type.ID.Name
	src := "k." + vd.GoSlot

	ref := "out"
	if vd.Pointer {
		ref = "&out"
	}

	if expr, ok := g.fromProtoExpr(vd.Conversion, src, imports); ok {
		lit := typeName + "{" + vd.PayloadField + ": " + expr + "}"
		if vd.Pointer {
			lit = "&" + lit
		}

		return "return " + lit + ", nil"
	}

	fail := "return nil, " + g.runtime(imports) + ".VariantError(" +
		strconv.Quote(ed.Type.ID.Name) + ", " + strconv.Quote(vd.Name) + ", err)"

	return strings.Join([]string{
		"var (\nout " + typeName + "\nerr error\n)",
		g.fromProtoStmt(vd.Conversion, "out."+vd.PayloadField, src, fail, imports),
		"return " + ref + ", nil",
	}, "\n")
}
