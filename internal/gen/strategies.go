package gen

import (
	"fmt"

	"pbconvert-generator/internal/mapping"
	"pbconvert-generator/internal/naming"
	"pbconvert-generator/internal/plan"
)

// toProtoName returns the generated ToProto function of a described type.
func toProtoName(typeName string) string {
	return naming.Ident(typeName, "ToProto")
}

// fromProtoName returns the generated FromProto function of a described type.
func fromProtoName(typeName string) string {
	return naming.Ident(typeName, "FromProto")
}

// converterName returns the generated Converter value of a described type.
func converterName(typeName string) string {
	return naming.Ident(typeName, "Converter")
}

// withQualifier renders the value or package a with converter is called on.
func (g *Generator) withQualifier(w mapping.WithPath, imports *importSet) string {
	q := g.qualifier(imports, w.ImportPath)

	switch {
	case q == "":
		return w.Ident
	case w.Ident == "":
		return q
	default:
		return q + "." + w.Ident
	}
}

// toProtoExpr returns the expression converting src towards the message.
// ok is false for strategies that need statements.
func (g *Generator) toProtoExpr(conv plan.Conversion, src string, imports *importSet) (string, bool) {
	switch conv.Strategy {
	case plan.StrategyIdentity:
		return src, true
	case plan.StrategyConvert:
		return g.typeRefString(conv.External, imports) + "(" + src + ")", true
	case plan.StrategyClone:
		imports.add("slices", "slices")

		return "slices.Clone(" + src + ")", true
	case plan.StrategyNested:
		return toProtoName(conv.Nested) + "(" + src + ")", true
	case plan.StrategyNestedSlice:
		return g.runtime(imports) + ".MapSlice(" + src + ", " + toProtoName(conv.Nested) + ")", true
	case plan.StrategyTimestamp:
		return g.runtime(imports) + ".Timestamp.ToProto(" + src + ")", true
	case plan.StrategyDuration:
		return g.runtime(imports) + ".Duration.ToProto(" + src + ")", true
	case plan.StrategyCustom:
		return g.withQualifier(conv.With, imports) + ".ToProto(" + src + ")", true
	default:
		return "", false
	}
}

// toProtoStmt returns the statements assigning src to dst.
func (g *Generator) toProtoStmt(conv plan.Conversion, dst, src string, imports *importSet) string {
	switch conv.Strategy {
	case plan.StrategySkip:
		return ""
	case plan.StrategyNestedPointer:
		return fmt.Sprintf("if %s != nil {\n%s = %s(*%s)\n}", src, dst, toProtoName(conv.Nested), src)
	default:
		expr, _ := g.toProtoExpr(conv, src, imports)

		return dst + " = " + expr
	}
}

// fromProtoExpr returns the expression converting src back to the native
// type. ok is false for fallible strategies.
func (g *Generator) fromProtoExpr(conv plan.Conversion, src string, imports *importSet) (string, bool) {
	switch conv.Strategy {
	case plan.StrategyIdentity:
		return src, true
	case plan.StrategyConvert:
		return g.typeRefString(conv.Native, imports) + "(" + src + ")", true
	case plan.StrategyClone:
		imports.add("slices", "slices")

		return "slices.Clone(" + src + ")", true
	default:
		return "", false
	}
}

// fallibleCall returns the call of a fallible strategy.
func (g *Generator) fallibleCall(conv plan.Conversion, src string, imports *importSet) string {
	switch conv.Strategy {
	case plan.StrategyNested:
		return fromProtoName(conv.Nested) + "(" + src + ")"
	case plan.StrategyNestedSlice:
		return g.runtime(imports) + ".MapSliceErr(" + src + ", " + fromProtoName(conv.Nested) + ")"
	case plan.StrategyTimestamp:
		return g.runtime(imports) + ".Timestamp.FromProto(" + src + ")"
	case plan.StrategyDuration:
		return g.runtime(imports) + ".Duration.FromProto(" + src + ")"
	case plan.StrategyCustom:
		return g.withQualifier(conv.With, imports) + ".FromProto(" + src + ")"
	default:
		return ""
	}
}

// fromProtoStmt returns the statements assigning src to dst. fail renders
// the return statement for a conversion error held in err.
func (g *Generator) fromProtoStmt(
	conv plan.Conversion,
	dst, src string,
	fail string,
	imports *importSet,
) string {
	if conv.Strategy == plan.StrategySkip {
		return ""
	}

	if expr, ok := g.fromProtoExpr(conv, src, imports); ok {
		return dst + " = " + expr
	}

	if conv.Strategy == plan.StrategyNestedPointer {
		return fmt.Sprintf("if %s != nil {\nvar v %s\nif v, err = %s(%s); err != nil {\n%s\n}\n%s = &v\n}",
			src, g.typeRefString(conv.Native.ElemType, imports), fromProtoName(conv.Nested), src, fail, dst)
	}

	return fmt.Sprintf("if %s, err = %s; err != nil {\n%s\n}", dst, g.fallibleCall(conv, src, imports), fail)
}

// runtime returns the qualifier of the pbconv package.
func (g *Generator) runtime(imports *importSet) string {
	return imports.add(g.config.RuntimeImport, "pbconv")
}
