package gen

import (
	"strconv"

	"pbconvert-generator/internal/naming"
	"pbconvert-generator/internal/plan"
)

// structData holds the field statements of a struct unit.
type structData struct {
	ToProto   []string
	FromProto []string
	// NeedsErr is set when a field conversion can fail.
	NeedsErr bool
}

// buildStruct renders the field statements of both directions.
// Skipped fields produce no statement: the message slot keeps its default
// and the native field its zero value.
func (g *Generator) buildStruct(sd *plan.StructDescriptor, imports *importSet) *structData {
	data := &structData{}
	typeName := sd.Type.ID.Name

	for _, f := range sd.Fields {
		if f.Conversion.Strategy == plan.StrategySkip {
			continue
		}

		data.ToProto = append(data.ToProto,
			g.toProtoStmt(f.Conversion, "out."+f.GoSlot, "in."+f.Name, imports))

		fail := "return " + typeName + "{}, " + g.runtime(imports) + ".FieldError(" +
			strconv.Quote(typeName) + ", " + strconv.Quote(f.Name) + ", err)"

		data.FromProto = append(data.FromProto,
			g.fromProtoStmt(f.Conversion, "out."+f.Name, "in."+naming.Getter(f.GoSlot)+"()", fail, imports))

		if f.Conversion.Fallible() {
			data.NeedsErr = true
		}
	}

	return data
}
