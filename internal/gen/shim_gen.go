package gen

import (
	"pbconvert-generator/internal/naming"
	"pbconvert-generator/internal/plan"
)

// Encoding packages the shims delegate to.
const (
	protojsonImport = "google.golang.org/protobuf/encoding/protojson"
	protoImport     = "google.golang.org/protobuf/proto"
)

// shimData names the serialization shims of a unit. Structs get methods,
// enums get package functions since interfaces cannot carry methods.
type shimData struct {
	Methods bool

	MarshalJSON     string
	UnmarshalJSON   string
	MarshalBinary   string
	UnmarshalBinary string

	// JSON and Binary qualify the encoding packages.
	JSON   string
	Binary string
}

// buildShim returns nil when the unit did not request serialization shims.
func (g *Generator) buildShim(unit plan.Unit, imports *importSet) *shimData {
	if !unit.SerdeShim() {
		return nil
	}

	data := &shimData{
		JSON:   imports.add(protojsonImport, "protojson"),
		Binary: imports.add(protoImport, "proto"),
	}

	if unit.Struct != nil {
		data.Methods = true
		data.MarshalJSON = "MarshalJSON"
		data.UnmarshalJSON = "UnmarshalJSON"
		data.MarshalBinary = "MarshalBinary"
		data.UnmarshalBinary = "UnmarshalBinary"

		return data
	}

	name := unit.Name()
	exported := naming.Exported(name)

	data.MarshalJSON = naming.MatchExport(name, "Marshal"+exported+"JSON")
	data.UnmarshalJSON = naming.MatchExport(name, "Unmarshal"+exported+"JSON")
	data.MarshalBinary = naming.MatchExport(name, "Marshal"+exported+"Binary")
	data.UnmarshalBinary = naming.MatchExport(name, "Unmarshal"+exported+"Binary")

	return data
}
