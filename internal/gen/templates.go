package gen

import "text/template"

// Header marks generated files.
const Header = "// Code generated by pbconvert-generator. DO NOT EDIT."

// unitData holds all data needed for the file template of one described type.
type unitData struct {
	PackageName string
	Imports     []importSpec

	// Type is the native type name.
	Type string
	// Message is the external pointer type, MessageLit the message itself.
	Message    string
	MessageLit string

	ToProto   string
	FromProto string
	Converter string
	// Runtime qualifies the pbconv package.
	Runtime string

	Struct *structData
	Enum   *enumData
	Shim   *shimData
}

var fileTemplate = template.Must(template.New("file").Parse(Header + `

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{if .Struct}}{{template "struct" .}}{{else}}{{template "enum" .}}{{if .Enum.Traits}}{{template "traits" .}}{{end}}{{end}}
{{- template "converter" .}}{{template "shim" .}}`))

func init() {
	template.Must(fileTemplate.New("struct").Parse(structTemplate))
	template.Must(fileTemplate.New("enum").Parse(enumTemplate))
	template.Must(fileTemplate.New("traits").Parse(traitsTemplate))
	template.Must(fileTemplate.New("converter").Parse(converterTemplate))
	template.Must(fileTemplate.New("shim").Parse(shimTemplate))
}

const structTemplate = `
// {{.ToProto}} converts {{.Type}} to {{.Message}}.
func {{.ToProto}}(in {{.Type}}) {{.Message}} {
	out := &{{.MessageLit}}{}
{{range .Struct.ToProto}}{{.}}
{{end}}
	return out
}

// {{.FromProto}} converts {{.Message}} to {{.Type}}.
func {{.FromProto}}(in {{.Message}}) ({{.Type}}, error) {
{{if .Struct.NeedsErr}}	var (
		out {{.Type}}
		err error
	)
{{else}}	var out {{.Type}}
{{end}}
{{range .Struct.FromProto}}{{.}}
{{end}}
	return out, nil
}
`

const enumTemplate = `
// {{.ToProto}} converts {{.Type}} to {{.Message}}. A nil {{.Type}} converts to an empty message,
// a pointer to a value variant converts like the value it points to.
func {{.ToProto}}(in {{.Type}}) {{.Message}} {
	out := &{{.MessageLit}}{}

	switch v := in.(type) {
{{range .Enum.Variants}}	case {{.Case}}:
{{.ToProto}}
{{if not .Pointer}}	case *{{.Case}}:
		if v != nil {
			return {{$.ToProto}}(*v)
		}
{{end}}{{end}}	}

	return out
}

// {{.FromProto}} converts {{.Message}} to {{.Type}}.
func {{.FromProto}}(in {{.Message}}) ({{.Type}}, error) {
	switch k := in.{{.Enum.OneofGetter}}().(type) {
{{range .Enum.Variants}}	case *{{.Wrapper}}:
{{.FromProto}}
{{end}}	default:
		return nil, {{.Runtime}}.MissingVariant({{printf "%q" .Type}})
	}
}
`

const traitsTemplate = `{{range .Enum.Variants}}
// {{.Wrap}} wraps v into the {{.Name}} variant of {{$.Type}}.
func {{.Wrap}}(v {{.Payload}}) {{$.Type}} {
	return {{.WrapExpr}}
}

// {{.Unwrap}} returns the payload of v when it holds the {{.Name}} variant.
func {{.Unwrap}}(v {{$.Type}}) ({{.Payload}}, error) {
	if w, ok := v.({{.Case}}); ok{{if .Pointer}} && w != nil{{end}} {
		return w.{{.PayloadField}}, nil
	}
{{if not .Pointer}}
	if w, ok := v.(*{{.Case}}); ok && w != nil {
		return w.{{.PayloadField}}, nil
	}
{{end}}
	var zero {{.Payload}}

	return zero, {{$.Runtime}}.UnexpectedVariant({{printf "%q" .Name}}, {{$.Enum.VariantName}}(v), v)
}
{{end}}
// {{.Enum.VariantName}} returns the name of the variant v holds.
func {{.Enum.VariantName}}(v {{.Type}}) string {
	switch v.(type) {
{{range .Enum.Variants}}	case {{.Case}}{{if not .Pointer}}, *{{.Case}}{{end}}:
		return {{printf "%q" .Name}}
{{end}}	default:
		return "<nil>"
	}
}
`

const converterTemplate = `
// {{.Converter}} converts {{.Type}} to and from {{.Message}}.
var {{.Converter}} = {{.Runtime}}.Funcs[{{.Type}}, {{.Message}}]{To: {{.ToProto}}, From: {{.FromProto}}}
`

const shimTemplate = `{{with .Shim}}{{if .Methods}}
// MarshalJSON encodes x as the JSON form of {{$.Message}}.
func (x {{$.Type}}) MarshalJSON() ([]byte, error) {
	return {{.JSON}}.Marshal({{$.ToProto}}(x))
}

// UnmarshalJSON decodes x from the JSON form of {{$.Message}}.
func (x *{{$.Type}}) UnmarshalJSON(data []byte) error {
	msg := &{{$.MessageLit}}{}
	if err := {{.JSON}}.Unmarshal(data, msg); err != nil {
		return {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	v, err := {{$.FromProto}}(msg)
	if err != nil {
		return {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	*x = v

	return nil
}

// MarshalBinary encodes x in the wire format of {{$.Message}}.
func (x {{$.Type}}) MarshalBinary() ([]byte, error) {
	return {{.Binary}}.Marshal({{$.ToProto}}(x))
}

// UnmarshalBinary decodes x from the wire format of {{$.Message}}.
func (x *{{$.Type}}) UnmarshalBinary(data []byte) error {
	msg := &{{$.MessageLit}}{}
	if err := {{.Binary}}.Unmarshal(data, msg); err != nil {
		return {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	v, err := {{$.FromProto}}(msg)
	if err != nil {
		return {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	*x = v

	return nil
}
{{else}}
// {{.MarshalJSON}} encodes v as the JSON form of {{$.Message}}.
func {{.MarshalJSON}}(v {{$.Type}}) ([]byte, error) {
	return {{.JSON}}.Marshal({{$.ToProto}}(v))
}

// {{.UnmarshalJSON}} decodes a {{$.Type}} from the JSON form of {{$.Message}}.
func {{.UnmarshalJSON}}(data []byte) ({{$.Type}}, error) {
	msg := &{{$.MessageLit}}{}
	if err := {{.JSON}}.Unmarshal(data, msg); err != nil {
		return nil, {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	v, err := {{$.FromProto}}(msg)
	if err != nil {
		return nil, {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	return v, nil
}

// {{.MarshalBinary}} encodes v in the wire format of {{$.Message}}.
func {{.MarshalBinary}}(v {{$.Type}}) ([]byte, error) {
	return {{.Binary}}.Marshal({{$.ToProto}}(v))
}

// {{.UnmarshalBinary}} decodes a {{$.Type}} from the wire format of {{$.Message}}.
func {{.UnmarshalBinary}}(data []byte) ({{$.Type}}, error) {
	msg := &{{$.MessageLit}}{}
	if err := {{.Binary}}.Unmarshal(data, msg); err != nil {
		return nil, {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	v, err := {{$.FromProto}}(msg)
	if err != nil {
		return nil, {{$.Runtime}}.DecodeError({{printf "%q" $.Type}}, err)
	}

	return v, nil
}
{{end}}{{end}}`
