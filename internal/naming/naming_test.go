package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"Name", []string{"Name"}},
		{"RequestTypeURL", []string{"Request", "Type", "URL"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"numberValue", []string{"number", "Value"}},
		{"file_name", []string{"file", "name"}},
		{"Field1Name", []string{"Field1", "Name"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"CamelCaseName", "camel_case_name"},
		{"NumberValue", "number_value"},
		{"HTTPServer", "http_server"},
		{"RequestTypeURL", "request_type_url"},
		{"ID", "id"},
		{"already_snake", "already_snake"},
		{"Simple", "simple"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestGoCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"kind", "Kind"},
		{"file_name", "FileName"},
		{"request_type_url", "RequestTypeUrl"},
		{"camel_case_name", "CamelCaseName"},
		{"NumberValue", "NumberValue"},
		{"_foo", "XFoo"},
		{"foo2bar", "Foo2Bar"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GoCamelCase(tt.input))
		})
	}
}

func TestSlotRoundTrip(t *testing.T) {
	// A Go field name goes through snake_case and back through protoc-gen-go.
	tests := map[string]string{
		"Name":           "Name",
		"FileName":       "FileName",
		"RequestTypeURL": "RequestTypeUrl",
		"SourceContext":  "SourceContext",
	}

	for field, goName := range tests {
		assert.Equal(t, goName, GoCamelCase(SnakeCase(field)), field)
	}
}

func TestIdent(t *testing.T) {
	assert.Equal(t, "ValueFromString", Ident("Value", "From", "String"))
	assert.Equal(t, "valueFromString", Ident("value", "From", "String"))
	assert.Equal(t, "float64FromValue", Ident("float64", "From", "Value"))
	assert.Equal(t, "ListFromValue", Ident("List", "From", "Value"))
}

func TestMatchExport(t *testing.T) {
	assert.Equal(t, "Float64FromValue", MatchExport("Value", "Float64FromValue"))
	assert.Equal(t, "float64FromValue", MatchExport("value", "Float64FromValue"))
	assert.Equal(t, "MarshalValueJSON", MatchExport("Value", "marshalValueJSON"))
}

func TestIsIdent(t *testing.T) {
	assert.True(t, IsIdent("kind"))
	assert.True(t, IsIdent("_x1"))
	assert.False(t, IsIdent(""))
	assert.False(t, IsIdent("1x"))
	assert.False(t, IsIdent("a-b"))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "GetFileName", Getter("FileName"))
	assert.Equal(t, "Value_NumberValue", OneofWrapper("Value", "NumberValue"))
	assert.True(t, IsExported("Value"))
	assert.False(t, IsExported("value"))
	assert.Equal(t, "Value", Exported("value"))
}
