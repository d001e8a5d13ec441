package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbconvert-generator/internal/analyze"
)

const fullYAML = `
version: "1"
types:
  - type: Span
    source: google.golang.org/protobuf/types/known/durationpb.Duration
    serde_pb_convert: true
    fields:
      Note: skip
  - type: API
    source: google.golang.org/protobuf/types/known/apipb.Api
    fields:
      Syntax:
        with: syntaxConv
      Edition:
        skip: true
        with: editionConv
  - type: Value
    source: google.golang.org/protobuf/types/known/structpb.Value
    impl_from_trait: true
    rename:
      case: snake_case
    oneof_field: value
`

func TestParse(t *testing.T) {
	df, err := Parse([]byte(fullYAML))
	require.NoError(t, err)
	require.NotNil(t, df)

	assert.Equal(t, "1", df.Version)
	require.Len(t, df.Types, 3)
	assert.Empty(t, df.Unknown)

	span := df.Types[0]
	assert.Equal(t, "Span", span.Type)
	assert.Equal(t, "google.golang.org/protobuf/types/known/durationpb.Duration", span.Source)
	assert.True(t, span.SerdePbConvert)
	assert.False(t, span.ImplFromTrait)
	assert.Equal(t, ConversionDirective{Kind: DirectiveSkip}, span.DirectiveFor("Note"))
	assert.Equal(t, ConversionDirective{Kind: DirectiveDefault}, span.DirectiveFor("Seconds"))
	assert.Positive(t, span.Line)

	api := df.Types[1]
	assert.Equal(t, ConversionDirective{Kind: DirectiveWith, With: "syntaxConv"}, api.DirectiveFor("Syntax"))
	// skip takes precedence over with
	assert.Equal(t, ConversionDirective{Kind: DirectiveSkip}, api.DirectiveFor("Edition"))

	value := df.Types[2]
	assert.True(t, value.ImplFromTrait)
	assert.Equal(t, "value", value.OneofFieldName())

	policy, err := value.RenamePolicy()
	require.NoError(t, err)
	assert.Equal(t, RenameSnakeCase, policy)
	assert.ElementsMatch(t, []string{"impl_from_trait", "rename", "oneof_field"}, value.EnumOptions())
}

func TestParse_Defaults(t *testing.T) {
	df, err := Parse([]byte(`
types:
  - type: Scalar
    source: example.com/pb.Value
`))
	require.NoError(t, err)

	assert.Equal(t, "1", df.Version)

	td := df.Types[0]
	assert.Equal(t, DefaultOneofField, td.OneofFieldName())

	policy, err := td.RenamePolicy()
	require.NoError(t, err)
	assert.Equal(t, RenameIdentity, policy)
	assert.Empty(t, td.EnumOptions())
}

func TestParse_UnknownOptionsAreRecorded(t *testing.T) {
	df, err := Parse([]byte(`
version: "1"
mappings: []
types:
  - type: Span
    source: example.com/pb.Duration
    serde: true
    rename:
      style: snake_case
    fields:
      Note: skipp
      Seconds:
        wiht: conv
`))
	require.NoError(t, err)

	require.Len(t, df.Unknown, 1)
	assert.Equal(t, "mappings", df.Unknown[0].Name)

	td := df.Types[0]
	require.Len(t, td.Unknown, 1)
	assert.Equal(t, "serde", td.Unknown[0].Name)
	assert.Equal(t, 7, td.Unknown[0].Line)

	require.NotNil(t, td.Rename)
	require.Len(t, td.Rename.Unknown, 1)
	assert.Equal(t, "style", td.Rename.Unknown[0].Name)

	assert.Equal(t, "skipp", td.Fields["Note"].Unknown[0].Name)
	assert.Equal(t, "wiht", td.Fields["Seconds"].Unknown[0].Name)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`types: [1, 2]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`
types:
  - type: Span
    fields:
      Note: [skip]
`))
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	df, err := Parse([]byte(fullYAML))
	require.NoError(t, err)

	data, err := Marshal(df)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Note: skip\n")

	again, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, again.Types, 3)
	assert.Equal(t, df.Types[1].DirectiveFor("Syntax"), again.Types[1].DirectiveFor("Syntax"))
	assert.Equal(t, df.Types[2].OneofField, again.Types[2].OneofField)
}

func TestLoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)

	df, err := Parse([]byte(fullYAML))
	require.NoError(t, err)
	require.NoError(t, WriteFile(df, path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Types, 3)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read directive file")

	require.NoError(t, os.WriteFile(path, []byte("types: {"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorContains(t, err, "failed to parse directive YAML")
}

func TestParseWithPath(t *testing.T) {
	tests := []struct {
		input   string
		want    WithPath
		wantErr bool
	}{
		{input: "syntaxConv", want: WithPath{Ident: "syntaxConv"}},
		{input: "example.com/ids", want: WithPath{ImportPath: "example.com/ids"}},
		{input: "example.com/ids.Syntax", want: WithPath{ImportPath: "example.com/ids", Ident: "Syntax"}},
		{input: "ids.Syntax", want: WithPath{ImportPath: "ids", Ident: "Syntax"}},
		{input: "", wantErr: true},
		{input: "not-an-ident", wantErr: true},
		{input: "gopkg.in/yaml.v3", want: WithPath{ImportPath: "gopkg.in/yaml.v3"}},
		{input: "gopkg.in/yaml.v3.Codec", want: WithPath{ImportPath: "gopkg.in/yaml.v3", Ident: "Codec"}},
		{input: "example.com/ids.syntax", want: WithPath{ImportPath: "example.com/ids.syntax"}},
		{input: "example.com/ids.Syn-tax", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWithPath(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseSource(t *testing.T) {
	id, err := ParseSource("google.golang.org/protobuf/types/known/structpb.Value")
	require.NoError(t, err)
	assert.Equal(t, analyze.TypeID{PkgPath: "google.golang.org/protobuf/types/known/structpb", Name: "Value"}, id)

	for _, bad := range []string{"Value", "example.com/pb", "example.com/pb.value", ".Value"} {
		_, err := ParseSource(bad)
		assert.Error(t, err, bad)
	}
}

func TestSourcePackages(t *testing.T) {
	df, err := Parse([]byte(fullYAML))
	require.NoError(t, err)

	df.Types = append(df.Types,
		TypeDirective{Type: "Other", Source: "google.golang.org/protobuf/types/known/durationpb.Duration"},
		TypeDirective{Type: "Broken", Source: "Value"})

	assert.Equal(t, []string{
		"google.golang.org/protobuf/types/known/apipb",
		"google.golang.org/protobuf/types/known/durationpb",
		"google.golang.org/protobuf/types/known/structpb",
	}, df.SourcePackages())
}

func TestRenamePolicy(t *testing.T) {
	assert.Equal(t, "CamelCaseName", RenameIdentity.Apply("CamelCaseName"))
	assert.Equal(t, "camel_case_name", RenameSnakeCase.Apply("CamelCaseName"))
	assert.Equal(t, "snake_case", RenameSnakeCase.String())
	assert.Equal(t, "identity", RenameIdentity.String())

	_, err := ParseRenameCase("kebab-case")
	assert.ErrorContains(t, err, "malformed case value")

	_, err = ParseRenameCase("")
	assert.Error(t, err)
}

func TestDirectiveKind_String(t *testing.T) {
	assert.Equal(t, "DirectiveSkip", DirectiveSkip.String())
	assert.Equal(t, "DirectiveKind(7)", DirectiveKind(7).String())
}
