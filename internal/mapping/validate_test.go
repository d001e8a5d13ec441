package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbconvert-generator/internal/diagnostic"
)

func mustParse(t *testing.T, src string) *DirectiveFile {
	t.Helper()

	df, err := Parse([]byte(src))
	require.NoError(t, err)

	return df
}

func TestValidate_Valid(t *testing.T) {
	diags := Validate(mustParse(t, fullYAML))

	assert.True(t, diags.IsValid(), diags.Error())
	// Edition has both skip and with
	assert.True(t, diags.HasCode(diagnostic.CodeSkipOverridesWith))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		yaml       string
		code       string
		member     string
		suggestion string
	}{
		{
			name: "missing source",
			yaml: `
types:
  - type: Span
`,
			code:   diagnostic.CodeMissingSource,
			member: "source",
		},
		{
			name: "unqualified source",
			yaml: `
types:
  - type: Span
    source: Duration
`,
			code:   diagnostic.CodeInvalidSource,
			member: "source",
		},
		{
			name: "unknown type option",
			yaml: `
types:
  - type: Span
    source: example.com/pb.Duration
    serde_pb_conver: true
`,
			code:       diagnostic.CodeUnknownOption,
			member:     "serde_pb_conver",
			suggestion: "serde_pb_convert",
		},
		{
			name: "unknown field option",
			yaml: `
types:
  - type: Span
    source: example.com/pb.Duration
    fields:
      Note:
        skp: true
`,
			code:       diagnostic.CodeUnknownOption,
			member:     "Note.skp",
			suggestion: "skip",
		},
		{
			name: "malformed case",
			yaml: `
types:
  - type: Value
    source: example.com/pb.Value
    rename:
      case: SCREAMING
`,
			code:   diagnostic.CodeInvalidCase,
			member: "rename.case",
		},
		{
			name: "bad oneof field",
			yaml: `
types:
  - type: Value
    source: example.com/pb.Value
    oneof_field: "the kind"
`,
			code:   diagnostic.CodeInvalidOneof,
			member: "oneof_field",
		},
		{
			name: "bad with path",
			yaml: `
types:
  - type: API
    source: example.com/pb.Api
    fields:
      Syntax:
        with: "conv-syntax"
`,
			code:   diagnostic.CodeInvalidWith,
			member: "Syntax",
		},
		{
			name: "duplicate type",
			yaml: `
types:
  - type: Span
    source: example.com/pb.Duration
  - type: Span
    source: example.com/pb.Duration
`,
			code: diagnostic.CodeDuplicateType,
		},
		{
			name: "missing type",
			yaml: `
types:
  - source: example.com/pb.Duration
`,
			code: diagnostic.CodeMissingType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := Validate(mustParse(t, tt.yaml))
			require.True(t, diags.HasErrors())

			var found *diagnostic.Diagnostic
			for i := range diags.Errors {
				if diags.Errors[i].Code == tt.code {
					found = &diags.Errors[i]
				}
			}

			require.NotNil(t, found, "expected %s, got %v", tt.code, diags.Error())

			if tt.member != "" {
				assert.Equal(t, tt.member, found.Member)
			}

			if tt.suggestion != "" {
				require.NotEmpty(t, found.Suggestions)
				assert.Equal(t, tt.suggestion, found.Suggestions[0])
			}
		})
	}
}

func TestValidate_UnknownOptionNamesOption(t *testing.T) {
	diags := Validate(mustParse(t, `
types:
  - type: Value
    source: example.com/pb.Value
    impl_from: true
`))

	err := diags.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown option "impl_from"`)
	assert.Contains(t, err.Error(), "did you mean impl_from_trait")
}
