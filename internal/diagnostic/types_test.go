package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())
	assert.True(t, d.IsValid())

	d.AddWarning(CodeSkipOverridesWith, "skip and with both set", "Span", "Note")
	assert.NoError(t, d.Error())

	d.AddError(CodeTooManyFields, "variant Pair has 2 fields", "Value", "Pair")
	d.AddErrorWithSuggestions(CodeUnknownOption, "unknown option \"serde\"", "Span", "serde", []string{"serde_pb_convert"})

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"[Value] Pair: [too_many_fields] variant Pair has 2 fields; "+
			"[Span] serde: [unknown_option] unknown option \"serde\" (did you mean serde_pb_convert?)",
		err.Error())

	assert.True(t, d.HasCode(CodeSkipOverridesWith))
	assert.True(t, d.HasCode(CodeUnknownOption))
	assert.False(t, d.HasCode(CodeMissingSource))
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddWarning(CodeSkipOverridesWith, "skip and with both set", "Span", "Note")
	b.AddError(CodeMissingSource, "missing source", "Span", "")
	assert.False(t, a.HasErrors())

	a.Merge(b)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Errors, 1)
	assert.True(t, a.HasErrors())
	assert.Equal(t, SeverityError, a.Errors[0].Severity)
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(0).String())
}
