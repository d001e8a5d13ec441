package pbconv

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionError_KeepsInnerMessage(t *testing.T) {
	inner := fmt.Errorf("Unknown enum discriminant: %d", 12)

	err := FieldError("Method", "Syntax", inner)
	err = FieldError("API", "Methods", err)

	assert.Equal(t, "Unknown enum discriminant: 12", err.Error())
	assert.ErrorIs(t, err, inner)

	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "API", ce.Type)
	assert.Equal(t, "API.Methods.Syntax", ce.Path())
}

func TestConversionError_FormatVerbose(t *testing.T) {
	err := FieldError("Span", "Seconds", errors.New("bad seconds"))

	assert.Equal(t, "bad seconds", fmt.Sprintf("%v", err))
	assert.Contains(t, fmt.Sprintf("%+v", err), "converting Span.Seconds")
}

func TestMissingVariant(t *testing.T) {
	err := MissingVariant("Value")

	assert.Equal(t, "Value: invalid enum variant", err.Error())
	assert.True(t, errors.Is(err, ErrMissingVariant))
	assert.False(t, errors.Is(err, ErrUnexpectedVariant))

	var ce *ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Value", ce.Path())
}

func TestUnexpectedVariant(t *testing.T) {
	err := UnexpectedVariant("NumberValue", "StringValue", struct{ Text string }{"x"})

	assert.Equal(t, "Expected variant NumberValue, but got StringValue", err.Error())
	assert.True(t, errors.Is(err, ErrUnexpectedVariant))
	assert.Contains(t, errors.FlattenDetails(err), "got StringValue({Text:x})")
}

func TestDecodeError(t *testing.T) {
	assert.NoError(t, DecodeError("Span", nil))

	cause := VariantError("Value", "ListValue", MissingVariant("Value"))
	err := DecodeError("Value", cause)

	assert.Equal(t, "Value: invalid enum variant", err.Error())
	assert.True(t, errors.Is(err, ErrDecode))
	assert.True(t, errors.Is(err, ErrMissingVariant))
}
