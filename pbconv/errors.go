package pbconv

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinels for errors.Is checks. The messages returned to callers are the
// ones built by the constructors below, never these.
var (
	// ErrMissingVariant marks a oneof that is unset or holds a case the
	// native enum does not know.
	ErrMissingVariant = errors.New("missing enum variant")
	// ErrUnexpectedVariant marks an unwrap of the wrong enum variant.
	ErrUnexpectedVariant = errors.New("unexpected enum variant")
	// ErrDecode marks failures raised by generated MarshalJSON/UnmarshalJSON
	// style shims.
	ErrDecode = errors.New("decode failed")
)

// ConversionError is returned by generated FromProto functions.
//
// Error returns the message of the innermost cause unchanged, so a custom
// converter failing with "Unknown enum discriminant: 12" surfaces exactly
// that text. Type and Member locate where the failure happened; nested
// failures chain through Err and Path joins them.
type ConversionError struct {
	Type   string // native type being reconstructed
	Member string // field or variant name, empty for type-level failures
	Err    error
}

func (e *ConversionError) Error() string {
	return e.Err.Error()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// Path returns the dotted location of the failure, e.g. "API.Methods.Syntax".
func (e *ConversionError) Path() string {
	parts := []string{e.Type}

	var cur error = e
	for {
		var ce *ConversionError
		if !errors.As(cur, &ce) {
			break
		}

		if ce.Member != "" {
			parts = append(parts, ce.Member)
		}

		cur = ce.Err
	}

	return strings.Join(parts, ".")
}

// Format implements fmt.Formatter; %+v includes the path.
func (e *ConversionError) Format(s fmt.State, verb rune) {
	errors.FormatError(e, s, verb)
}

// FormatError implements errors.Formatter.
func (e *ConversionError) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("converting %s", e.Path())
	}

	return e.Err
}

// FieldError wraps a failure converting field of typ.
func FieldError(typ, field string, err error) error {
	return &ConversionError{Type: typ, Member: field, Err: err}
}

// VariantError wraps a failure converting the payload of an enum variant.
func VariantError(typ, variant string, err error) error {
	return &ConversionError{Type: typ, Member: variant, Err: err}
}

// MissingVariant reports a oneof with no case the enum typ can represent.
func MissingVariant(typ string) error {
	err := errors.Newf("%s: invalid enum variant", typ)

	return &ConversionError{Type: typ, Err: errors.Mark(err, ErrMissingVariant)}
}

// UnexpectedVariant reports an unwrap that expected one variant and found
// another. The actual value is attached as a detail.
func UnexpectedVariant(expected, actual string, value any) error {
	err := errors.Newf("Expected variant %s, but got %s", expected, actual)
	err = errors.Mark(err, ErrUnexpectedVariant)

	return errors.WithDetailf(err, "got %s(%+v)", actual, value)
}

// DecodeError marks a conversion failure raised while decoding typ from its
// serialized protobuf form. The message is left untouched.
func DecodeError(typ string, err error) error {
	if err == nil {
		return nil
	}

	return errors.Mark(errors.WithDetailf(err, "decoding %s", typ), ErrDecode)
}

func withIndex(err error, i int) error {
	return errors.WithDetailf(err, "index %d", i)
}
