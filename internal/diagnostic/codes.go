package diagnostic

// Directive file codes.
const (
	CodeUnknownOption     = "unknown_option"
	CodeMissingType       = "missing_type"
	CodeMissingSource     = "missing_source"
	CodeInvalidSource     = "invalid_source"
	CodeInvalidCase       = "invalid_case"
	CodeInvalidOneof      = "invalid_oneof_field"
	CodeInvalidWith       = "invalid_with"
	CodeDuplicateType     = "duplicate_type"
	CodeSkipOverridesWith = "skip_overrides_with"
)

// Descriptor codes.
const (
	CodeUnknownType      = "unknown_type"
	CodeUnknownField     = "unknown_field"
	CodeUnsupportedType  = "unsupported_type"
	CodeEnumOnlyOption   = "enum_only_option"
	CodeUnsealedEnum     = "unsealed_enum"
	CodeNoVariants       = "no_variants"
	CodeUnsupportedShape = "unsupported_shape"
	CodeTooManyFields    = "too_many_fields"
	CodeAmbiguousPayload = "ambiguous_payload"
	CodeUnsupportedField = "unsupported_field"
	CodeTypeMismatch     = "type_mismatch"
	CodeDuplicateVariant = "duplicate_variant"
	CodeSkippedVariant   = "skipped_variant"
)

// External contract codes.
const (
	CodeUnknownMessage  = "unknown_message"
	CodeMissingAccessor = "missing_accessor"
	CodeMissingOneof    = "missing_oneof"
	CodeMissingWrapper  = "missing_wrapper"
)
