package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"pbconvert-generator/internal/common"
)

// Severity tells whether a diagnostic aborts generation.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Diagnostic is one finding about a described type.
type Diagnostic struct {
	Severity Severity
	// Code is stable across releases, see codes.go.
	Code    string
	Message string
	// Type is the native type name, empty for file level findings.
	Type string
	// Member is the field, variant or option the finding is about.
	Member string
	// Suggestions are offered as "did you mean" hints.
	Suggestions []string
}

// String renders "[Type] Member: [code] message (did you mean a, b?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Type != "" {
		b.WriteString("[" + d.Type + "]")
	}

	if d.Member != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(d.Member)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (did you mean " + strings.Join(d.Suggestions, ", ") + "?)")
	}

	return b.String()
}

// Diagnostics collects the findings of a run. The zero value is ready to use.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

func (d *Diagnostics) add(diag Diagnostic) {
	if diag.Severity == SeverityError {
		d.Errors = append(d.Errors, diag)
	} else {
		d.Warnings = append(d.Warnings, diag)
	}
}

// AddError records an error about member of typeName.
func (d *Diagnostics) AddError(code, message, typeName, member string) {
	d.add(Diagnostic{Severity: SeverityError, Code: code, Message: message, Type: typeName, Member: member})
}

// AddErrorWithSuggestions records an error offering the given alternatives.
func (d *Diagnostics) AddErrorWithSuggestions(code, message, typeName, member string, suggestions []string) {
	d.add(Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Type:        typeName,
		Member:      member,
		Suggestions: suggestions,
	})
}

// AddWarning records a finding that does not stop generation.
func (d *Diagnostics) AddWarning(code, message, typeName, member string) {
	d.add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, Type: typeName, Member: member})
}

// Merge appends the findings of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid is the negation of HasErrors.
func (d *Diagnostics) IsValid() bool {
	return !d.HasErrors()
}

// HasCode reports whether an error or a warning carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, diag := range append(d.Errors[:len(d.Errors):len(d.Errors)], d.Warnings...) {
		if diag.Code == code {
			return true
		}
	}

	return false
}

// Error joins every error diagnostic into one error, nil when there is none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
