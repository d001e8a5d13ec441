package mapping

import (
	"fmt"
	"sort"

	"pbconvert-generator/internal/diagnostic"
	"pbconvert-generator/internal/match"
	"pbconvert-generator/internal/naming"
)

// Validate checks a directive file for errors that do not need the type graph.
// Returns diagnostics containing any errors or warnings found.
func Validate(df *DirectiveFile) *diagnostic.Diagnostics {
	diags := &diagnostic.Diagnostics{}

	reportUnknown(diags, df.Unknown, fileOptions, "", "")

	seen := make(map[string]int)

	for i := range df.Types {
		td := &df.Types[i]

		if td.Type == "" {
			diags.AddError(diagnostic.CodeMissingType,
				fmt.Sprintf("entry at line %d has no type", td.Line), "", "")

			continue
		}

		if first, dup := seen[td.Type]; dup {
			diags.AddError(diagnostic.CodeDuplicateType,
				fmt.Sprintf("type is described twice (lines %d and %d)", first, td.Line), td.Type, "")
		}

		seen[td.Type] = td.Line

		validateType(diags, td)
	}

	return diags
}

func validateType(diags *diagnostic.Diagnostics, td *TypeDirective) {
	reportUnknown(diags, td.Unknown, typeOptions, td.Type, "")

	if td.Source == "" {
		diags.AddError(diagnostic.CodeMissingSource,
			"missing source: every described type needs an external message", td.Type, "source")
	} else if _, err := ParseSource(td.Source); err != nil {
		diags.AddError(diagnostic.CodeInvalidSource, err.Error(), td.Type, "source")
	}

	if td.Rename != nil {
		reportUnknown(diags, td.Rename.Unknown, renameOptions, td.Type, "rename")

		if _, err := ParseRenameCase(td.Rename.Case); err != nil {
			diags.AddError(diagnostic.CodeInvalidCase, err.Error(), td.Type, "rename.case")
		}
	}

	if td.OneofField != "" && !naming.IsIdent(td.OneofField) {
		diags.AddError(diagnostic.CodeInvalidOneof,
			fmt.Sprintf("oneof_field %q is not an identifier", td.OneofField), td.Type, "oneof_field")
	}

	names := make([]string, 0, len(td.Fields))
	for name := range td.Fields {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fd := td.Fields[name]

		reportUnknown(diags, fd.Unknown, fieldOptions, td.Type, name)

		if fd.Skip && fd.With != "" {
			diags.AddWarning(diagnostic.CodeSkipOverridesWith,
				fmt.Sprintf("skip and with are both set, with %q is ignored", fd.With), td.Type, name)
		}

		if fd.With != "" {
			if _, err := ParseWithPath(fd.With); err != nil {
				diags.AddError(diagnostic.CodeInvalidWith, err.Error(), td.Type, name)
			}
		}
	}
}

func reportUnknown(diags *diagnostic.Diagnostics, unknown []UnknownOption, known []string, typeName, scope string) {
	for _, u := range unknown {
		member := u.Name
		if scope != "" {
			member = scope + "." + u.Name
		}

		diags.AddErrorWithSuggestions(diagnostic.CodeUnknownOption,
			fmt.Sprintf("unknown option %q at line %d", u.Name, u.Line),
			typeName, member, match.Suggest(u.Name, known))
	}
}
