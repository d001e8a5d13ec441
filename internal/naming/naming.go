// Package naming holds the identifier conventions shared by the directive
// model, the descriptor builder and the generators: snake_case slot names and
// the protoc-gen-go rules that turn a proto field name into Go identifiers.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits a CamelCase, camelCase or snake_case identifier into words.
// Examples:
//   - "RequestTypeURL" -> ["Request", "Type", "URL"]
//   - "numberValue" -> ["number", "Value"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "file_name" -> ["file", "name"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "numberValue" -> split before 'V'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "XMLParser" -> split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

// SnakeCase converts an identifier to lower snake_case.
// "CamelCaseName" becomes "camel_case_name", "HTTPServer" becomes "http_server".
func SnakeCase(s string) string {
	tokens := Tokenize(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// GoCamelCase returns the Go identifier protoc-gen-go derives from a proto
// field or oneof name. "request_type_url" becomes "RequestTypeUrl".
func GoCamelCase(s string) string {
	var b []byte

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '.' && i+1 < len(s) && isASCIILower(s[i+1]):
			// ".x" collapses into "X".
		case c == '.':
			b = append(b, '_')
		case c == '_' && (i == 0 || s[i-1] == '.'):
			b = append(b, 'X')
		case c == '_' && i+1 < len(s) && isASCIILower(s[i+1]):
			// "_x" collapses into "X".
		case isASCIIDigit(c):
			b = append(b, c)
		default:
			if isASCIILower(c) {
				c -= 'a' - 'A'
			}

			b = append(b, c)

			for ; i+1 < len(s) && isASCIILower(s[i+1]); i++ {
				b = append(b, s[i+1])
			}
		}
	}

	return string(b)
}

func isASCIILower(c byte) bool { return 'a' <= c && c <= 'z' }

func isASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }

// Getter returns the protoc-gen-go getter for a Go field name.
func Getter(goName string) string {
	return "Get" + goName
}

// OneofWrapper returns the protoc-gen-go wrapper type of a oneof case,
// e.g. OneofWrapper("Value", "NumberValue") is "Value_NumberValue".
func OneofWrapper(message, goName string) string {
	return message + "_" + goName
}

// IsExported reports whether name starts with an upper-case letter.
func IsExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}

// Exported upper-cases the first letter of name.
func Exported(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}

// Ident joins words into an identifier that is exported when ref is.
// Ident("value", "From", "String") is "valueFromString".
func Ident(ref string, words ...string) string {
	return MatchExport(ref, ref+strings.Join(words, ""))
}

// MatchExport returns s exported when ref is and unexported otherwise.
// MatchExport("value", "Float64FromValue") is "float64FromValue".
func MatchExport(ref, s string) string {
	if IsExported(ref) {
		return Exported(s)
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}

// IsIdent reports whether s is a valid Go identifier.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}
