package match

import (
	"strings"

	"pbconvert-generator/internal/naming"
)

// NormalizeIdent normalizes an identifier for fuzzy matching: words are split
// on case changes and separators, lower-cased and joined without separators.
// "serde_pb_convert", "SerdePbConvert" and "serdePBConvert" all normalize to
// "serdepbconvert".
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(naming.Tokenize(s), ""))
}
