package common

import (
	"path"
	"regexp"
	"strings"
)

// UnknownStr is the String() value of out-of-range enum constants.
const UnknownStr = "unknown"

var majorVersion = regexp.MustCompile(`^v[0-9]+$`)

// PkgAlias returns the package alias (last element of path) for a given package path.
// A trailing major version element ("/v2") is skipped and characters that are
// not valid in identifiers are dropped. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if majorVersion.MatchString(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}

		return r
	}, base)
}
