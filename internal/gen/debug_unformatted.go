package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// unformattedSuffix replaces ".go" in the name of a file gofmt rejected.
const unformattedSuffix = ".unformatted.go"

// writeDebugUnformatted keeps the raw template output of filename next to
// where the formatted file would have gone, so the broken line can be found.
// Nothing is written when the generator has no output directory.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	name := strings.TrimSuffix(filename, ".go") + unformattedSuffix

	return os.WriteFile(filepath.Join(outDir, name), content, 0o644)
}
