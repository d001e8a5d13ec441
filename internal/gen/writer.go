package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	// Create output directory if it doesn't exist
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// DriftReason tells how a file on disk differs from the generated one.
type DriftReason string

const (
	// DriftMissing - the file was generated but is absent on disk.
	DriftMissing DriftReason = "missing"
	// DriftModified - the file on disk has different content.
	DriftModified DriftReason = "modified"
	// DriftOrphaned - a generated file on disk belongs to no described type.
	DriftOrphaned DriftReason = "orphaned"
)

// Drift is a difference between generated output and the files on disk.
type Drift struct {
	Filename string
	Reason   DriftReason
}

func (d Drift) String() string {
	return d.Filename + ": " + string(d.Reason)
}

// Compare reports how the files in dir differ from files.
// The result is sorted by file name and empty when dir is up to date.
func Compare(files []GeneratedFile, dir string) ([]Drift, error) {
	var drifts []Drift

	expected := make(map[string]bool, len(files))

	for _, file := range files {
		expected[file.Filename] = true

		content, err := os.ReadFile(filepath.Join(dir, file.Filename))

		switch {
		case errors.Is(err, fs.ErrNotExist):
			drifts = append(drifts, Drift{Filename: file.Filename, Reason: DriftMissing})
		case err != nil:
			return nil, fmt.Errorf("reading file %s: %w", file.Filename, err)
		case !bytes.Equal(content, file.Content):
			drifts = append(drifts, Drift{Filename: file.Filename, Reason: DriftModified})
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, FileSuffix) || expected[name] {
			continue
		}

		drifts = append(drifts, Drift{Filename: name, Reason: DriftOrphaned})
	}

	slices.SortFunc(drifts, func(a, b Drift) int { return strings.Compare(a.Filename, b.Filename) })

	return drifts, nil
}
