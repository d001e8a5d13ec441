package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the directive file looked up in the described package.
const DefaultFileName = "pbconvert.yaml"

// LoadFile loads and parses a directive file from the given path.
func LoadFile(path string) (*DirectiveFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a DirectiveFile.
func Parse(data []byte) (*DirectiveFile, error) {
	var df DirectiveFile

	err := yaml.Unmarshal(data, &df)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directive YAML: %w", err)
	}

	applyDefaults(&df)

	return &df, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(df *DirectiveFile) {
	if df.Version == "" {
		df.Version = "1"
	}
}

// Marshal serializes a DirectiveFile to YAML.
func Marshal(df *DirectiveFile) ([]byte, error) {
	return yaml.Marshal(df)
}

// WriteFile writes a DirectiveFile to the given path.
func WriteFile(df *DirectiveFile, path string) error {
	data, err := Marshal(df)
	if err != nil {
		return fmt.Errorf("failed to marshal directives: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write directive file %s: %w", path, err)
	}

	return nil
}
