package mapping

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes the file and records unknown top-level keys.
func (df *DirectiveFile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: directive file must be a mapping", node.Line)
	}

	type plain DirectiveFile

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*df = DirectiveFile(p)
	df.Unknown = unknownKeys(node, fileOptions)

	return nil
}

// UnmarshalYAML decodes a type entry and records unknown keys.
func (t *TypeDirective) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: type entry must be a mapping", node.Line)
	}

	type plain TypeDirective

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*t = TypeDirective(p)
	t.Line = node.Line
	t.Unknown = unknownKeys(node, typeOptions)

	return nil
}

// UnmarshalYAML decodes the rename option and records unknown keys.
func (r *RenameDirective) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: rename must be a mapping with a case key", node.Line)
	}

	type plain RenameDirective

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*r = RenameDirective(p)
	r.Unknown = unknownKeys(node, renameOptions)

	return nil
}

// UnmarshalYAML accepts either the "skip" shorthand or a mapping.
// Any other scalar is recorded as an unknown option.
func (f *FieldDirective) UnmarshalYAML(node *yaml.Node) error {
	f.Line = node.Line

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "skip" {
			f.Skip = true
		} else {
			f.Unknown = []UnknownOption{{Name: node.Value, Line: node.Line}}
		}

		return nil

	case yaml.MappingNode:
		type plain FieldDirective

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*f = FieldDirective(p)
		f.Line = node.Line
		f.Unknown = unknownKeys(node, fieldOptions)

		return nil

	default:
		return fmt.Errorf("line %d: field directive must be skip or a mapping", node.Line)
	}
}

// MarshalYAML writes the skip shorthand when possible.
func (f FieldDirective) MarshalYAML() (any, error) {
	if f.Skip && f.With == "" {
		return "skip", nil
	}

	type plain FieldDirective

	return plain(f), nil
}

func unknownKeys(node *yaml.Node, known []string) []UnknownOption {
	var out []UnknownOption

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(known, key.Value) {
			out = append(out, UnknownOption{Name: key.Value, Line: key.Line})
		}
	}

	return out
}
