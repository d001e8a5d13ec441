package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"

	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/naming"
	"pbconvert-generator/internal/plan"
)

// RuntimeImportPath is the import path of the runtime package generated code calls into.
const RuntimeImportPath = "pbconvert-generator/pbconv"

// FileSuffix ends the name of every generated file.
const FileSuffix = "_pbconvert.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is where unformatted sidecars are written when formatting fails.
	// Empty disables the sidecar.
	OutputDir string
	// RuntimeImport is the import path of the pbconv runtime package.
	RuntimeImport string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		RuntimeImport: RuntimeImportPath,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
	graph  *analyze.TypeGraph

	// contextPkgPath is the package path currently being generated into.
	// Used to suppress package prefixes for types in the same package.
	contextPkgPath string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = RuntimeImportPath
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "api_pbconvert.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the generated file name of a described type.
func Filename(typeName string) string {
	return naming.SnakeCase(typeName) + FileSuffix
}

// Generate generates one file per unit of the plan into the native package.
// Either every file is returned or none.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if p == nil || p.Package == nil {
		return nil, errors.New("plan has no native package")
	}

	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("plan has errors: %w", p.Diagnostics.Error())
	}

	g.graph = p.TypeGraph
	g.contextPkgPath = p.Package.Path

	files := make([]GeneratedFile, 0, len(p.Units))
	owners := make(map[string]string, len(p.Units))

	for _, unit := range p.Units {
		filename := Filename(unit.Name())
		if other, taken := owners[filename]; taken {
			return nil, fmt.Errorf("%s and %s would both be generated into %s", other, unit.Name(), filename)
		}

		owners[filename] = unit.Name()

		file, err := g.generateUnit(p.Package.Name, unit)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", unit.Name(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateUnit renders the file of one described type.
func (g *Generator) generateUnit(pkgName string, unit plan.Unit) (*GeneratedFile, error) {
	imports := newImportSet()
	name := unit.Name()

	data := &unitData{
		PackageName: pkgName,
		Type:        name,
		ToProto:     toProtoName(name),
		FromProto:   fromProtoName(name),
		Converter:   converterName(name),
		Runtime:     g.runtime(imports),
		MessageLit:  g.qualify(imports, unit.Source()),
	}
	data.Message = "*" + data.MessageLit

	switch {
	case unit.Struct != nil:
		data.Struct = g.buildStruct(unit.Struct, imports)
	case unit.Enum != nil:
		data.Enum = g.buildEnum(unit.Enum, imports)
	default:
		return nil, errors.New("unit describes neither a struct nor an enum")
	}

	data.Shim = g.buildShim(unit, imports)
	data.Imports = imports.specs()

	return g.render(Filename(name), data)
}

// render executes the file template and formats the result.
func (g *Generator) render(filename string, data *unitData) (*GeneratedFile, error) {
	var buf bytes.Buffer

	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}
