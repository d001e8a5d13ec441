package cli

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"pbconvert-generator/internal/analyze"
	"pbconvert-generator/internal/config"
	"pbconvert-generator/internal/gen"
	"pbconvert-generator/internal/logger"
	"pbconvert-generator/internal/mapping"
	"pbconvert-generator/internal/plan"
)

// DirectivesFile is the directive file looked up in the package directory.
const DirectivesFile = "pbconvert.yaml"

// Result is the outcome of one pipeline run.
type Result struct {
	// Plan is set once resolution ran, even when it failed.
	Plan *plan.Plan
	// Files holds the generated files, empty when any stage failed.
	Files []gen.GeneratedFile
	// OutDir is where Files belong.
	OutDir string
}

// Run loads the native package and its directives, resolves the plan and
// generates every file in memory. Nothing is written to disk.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	analyzer := analyze.NewAnalyzer()

	pkg, err := analyzer.ResolvePackage(ctx, cfg.Package)
	if err != nil {
		return nil, err
	}

	directivesPath := cfg.Directives
	if directivesPath == "" {
		directivesPath = filepath.Join(pkg.Dir, DirectivesFile)
	}

	logger.Logger.Debugw("loading directives", "package", pkg.Path, "file", directivesPath)

	directives, err := mapping.LoadFile(directivesPath)
	if err != nil {
		return nil, errors.Wrap(err, "loading directives")
	}

	patterns := []string{pkg.Path}
	if cfg.RequireExternal {
		patterns = append(patterns, directives.SourcePackages()...)
	}

	logger.Logger.Debugw("loading packages", "patterns", patterns)

	graph, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	resolution := plan.DefaultConfig(pkg.Path)
	resolution.RequireExternal = cfg.RequireExternal

	resolver := plan.NewResolver(graph, directives, resolution)

	result := &Result{OutDir: cfg.Out}
	if result.OutDir == "" {
		result.OutDir = pkg.Dir
	}

	result.Plan, err = resolver.Resolve()
	if result.Plan != nil {
		for _, w := range result.Plan.Diagnostics.Warnings {
			logger.Logger.Warn(w.String())
		}
	}

	if err != nil {
		return result, err
	}

	generation := gen.DefaultGeneratorConfig()
	generation.OutputDir = result.OutDir

	if cfg.RuntimeImport != "" {
		generation.RuntimeImport = cfg.RuntimeImport
	}

	generator := gen.NewGenerator(generation)

	result.Files, err = generator.Generate(result.Plan)
	if err != nil {
		return result, errors.Wrap(err, "generating code")
	}

	logger.Logger.Debugw("generated files", "count", len(result.Files), "out", result.OutDir)

	return result, nil
}
