package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"pbconvert-generator/internal/gen"
	"pbconvert-generator/internal/logger"
)

// ErrStale is returned by check when generated files differ from the directives.
var ErrStale = errors.New("generated files are out of date")

// NewGenCommand creates the gen command.
func NewGenCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate conversion files for a package",
		Example: `  pbconvert-generator gen --pkg ./examples/wellknown
  //go:generate go run pbconvert-generator/cmd/pbconvert-generator gen --pkg .`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			result, err := Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(result.Files, result.OutDir); err != nil {
				return errors.Wrap(err, "writing files")
			}

			for _, f := range result.Files {
				logger.Logger.Infow("wrote file", "file", f.Filename)
			}

			successColor := color.New(color.FgGreen, color.Bold)
			successColor.Fprintf(cmd.OutOrStdout(), "✓ Generated %d files in %s\n", len(result.Files), result.OutDir)

			return nil
		},
	}

	addPipelineFlags(cmd)

	return cmd
}

// NewCheckCommand creates the check command.
func NewCheckCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that generated files are up to date",
		Long: `Regenerate in memory and compare with the files on disk.
Fails when a file is missing, modified, or no longer belongs to a described type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			result, err := Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			drifts, err := gen.Compare(result.Files, result.OutDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(drifts) == 0 {
				successColor := color.New(color.FgGreen, color.Bold)
				successColor.Fprintf(out, "✓ %d generated files are up to date\n", len(result.Files))

				return nil
			}

			warnColor := color.New(color.FgYellow)
			for _, d := range drifts {
				warnColor.Fprintf(out, "  %s\n", d)
			}

			return errors.Wrapf(ErrStale, "%d files differ, run pbconvert-generator gen", len(drifts))
		},
	}

	addPipelineFlags(cmd)

	return cmd
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Dump the resolved type descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}

			result, err := Run(cmd.Context(), cfg)
			if result == nil || result.Plan == nil {
				return err
			}

			out := cmd.OutOrStdout()

			dumper := spew.ConfigState{
				Indent:                  "  ",
				DisablePointerAddresses: true,
				DisableCapacities:       true,
				SortKeys:                true,
			}
			dumper.Fdump(out, describePlan(result.Plan))

			for _, d := range result.Plan.Diagnostics.Errors {
				_, _ = fmt.Fprintln(out, color.RedString("error: ")+d.String())
			}

			for _, d := range result.Plan.Diagnostics.Warnings {
				_, _ = fmt.Fprintln(out, color.YellowString("warning: ")+d.String())
			}

			return err
		},
	}

	addPipelineFlags(cmd)

	return cmd
}
