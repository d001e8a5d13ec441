// Package cli implements the pbconvert-generator command line.
package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pbconvert-generator/internal/config"
	"pbconvert-generator/internal/logger"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

// options holds state shared by all commands of one invocation.
type options struct {
	viper      *viper.Viper
	configFile string
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"pkg":              config.KeyPackage,
	"directives":       config.KeyDirectives,
	"out":              config.KeyOut,
	"runtime-import":   config.KeyRuntimeImport,
	"require-external": config.KeyRequireExternal,
	"log-json":         config.KeyLogJSON,
	"verbose":          config.KeyLogVerbose,
}

// load binds the flags of cmd, reads the configuration and initializes logging.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}

		if err := o.viper.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrapf(err, "binding flag %s", name)
		}
	}

	cfg, err := config.Load(o.viper, o.configFile)
	if err != nil {
		return nil, err
	}

	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbose); err != nil {
		return nil, errors.Wrap(err, "initializing logger")
	}

	return cfg, nil
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	opts := &options{viper: config.New()}

	rootCmd := &cobra.Command{
		Use:   "pbconvert-generator",
		Short: "Generate conversions between Go types and protobuf messages",
		Long: color.CyanString(`pbconvert-generator - declarative struct/enum to protobuf mapping

Reads pbconvert.yaml next to a Go package and generates, per described type,
ToProto and FromProto functions, a pbconv.Converter value and optional
JSON/binary shims that encode through the protobuf message.`),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "",
		"config file (default .pbconvert-generator.yaml in the working directory)")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")

	rootCmd.AddCommand(NewGenCommand(opts))
	rootCmd.AddCommand(NewCheckCommand(opts))
	rootCmd.AddCommand(NewDescribeCommand(opts))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// addPipelineFlags registers the flags shared by commands running the pipeline.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("pkg", ".", "package holding the described types")
	cmd.Flags().String("directives", "", "directive file (default <package dir>/pbconvert.yaml)")
	cmd.Flags().String("out", "", "output directory (default the package directory)")
	cmd.Flags().String("runtime-import", config.DefaultRuntimeImport, "import path of the pbconv runtime")
	cmd.Flags().Bool("require-external", true, "fail when a source message cannot be loaded")
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			titleColor.Fprint(out, "pbconvert-generator version: ")
			_, _ = fmt.Fprintln(out, Version)

			titleColor.Fprint(out, "Git commit: ")
			_, _ = fmt.Fprintln(out, GitCommit)

			titleColor.Fprint(out, "Go version: ")
			_, _ = fmt.Fprintln(out, runtime.Version())
		},
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer logger.Sync()

	rootCmd := NewRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)

		return err
	}

	return nil
}
