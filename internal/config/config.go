// Package config loads generator settings from defaults, an optional
// .pbconvert-generator.yaml, PBCONVERT_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables, e.g. PBCONVERT_LOG_JSON.
const EnvPrefix = "PBCONVERT"

// DefaultRuntimeImport is the import path of the pbconv runtime package.
const DefaultRuntimeImport = "pbconvert-generator/pbconv"

// Keys of the settings, as used in the config file and for flag binding.
const (
	KeyPackage         = "package"
	KeyDirectives      = "directives"
	KeyOut             = "out"
	KeyRuntimeImport   = "runtime_import"
	KeyRequireExternal = "require_external"
	KeyLogJSON         = "log.json"
	KeyLogVerbose      = "log.verbose"
)

// Config represents the generator configuration.
type Config struct {
	// Package is the pattern of the native package holding the described types.
	Package string `mapstructure:"package"`
	// Directives is the directive file. Empty means pbconvert.yaml in the package directory.
	Directives string `mapstructure:"directives"`
	// Out is the output directory. Empty means the package directory.
	Out string `mapstructure:"out"`
	// RuntimeImport is the import path generated code uses for pbconv.
	RuntimeImport string `mapstructure:"runtime_import"`
	// RequireExternal makes an unloadable source message an error.
	RequireExternal bool `mapstructure:"require_external"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig represents logging configuration.
type LogConfig struct {
	JSON    bool `mapstructure:"json"`
	Verbose bool `mapstructure:"verbose"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyPackage, ".")
	v.SetDefault(KeyDirectives, "")
	v.SetDefault(KeyOut, "")
	v.SetDefault(KeyRuntimeImport, DefaultRuntimeImport)
	v.SetDefault(KeyRequireExternal, true)
	v.SetDefault(KeyLogJSON, false)
	v.SetDefault(KeyLogVerbose, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the configuration. configFile overrides the lookup of
// .pbconvert-generator.yaml in the working directory; a missing default
// file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(".pbconvert-generator")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Package) == "" {
		return errors.New("package must not be empty")
	}

	if strings.TrimSpace(cfg.RuntimeImport) == "" {
		return errors.New("runtime_import must not be empty")
	}

	return nil
}
