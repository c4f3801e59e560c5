// Package config provides configuration management for skillkit using Viper.
package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	skerrors "github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "skillkit"

// SupportedVersion is the configuration file format version this build reads.
const SupportedVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version  int      `mapstructure:"version" yaml:"version"`
	Sources  []string `mapstructure:"sources" yaml:"sources"`
	EnvRoots bool     `mapstructure:"env_roots" yaml:"env_roots"`
	Builtin  bool     `mapstructure:"builtin" yaml:"builtin"`
}

// Default returns a configuration populated with default values, matching
// what Load returns when no configuration file exists.
func Default() *Config {
	return &Config{
		Version:  SupportedVersion,
		EnvRoots: true,
		Builtin:  true,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Calling it again clears any config file pinned by a previous Load.
func Init() {
	// Config file settings
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".") // Current directory
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	// Environment variable support
	viper.SetEnvPrefix("SKILLKIT")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", SupportedVersion)
	viper.SetDefault("sources", []string{})
	viper.SetDefault("env_roots", true)
	viper.SetDefault("builtin", true)
}

// FileUsed returns the path of the config file the last Load read, or ""
// when defaults applied.
func FileUsed() string {
	return viper.ConfigFileUsed()
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found
// (when path is empty). Loaded values are validated, and a leading ~ in
// each source entry is expanded before the configuration is returned.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		// If config file not found...
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			// Real read error (parsing, permissions, etc)
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		err := errors.Wrap(errors.Join(errs...), "validating config")
		return nil, errors.Mark(err, skerrors.ErrInvalidConfig)
	}

	for i, src := range cfg.Sources {
		expanded, err := paths.ExpandHome(src)
		if err != nil {
			return nil, errors.Wrapf(err, "expanding source %q", src)
		}
		cfg.Sources[i] = expanded
	}

	return &cfg, nil
}
