// Package flags provides shared flag accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (skill, prompt, source, cache).
package flags

// configPath holds the value of the --config flag.
var configPath string

// ConfigPath returns the current value of the --config flag.
// This is used by subcommands to locate the configuration file.
func ConfigPath() string {
	return configPath
}

// SetConfigPath stores the --config flag value. The root command calls
// this after flag parsing.
func SetConfigPath(path string) {
	configPath = path
}
