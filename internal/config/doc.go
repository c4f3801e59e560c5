// Package config provides configuration management for the skillkit CLI.
//
// This package handles loading and validating the skillkit tool's own
// configuration file. It is distinct from the documents skillkit serves,
// which live under the configured roots.
//
// # Configuration File
//
// The default configuration file location is ~/.config/skillkit/config.yaml
// (the XDG config home on the current platform). The configuration file
// uses YAML format with the following structure:
//
//	version: 1
//	sources:
//	  - ~/team-skills
//	  - https://github.com/acme/skills.git#main
//	env_roots: true   # honor SKILLKIT_SKILLS_PATH
//	builtin: true     # include the embedded fallback root
//
// Sources are ordered: earlier entries shadow later ones when document
// names collide. A leading ~ in a source is expanded at load time.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]. An empty path searches the
// default locations and falls back to defaults when no file exists; a
// non-empty path pins that exact file and missing or malformed files
// are errors:
//
//	config.Init()
//	cfg, err := config.Load(flagConfigPath)
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// # Validation
//
// Loaded configurations are validated automatically; Load marks failures
// with skerrors.ErrInvalidConfig. [Validate] is also available directly:
//
//	errs := config.Validate(cfg)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
package config
