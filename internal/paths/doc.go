// Package paths resolves the directories and environment variables that
// anchor a skillkit installation.
//
// All state lives under a single home directory, ~/.skillkit by default,
// overridable through SKILLKIT_HOME:
//
//	<home>/
//	  config.yaml    main configuration
//	  skills/        user-authored skills (highest priority root)
//	  prompts/       user-authored prompts
//	  cache/repos/   cached clones of remote sources
//
// Helpers are pure joins where possible; only [SkillkitHome], [UserHome]
// and [EnvRoots] touch the process environment, and only the command
// layer calls them. Library code receives resolved paths.
//
// # XDG Base Directory Compliance
//
// [ConfigHome] wraps github.com/adrg/xdg for platform-correct config
// locations when skillkit integrates with host tooling.
package paths
