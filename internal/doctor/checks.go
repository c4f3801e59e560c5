package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thoreinstein/skillkit/internal/config"
	skerrors "github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/git"
	"github.com/thoreinstein/skillkit/internal/paths"
)

// GitCheck verifies the git binary is installed and runnable. Remote
// sources cannot be synchronized without it.
type GitCheck struct{}

var _ Check = (*GitCheck)(nil)

// NewGitCheck creates a new git availability check.
func NewGitCheck() *GitCheck {
	return &GitCheck{}
}

// Name returns the unique identifier for this check.
func (c *GitCheck) Name() string {
	return "git-binary"
}

// Category returns the grouping for this check.
func (c *GitCheck) Category() string {
	return "dependencies"
}

// Run executes the git availability check.
func (c *GitCheck) Run(ctx context.Context) *CheckResult {
	path, err := git.LookPath()
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "git is not installed; remote sources cannot be synchronized",
			FixHint:  "install git and ensure it is on your PATH",
		}
	}

	version, err := git.Version(ctx)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("git is on PATH but not runnable: %v", err),
			Details:  map[string]any{"path": path},
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "git " + version,
		Details: map[string]any{
			"path":    path,
			"version": version,
		},
	}
}

// HomeCheck verifies the skillkit home directory exists, is a directory
// and is writable. A missing home is fixable: Fix creates it along with
// the repository cache directory.
type HomeCheck struct {
	home string
	dirFixer
}

var _ Check = (*HomeCheck)(nil)
var _ Fixer = (*HomeCheck)(nil)

// NewHomeCheck creates a check for the given skillkit home directory.
func NewHomeCheck(home string) *HomeCheck {
	return &HomeCheck{home: home}
}

// Name returns the unique identifier for this check.
func (c *HomeCheck) Name() string {
	return "home-directory"
}

// Category returns the grouping for this check.
func (c *HomeCheck) Category() string {
	return "filesystem"
}

// Run executes the home directory check.
func (c *HomeCheck) Run(_ context.Context) *CheckResult {
	if c.home == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "skillkit home could not be resolved",
			FixHint:  "set " + paths.EnvHome + " or ensure your home directory is available",
		}
	}

	reposDir := paths.ReposCacheDir(c.home)

	info, err := os.Stat(c.home)
	if os.IsNotExist(err) {
		c.setMissing([]string{c.home, reposDir})
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("skillkit home %s does not exist", c.home),
			Details:  map[string]any{"path": c.home},
			Fixable:  true,
			FixHint:  "run skillkit doctor --fix, or skillkit source sync creates it",
		}
	}
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot stat skillkit home: %v", err),
			Details:  map[string]any{"path": c.home},
		}
	}
	if !info.IsDir() {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("skillkit home %s is not a directory", c.home),
			Details:  map[string]any{"path": c.home},
		}
	}

	if !isDirWritable(c.home) {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("skillkit home %s is not writable; source sync will fail", c.home),
			Details: map[string]any{
				"path":        c.home,
				"permissions": fmt.Sprintf("%04o", info.Mode().Perm()),
			},
			FixHint: "chmod u+w " + c.home,
		}
	}

	details := map[string]any{"path": c.home}
	if _, err := os.Stat(reposDir); os.IsNotExist(err) {
		c.setMissing([]string{reposDir})
		details["cache_repos_exists"] = false
	} else {
		details["cache_repos"] = reposDir
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "skillkit home is writable",
		Details:  details,
	}
}

// isDirWritable tests writability by creating and removing a temp file.
func isDirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".skillkit-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// ConfigCheck verifies the configuration file loads and validates.
type ConfigCheck struct {
	// path is the explicitly requested config file; empty means the
	// default search locations.
	path string
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check for the config file at path, or the
// default locations when path is empty.
func NewConfigCheck(path string) *ConfigCheck {
	return &ConfigCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run executes the configuration check.
func (c *ConfigCheck) Run(_ context.Context) *CheckResult {
	cfg, err := config.Load(c.path)
	if err != nil {
		result := &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Details:  map[string]any{"file": config.FileUsed()},
		}
		if errors.Is(err, skerrors.ErrInvalidConfig) {
			result.Message = fmt.Sprintf("configuration is invalid: %v", err)
			result.FixHint = "edit the config file, or remove it to fall back to defaults"
		} else {
			result.Message = fmt.Sprintf("cannot read configuration: %v", err)
		}
		return result
	}

	used := config.FileUsed()
	if used == "" {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no config file found, defaults apply",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  "configuration loaded from " + used,
		Details: map[string]any{
			"file":      used,
			"sources":   len(cfg.Sources),
			"env_roots": cfg.EnvRoots,
			"builtin":   cfg.Builtin,
		},
	}
}

// EnvironmentCheck reports skillkit-relevant environment variables with
// credential values masked, so the output is safe to share.
type EnvironmentCheck struct {
	vars []string
}

var _ Check = (*EnvironmentCheck)(nil)

// NewEnvironmentCheck creates an environment report over the given variable
// names. With no names it covers the skillkit variables plus the git
// authentication variables that commonly affect sync.
func NewEnvironmentCheck(vars ...string) *EnvironmentCheck {
	if len(vars) == 0 {
		vars = []string{
			paths.EnvHome,
			paths.EnvRootsVar,
			"GITHUB_TOKEN",
			"GIT_SSH_COMMAND",
		}
	}
	return &EnvironmentCheck{vars: vars}
}

// Name returns the unique identifier for this check.
func (c *EnvironmentCheck) Name() string {
	return "environment"
}

// Category returns the grouping for this check.
func (c *EnvironmentCheck) Category() string {
	return "environment"
}

// Run executes the environment report.
func (c *EnvironmentCheck) Run(_ context.Context) *CheckResult {
	env := make(map[string]string)
	for _, name := range c.vars {
		if value, ok := os.LookupEnv(name); ok {
			env[name] = value
		}
	}

	if len(env) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no skillkit environment overrides set",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityInfo,
		Message:  fmt.Sprintf("%d environment variable(s) set", len(env)),
		Details:  map[string]any{"variables": MaskSecrets(env)},
	}
}
