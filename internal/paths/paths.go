package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Environment variables recognized by skillkit. The command layer reads
// them once at startup and threads the resolved values into constructors;
// library code never consults the environment directly.
const (
	// EnvHome overrides the skillkit home directory (default ~/.skillkit).
	EnvHome = "SKILLKIT_HOME"

	// EnvRootsVar holds additional document roots as a list in the
	// platform's path-list format (colon-separated on Unix).
	EnvRootsVar = "SKILLKIT_SKILLS_PATH"
)

// homeDirName is the dot-directory under the user's home used when
// EnvHome is not set.
const homeDirName = ".skillkit"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// UserHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func UserHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// SkillkitHome resolves the skillkit home directory: the EnvHome
// environment variable when set, otherwise ~/.skillkit.
func SkillkitHome() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return ExpandHome(dir)
	}
	home, err := UserHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeDirName), nil
}

// CacheDir returns the cache directory under the given skillkit home.
func CacheDir(home string) string {
	return filepath.Join(home, "cache")
}

// ReposCacheDir returns the directory for cached repository clones.
// Returns: <home>/cache/repos/
func ReposCacheDir(home string) string {
	return filepath.Join(CacheDir(home), "repos")
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// EnvRoots returns the document roots listed in EnvRootsVar, in order,
// with empty elements dropped and a leading ~ expanded. Returns nil
// when the variable is unset or empty.
func EnvRoots() []string {
	raw := os.Getenv(EnvRootsVar)
	if raw == "" {
		return nil
	}
	var roots []string
	for _, p := range filepath.SplitList(raw) {
		if p == "" {
			continue
		}
		if expanded, err := ExpandHome(p); err == nil {
			p = expanded
		}
		roots = append(roots, p)
	}
	return roots
}

// ExpandHome replaces a leading ~ with the user's home directory.
// Paths without a leading ~ are returned unchanged, as is the
// unsupported ~user form.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}
	home, err := UserHome()
	if err != nil {
		return "", err
	}
	if len(path) == 1 {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
