package doctor

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/skillkit/internal/paths"
)

// Fixer is an optional interface that checks can implement to support
// auto-remediation. Checks that implement Fixer can fix issues they detect
// when the --fix flag is used.
type Fixer interface {
	// CanFix returns true if this check has fixable issues.
	// Must be called after Run().
	CanFix() bool

	// Fix attempts to remediate the issues found by Run().
	// Returns a FixResult per attempted fix. Must be called after Run().
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix operation.
type FixResult struct {
	// Path is the file or directory that was targeted for fixing.
	Path string

	// Fixed indicates whether the fix was successfully applied.
	Fixed bool

	// Description explains what was fixed or why it couldn't be fixed.
	Description string

	// Error contains the error if the fix failed.
	Error error
}

// dirFixer creates directories a check found missing. It is embedded in
// HomeCheck, which records the skillkit home and cache directories when
// they do not exist yet.
type dirFixer struct {
	missing []string
}

// setMissing stores the directories to create. Called by the owning check
// after running.
func (f *dirFixer) setMissing(dirs []string) {
	f.missing = dirs
}

// CanFix returns true if any missing directories were recorded.
func (f *dirFixer) CanFix() bool {
	return len(f.missing) > 0
}

// Fix creates each missing directory with private permissions.
func (f *dirFixer) Fix() []FixResult {
	results := make([]FixResult, 0, len(f.missing))
	for _, dir := range f.missing {
		result := FixResult{Path: dir}

		if err := paths.EnsureDir(dir, 0); err != nil {
			result.Description = fmt.Sprintf("failed to create directory: %v", err)
			result.Error = errors.Wrapf(err, "creating %s", dir)
		} else {
			result.Fixed = true
			result.Description = "created directory"
		}

		results = append(results, result)
	}
	return results
}
