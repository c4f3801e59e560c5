package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thoreinstein/skillkit/internal/git"
	"github.com/thoreinstein/skillkit/internal/source"
)

// SourcesCheck classifies each configured source and inspects what can be
// inspected without touching the network: local paths are checked for
// existence, remote URLs for git-safe syntax.
type SourcesCheck struct {
	sources []string
}

var _ Check = (*SourcesCheck)(nil)

// NewSourcesCheck creates a check over the configured raw source strings.
func NewSourcesCheck(sources []string) *SourcesCheck {
	return &SourcesCheck{sources: sources}
}

// Name returns the unique identifier for this check.
func (c *SourcesCheck) Name() string {
	return "source-classification"
}

// Category returns the grouping for this check.
func (c *SourcesCheck) Category() string {
	return "sources"
}

// Run executes the source classification check.
func (c *SourcesCheck) Run(_ context.Context) *CheckResult {
	if len(c.sources) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no sources configured",
			FixHint:  "add sources to config.yaml or set SKILLKIT_SKILLS_PATH",
		}
	}

	var entries []map[string]any
	var local, remote, warnings, errorCount int

	for _, raw := range c.sources {
		desc := source.Classify(raw)
		entry := map[string]any{
			"source": MaskURL(raw),
			"kind":   string(desc.Kind),
		}

		switch desc.Kind {
		case source.KindLocal:
			local++
			info, err := os.Stat(desc.Path)
			switch {
			case os.IsNotExist(err):
				warnings++
				entry["problem"] = "directory does not exist"
			case err != nil:
				warnings++
				entry["problem"] = fmt.Sprintf("cannot stat: %v", err)
			case !info.IsDir():
				warnings++
				entry["problem"] = "not a directory"
			}
		case source.KindRemote:
			remote++
			entry["url"] = MaskURL(desc.URL)
			if desc.Ref != "" {
				entry["ref"] = desc.Ref
			}
			if err := git.ValidateURL(desc.URL); err != nil {
				errorCount++
				entry["problem"] = fmt.Sprintf("invalid repository URL: %v", err)
			}
		}

		entries = append(entries, entry)
	}

	details := map[string]any{
		"sources": entries,
		"local":   local,
		"remote":  remote,
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  details,
	}

	switch {
	case errorCount > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d source(s) cannot be synchronized", errorCount)
		result.FixHint = "fix the repository URLs in config.yaml"
	case warnings > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d local source(s) are missing and contribute no documents", warnings)
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d source(s) classified (%d local, %d remote)", len(c.sources), local, remote)
	}

	return result
}

// Root origins as reported by the roots check.
const (
	// OriginSource is a local source used as a root directly.
	OriginSource = "local source"

	// OriginCache is the cache directory a remote source materializes into.
	OriginCache = "cached repository"

	// OriginEnv is a root taken from SKILLKIT_SKILLS_PATH.
	OriginEnv = "environment"
)

// Root is one candidate document root handed to the roots check, labeled
// with where it came from.
type Root struct {
	Path   string
	Origin string
}

// RootsCheck verifies the document roots exist and carry documents. Cached
// repository roots that are missing point at sources that have not been
// synchronized yet.
type RootsCheck struct {
	roots   []Root
	builtin bool
}

var _ Check = (*RootsCheck)(nil)

// NewRootsCheck creates a check over the candidate roots in priority order.
// builtin reports whether the embedded fallback root is enabled.
func NewRootsCheck(roots []Root, builtin bool) *RootsCheck {
	return &RootsCheck{roots: roots, builtin: builtin}
}

// Name returns the unique identifier for this check.
func (c *RootsCheck) Name() string {
	return "document-roots"
}

// Category returns the grouping for this check.
func (c *RootsCheck) Category() string {
	return "roots"
}

// Run executes the roots check.
func (c *RootsCheck) Run(_ context.Context) *CheckResult {
	var entries []map[string]any
	var available, unsynced, missing int

	for _, root := range c.roots {
		entry := map[string]any{
			"path":   root.Path,
			"origin": root.Origin,
		}

		info, err := os.Stat(root.Path)
		switch {
		case os.IsNotExist(err) && root.Origin == OriginCache:
			unsynced++
			entry["problem"] = "not synchronized yet"
		case os.IsNotExist(err):
			missing++
			entry["problem"] = "does not exist"
		case err != nil:
			missing++
			entry["problem"] = fmt.Sprintf("cannot stat: %v", err)
		case !info.IsDir():
			missing++
			entry["problem"] = "not a directory"
		default:
			available++
			entry["has_skills"] = dirExists(filepath.Join(root.Path, "skills"))
			entry["has_prompts"] = dirExists(filepath.Join(root.Path, "prompts"))
		}

		entries = append(entries, entry)
	}

	details := map[string]any{
		"roots":   entries,
		"builtin": c.builtin,
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  details,
	}

	switch {
	case unsynced > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d remote source(s) not synchronized", unsynced)
		result.FixHint = "run skillkit source sync"
	case missing > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d root(s) are missing", missing)
	case available == 0 && !c.builtin:
		result.Status = SeverityWarning
		result.Message = "no document roots available and the builtin root is disabled"
	case available == 0:
		result.Status = SeverityInfo
		result.Message = "no roots configured, only builtin documents are served"
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d root(s) available", available)
	}

	return result
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
