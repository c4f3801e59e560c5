// Package library indexes skill and prompt documents across an ordered list
// of roots and serves their content. The index maps names to locations only;
// document bytes are re-read on every access so edits show up without
// rebuilding. Roots shadow by priority: when two roots define the same name,
// the higher-priority root wins entirely.
package library

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/logging"
)

// skillFileName is the required metadata file inside each skill directory.
const skillFileName = "SKILL.md"

// Root is one directory participating in priority-ordered shadowing.
// Path is for display and diagnostics; all reads go through FS.
type Root struct {
	Path     string
	FS       fs.FS
	Writable bool
}

// DirRoot wraps an on-disk directory as a writable root. The directory does
// not have to exist; a missing root simply contributes no documents.
func DirRoot(dir string) Root {
	return Root{Path: dir, FS: os.DirFS(dir), Writable: true}
}

// entry locates one indexed document: the skill directory or prompt file,
// relative to the root it was found in.
type entry struct {
	root Root
	path string
}

// Library is the document index over an ordered root list. Construct it
// once per process with the fully resolved roots; it is read-only afterward
// and safe for concurrent use.
type Library struct {
	roots   []Root
	logger  *slog.Logger
	skills  map[string]entry
	prompts map[string]entry
}

// New builds the index for roots, ordered from highest to lowest priority.
// A nil logger discards index diagnostics.
func New(roots []Root, logger *slog.Logger) *Library {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	l := &Library{
		roots:   roots,
		logger:  logger,
		skills:  make(map[string]entry),
		prompts: make(map[string]entry),
	}
	// Insert lowest priority first so higher-priority roots overwrite on
	// name collisions.
	for i := len(roots) - 1; i >= 0; i-- {
		l.indexRoot(roots[i])
	}
	l.logger.Debug("library indexed",
		"roots", len(roots),
		"skills", len(l.skills),
		"prompts", len(l.prompts))
	return l
}

// WritableRoots returns the paths of user-writable roots in priority order,
// excluding the bundled root.
func (l *Library) WritableRoots() []string {
	var paths []string
	for _, r := range l.roots {
		if r.Writable {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

func (l *Library) indexRoot(root Root) {
	l.indexSkills(root)
	l.indexPrompts(root)
}

// indexSkills records each immediate subdirectory of skills/ that holds a
// SKILL.md. Underscore-prefixed directories are drafts and stay hidden.
func (l *Library) indexSkills(root Root) {
	entries, err := fs.ReadDir(root.FS, "skills")
	if err != nil {
		l.logSkippedDir(root, "skills", err)
		return
	}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), "_") {
			continue
		}
		dir := path.Join("skills", e.Name())
		if _, err := fs.Stat(root.FS, path.Join(dir, skillFileName)); err != nil {
			continue
		}
		l.skills[e.Name()] = entry{root: root, path: dir}
	}
}

// indexPrompts records each immediate *.md file of prompts/, keyed by the
// filename stem.
func (l *Library) indexPrompts(root Root) {
	entries, err := fs.ReadDir(root.FS, "prompts")
	if err != nil {
		l.logSkippedDir(root, "prompts", err)
		return
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "" {
			continue
		}
		l.prompts[name] = entry{root: root, path: path.Join("prompts", e.Name())}
	}
}

// logSkippedDir records why a root contributed nothing for one kind. A
// missing directory is the normal case and stays quiet.
func (l *Library) logSkippedDir(root Root, dir string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	l.logger.Warn("skipping unreadable directory",
		"root", root.Path,
		"dir", dir,
		"error", err)
}

// sortedKeys returns the map's keys in ascending lexicographic order.
func sortedKeys(m map[string]entry) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
