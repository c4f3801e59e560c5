// Package repocache materializes remote git repositories into a local
// cache of working trees, one directory per (url, ref) pair.
//
// Cache directories are content-addressed: the same source always lands
// in the same directory, so repeated synchronization converges instead
// of accumulating clones. A source pinned to a tag or commit is left
// with a detached working tree; that is the expected state, not an
// error.
package repocache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/skillkit/internal/doctor"
	"github.com/thoreinstein/skillkit/internal/git"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/paths"
)

// ErrSyncFailed indicates a clone, fetch or checkout failed. The cause
// carries git's diagnostic output as error detail.
var ErrSyncFailed = errors.New("repository synchronization failed")

// dirHashLen is the length of the hex prefix naming each cache entry.
const dirHashLen = 12

// Cache materializes remote repositories under a fixed root directory,
// normally <skillkit-home>/cache/repos.
type Cache struct {
	root   string
	logger *slog.Logger
}

// New creates a Cache rooted at root. A nil logger discards output.
func New(root string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Cache{root: root, logger: logger}
}

// Root returns the cache root directory.
func (c *Cache) Root() string {
	return c.root
}

// Dir returns the deterministic directory for (url, ref). An empty ref
// is keyed as the literal "HEAD", so "repo.git" and "repo.git#HEAD"
// share an entry: both mean whatever the default branch currently is.
func (c *Cache) Dir(url, ref string) string {
	sum := sha256.Sum256([]byte(url + "#" + keyRef(ref)))
	return filepath.Join(c.root, hex.EncodeToString(sum[:])[:dirHashLen])
}

func keyRef(ref string) string {
	if ref == "" {
		return "HEAD"
	}
	return ref
}

// Materialize ensures a working tree for (url, ref) exists in the cache
// and reflects the remote as of this call. It returns the cache
// directory path.
//
// Calling Materialize twice with the same arguments converges to the
// same state; an existing entry is updated, never re-cloned. A failure
// returns git.ErrNotInstalled when git is missing, otherwise an error
// marked ErrSyncFailed. Failures never silently fall back to a stale
// cache state.
func (c *Cache) Materialize(ctx context.Context, url, ref string) (string, error) {
	// Fail fast before touching any directories.
	if _, err := git.LookPath(); err != nil {
		return "", err
	}

	dir := c.Dir(url, ref)
	logger := c.logger.With("url", doctor.MaskURL(url), "ref", keyRef(ref), "dir", dir)

	if git.ValidateRepo(dir) != nil {
		if err := c.clone(ctx, logger, url, ref, dir); err != nil {
			return "", err
		}
	} else {
		if err := c.update(ctx, logger, url, ref, dir); err != nil {
			return "", err
		}
	}

	if err := c.writeState(dir, url, ref); err != nil {
		logger.Warn("recording sync state failed", "error", err)
	}

	return dir, nil
}

// clone materializes a fresh entry. When ref is empty the clone is left
// on the remote's default branch.
func (c *Cache) clone(ctx context.Context, logger *slog.Logger, url, ref, dir string) error {
	if err := paths.EnsureDir(filepath.Dir(dir), 0o755); err != nil {
		return errors.Wrap(err, "creating cache directory")
	}

	logger.Info("cloning repository")
	if err := git.Clone(ctx, url, dir); err != nil {
		// Remove any partially-created directory
		if cleanupErr := os.RemoveAll(dir); cleanupErr != nil {
			logger.Warn("removing partial clone failed", "error", cleanupErr)
		}
		return c.syncErr(err, url)
	}

	if ref != "" {
		if err := git.Checkout(ctx, dir, ref); err != nil {
			return c.syncErr(err, url)
		}
	}
	return nil
}

// update refreshes an existing entry: fetch everything, check out the
// requested ref (or the remote's default branch), then attempt a
// fast-forward. The fast-forward fails on detached working trees, which
// is expected when ref pins a tag or commit, so that failure is
// tolerated.
func (c *Cache) update(ctx context.Context, logger *slog.Logger, url, ref, dir string) error {
	logger.Info("updating repository")
	if err := git.Fetch(ctx, dir); err != nil {
		return c.syncErr(err, url)
	}

	target := ref
	if target == "" {
		branch, err := git.DefaultBranch(ctx, dir)
		if err != nil {
			return c.syncErr(err, url)
		}
		target = branch
	}

	if err := git.Checkout(ctx, dir, target); err != nil {
		return c.syncErr(err, url)
	}

	if err := git.PullFF(ctx, dir); err != nil {
		logger.Debug("fast-forward skipped", "error", err)
	}
	return nil
}

// syncErr marks err as ErrSyncFailed so callers can classify it, keeping
// git's stderr detail intact. URLs in the message are already redacted
// by the caller's logger; the hint gives the user somewhere to start.
func (c *Cache) syncErr(err error, url string) error {
	err = errors.Mark(err, ErrSyncFailed)
	err = errors.WithDetailf(err, "repository: %s", doctor.MaskURL(url))
	return errors.WithHint(err, "Check the repository URL, your network connection and access permissions")
}
