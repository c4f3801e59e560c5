// Package git wraps the git binary for cloning and synchronizing cached repositories.
package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNotInstalled indicates the git binary was not found on PATH.
var ErrNotInstalled = errors.New("git is not installed")

// scpLikePattern matches scp-style remotes such as git@github.com:user/repo.git.
var scpLikePattern = regexp.MustCompile(`^[a-zA-Z0-9._~-]+@[a-zA-Z0-9._-]+:[^\s]+\.git$`)

// allowedSchemes are the URL schemes git may be invoked with.
var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ssh":   true,
	"git":   true,
	"file":  true,
}

// LookPath returns the location of the git binary.
// Returns ErrNotInstalled when git is not on PATH.
func LookPath() (string, error) {
	path, err := exec.LookPath("git")
	if err != nil {
		return "", errors.WithHint(ErrNotInstalled, "Install git and ensure it is on your PATH")
	}
	return path, nil
}

// Version reports the installed git version, e.g. "2.43.0".
func Version(ctx context.Context) (string, error) {
	out, err := run(ctx, "", "--version")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(out, "git version "), nil
}

// ValidateURL rejects strings that cannot safely be passed to git as a
// remote. Accepted forms are scheme URLs (https, http, ssh, git, file)
// and scp-like remotes ending in .git. Anything else is an error,
// including strings that would be parsed as git options.
func ValidateURL(url string) error {
	if url == "" {
		return errors.New("empty repository URL")
	}
	if strings.HasPrefix(url, "-") {
		return errors.Newf("repository URL must not start with a dash: %s", url)
	}
	if i := strings.Index(url, "://"); i >= 0 {
		scheme := strings.ToLower(url[:i])
		if !allowedSchemes[scheme] {
			return errors.Newf("unsupported URL scheme %q", scheme)
		}
		return nil
	}
	if !scpLikePattern.MatchString(url) {
		return errors.Newf("not a recognized repository URL: %s", url)
	}
	return nil
}

// Clone clones url into dest. A full clone is performed so that any
// branch, tag or commit can be checked out afterwards. Stdin is connected
// to the caller's stdin to support interactive authentication; diagnostic
// output is captured and attached to the returned error.
func Clone(ctx context.Context, url, dest string) error {
	_, err := run(ctx, "", "clone", "--", url, dest)
	return err
}

// Fetch updates all remote refs and tags in the repository at dir.
func Fetch(ctx context.Context, dir string) error {
	_, err := run(ctx, dir, "fetch", "--all", "--tags", "--prune")
	return err
}

// Checkout checks out ref in the repository at dir. ref may be a branch,
// tag or commit; tags and commits leave the working tree detached.
func Checkout(ctx context.Context, dir, ref string) error {
	if strings.HasPrefix(ref, "-") {
		return errors.Newf("ref must not start with a dash: %s", ref)
	}
	_, err := run(ctx, dir, "checkout", ref, "--")
	return err
}

// PullFF performs a fast-forward-only pull in the repository at dir.
// Fails when the working tree is detached or the branch has diverged.
func PullFF(ctx context.Context, dir string) error {
	_, err := run(ctx, dir, "pull", "--ff-only")
	return err
}

// DefaultBranch resolves the remote's default branch name for the
// repository at dir, e.g. "main". It consults origin/HEAD, asking the
// remote to set it when missing.
func DefaultBranch(ctx context.Context, dir string) (string, error) {
	out, err := run(ctx, dir, "symbolic-ref", "--short", "refs/remotes/origin/HEAD")
	if err != nil {
		// origin/HEAD is not created by all git versions on clone.
		if _, headErr := run(ctx, dir, "remote", "set-head", "origin", "--auto"); headErr != nil {
			return "", err
		}
		out, err = run(ctx, dir, "symbolic-ref", "--short", "refs/remotes/origin/HEAD")
		if err != nil {
			return "", err
		}
	}
	return strings.TrimPrefix(out, "origin/"), nil
}

// ValidateRepo checks if dir holds a git repository by verifying
// the existence of a .git directory.
func ValidateRepo(dir string) error {
	gitDir := filepath.Join(dir, ".git")
	info, err := os.Stat(gitDir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Newf("not a git repository: %s", dir)
		}
		return errors.Wrap(err, "checking git directory")
	}
	if !info.IsDir() {
		return errors.Newf(".git is not a directory: %s", gitDir)
	}
	return nil
}

// run executes git with the given arguments, prefixed with -C dir when
// dir is non-empty. Stdout is returned trimmed; stderr is attached as
// error detail on failure so callers can surface git's own diagnostics.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	full := args
	if dir != "" {
		full = append([]string{"-C", dir}, args...)
	}
	cmd := exec.CommandContext(ctx, "git", full...)
	cmd.Stdin = os.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		err = errors.Wrapf(err, "git %s failed", args[0])
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = errors.WithDetail(err, msg)
		}
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
