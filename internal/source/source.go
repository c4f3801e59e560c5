// Package source classifies configured source strings and resolves them
// into the ordered list of local document roots.
//
// A source is either a local directory path or a remote git repository.
// Classification is a pure function over the string: it never touches the
// network or filesystem, so misconfigured sources surface downstream (a
// missing local directory simply contributes no documents; a bad remote
// fails when materialized).
package source

import (
	"strings"
)

// Kind discriminates between local paths and remote repositories.
type Kind string

const (
	// KindLocal is a directory path used as a document root directly.
	KindLocal Kind = "local"
	// KindRemote is a git repository, materialized into the cache before use.
	KindRemote Kind = "remote"
)

// Descriptor is one classified source.
type Descriptor struct {
	// Raw is the source string as configured.
	Raw string
	// Kind reports how the source will be resolved.
	Kind Kind
	// Path is the directory path. Set only for local sources.
	Path string
	// URL is the repository URL with any #fragment stripped. Set only for
	// remote sources.
	URL string
	// Ref is the branch, tag or commit named after the first '#' in the
	// source. Empty means the repository's default branch.
	Ref string
}

// Classify applies the source rules in order, first match wins:
//
//  1. a "git@" prefix is a remote;
//  2. an "https://" prefix whose URL part (before any '#') ends in ".git"
//     is a remote;
//  3. anything else is a local path.
//
// The heuristic favors precision: ordinary https documentation links do
// not classify as repositories.
func Classify(raw string) Descriptor {
	if strings.HasPrefix(raw, "git@") {
		url, ref := splitRef(raw)
		return Descriptor{Raw: raw, Kind: KindRemote, URL: url, Ref: ref}
	}
	if strings.HasPrefix(raw, "https://") {
		url, ref := splitRef(raw)
		if strings.HasSuffix(url, ".git") {
			return Descriptor{Raw: raw, Kind: KindRemote, URL: url, Ref: ref}
		}
	}
	return Descriptor{Raw: raw, Kind: KindLocal, Path: raw}
}

// splitRef splits a remote source at the first '#'. Everything before is
// the URL, everything after is the ref. No further validation happens
// here; a bogus ref surfaces as a git failure at materialization time.
func splitRef(raw string) (url, ref string) {
	if i := strings.Index(raw, "#"); i >= 0 {
		return raw[:i], raw[i+1:]
	}
	return raw, ""
}
