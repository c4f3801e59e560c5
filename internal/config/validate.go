package config

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field names a config
	// format this build does not read.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidSource indicates a source entry is malformed.
	ErrInvalidSource = errors.New("invalid source")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != SupportedVersion {
		errs = append(errs, &VersionError{
			Version: cfg.Version,
			Err:     ErrUnsupportedVersion,
		})
	}

	for i, src := range cfg.Sources {
		if err := validateSource(src); err != nil {
			errs = append(errs, &SourceError{
				Index:  i,
				Source: src,
				Err:    err,
			})
		}
	}

	return errs
}

// validateSource checks that a raw source string is well-formed enough to
// hand to the source classifier. It does not check that a local path exists
// or that a git URL is reachable.
func validateSource(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return ErrInvalidSource
	}

	// Null bytes are never valid in paths or URLs.
	if strings.ContainsRune(raw, '\x00') {
		return ErrInvalidSource
	}

	return nil
}

// VersionError represents an unsupported config format version.
type VersionError struct {
	Version int
	Err     error
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: %d", e.Err.Error(), e.Version)
}

func (e *VersionError) Unwrap() error {
	return e.Err
}

// SourceError represents an error for a specific source entry.
type SourceError struct {
	Index  int
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("sources[%d]: %s: %q", e.Index, e.Err.Error(), e.Source)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
