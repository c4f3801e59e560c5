package library

import (
	"strings"

	"github.com/thoreinstein/skillkit/internal/errors"
)

// ErrNotFound marks every unknown-name lookup so callers can match the
// whole family with errors.Is. The wrapped messages enumerate the names
// that do exist, which interactive callers use to recover.
var ErrNotFound = errors.New("not found")

// notFound reports an unknown skill or prompt name. kind is the singular
// noun used in the message.
func notFound(kind, name string, known []string) error {
	if len(known) == 0 {
		return errors.Mark(
			errors.Newf("%s %q not found (no %ss are available)", kind, name, kind),
			ErrNotFound)
	}
	return errors.Mark(
		errors.Newf("%s %q not found (known %ss: %s)", kind, name, kind, strings.Join(known, ", ")),
		ErrNotFound)
}

// fileNotFound reports a missing script or reference inside an existing
// subdirectory, enumerating the files that are present.
func fileNotFound(kind, filename, skill string, present []string) error {
	if len(present) == 0 {
		return errors.Mark(
			errors.Newf("%s %q not found (skill %q has an empty %ss directory)",
				kind, filename, skill, kind),
			ErrNotFound)
	}
	return errors.Mark(
		errors.Newf("%s %q not found in skill %q (available: %s)",
			kind, filename, skill, strings.Join(present, ", ")),
		ErrNotFound)
}

// noSubdir reports that the skill has no subdirectory of the given name at
// all, which is a more specific condition than a missing file.
func noSubdir(skill, subdir string) error {
	return errors.Mark(
		errors.Newf("skill %q has no %s directory", skill, subdir),
		ErrNotFound)
}
