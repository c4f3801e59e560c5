// Package builtin embeds the default document root that ships with the
// binary. It is the lowest-priority root: a skill or prompt with the same
// name in any configured or environment root shadows the builtin copy.
package builtin

import (
	"embed"
	"io/fs"
)

// RootName is the display name used for the embedded root in listings and
// diagnostics, where a filesystem path would be misleading.
const RootName = "builtin"

//go:embed root
var rootFS embed.FS

// FS returns the embedded document root with skills/ and prompts/ at its
// top level.
func FS() fs.FS {
	sub, err := fs.Sub(rootFS, "root")
	if err != nil {
		panic(err)
	}
	return sub
}
