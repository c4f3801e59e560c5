// Package cli assembles the pieces every command shares: loading the
// configuration, turning sources into an ordered list of document roots
// and indexing the library over them.
//
// Composition never touches the network. A remote source contributes the
// cache directory it materializes into; until skillkit source sync runs,
// that directory does not exist and the source contributes no documents.
package cli

import (
	"log/slog"

	"github.com/thoreinstein/skillkit/internal/builtin"
	"github.com/thoreinstein/skillkit/internal/config"
	"github.com/thoreinstein/skillkit/internal/doctor"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/library"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/paths"
	"github.com/thoreinstein/skillkit/internal/repocache"
	"github.com/thoreinstein/skillkit/internal/source"
)

// Composition holds the resolved pieces of one invocation. Roots are in
// priority order: configured sources first, then environment roots when
// enabled. The builtin root is appended by Library, not listed here,
// because it is embedded rather than on disk.
type Composition struct {
	// Config is the loaded configuration.
	Config *config.Config

	// Home is the skillkit home directory, or "" when it could not be
	// resolved.
	Home string

	// Cache materializes remote sources. Nil when Home is unresolved.
	Cache *repocache.Cache

	// DiskRoots are the on-disk document roots in priority order, each
	// labeled with its origin for listings and diagnostics.
	DiskRoots []doctor.Root
}

// Compose loads the configuration from configPath (or the default search
// locations when empty) and assembles the document roots. A nil logger
// discards composition diagnostics.
func Compose(configPath string, logger *slog.Logger) (*Composition, error) {
	if logger == nil {
		logger = logging.NewDiscard()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	comp := &Composition{Config: cfg}

	home, err := paths.SkillkitHome()
	if err != nil {
		logger.Warn("skillkit home unresolved, remote sources unavailable", "error", err)
	} else {
		comp.Home = home
		comp.Cache = repocache.New(paths.ReposCacheDir(home), logger)
	}

	for _, raw := range cfg.Sources {
		d := source.Classify(raw)
		switch d.Kind {
		case source.KindRemote:
			if comp.Cache == nil {
				logger.Warn("skipping remote source, no cache available",
					"source", doctor.MaskURL(raw))
				continue
			}
			comp.DiskRoots = append(comp.DiskRoots, doctor.Root{
				Path:   comp.Cache.Dir(d.URL, d.Ref),
				Origin: doctor.OriginCache,
			})
		default:
			comp.DiskRoots = append(comp.DiskRoots, doctor.Root{
				Path:   d.Path,
				Origin: doctor.OriginSource,
			})
		}
	}

	if cfg.EnvRoots {
		for _, p := range paths.EnvRoots() {
			comp.DiskRoots = append(comp.DiskRoots, doctor.Root{
				Path:   p,
				Origin: doctor.OriginEnv,
			})
		}
	}

	return comp, nil
}

// Library indexes the composed roots, appending the embedded builtin root
// at lowest priority when the configuration enables it.
func (c *Composition) Library(logger *slog.Logger) *library.Library {
	roots := make([]library.Root, 0, len(c.DiskRoots)+1)
	for _, r := range c.DiskRoots {
		roots = append(roots, library.DirRoot(r.Path))
	}
	if c.Config.Builtin {
		roots = append(roots, library.Root{Path: builtin.RootName, FS: builtin.FS()})
	}
	return library.New(roots, logger)
}

// OpenLibrary is the common read path: Compose followed by Library.
func OpenLibrary(configPath string, logger *slog.Logger) (*library.Library, error) {
	comp, err := Compose(configPath, logger)
	if err != nil {
		return nil, errors.Wrap(err, "loading configuration")
	}
	return comp.Library(logger), nil
}
