package source

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Materializer turns a remote repository into a local checkout and
// returns its path. Implemented by repocache.Cache.
type Materializer interface {
	Materialize(ctx context.Context, url, ref string) (string, error)
}

// Resolver resolves configured source strings to local root paths.
type Resolver struct {
	cache  Materializer
	logger *slog.Logger
}

// NewResolver creates a Resolver that materializes remote sources through
// cache. A nil logger discards output.
func NewResolver(cache Materializer, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{cache: cache, logger: logger}
}

// ResolveAll resolves sources in input order, one at a time. Local
// sources pass through unchanged, without an existence check; a root
// that does not exist simply contributes no documents downstream.
// Remote sources are replaced by their materialized cache path.
//
// The output has exactly one path per input source, in input order,
// because position encodes priority. A failure materializing any remote
// aborts the whole resolution; a partial list would corrupt priority
// ordering.
func (r *Resolver) ResolveAll(ctx context.Context, sources []string) ([]string, error) {
	roots := make([]string, 0, len(sources))
	for _, raw := range sources {
		d := Classify(raw)
		switch d.Kind {
		case KindRemote:
			path, err := r.cache.Materialize(ctx, d.URL, d.Ref)
			if err != nil {
				return nil, errors.Wrapf(err, "resolving source %q", raw)
			}
			r.logger.Debug("resolved remote source", "source", raw, "path", path)
			roots = append(roots, path)
		default:
			r.logger.Debug("resolved local source", "source", raw)
			roots = append(roots, d.Path)
		}
	}
	return roots, nil
}
