package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/doctor"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/source"
)

func init() {
	Cmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize remote sources",
	Long: `Synchronize every configured source.

Remote sources are cloned into the cache on first sync and updated on
subsequent ones; a source pinned to a tag or commit is checked out
detached. Local sources pass through untouched. This is the only
command that reaches the network: everything else serves from disk.

A failure aborts the run so the root list never reflects a partial
priority order.`,
	Example: `  # Synchronize all sources
  skillkit source sync

  # Watch git activity
  skillkit -vv source sync

  See Also:
    skillkit source list - List configured sources
    skillkit cache list  - Inspect the cache entries`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func runSync(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())
	comp, err := cli.Compose(flags.ConfigPath(), logger)
	if err != nil {
		return err
	}
	return syncSources(cmd.Context(), cmd.OutOrStdout(), comp, logger)
}

// syncSources resolves every configured source and prints where each one
// serves from.
func syncSources(ctx context.Context, w io.Writer, comp *cli.Composition, logger *slog.Logger) error {
	sources := comp.Config.Sources
	if len(sources) == 0 {
		fmt.Fprintln(w, "No sources configured.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add sources to config.yaml, then run this command again.")
		return nil
	}

	if comp.Cache == nil && hasRemote(sources) {
		return errors.NewSystemError(
			errors.New("cannot synchronize remote sources, skillkit home is unresolved"),
			"Set SKILLKIT_HOME or HOME to a writable directory")
	}

	roots, err := source.NewResolver(comp.Cache, logger).ResolveAll(ctx, sources)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	for i, raw := range sources {
		fmt.Fprintf(w, "%s %s\n", green("✓"), doctor.MaskURL(raw))
		fmt.Fprintf(w, "    %s\n", roots[i])
	}
	fmt.Fprintf(w, "\n%d source(s) synchronized\n", len(sources))
	return nil
}

// hasRemote reports whether any source needs the cache to resolve.
func hasRemote(sources []string) bool {
	for _, raw := range sources {
		if source.Classify(raw).Kind == source.KindRemote {
			return true
		}
	}
	return false
}
