package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/doctor"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/repocache"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cache entries",
	Long: `List every repository checkout in the cache.

The DIRECTORY column is the entry's name under <home>/cache/repos.
Entries without a synchronization record, such as an interrupted clone,
are not listed. Credentials embedded in URLs are masked.`,
	Example: `  # List all cache entries
  skillkit cache list

  # Output as JSON
  skillkit cache list --json

  See Also:
    skillkit source sync - Synchronize remote sources
    skillkit source list - Map sources to their roots`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// entryJSON represents a cache entry in JSON output format.
type entryJSON struct {
	Directory string    `json:"directory"`
	URL       string    `json:"url"`
	Ref       string    `json:"ref,omitempty"`
	SyncedAt  time.Time `json:"synced_at"`
}

func runList(cmd *cobra.Command, _ []string) error {
	comp, err := cli.Compose(flags.ConfigPath(), logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}
	if comp.Cache == nil {
		return errors.NewSystemError(
			errors.New("cannot locate the cache, skillkit home is unresolved"),
			"Set SKILLKIT_HOME or HOME to a writable directory")
	}
	return listEntries(cmd.OutOrStdout(), comp.Cache)
}

// listEntries writes the listing, split out so tests can inject a writer.
func listEntries(w io.Writer, cache *repocache.Cache) error {
	entries, err := cache.Entries()
	if err != nil {
		return errors.Wrap(err, "reading cache")
	}

	if listJSON {
		return outputListJSON(w, entries)
	}
	return outputListTabular(w, entries)
}

// outputListJSON outputs cache entries in JSON format.
func outputListJSON(w io.Writer, entries []repocache.Entry) error {
	output := make([]entryJSON, len(entries))
	for i, e := range entries {
		output[i] = entryJSON{
			Directory: e.Dir,
			URL:       doctor.MaskURL(e.URL),
			Ref:       e.Ref,
			SyncedAt:  e.SyncedAt,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(output), "encoding output")
}

// outputListTabular outputs cache entries in tabular format.
func outputListTabular(w io.Writer, entries []repocache.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Cache is empty.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Materialize remote sources with:")
		fmt.Fprintln(w, "  skillkit source sync")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		bold("DIRECTORY"), bold("URL"), bold("REF"), bold("SYNCED"))
	for _, e := range entries {
		ref := e.Ref
		if ref == "" {
			ref = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			filepath.Base(e.Dir),
			doctor.MaskURL(e.URL),
			ref,
			gray(formatRelativeTime(e.SyncedAt)))
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}

// formatRelativeTime formats a time.Time as a human-readable relative time.
func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}

	d := time.Since(t)

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		mins := int(d.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case d < 24*time.Hour:
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case d < 7*24*time.Hour:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	case d < 30*24*time.Hour:
		weeks := int(d.Hours() / (24 * 7))
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	case d < 365*24*time.Hour:
		months := int(d.Hours() / (24 * 30))
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	default:
		years := int(d.Hours() / (24 * 365))
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}
