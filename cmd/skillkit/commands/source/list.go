package source

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/doctor"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/source"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured sources",
	Long: `List the configured sources in priority order.

The ROOT column is the directory the source serves documents from: the
source itself for local paths, the cache directory for remote
repositories. Credentials embedded in URLs are masked.`,
	Example: `  # List all sources
  skillkit source list

  # Output as JSON
  skillkit source list --json

  See Also:
    skillkit source sync - Synchronize remote sources
    skillkit doctor      - Check source and root health`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// sourceJSON represents a source in JSON output format.
type sourceJSON struct {
	Source string `json:"source"`
	Kind   string `json:"kind"`
	Ref    string `json:"ref,omitempty"`
	Root   string `json:"root,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	comp, err := cli.Compose(flags.ConfigPath(), logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}
	return listSources(cmd.OutOrStdout(), comp)
}

// listSources writes the listing, split out so tests can inject a writer.
func listSources(w io.Writer, comp *cli.Composition) error {
	rows := sourceRows(comp)

	if listJSON {
		return outputListJSON(w, rows)
	}
	return outputListTabular(w, rows)
}

// sourceRows classifies each configured source into a display row.
func sourceRows(comp *cli.Composition) []sourceJSON {
	rows := make([]sourceJSON, 0, len(comp.Config.Sources))
	for _, raw := range comp.Config.Sources {
		d := source.Classify(raw)
		row := sourceJSON{Source: doctor.MaskURL(raw), Kind: string(d.Kind)}
		switch d.Kind {
		case source.KindRemote:
			row.Ref = d.Ref
			if comp.Cache != nil {
				row.Root = comp.Cache.Dir(d.URL, d.Ref)
			}
		default:
			row.Root = d.Path
		}
		rows = append(rows, row)
	}
	return rows
}

// outputListJSON outputs sources in JSON format.
func outputListJSON(w io.Writer, rows []sourceJSON) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(rows), "encoding output")
}

// outputListTabular outputs sources in tabular format.
func outputListTabular(w io.Writer, rows []sourceJSON) error {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No sources configured.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add sources to config.yaml:")
		fmt.Fprintln(w, "  sources:")
		fmt.Fprintln(w, "    - ~/my-skills")
		fmt.Fprintln(w, "    - git@github.com:org/skills.git#main")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", bold("SOURCE"), bold("KIND"), bold("REF"), bold("ROOT"))
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Source, row.Kind, orDash(row.Ref), orDash(row.Root))
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}

// orDash substitutes a dash for empty table cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
