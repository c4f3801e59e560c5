package skill

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/library"
	"github.com/thoreinstein/skillkit/internal/logging"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available skills",
	Long: `List every skill served from the configured roots.

The NAME column is the name commands and MCP tools address the skill by:
the skill's directory name. When a skill declares a different display name
in its frontmatter, the JSON output carries it as display_name.`,
	Example: `  # List all skills
  skillkit skill list

  # Output as JSON
  skillkit skill list --json

  See Also:
    skillkit skill show    - Show skill details
    skillkit source sync   - Refresh remote sources`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// infoJSON represents a skill in JSON output format.
type infoJSON struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description"`
}

func runList(cmd *cobra.Command, _ []string) error {
	lib, err := cli.OpenLibrary(flags.ConfigPath(), logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}
	return listSkills(cmd.OutOrStdout(), lib)
}

// listSkills writes the listing, split out so tests can inject a writer.
func listSkills(w io.Writer, lib *library.Library) error {
	infos := lib.ListSkills()

	if listJSON {
		return outputListJSON(w, infos)
	}
	return outputListTabular(w, infos)
}

// outputListJSON outputs skills in JSON format.
func outputListJSON(w io.Writer, infos []library.SkillInfo) error {
	output := make([]infoJSON, len(infos))
	for i, info := range infos {
		output[i] = infoJSON{
			Name:        info.Key,
			Description: info.Description,
		}
		if info.Name != info.Key {
			output[i].DisplayName = info.Name
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(output), "encoding output")
}

// outputListTabular outputs skills in tabular format.
func outputListTabular(w io.Writer, infos []library.SkillInfo) error {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No skills available.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add sources to config.yaml, then run:")
		fmt.Fprintln(w, "  skillkit source sync")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", bold("NAME"), bold("DESCRIPTION"))
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\n", green(info.Key), truncate(info.Description, 80))
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
