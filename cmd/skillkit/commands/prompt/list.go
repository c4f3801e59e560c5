package prompt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/library"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/render"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available prompts",
	Long: `List every prompt served from the configured roots.

The NAME column is the name commands and MCP prompts address the prompt
by: the markdown filename without its extension. The ARGUMENTS column
shows each prompt's parameters, with optional ones in brackets.`,
	Example: `  # List all prompts
  skillkit prompt list

  # Output as JSON
  skillkit prompt list --json

  See Also:
    skillkit prompt show    - Show prompt details
    skillkit prompt render  - Render a prompt with arguments`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// infoJSON represents a prompt in JSON output format.
type infoJSON struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name,omitempty"`
	Description string      `json:"description"`
	Arguments   render.Spec `json:"arguments,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	lib, err := cli.OpenLibrary(flags.ConfigPath(), logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}
	return listPrompts(cmd.OutOrStdout(), lib)
}

// listPrompts writes the listing, split out so tests can inject a writer.
func listPrompts(w io.Writer, lib *library.Library) error {
	infos := lib.ListPrompts()

	if listJSON {
		return outputListJSON(w, infos)
	}
	return outputListTabular(w, infos)
}

// outputListJSON outputs prompts in JSON format.
func outputListJSON(w io.Writer, infos []library.PromptInfo) error {
	output := make([]infoJSON, len(infos))
	for i, info := range infos {
		output[i] = infoJSON{
			Name:        info.Key,
			Description: info.Description,
			Arguments:   info.Arguments,
		}
		if info.Name != info.Key {
			output[i].DisplayName = info.Name
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(output), "encoding output")
}

// outputListTabular outputs prompts in tabular format.
func outputListTabular(w io.Writer, infos []library.PromptInfo) error {
	if len(infos) == 0 {
		fmt.Fprintln(w, "No prompts available.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Add sources to config.yaml, then run:")
		fmt.Fprintln(w, "  skillkit source sync")
		return nil
	}

	bold := color.New(color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\n", bold("NAME"), bold("ARGUMENTS"), bold("DESCRIPTION"))
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			green(info.Key),
			formatArguments(info.Arguments),
			truncate(info.Description, 60))
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}

// formatArguments renders a spec as a compact comma-separated list, with
// optional parameters in brackets.
func formatArguments(spec render.Spec) string {
	if len(spec) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(spec))
	for _, f := range render.BuildSchema(spec).Fields {
		if f.Required {
			parts = append(parts, f.Name)
		} else {
			parts = append(parts, "["+f.Name+"]")
		}
	}
	return strings.Join(parts, ", ")
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
