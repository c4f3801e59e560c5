package prompt

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/library"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/render"
)

const defaultTemplatePreviewLength = 200

var (
	showJSON bool
	showFull bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showFull, "full", false, "Show complete template (default truncated)")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Display detailed prompt information",
	Long: `Display detailed information about a prompt.

Shows metadata, the argument specification, and a template preview with
placeholders left as written. When the name is omitted and stdin is a
terminal, an interactive picker opens over the available prompts.`,
	Example: `  # Show details for the 'summarize' prompt
  skillkit prompt show summarize

  # Pick a prompt interactively
  skillkit prompt show

  # Show the full template
  skillkit prompt show summarize --full

  See Also:
    skillkit prompt list    - List available prompts
    skillkit prompt render  - Render a prompt with arguments`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

// showDetail holds the unified prompt information for display.
type showDetail struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name,omitempty"`
	Description string      `json:"description,omitempty"`
	Arguments   render.Spec `json:"arguments,omitempty"`
	Template    string      `json:"template,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	lib, err := cli.OpenLibrary(flags.ConfigPath(), logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}

	name, err := resolveShowName(args, lib)
	if err != nil || name == "" {
		return err
	}

	detail, err := buildDetail(lib, name)
	if err != nil {
		return err
	}

	if showJSON {
		return outputShowJSON(cmd.OutOrStdout(), detail)
	}
	return outputShowText(cmd.OutOrStdout(), detail)
}

// resolveShowName picks the prompt to show: the positional argument when
// given, the interactive picker when stdin is a terminal, an error
// otherwise. An aborted picker returns "" with no error.
func resolveShowName(args []string, lib *library.Library) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !logging.IsTTY(os.Stdin) {
		return "", errors.NewUserError(
			errors.New("prompt name required"),
			"Run 'skillkit prompt list' to see what is available")
	}
	return pickPrompt(lib)
}

// buildDetail assembles everything show displays for one prompt.
func buildDetail(lib *library.Library, name string) (*showDetail, error) {
	body, err := lib.GetPromptBody(name)
	if err != nil {
		return nil, err
	}
	detail := &showDetail{Name: name, Template: strings.TrimSpace(body)}

	for _, info := range lib.ListPrompts() {
		if info.Key != name {
			continue
		}
		if info.Name != name {
			detail.DisplayName = info.Name
		}
		detail.Description = info.Description
		detail.Arguments = info.Arguments
		break
	}

	return detail, nil
}

func outputShowJSON(w io.Writer, detail *showDetail) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(detail), "encoding JSON")
}

func outputShowText(w io.Writer, detail *showDetail) error {
	fmt.Fprintf(w, "Prompt: %s\n", detail.Name)
	if detail.DisplayName != "" {
		fmt.Fprintf(w, "Display Name: %s\n", detail.DisplayName)
	}
	fmt.Fprintf(w, "Description: %s\n", detail.Description)

	if len(detail.Arguments) > 0 {
		fmt.Fprintln(w, "\nArguments:")
		for _, field := range render.BuildSchema(detail.Arguments).Fields {
			fmt.Fprintf(w, "  - %s\n", formatField(field))
		}
	}

	if detail.Template != "" {
		template := detail.Template
		truncated := false
		if !showFull && len(template) > defaultTemplatePreviewLength {
			template = template[:defaultTemplatePreviewLength]
			truncated = true
		}
		heading := "Template:"
		if truncated {
			heading = "Template Preview:"
		}
		fmt.Fprintf(w, "\n%s\n", heading)
		fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(template, "\n", "\n  "))
		if truncated {
			fmt.Fprintln(w, "  [truncated, use --full for complete output]")
		}
	}

	return nil
}

// formatField renders one argument line: name, then type and
// required/default status, then the description when one exists.
func formatField(f render.Field) string {
	var sb strings.Builder
	sb.WriteString(f.Name)
	sb.WriteString(" (")
	sb.WriteString(f.Type)
	switch {
	case f.Required:
		sb.WriteString(", required")
	case f.Default != nil:
		sb.WriteString(", default ")
		sb.WriteString(render.Stringify(f.Default))
	default:
		sb.WriteString(", optional")
	}
	sb.WriteString(")")
	if f.Description != "" {
		sb.WriteString(": ")
		sb.WriteString(f.Description)
	}
	return sb.String()
}
