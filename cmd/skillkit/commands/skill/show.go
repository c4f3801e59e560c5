package skill

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
	"github.com/thoreinstein/skillkit/pkg/frontmatter"
)

const defaultInstructionsPreviewLength = 200

var (
	showJSON bool
	showFull bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showFull, "full", false, "Show complete instructions (default truncated)")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Display detailed skill information",
	Long: `Display detailed information about a skill.

Shows metadata, arguments, bundled scripts and references, and an
instructions preview. When the name is omitted and stdin is a terminal,
an interactive picker opens over the available skills.`,
	Example: `  # Show details for the 'deploy' skill
  skillkit skill show deploy

  # Pick a skill interactively
  skillkit skill show

  # Show full instructions
  skillkit skill show deploy --full

  # Show details as JSON
  skillkit skill show deploy --json

  See Also:
    skillkit skill list     - List available skills
    skillkit skill scripts  - Fetch a skill's scripts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

// showDetail holds the unified skill information for display.
type showDetail struct {
	Name         string      `json:"name"`
	DisplayName  string      `json:"display_name,omitempty"`
	Description  string      `json:"description,omitempty"`
	License      string      `json:"license,omitempty"`
	Arguments    render.Spec `json:"arguments,omitempty"`
	Scripts      []string    `json:"scripts,omitempty"`
	References   []string    `json:"references,omitempty"`
	Instructions string      `json:"instructions,omitempty"`
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

// resolveShowName picks the skill to show: the positional argument when
// given, the interactive picker when stdin is a terminal, an error
// otherwise. An aborted picker returns "" with no error.
func resolveShowName(args []string, lib *library.Library) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !logging.IsTTY(os.Stdin) {
		return "", errors.NewUserError(
			errors.New("skill name required"),
			"Run 'skillkit skill list' to see what is available")
	}
	return pickSkill(lib)
}

// buildDetail assembles everything show displays for one skill.
func buildDetail(lib *library.Library, name string) (*showDetail, error) {
	content, err := lib.GetSkillContent(name)
	if err != nil {
		return nil, err
	}

	meta, body := frontmatter.ParseMap([]byte(content))
	detail := &showDetail{Name: name, Instructions: strings.TrimSpace(body)}

	if v, ok := meta["name"].(string); ok && v != "" && v != name {
		detail.DisplayName = v
	}
	if v, ok := meta["description"].(string); ok {
		detail.Description = v
	}
	if v, ok := meta["license"].(string); ok {
		detail.License = v
	}

	if detail.Arguments, err = lib.SkillArguments(name); err != nil {
		return nil, err
	}
	if detail.Scripts, err = lib.ListScripts(name); err != nil {
		return nil, err
	}
	if detail.References, err = lib.ListReferences(name); err != nil {
		return nil, err
	}

	return detail, nil
}

func outputShowJSON(w io.Writer, detail *showDetail) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(detail), "encoding JSON")
}

func outputShowText(w io.Writer, detail *showDetail) error {
	fmt.Fprintf(w, "Skill: %s\n", detail.Name)
	if detail.DisplayName != "" {
		fmt.Fprintf(w, "Display Name: %s\n", detail.DisplayName)
	}
	fmt.Fprintf(w, "Description: %s\n", detail.Description)
	if detail.License != "" {
		fmt.Fprintf(w, "License: %s\n", detail.License)
	}

	if len(detail.Arguments) > 0 {
		fmt.Fprintln(w, "\nArguments:")
		for _, field := range render.BuildSchema(detail.Arguments).Fields {
			fmt.Fprintf(w, "  - %s\n", formatField(field))
		}
	}

	if len(detail.Scripts) > 0 {
		fmt.Fprintln(w, "\nScripts:")
		for _, name := range detail.Scripts {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}

	if len(detail.References) > 0 {
		fmt.Fprintln(w, "\nReferences:")
		for _, name := range detail.References {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}

	if detail.Instructions != "" {
		instructions := detail.Instructions
		truncated := false
		if !showFull && len(instructions) > defaultInstructionsPreviewLength {
			instructions = instructions[:defaultInstructionsPreviewLength]
			truncated = true
		}
		heading := "Instructions:"
		if truncated {
			heading = "Instructions Preview:"
		}
		fmt.Fprintf(w, "\n%s\n", heading)
		fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(instructions, "\n", "\n  "))
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
