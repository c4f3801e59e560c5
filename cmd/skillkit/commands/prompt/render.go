package prompt

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/logging"
)

var renderArgs []string

func init() {
	renderCmd.Flags().StringArrayVar(&renderArgs, "arg", nil,
		"Argument as key=value (repeatable)")
	Cmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <name>",
	Short: "Render a prompt with arguments",
	Long: `Render a prompt template with the given arguments.

Each --arg supplies one key=value pair; the value may itself contain =.
Missing required arguments and values that do not fit a declared type
fail before anything is printed. Omitted optional arguments take their
declared defaults.`,
	Example: `  # Render with one argument
  skillkit prompt render summarize --arg topic="release notes"

  # Arguments repeat
  skillkit prompt render review --arg file=main.go --arg style=strict

  See Also:
    skillkit prompt show - Inspect a prompt's arguments`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	lib, err := cli.OpenLibrary(flags.ConfigPath(), logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}

	values, err := parseArgValues(renderArgs)
	if err != nil {
		return err
	}

	rendered, err := lib.RenderPrompt(args[0], values)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return nil
}

// parseArgValues splits each pair at the first =, so values may contain =
// themselves. Values stay strings here; the prompt's schema coerces typed
// arguments during rendering.
func parseArgValues(pairs []string) (map[string]any, error) {
	values := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, errors.NewUserError(
				errors.Newf("invalid argument %q", pair),
				"Pass arguments as --arg key=value")
		}
		values[key] = value
	}
	return values, nil
}
