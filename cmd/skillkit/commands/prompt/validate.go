package prompt

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/validate"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	Cmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a prompt document",
	Long: `Validate a prompt document without serving it.

Every finding is reported in one pass. Placeholders without a declared
argument are errors; declared arguments that are never used or lack a
description are warnings. Warnings do not affect the exit code.

Exit codes:
  0 - Prompt is valid (warnings allowed)
  1 - Prompt validation failed`,
	Example: `  # Validate a prompt file
  skillkit prompt validate ./prompts/summarize.md

  # Output validation results as JSON
  skillkit prompt validate ./prompts/summarize.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	return validatePath(cmd.OutOrStdout(), args[0])
}

// validatePath validates the prompt at path and reports the findings.
func validatePath(w io.Writer, path string) error {
	result := validate.Prompt(path)

	format := validate.FormatText
	if validateJSON {
		format = validate.FormatJSON
	}
	if err := validate.NewReporter(w, format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		// The report is the output; the error only sets the exit code.
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}
