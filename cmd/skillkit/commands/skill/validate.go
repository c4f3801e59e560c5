package skill

import (
	"io"
	"os"
	"path/filepath"

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
	Short: "Validate a skill document",
	Long: `Validate a skill document without serving it.

The path may be a skill directory (its SKILL.md is validated) or the
SKILL.md file itself. Validation stops at the first structural problem;
name and description rules are then checked together.

Exit codes:
  0 - Skill is valid
  1 - Skill validation failed`,
	Example: `  # Validate a skill directory
  skillkit skill validate ./my-skill

  # Validate the file directly
  skillkit skill validate ./my-skill/SKILL.md

  # Output validation results as JSON
  skillkit skill validate ./my-skill --json`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	return validatePath(cmd.OutOrStdout(), args[0])
}

// validatePath validates the skill at path and reports the findings.
func validatePath(w io.Writer, path string) error {
	result := validate.Skill(skillFilePath(path))

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

// skillFilePath resolves a validate argument to the SKILL.md file: a
// directory argument means the SKILL.md inside it.
func skillFilePath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, "SKILL.md")
	}
	return path
}
