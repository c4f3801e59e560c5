package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/doctor"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/paths"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"attempt to fix fixable issues, then re-check")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose installation and configuration issues",
	Long: `Run diagnostic checks on the skillkit installation.

Checks the git dependency, the skillkit home directory, the configuration
file, every configured source, the resolved document roots and the
documents they contain.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  # Quick health check
  skillkit doctor

  # Show everything, including passing checks
  skillkit doctor --verbose

  # Create missing directories
  skillkit doctor --fix`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	if doctorJSON {
		count++
	}
	if doctorQuiet {
		count++
	}
	if doctorVerbose {
		count++
	}

	if count > 1 {
		return errors.New("flags --json, --quiet, and --verbose are mutually exclusive")
	}

	return nil
}

// Exit codes for the documented doctor contract.
const (
	doctorExitWarnings = 1
	doctorExitErrors   = 2
)

func runDoctor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	w := cmd.OutOrStdout()

	runner := assembleChecks(ctx)
	report := runner.Run(ctx)

	if doctorFix {
		if fixed := applyFixes(w, runner); fixed > 0 {
			// Re-run so the report reflects the post-fix state.
			report = runner.Run(ctx)
		}
	}

	if err := outputDoctorReport(w, report); err != nil {
		return err
	}

	// The report is the output; the error only sets the exit code.
	if report.HasErrors() {
		return errors.NewExitError(nil, doctorExitErrors)
	}
	if report.HasWarnings() {
		return errors.NewExitError(nil, doctorExitWarnings)
	}
	return nil
}

// assembleChecks builds the check list for this invocation. Checks that
// need the loaded configuration are skipped when it does not load; the
// config check itself reports why.
func assembleChecks(ctx context.Context) *doctor.Runner {
	logger := logging.FromContext(ctx)
	cfgPath := flags.ConfigPath()

	home, err := paths.SkillkitHome()
	if err != nil {
		logger.Debug("skillkit home unresolved", "error", err)
		home = ""
	}

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewGitCheck())
	runner.AddCheck(doctor.NewHomeCheck(home))
	runner.AddCheck(doctor.NewConfigCheck(cfgPath))
	runner.AddCheck(doctor.NewEnvironmentCheck())

	comp, err := cli.Compose(cfgPath, logger)
	if err != nil {
		return runner
	}

	runner.AddCheck(doctor.NewSourcesCheck(comp.Config.Sources))
	runner.AddCheck(doctor.NewRootsCheck(comp.DiskRoots, comp.Config.Builtin))
	runner.AddCheck(doctor.NewDocumentsCheck(existingDirs(comp.DiskRoots)))

	return runner
}

// existingDirs filters the candidate roots down to directories that exist,
// the only ones a document sweep can read.
func existingDirs(roots []doctor.Root) []string {
	var dirs []string
	for _, r := range roots {
		if info, err := os.Stat(r.Path); err == nil && info.IsDir() {
			dirs = append(dirs, r.Path)
		}
	}
	return dirs
}

// applyFixes runs every fixable check's remediation and reports what
// happened. Returns the number of successful fixes.
func applyFixes(w io.Writer, runner *doctor.Runner) int {
	fixed := 0
	for _, check := range runner.Checks() {
		fixer, ok := check.(doctor.Fixer)
		if !ok || !fixer.CanFix() {
			continue
		}
		for _, result := range fixer.Fix() {
			if result.Fixed {
				fixed++
				fmt.Fprintf(w, "fixed: %s (%s)\n", result.Path, result.Description)
			} else {
				fmt.Fprintf(w, "fix failed: %s: %v\n", result.Path, result.Error)
			}
		}
	}
	if fixed > 0 {
		fmt.Fprintln(w)
	}
	return fixed
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		return outputDoctorJSON(w, report)
	}

	return outputDoctorText(w, report)
}

func outputDoctorJSON(w io.Writer, report *doctor.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "encoding JSON")
}

func outputDoctorText(w io.Writer, report *doctor.Report) error {
	// In normal mode, show only errors and warnings
	// In verbose mode, show all checks
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		if !showAll && result.Status != doctor.SeverityError && result.Status != doctor.SeverityWarning {
			continue
		}

		hasOutput = true
		icon := statusIcon(result.Status)
		fmt.Fprintf(w, "%s [%s] %s: %s\n", icon, result.Category, result.Name, result.Message)

		if result.FixHint != "" && (result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning) {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput || showAll {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)

	return nil
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}
