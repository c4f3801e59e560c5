// Package commands implements the CLI commands for skillkit.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/config"
	"github.com/thoreinstein/skillkit/internal/errors"
	"github.com/thoreinstein/skillkit/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then XDG config dir)")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
}

var rootCmd = &cobra.Command{
	Use:   "skillkit",
	Short: "Serve skills and prompts from filesystem roots",
	Long: `skillkit serves skill documents and prompt templates collected from an
ordered list of document roots: configured sources (local directories or
git repositories), directories named in SKILLKIT_SKILLS_PATH, and a small
builtin set embedded in the binary.

When two roots define the same name, the higher-priority root wins. Remote
sources are cached under the skillkit home and refreshed only by
'skillkit source sync'; every other command works offline.`,
	Example: `  # List available skills
  skillkit skill list

  # Render a prompt with arguments
  skillkit prompt render code-review --arg language=go

  # Synchronize remote sources
  skillkit source sync

  # Expose everything to an MCP client over stdio
  skillkit serve

  # Check system health
  skillkit doctor`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		flags.SetConfigPath(configFile)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("SKILLKIT_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	var mirror io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		mirror = f
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
		Mirror: mirror,
	})
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// rootContext is the base context for an invocation, canceled on SIGINT
// or SIGTERM so long-running commands (serve, source sync) shut down
// cleanly.
func rootContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.ExecuteContext(rootContext())
	if err == nil {
		return errors.ExitSuccess
	}

	printError(os.Stderr, err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return errors.ExitUser
}

// printError writes err for the user. An ExitError carrying neither an
// underlying error nor a suggestion is a bare exit code: the command
// already produced its output.
func printError(w io.Writer, err error) {
	var exitErr *errors.ExitError
	errors.As(err, &exitErr)

	switch {
	case exitErr == nil || exitErr.Err != nil:
		fmt.Fprintf(w, "Error: %v\n", err)
		if exitErr != nil && exitErr.Suggestion != "" {
			fmt.Fprintf(w, "  %s\n", exitErr.Suggestion)
		}
	case exitErr.Suggestion != "":
		fmt.Fprintf(w, "Error: %s\n", exitErr.Suggestion)
	default:
		return
	}

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "  hint: %s\n", hint)
	}
}
