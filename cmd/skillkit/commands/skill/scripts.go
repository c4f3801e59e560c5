package skill

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/library"
	"github.com/thoreinstein/skillkit/internal/logging"
)

func init() {
	Cmd.AddCommand(scriptsCmd)
}

var scriptsCmd = &cobra.Command{
	Use:   "scripts <name> [filename]",
	Short: "List or fetch a skill's scripts",
	Long: `List the scripts bundled with a skill, or print one of them.

Without a filename, the script filenames are listed one per line. With a
filename, the raw script content is written to stdout, so the output can
be piped or redirected.`,
	Example: `  # List the scripts of the 'deploy' skill
  skillkit skill scripts deploy

  # Print one script
  skillkit skill scripts deploy run.sh

  # Run it directly
  skillkit skill scripts deploy run.sh | sh`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runScripts,
}

func runScripts(cmd *cobra.Command, args []string) error {
	lib, err := cli.OpenLibrary(flags.ConfigPath(), logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}

	if len(args) == 2 {
		return fetchScript(cmd.OutOrStdout(), lib, args[0], args[1])
	}
	return listScripts(cmd.OutOrStdout(), lib, args[0])
}

// listScripts prints the script filenames, one per line.
func listScripts(w io.Writer, lib *library.Library, name string) error {
	names, err := lib.ListScripts(name)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintf(w, "Skill %q has no scripts.\n", name)
		return nil
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

// fetchScript writes one script's raw content, suitable for piping.
func fetchScript(w io.Writer, lib *library.Library, name, filename string) error {
	content, err := lib.GetScript(name, filename)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, content)
	return err
}
