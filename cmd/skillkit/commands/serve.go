package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd/skillkit/commands/flags"
	"github.com/thoreinstein/skillkit/internal/cli"
	"github.com/thoreinstein/skillkit/internal/logging"
	"github.com/thoreinstein/skillkit/internal/mcp"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve skills and prompts to MCP clients over stdio",
	Long: `Serve the indexed skills and prompts over the Model Context Protocol.

The server speaks MCP on stdin/stdout, so this command is meant to be
spawned by an MCP client, not run by hand. Logs go to stderr. The document
index is built once at startup; restart the server (or let the client do
it) to pick up newly synchronized sources.

The server is read-only: it exposes listing and fetching tools plus one
MCP prompt per indexed prompt document.`,
	Example: `  # Typical client configuration runs:
  skillkit serve

  # Debug a session by hand, with verbose logs on stderr
  skillkit -vv serve 2>serve.log`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	lib, err := cli.OpenLibrary(flags.ConfigPath(), logger)
	if err != nil {
		return err
	}

	srv := mcp.New(lib, rootCmd.Version, logger)
	return srv.ServeStdio(cmd.Context())
}
