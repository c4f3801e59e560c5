// Package prompt provides commands for inspecting and rendering prompt
// documents.
package prompt

import "github.com/spf13/cobra"

// Cmd is the parent command for all prompt subcommands.
var Cmd = &cobra.Command{
	Use:   "prompt",
	Short: "Inspect and render prompt documents",
	Long: `Commands for listing, showing, rendering and validating the prompts served
from the configured document roots.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
