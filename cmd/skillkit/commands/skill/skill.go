// Package skill provides commands for inspecting skill documents.
package skill

import "github.com/spf13/cobra"

// Cmd is the parent command for all skill subcommands.
var Cmd = &cobra.Command{
	Use:   "skill",
	Short: "Inspect skill documents",
	Long: `Commands for listing, showing and validating the skills served from the
configured document roots.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
