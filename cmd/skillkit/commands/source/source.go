// Package source provides commands for listing and synchronizing the
// configured document sources.
package source

import "github.com/spf13/cobra"

// Cmd is the parent command for all source subcommands.
var Cmd = &cobra.Command{
	Use:   "source",
	Short: "Manage configured document sources",
	Long: `Commands for inspecting the configured sources and synchronizing the
remote ones into the local cache.

Sources are listed in config.yaml in priority order. Local directory
sources are used as document roots directly; remote git sources serve
from their cache directory, which skillkit source sync materializes.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
