// Package cache provides commands for inspecting the repository cache.
package cache

import "github.com/spf13/cobra"

// Cmd is the parent command for all cache subcommands.
var Cmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the repository cache",
	Long: `Commands for inspecting the cache that remote sources materialize into.

Each entry is one (repository, ref) pair in a content-addressed
directory, so repeated synchronization converges instead of
accumulating clones.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
