package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillkit/cmd"
)

func init() {
	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("skillkit version {{.Version}}\n")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of skillkit.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("skillkit version %s\n", cmd.Version)
		fmt.Printf("  commit: %s\n", cmd.Commit)
		fmt.Printf("  built:  %s\n", cmd.Date)
	},
}
