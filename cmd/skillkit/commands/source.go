package commands

import "github.com/thoreinstein/skillkit/cmd/skillkit/commands/source"

func init() {
	rootCmd.AddCommand(source.Cmd)
}
