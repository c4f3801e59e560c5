package commands

import "github.com/thoreinstein/skillkit/cmd/skillkit/commands/prompt"

func init() {
	rootCmd.AddCommand(prompt.Cmd)
}
