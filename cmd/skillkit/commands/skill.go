package commands

import "github.com/thoreinstein/skillkit/cmd/skillkit/commands/skill"

func init() {
	rootCmd.AddCommand(skill.Cmd)
}
