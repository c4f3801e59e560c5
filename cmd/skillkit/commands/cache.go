package commands

import "github.com/thoreinstein/skillkit/cmd/skillkit/commands/cache"

func init() {
	rootCmd.AddCommand(cache.Cmd)
}
