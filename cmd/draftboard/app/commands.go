package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/draftboard/cmd/draftboard/cmd/build"
	"github.com/agentstation/draftboard/cmd/draftboard/cmd/cache"
	"github.com/agentstation/draftboard/cmd/draftboard/cmd/show"
	"github.com/agentstation/draftboard/cmd/draftboard/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(build.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(cache.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
