// Package main provides the entry point for the draftboard CLI tool.
package main

import (
	"context"
	"os"

	"github.com/agentstation/draftboard/cmd/draftboard/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	// Create app instance
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancelled on SIGINT/SIGTERM; the only cancellation a run has
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		application.Logger().Error().Err(err).Msg("draftboard failed")
		cancel()
		app.ExitOnError(err)
	}
}
