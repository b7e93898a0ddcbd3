// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type so they can be tested with small fakes.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/draftboard/internal/pipeline"
)

// Interface defines what commands need from the application.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide).
	OutputFormat() string

	// PipelineOptions returns run options filled from configuration.
	// Commands set the league settings and any per-run flags on the copy.
	PipelineOptions() pipeline.Options

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
