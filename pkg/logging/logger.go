// Package logging provides structured logging for draftboard using zerolog.
// Console output is used on a terminal and JSON everywhere else, so a build
// run from a cron job or CI produces machine-readable run reports.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Str("signature", "ppr_12_2026").Msg("building board")
//
//	ctx := logging.WithLogger(context.Background(), log)
//	ctx = logging.WithSource(ctx, "rankings")
//	logging.FromContext(ctx).Warn().Str("kind", "unmatched").Msg("ranking row skipped")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogger is the process-wide logger.
var defaultLogger zerolog.Logger

func init() {
	defaultLogger = NewLoggerFromConfig(envConfig())
}

// Default returns the default global logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the default global logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
