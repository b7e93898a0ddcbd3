// Package app provides the application context and dependency management
// for the draftboard CLI. It centralizes configuration, logging and the
// pipeline defaults every command starts from.
package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agentstation/draftboard/internal/appcontext"
	"github.com/agentstation/draftboard/internal/pipeline"
	"github.com/agentstation/draftboard/pkg/errors"
)

// App represents the draftboard application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// fixedLogger keeps an injected logger across flag parsing.
	fixedLogger bool

	// httpClient is shared by the remote sources; nil uses a default client.
	httpClient *http.Client
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized with the loaded configuration, which can be
// replaced using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the --format value or the configured default.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// PipelineOptions returns run options filled from the configuration.
func (a *App) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		RankingsDir:       a.config.RankingsDir,
		OutputDir:         a.config.OutputDir,
		CacheDir:          a.config.CacheDir,
		ADPBaseURL:        a.config.ADPBaseURL,
		SportsDataBaseURL: a.config.SportsDataBaseURL,
		SportsDataKey:     a.config.SportsDataKey,
		AliasesFile:       a.config.AliasesFile,
		MetricsFile:       a.config.MetricsFile,
		HTTPClient:        a.httpClient,
	}
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return &errors.ValidationError{Field: "config", Message: "cannot be nil"}
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		a.fixedLogger = logger != nil
		return nil
	}
}

// WithHTTPClient sets the HTTP client used by the remote sources.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) error {
		a.httpClient = hc
		return nil
	}
}
