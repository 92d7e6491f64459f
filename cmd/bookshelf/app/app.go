// Package app provides the application context and dependency management
// for the bookshelf CLI. It centralizes configuration, logging and the
// catalog store so that commands receive their dependencies explicitly.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Command input and output; nil means the process stdin and stdout
	in  io.Reader
	out io.Writer

	// Catalog store (lazy-initialized, singleton)
	mu    sync.RWMutex
	store *catalog.Store
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config file; flags are
// applied later by the root command.
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

// OutputFormat returns the configured output format, detecting one from
// stdout when none was set.
func (a *App) OutputFormat() output.Format {
	return output.DetectFormat(a.config.Format)
}

// NoColor reports whether colored output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Store returns the catalog store, loading it from the configured file on
// first use. Later calls return the same instance.
func (a *App) Store() (*catalog.Store, error) {
	a.mu.RLock()
	if a.store != nil {
		store := a.store
		a.mu.RUnlock()
		return store, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store, nil
	}

	codec, err := catalog.ParseCodec(a.config.RowFormat)
	if err != nil {
		return nil, errors.NewConfigError("row-format", err.Error(), err)
	}

	store, err := catalog.New(
		catalog.WithPath(a.config.File),
		catalog.WithCodec(codec),
		catalog.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.store = store
	return store, nil
}

// Shutdown performs graceful shutdown of the application. Every mutation
// is saved synchronously, so there is nothing left to flush.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.RLock()
	store := a.store
	a.mu.RUnlock()

	if store != nil {
		a.logger.Debug().
			Str("path", store.Path()).
			Int("books", store.Len()).
			Msg("Shutting down")
	}

	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithStore sets a custom store (useful for testing).
func WithStore(store *catalog.Store) Option {
	return func(a *App) error {
		a.store = store
		return nil
	}
}

// WithIO sets the input and output used by commands.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) error {
		a.in = in
		a.out = out
		return nil
	}
}
