// Package context provides the application context interface for bookshelf
// commands.
//
// Commands accept this interface rather than the concrete App type, so they
// can be exercised in tests against a MockContext backed by a temporary
// catalog file:
//
//	store, _ := catalog.New(catalog.WithPath(filepath.Join(t.TempDir(), "books.txt")))
//	mock := &context.MockContext{
//	    StoreFunc: func() (*catalog.Store, error) { return store, nil },
//	}
//	cmd := search.NewCommand(mock)
package context

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// Context provides what commands need from the application.
// The App struct from cmd/bookshelf/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Context interface {
	// Store returns the catalog store, loading it on first use.
	Store() (*catalog.Store, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format.
	OutputFormat() output.Format

	// NoColor reports whether colored output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
