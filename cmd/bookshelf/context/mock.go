package context

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// MockContext provides a mock implementation of Context for testing.
// If a function field is nil, the method returns a default value.
type MockContext struct {
	StoreFunc        func() (*catalog.Store, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() output.Format
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Store returns a store using the mock function or nil.
func (m *MockContext) Store() (*catalog.Store, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc()
	}
	return nil, nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *MockContext) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the output format using the mock function or "table".
func (m *MockContext) OutputFormat() output.Format {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return output.FormatTable
}

// NoColor always reports true so test output carries no escape codes.
func (m *MockContext) NoColor() bool {
	return true
}

// Version returns version using the mock function or "dev".
func (m *MockContext) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *MockContext) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *MockContext) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *MockContext) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure MockContext implements Context at compile time.
var _ Context = (*MockContext)(nil)
