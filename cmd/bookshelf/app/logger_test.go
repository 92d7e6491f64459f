package app

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/logging"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default level when no flags set",
			config:   &Config{},
			expected: "info",
		},
		{
			name:     "verbose flag sets debug",
			config:   &Config{Verbose: true},
			expected: "debug",
		},
		{
			name:     "quiet flag sets warn",
			config:   &Config{Quiet: true},
			expected: "warn",
		},
		{
			name:     "explicit log-level overrides verbose",
			config:   &Config{LogLevel: "error", Verbose: true},
			expected: "error",
		},
		{
			name:     "explicit log-level overrides quiet",
			config:   &Config{LogLevel: "trace", Quiet: true},
			expected: "trace",
		},
		{
			name:     "both verbose and quiet prefers quiet",
			config:   &Config{Verbose: true, Quiet: true},
			expected: "warn",
		},
		{
			name:     "invalid log-level falls back to info",
			config:   &Config{LogLevel: "loud", Verbose: true},
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, determineLogLevel(tt.config))
		})
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, level, validateLogLevel(level))
	}
	assert.Equal(t, "info", validateLogLevel("DEBUG"))
	assert.Equal(t, "info", validateLogLevel(""))
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "discard"})
	assert.Equal(t, "warn", logger.GetLevel().String())
}

func TestLogConfig(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	assert.Equal(t, &logging.Config{
		Level:      "info",
		Format:     "auto",
		Output:     "stderr",
		TimeFormat: "kitchen",
	}, logConfig(&Config{}))

	cfg := logConfig(&Config{Verbose: true, LogFormat: "json", LogOutput: "discard", NoColor: true})
	assert.Equal(t, &logging.Config{
		Level:      "debug",
		Format:     "json",
		Output:     "discard",
		TimeFormat: "kitchen",
		NoColor:    true,
		AddCaller:  true,
	}, cfg)
}

func TestExecute_ConfiguresDefaultLogger(t *testing.T) {
	oldLogger := *logging.Default()
	oldLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		logging.SetDefault(oldLogger)
		zerolog.SetGlobalLevel(oldLevel)
	})

	config := testConfig(filepath.Join(t.TempDir(), "books.txt"))
	config.Quiet = true
	app, err := New("1.0.0", "abc123", "2024-01-01", "test", WithConfig(config), WithIO(nil, io.Discard))
	require.NoError(t, err)

	require.NoError(t, app.Execute(context.Background(), []string{"list"}))
	assert.Same(t, logging.Default(), app.Logger())
	assert.Equal(t, zerolog.WarnLevel, logging.Default().GetLevel())
}
