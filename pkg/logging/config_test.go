package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		require.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig writes json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.json")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "debug",
			Format: "json",
			Output: path,
		})
		logger.Info().Msg("test message")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "test message")
		assert.Contains(t, string(content), `"level":"info"`)
	})

	t.Run("auto format on a file is json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.json")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:  "info",
			Format: "auto",
			Output: path,
		})
		logger.Info().Msg("auto")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"message":"auto"`)
	})

	t.Run("console format configuration", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.txt")

		logger := logging.NewLoggerFromConfig(&logging.Config{
			Level:   "info",
			Format:  "console",
			Output:  path,
			NoColor: true,
		})
		logger.Info().Str("key", "value").Msg("console test")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "console test")
		assert.Contains(t, string(content), "INF")
	})

	t.Run("level filtering", func(t *testing.T) {
		testCases := []struct {
			level     string
			logFunc   func(*zerolog.Logger) *zerolog.Event
			shouldLog bool
		}{
			{"debug", (*zerolog.Logger).Debug, true},
			{"info", (*zerolog.Logger).Info, true},
			{"info", (*zerolog.Logger).Debug, false},
			{"warn", (*zerolog.Logger).Warn, true},
			{"warn", (*zerolog.Logger).Info, false},
			{"error", (*zerolog.Logger).Error, true},
			{"error", (*zerolog.Logger).Warn, false},
			{"off", (*zerolog.Logger).Error, false},
		}

		for _, tc := range testCases {
			t.Run(tc.level, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "log.json")
				logging.Configure(&logging.Config{
					Level:  tc.level,
					Format: "json",
					Output: path,
				})
				tc.logFunc(logging.Default()).Msg("test")

				content, err := os.ReadFile(path)
				require.NoError(t, err)
				if tc.shouldLog {
					assert.Contains(t, string(content), "test")
				} else {
					assert.Empty(t, string(content))
				}
			})
		}
	})
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)
	tl.Info().Str("path", "books.txt").Msg("loaded")
	tl.Warn().Int("line", 2).Msg("skipped")

	assert.Equal(t, 2, tl.Count())
	assert.True(t, tl.Contains(`"path":"books.txt"`))
	assert.True(t, tl.Contains(`"line":2`))
}
