package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// EnvPrefix prefixes every bookshelf environment variable.
const EnvPrefix = "BOOKSHELF"

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Catalog configuration
	File      string
	RowFormat string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by the root command)
//  2. Environment variables (BOOKSHELF_*)
//  3. .env files
//  4. Config file (./.bookshelf.yaml or ~/.bookshelf.yaml)
//  5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file path. An empty
// path searches the standard locations; a missing file there is not an error.
func LoadConfigFile(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("file", constants.DefaultCatalogFile)
	v.SetDefault("row-format", constants.DefaultRowFormat)

	if path == "" {
		path = v.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigType("yaml")
		v.SetConfigName(".bookshelf")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config file", err.Error(), err)
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no-color") || os.Getenv("NO_COLOR") != "",
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		File:      v.GetString("file"),
		RowFormat: v.GetString("row-format"),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", v.GetString("log-level")),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// Only flags the user actually set are given; the rest keep the values
// from the environment and config file.
func (c *Config) UpdateFromFlags(flags FlagValues) {
	if flags.Verbose != nil {
		c.Verbose = *flags.Verbose
	}
	if flags.Quiet != nil {
		c.Quiet = *flags.Quiet
	}
	if flags.NoColor != nil {
		c.NoColor = *flags.NoColor
	}
	if flags.Format != nil {
		c.Format = *flags.Format
	}
	if flags.File != nil {
		c.File = *flags.File
	}
	if flags.RowFormat != nil {
		c.RowFormat = *flags.RowFormat
	}
	if flags.LogLevel != nil {
		c.LogLevel = *flags.LogLevel
	}
}

// FlagValues carries the global flags that were explicitly set.
type FlagValues struct {
	Verbose   *bool
	Quiet     *bool
	NoColor   *bool
	Format    *string
	File      *string
	RowFormat *string
	LogLevel  *string
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overridden.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
