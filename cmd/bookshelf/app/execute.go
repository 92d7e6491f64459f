package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/menu"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Execute runs the bookshelf CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	if a.in != nil {
		rootCmd.SetIn(a.in)
	}
	if a.out != nil {
		rootCmd.SetOut(a.out)
	}
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Personal book catalog CLI",
		Version: a.version,
		Long: `Bookshelf keeps a personal book catalog in a plain text file, one
"title,author,isbn" line per book.

Run it without a subcommand to manage the catalog from an interactive menu,
or use the add, search, delete and list commands directly.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              menu.Run(a),
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "catalog",
		Title: "Catalog Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "tools",
		Title: "Other Commands:",
	})

	// Global flags. Values are applied in setupCommand only when set, so
	// environment and config file values survive an unset flag.
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.bookshelf.yaml or $HOME/.bookshelf.yaml)")
	flags.StringP("file", "f", a.config.File, "catalog file")
	flags.String("row-format", a.config.RowFormat, "catalog line format: quoted, plain")
	flags.StringP("format", "o", "", "output format: table, wide, json, yaml, markdown")
	flags.BoolP("verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	flags.BoolP("quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("bookshelf {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	if flags.Changed("config") {
		config, err := LoadConfigFile(mustGetString(cmd, "config"))
		if err != nil {
			return errors.WrapResource("load", "config", "", err)
		}
		a.config = config
	}

	var values FlagValues
	if flags.Changed("verbose") {
		values.Verbose = ptr(mustGetBool(cmd, "verbose"))
	}
	if flags.Changed("quiet") {
		values.Quiet = ptr(mustGetBool(cmd, "quiet"))
	}
	if flags.Changed("no-color") {
		values.NoColor = ptr(mustGetBool(cmd, "no-color"))
	}
	if flags.Changed("format") {
		values.Format = ptr(mustGetString(cmd, "format"))
	}
	if flags.Changed("file") {
		values.File = ptr(mustGetString(cmd, "file"))
	}
	if flags.Changed("row-format") {
		values.RowFormat = ptr(mustGetString(cmd, "row-format"))
	}
	if flags.Changed("log-level") {
		values.LogLevel = ptr(mustGetString(cmd, "log-level"))
	}
	a.config.UpdateFromFlags(values)

	if _, err := output.ParseFormat(a.config.Format); err != nil {
		return errors.NewConfigError("format", err.Error(), err)
	}
	if _, err := catalog.ParseCodec(a.config.RowFormat); err != nil {
		return errors.NewConfigError("row-format", err.Error(), err)
	}

	// Reinitialize logger with updated config
	logging.Configure(logConfig(a.config))
	a.logger = logging.Default()

	ctx := logging.WithLogger(cmd.Context(), a.logger)
	cmd.SetContext(logging.WithCatalog(ctx, a.config.File))

	return nil
}

// ExitOnError prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func ptr[T any](v T) *T {
	return &v
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
