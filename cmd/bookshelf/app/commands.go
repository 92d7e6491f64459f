package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/add"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/export"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/gcd"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/importer"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/list"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/menu"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/remove"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/search"
	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
)

// Ensure App implements the command context at compile time.
var _ context.Context = (*App)(nil)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(menu.NewCommand(a))
	rootCmd.AddCommand(add.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(remove.NewCommand(a))
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(export.NewCommand(a))
	rootCmd.AddCommand(importer.NewCommand(a))

	// Other commands
	rootCmd.AddCommand(gcd.NewCommand())
	rootCmd.AddCommand(a.CreateVersionCommand())
	rootCmd.AddCommand(a.CreateManCommand())
}

// CreateVersionCommand creates the version command.
func (a *App) CreateVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		GroupID: "tools",
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bookshelf %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:     %s\n", a.commit)
				fmt.Fprintf(out, "  built:      %s\n", a.date)
				fmt.Fprintf(out, "  built by:   %s\n", a.builtBy)
				fmt.Fprintf(out, "  go version: %s\n", runtime.Version())
				fmt.Fprintf(out, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}

// CreateManCommand creates the hidden man command.
func (a *App) CreateManCommand() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  "Generate man page",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			header := &doc.GenManHeader{
				Title:   "BOOKSHELF",
				Section: "1",
				Source:  "bookshelf " + a.version,
				Manual:  "bookshelf Manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
