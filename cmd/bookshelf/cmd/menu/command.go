// Package menu implements the interactive menu command.
package menu

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/menu"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the menu command.
func NewCommand(app context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "catalog",
		Short:   "Manage the catalog from an interactive menu",
		Long: `Menu shows a numbered list of actions and repeats it until you choose
Exit or input ends:

  1. Add book
  2. Search books
  3. Delete book
  4. List all books
  5. Exit`,
		Args: cobra.NoArgs,
		RunE: Run(app),
	}
}

// Run returns a RunE that starts the menu loop. The root command uses it
// so that running bookshelf with no subcommand opens the menu.
func Run(app context.Context) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		store, err := app.Store()
		if err != nil {
			return err
		}

		// The menu is for people, so structured formats fall back to a table.
		format := app.OutputFormat()
		if !format.IsTabular() {
			format = output.FormatTable
		}

		ctx := logging.WithOperation(cmd.Context(), "menu")

		out := cmd.OutOrStdout()
		m := menu.New(store, cmd.InOrStdin(), out,
			menu.WithFormat(format),
			menu.WithAlerts(alerts.NewWriter(out, output.FormatTable, app.NoColor())),
			menu.WithLogger(logging.FromContext(ctx)),
		)
		return m.Run(ctx)
	}
}
