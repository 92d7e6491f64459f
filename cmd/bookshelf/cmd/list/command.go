// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/hints"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the list command.
func NewCommand(app context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "catalog",
		Aliases: []string{"ls"},
		Short:   "List every book in the catalog",
		Example: `  bookshelf list
  bookshelf list -o wide
  bookshelf list -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			format := app.OutputFormat()
			books := store.List()

			if len(books) == 0 && format.IsTabular() {
				w := alerts.NewWriter(cmd.OutOrStdout(), format, app.NoColor())
				if err := w.WriteAlert(alerts.NewInfo("The catalog is empty")); err != nil {
					return err
				}
				return hints.Display(cmd.OutOrStdout(), format, hints.EmptyCatalog())
			}

			return output.FormatBooks(cmd.OutOrStdout(), books, format)
		},
	}
}
