// Package add implements the add command.
package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the add command.
func NewCommand(app context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "add <title> <author> <isbn>",
		GroupID: "catalog",
		Short:   "Add a book to the catalog",
		Long: `Add appends a book to the catalog and saves the catalog file.

A book whose ISBN is already in the catalog is not added; this is reported
and the command still succeeds.`,
		Example: `  bookshelf add "Dune" "Frank Herbert" 9780441013593
  bookshelf add -f ~/books.txt "Emma" "Jane Austen" 9780141439587`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			w := alerts.NewWriter(cmd.OutOrStdout(), app.OutputFormat(), app.NoColor())

			book, err := store.Add(args[0], args[1], args[2])
			switch {
			case errors.IsAlreadyExists(err):
				return w.WriteAlert(alerts.NewInfo(fmt.Sprintf("A book with ISBN %s already exists", args[2])))
			case err != nil:
				return err
			}

			app.Logger().Debug().Str("isbn", book.ISBN).Msg("Added book")
			return w.WriteAlert(alerts.NewSuccess(fmt.Sprintf("Added %s", book)))
		},
	}
}
