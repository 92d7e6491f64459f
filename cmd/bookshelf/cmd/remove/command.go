// Package remove implements the delete command.
package remove

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the delete command.
func NewCommand(app context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <isbn>",
		GroupID: "catalog",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete books by ISBN",
		Long: `Delete removes every book whose ISBN equals the argument exactly and
saves the catalog file. When nothing matches the file is left untouched.`,
		Example: `  bookshelf delete 9780441013593`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			w := alerts.NewWriter(cmd.OutOrStdout(), app.OutputFormat(), app.NoColor())

			removed, err := store.Delete(args[0])
			switch {
			case errors.IsNotFound(err):
				return w.WriteAlert(alerts.NewInfo(fmt.Sprintf("No book with ISBN %s", args[0])))
			case err != nil:
				return err
			}

			return w.WriteAlert(alerts.NewSuccess(fmt.Sprintf("Deleted %d book(s) with ISBN %s", removed, args[0])))
		},
	}
}
