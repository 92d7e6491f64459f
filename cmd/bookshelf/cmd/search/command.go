// Package search implements the search command.
package search

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/hints"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the search command.
func NewCommand(app context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "search <keyword>",
		GroupID: "catalog",
		Aliases: []string{"find"},
		Short:   "Search books by title, author or ISBN",
		Long: `Search lists every book whose title, author or ISBN contains the
keyword, ignoring case. An empty keyword matches every book.`,
		Example: `  bookshelf search herbert
  bookshelf search dune -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			format := app.OutputFormat()
			results := store.Search(args[0])

			if len(results) == 0 && format.IsTabular() {
				w := alerts.NewWriter(cmd.OutOrStdout(), format, app.NoColor())
				if err := w.WriteAlert(alerts.NewInfo(fmt.Sprintf("No books matched %q", args[0]))); err != nil {
					return err
				}
				return hints.Display(cmd.OutOrStdout(), format, hints.NoMatches(args[0]))
			}

			return output.FormatBooks(cmd.OutOrStdout(), results, format)
		},
	}
}
