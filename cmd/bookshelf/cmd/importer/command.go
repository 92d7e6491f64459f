// Package importer implements the import command.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Result counts what an import did.
type Result struct {
	Added      int
	Duplicates int
	Invalid    int
}

// NewCommand creates the import command.
func NewCommand(app context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "import <file>",
		GroupID: "catalog",
		Short:   "Add books from a JSON or YAML file",
		Long: `Import adds every book in a JSON or YAML array of
{title, author, isbn} records, in order. Books whose ISBN is already in the
catalog, or that appear twice in the file, are skipped and counted.`,
		Example: `  bookshelf export backup.yaml
  bookshelf import backup.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := ReadFile(args[0])
			if err != nil {
				return err
			}

			store, err := app.Store()
			if err != nil {
				return err
			}

			result, err := Import(store, books)
			if err != nil {
				return errors.WrapResource("import", "catalog", args[0], err)
			}

			app.Logger().Info().
				Str("path", args[0]).
				Int("added", result.Added).
				Int("duplicates", result.Duplicates).
				Int("invalid", result.Invalid).
				Msg("Imported books")

			w := alerts.NewWriter(cmd.OutOrStdout(), app.OutputFormat(), app.NoColor())
			alert := alerts.NewSuccess(fmt.Sprintf("Imported %d book(s)", result.Added))
			if result.Duplicates > 0 {
				alert.WithDetails(fmt.Sprintf("%d duplicate ISBN(s) skipped", result.Duplicates))
			}
			if result.Invalid > 0 {
				alert.WithDetails(fmt.Sprintf("%d invalid record(s) skipped", result.Invalid))
			}
			return w.WriteAlert(alert)
		},
	}
}

// ReadFile decodes a list of books from a .json, .yaml or .yml file.
func ReadFile(path string) ([]catalog.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var books []catalog.Book
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &books); err != nil {
			return nil, errors.WrapParse("json", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &books); err != nil {
			return nil, errors.WrapParse("yaml", path, err)
		}
	default:
		return nil, errors.NewValidationError("file", path, fmt.Sprintf("unsupported extension %q, use .json, .yaml or .yml", ext))
	}

	return books, nil
}

// Import adds books to store in order. Duplicate ISBNs and records that
// fail validation are counted and skipped; any other error stops the import.
func Import(store *catalog.Store, books []catalog.Book) (Result, error) {
	var result Result
	for _, book := range books {
		_, err := store.Add(book.Title, book.Author, book.ISBN)
		switch {
		case err == nil:
			result.Added++
		case errors.IsAlreadyExists(err):
			result.Duplicates++
		case errors.IsValidationError(err):
			result.Invalid++
		default:
			return result, err
		}
	}
	return result, nil
}
