// Package export implements the export command.
package export

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// NewCommand creates the export command.
func NewCommand(app context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "export [file]",
		GroupID: "catalog",
		Short:   "Export the whole catalog as JSON, YAML or markdown",
		Long: `Export writes every book to stdout, or to file when one is given.

The format comes from --format; without it the file extension decides
(.json, .yaml, .yml, .md) and JSON is used otherwise.`,
		Example: `  bookshelf export > books.json
  bookshelf export books.yaml
  bookshelf export -o markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}

			var explicit string
			if cmd.Flags().Changed("format") {
				explicit = string(app.OutputFormat())
			}
			format := exportFormat(explicit, path)

			if path == "" {
				return output.FormatBooks(cmd.OutOrStdout(), store.List(), format)
			}

			if err := writeFile(path, func(w io.Writer) error {
				return output.FormatBooks(w, store.List(), format)
			}); err != nil {
				return err
			}

			app.Logger().Info().
				Str("path", path).
				Str("format", string(format)).
				Int("books", store.Len()).
				Msg("Exported catalog")
			return nil
		},
	}
}

// exportFormat picks the output format from an explicit choice or the file
// extension. Plain tables are not an export format.
func exportFormat(explicit, path string) output.Format {
	switch format := output.Format(strings.ToLower(explicit)); format {
	case output.FormatJSON, output.FormatYAML, output.FormatMarkdown:
		return format
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return output.FormatYAML
	case ".md", ".markdown":
		return output.FormatMarkdown
	default:
		return output.FormatJSON
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}
