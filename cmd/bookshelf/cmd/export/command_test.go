package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/logging"
)

func TestExportFormat(t *testing.T) {
	tests := []struct {
		explicit string
		path     string
		want     output.Format
	}{
		{"", "", output.FormatJSON},
		{"", "books.yaml", output.FormatYAML},
		{"", "books.YML", output.FormatYAML},
		{"", "books.md", output.FormatMarkdown},
		{"", "books.txt", output.FormatJSON},
		{"yaml", "books.json", output.FormatYAML},
		{"table", "books.yaml", output.FormatYAML},
		{"markdown", "", output.FormatMarkdown},
	}

	for _, tt := range tests {
		t.Run(tt.explicit+"/"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, exportFormat(tt.explicit, tt.path))
		})
	}
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	store, err := catalog.New(
		catalog.WithPath(filepath.Join(dir, "books.txt")),
		catalog.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	_, err = store.Add("Dune", "Frank Herbert", "001")
	require.NoError(t, err)

	app := &context.MockContext{
		StoreFunc: func() (*catalog.Store, error) { return store, nil },
	}

	t.Run("stdout", func(t *testing.T) {
		cmd := NewCommand(app)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs(nil)

		require.NoError(t, cmd.Execute())
		assert.JSONEq(t, `[{"title":"Dune","author":"Frank Herbert","isbn":"001"}]`, out.String())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(dir, "export.yaml")
		cmd := NewCommand(app)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{path})

		require.NoError(t, cmd.Execute())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: Dune")
	})
}
