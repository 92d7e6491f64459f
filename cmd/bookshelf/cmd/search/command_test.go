package search

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/cmd/bookshelf/context"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/logging"
)

func TestCommand(t *testing.T) {
	store, err := catalog.New(
		catalog.WithPath(filepath.Join(t.TempDir(), "books.txt")),
		catalog.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	_, err = store.Add("Dune", "Frank Herbert", "001")
	require.NoError(t, err)
	_, err = store.Add("Emma", "Jane Austen", "002")
	require.NoError(t, err)

	tests := []struct {
		name    string
		format  output.Format
		keyword string
		check   func(t *testing.T, out string)
	}{
		{
			name:    "json match",
			format:  output.FormatJSON,
			keyword: "AUSTEN",
			check: func(t *testing.T, out string) {
				assert.JSONEq(t, `[{"title":"Emma","author":"Jane Austen","isbn":"002"}]`, out)
			},
		},
		{
			name:    "json no match is an empty array",
			format:  output.FormatJSON,
			keyword: "tolkien",
			check: func(t *testing.T, out string) {
				assert.JSONEq(t, `[]`, out)
			},
		},
		{
			name:    "table no match",
			format:  output.FormatTable,
			keyword: "tolkien",
			check: func(t *testing.T, out string) {
				assert.Equal(t, "i No books matched \"tolkien\"\n\n💡 See every book in the catalog\n   Run: bookshelf list\n", out)
			},
		},
		{
			name:    "table match",
			format:  output.FormatTable,
			keyword: "dune",
			check: func(t *testing.T, out string) {
				assert.Contains(t, out, "Frank Herbert")
				assert.NotContains(t, out, "Jane Austen")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand(&context.MockContext{
				StoreFunc:        func() (*catalog.Store, error) { return store, nil },
				OutputFormatFunc: func() output.Format { return tt.format },
			})
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs([]string{tt.keyword})

			require.NoError(t, cmd.Execute())
			tt.check(t, out.String())
		})
	}
}
