package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
)

func testConfig(path string) *Config {
	return &Config{
		File:      path,
		RowFormat: "quoted",
		LogFormat: "json",
		LogOutput: "discard",
	}
}

// run executes one CLI invocation against a fresh App, the way each
// process start would, and returns what it printed.
func run(t *testing.T, path, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithConfig(testConfig(path)),
		WithIO(strings.NewReader(input), &out),
	)
	require.NoError(t, err)

	err = app.Execute(context.Background(), args)
	return out.String(), err
}

func TestApp_New(t *testing.T) {
	app, err := New("1.0.0", "abc123", "2024-01-01", "test")
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", app.Version())
	assert.Equal(t, "abc123", app.Commit())
	assert.Equal(t, "2024-01-01", app.Date())
	assert.Equal(t, "test", app.BuiltBy())
	assert.NotNil(t, app.Logger())
	assert.NotNil(t, app.Config())
}

func TestApp_Store_Singleton(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(testConfig(path)))
	require.NoError(t, err)

	const goroutines = 50
	var wg sync.WaitGroup
	stores := make([]*catalog.Store, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			stores[idx], errs[idx] = app.Store()
		}(i)
	}
	wg.Wait()

	for i := range stores {
		require.NoError(t, errs[i])
		assert.Same(t, stores[0], stores[i])
	}
	assert.Equal(t, path, stores[0].Path())
}

func TestApp_Store_InvalidRowFormat(t *testing.T) {
	config := testConfig(filepath.Join(t.TempDir(), "books.txt"))
	config.RowFormat = "tsv"

	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(config))
	require.NoError(t, err)

	_, err = app.Store()
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestApp_Shutdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")
	app, err := New("1.0.0", "test", "2024-01-01", "test", WithConfig(testConfig(path)))
	require.NoError(t, err)

	assert.NoError(t, app.Shutdown(context.Background()))

	_, err = app.Store()
	require.NoError(t, err)
	assert.NoError(t, app.Shutdown(context.Background()))
}

func TestExecute_CatalogCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	out, err := run(t, path, "", "-o", "table", "add", "Dune", "Frank Herbert", "001")
	require.NoError(t, err)
	assert.Equal(t, "✓ Added Dune by Frank Herbert (ISBN 001)\n", out)

	out, err = run(t, path, "", "-o", "table", "add", "Dune Messiah", "Frank Herbert", "001")
	require.NoError(t, err)
	assert.Equal(t, "i A book with ISBN 001 already exists\n", out)

	out, err = run(t, path, "", "-o", "table", "add", "Emma, Revised", "Jane Austen", "002")
	require.NoError(t, err)
	assert.Contains(t, out, "Added Emma, Revised")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Dune,Frank Herbert,001\n\"Emma, Revised\",Jane Austen,002\n", string(data))

	out, err = run(t, path, "", "-o", "json", "search", "HERBERT")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"Dune","author":"Frank Herbert","isbn":"001"}]`, out)

	out, err = run(t, path, "", "-o", "table", "search", "tolkien")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "i No books matched \"tolkien\"\n"))

	out, err = run(t, path, "", "-o", "table", "delete", "999")
	require.NoError(t, err)
	assert.Equal(t, "i No book with ISBN 999\n", out)

	out, err = run(t, path, "", "-o", "table", "delete", "001")
	require.NoError(t, err)
	assert.Equal(t, "✓ Deleted 1 book(s) with ISBN 001\n", out)

	out, err = run(t, path, "", "-o", "yaml", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "author: Jane Austen")
	assert.Contains(t, out, "Emma, Revised")
	assert.NotContains(t, out, "Dune")
}

func TestExecute_EmptyList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	out, err := run(t, path, "", "-o", "table", "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "i The catalog is empty\n"))
	assert.Contains(t, out, "bookshelf add <title> <author> <isbn>")

	out, err = run(t, path, "", "-o", "json", "list")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestExecute_PlainRowFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	_, err := run(t, path, "", "--row-format", "plain", "-o", "table", "add", "A, B", "X", "1")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "A, B,X,1\n", string(data))
}

func TestExecute_RootRunsMenu(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	out, err := run(t, path, "1\nDune\nFrank Herbert\n001\n5\n")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Add book")
	assert.Contains(t, out, "Added Dune by Frank Herbert (ISBN 001)")
	assert.Contains(t, out, "Goodbye")

	out, err = run(t, path, "4\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "Frank Herbert")
}

func TestExecute_Gcd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	out, err := run(t, path, "", "gcd")
	require.NoError(t, err)
	assert.Equal(t, "The GCD of 54 and 24 is 6\n", out)

	out, err = run(t, path, "", "gcd", "1071", "462")
	require.NoError(t, err)
	assert.Equal(t, "The GCD of 1071 and 462 is 21\n", out)

	_, err = run(t, path, "", "gcd", "x", "4")
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, path, "", "gcd", "4")
	assert.Error(t, err)

	out, err = run(t, path, "", "gcd", "-54", "24")
	require.NoError(t, err)
	assert.Equal(t, "The GCD of -54 and 24 is 6\n", out)

	out, err = run(t, path, "", "gcd", "--", "54", "-24")
	require.NoError(t, err)
	assert.Equal(t, "The GCD of 54 and -24 is 6\n", out)

	_, err = run(t, path, "", "gcd", "--", "-9223372036854775808", "0")
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, path, "", "gcd", "99999999999999999999", "1")
	assert.True(t, errors.IsValidationError(err))

	out, err = run(t, path, "", "gcd", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "bookshelf gcd -54 24")
}

func TestExecute_Version(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	out, err := run(t, path, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "bookshelf 1.0.0\n", out)

	out, err = run(t, path, "", "-v", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:     abc123")
}

func TestExecute_Man(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "books.txt"), "", "man")
	require.NoError(t, err)
	assert.Contains(t, out, "BOOKSHELF")
}

func TestExecute_InvalidFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.txt")

	_, err := run(t, path, "", "-o", "csv", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")

	_, err = run(t, path, "", "--row-format", "tsv", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row-format")

	_, err = run(t, path, "", "add", "only-title")
	assert.Error(t, err)
}
