package output

import (
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/catalog"
)

// FormatBooks writes books in the given format. Tabular formats get the
// title/author/isbn table; the others serialize the records.
func FormatBooks(w io.Writer, books []catalog.Book, format Format) error {
	formatter := NewFormatter(format)
	if books == nil {
		books = []catalog.Book{}
	}

	var data any = books
	if format.IsTabular() {
		data = table.BooksToTableData(books, format == FormatWide)
	}

	return formatter.Format(w, data)
}
