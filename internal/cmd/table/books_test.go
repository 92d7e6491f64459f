package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

func TestBooksToTableData(t *testing.T) {
	books := []catalog.Book{
		{Title: "Dune", Author: "Frank Herbert", ISBN: "001"},
		{Title: "", Author: "Anonymous", ISBN: "002"},
	}

	t.Run("narrow", func(t *testing.T) {
		data := BooksToTableData(books, false)
		assert.Equal(t, []string{"Title", "Author", "ISBN"}, data.Headers)
		assert.Equal(t, [][]string{
			{"Dune", "Frank Herbert", "001"},
			{"-", "Anonymous", "002"},
		}, data.Rows)
		assert.Len(t, data.ColumnAlignment, 3)
	})

	t.Run("wide", func(t *testing.T) {
		data := BooksToTableData(books, true)
		assert.Equal(t, []string{"#", "Title", "Author", "ISBN"}, data.Headers)
		assert.Equal(t, []string{"2", "-", "Anonymous", "002"}, data.Rows[1])
		assert.Equal(t, AlignRight, data.ColumnAlignment[0])
	})

	t.Run("empty", func(t *testing.T) {
		data := BooksToTableData(nil, false)
		assert.Empty(t, data.Rows)
	})
}
