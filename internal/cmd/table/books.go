// Package table provides common table formatting utilities for CLI commands.
package table

import (
	"strconv"

	"github.com/agentstation/bookshelf/pkg/catalog"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts books to table format. The wide layout adds a
// leading position column.
func BooksToTableData(books []catalog.Book, wide bool) Data {
	headers := []string{"Title", "Author", "ISBN"}
	alignment := []Align{AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append([]string{"#"}, headers...)
		alignment = append([]Align{AlignRight}, alignment...)
	}

	rows := make([][]string, 0, len(books))
	for i, book := range books {
		row := []string{
			orDash(book.Title),
			orDash(book.Author),
			orDash(book.ISBN),
		}
		if wide {
			row = append([]string{strconv.Itoa(i + 1)}, row...)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
