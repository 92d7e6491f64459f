// Package catalog holds the personal book catalog: the Book record, an
// ordered in-memory collection of books, and a Store that mirrors the
// collection to a flat delimited text file.
//
// Example usage:
//
//	store, err := catalog.New(catalog.WithPath("books.txt"))
//	if err != nil {
//	    return err
//	}
//	if _, err := store.Add("Dune", "Frank Herbert", "001"); errors.IsAlreadyExists(err) {
//	    fmt.Println("already in the catalog")
//	}
//	for _, b := range store.Search("herbert") {
//	    fmt.Println(b)
//	}
package catalog

import (
	"fmt"
	"strings"
)

// Book is a single catalog record. ISBN is the natural identifier.
type Book struct {
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	ISBN   string `json:"isbn" yaml:"isbn"`
}

// String returns a one-line human readable form of the book.
func (b Book) String() string {
	return fmt.Sprintf("%s by %s (ISBN %s)", b.Title, b.Author, b.ISBN)
}

// Fields returns the persisted field order: title, author, isbn.
func (b Book) Fields() []string {
	return []string{b.Title, b.Author, b.ISBN}
}

// Matches reports whether the lower-cased keyword is a substring of the
// title, author or isbn, compared case-insensitively.
func (b Book) Matches(lowerKeyword string) bool {
	return strings.Contains(strings.ToLower(b.Title), lowerKeyword) ||
		strings.Contains(strings.ToLower(b.Author), lowerKeyword) ||
		strings.Contains(strings.ToLower(b.ISBN), lowerKeyword)
}

// bookFromFields builds a Book from a decoded line. fields must hold
// exactly three values.
func bookFromFields(fields []string) Book {
	return Book{Title: fields[0], Author: fields[1], ISBN: fields[2]}
}
