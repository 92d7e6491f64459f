package catalog

import (
	"slices"
	"strings"
	"sync"
)

// Books is a concurrent safe, insertion-ordered list of books.
type Books struct {
	mu    sync.RWMutex
	books []Book
}

// BooksOption defines a function that configures a Books instance.
type BooksOption func(*Books)

// WithBooksCapacity sets the initial capacity of the list.
func WithBooksCapacity(capacity int) BooksOption {
	return func(b *Books) {
		b.books = make([]Book, 0, capacity)
	}
}

// WithBooksSlice initializes the list with a copy of existing books.
func WithBooksSlice(books []Book) BooksOption {
	return func(b *Books) {
		b.books = slices.Clone(books)
	}
}

// NewBooks creates a new Books list with optional configuration.
func NewBooks(opts ...BooksOption) *Books {
	b := &Books{}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Len returns the number of books.
func (b *Books) Len() int {
	b.mu.RLock()
	length := len(b.books)
	b.mu.RUnlock()
	return length
}

// List returns a copy of all books in insertion order.
func (b *Books) List() []Book {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.books)
}

// Exists reports whether any book has exactly the given isbn.
func (b *Books) Exists(isbn string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, book := range b.books {
		if book.ISBN == isbn {
			return true
		}
	}
	return false
}

// Append adds a book to the end of the list without any duplicate check.
func (b *Books) Append(book Book) {
	b.mu.Lock()
	b.books = append(b.books, book)
	b.mu.Unlock()
}

// RemoveISBN removes every book whose isbn equals the given value exactly
// and returns the removed books.
func (b *Books) RemoveISBN(isbn string) []Book {
	b.mu.Lock()
	defer b.mu.Unlock()

	var removed []Book
	kept := b.books[:0:0]
	for _, book := range b.books {
		if book.ISBN == isbn {
			removed = append(removed, book)
			continue
		}
		kept = append(kept, book)
	}

	if len(removed) > 0 {
		b.books = kept
	}
	return removed
}

// Search returns all books matching keyword in title, author or isbn,
// case-insensitively, in list order. An empty keyword matches everything.
func (b *Books) Search(keyword string) []Book {
	lower := strings.ToLower(keyword)

	b.mu.RLock()
	defer b.mu.RUnlock()

	matches := make([]Book, 0)
	for _, book := range b.books {
		if book.Matches(lower) {
			matches = append(matches, book)
		}
	}
	return matches
}

// Replace swaps the whole list for a copy of books.
func (b *Books) Replace(books []Book) {
	b.mu.Lock()
	b.books = slices.Clone(books)
	b.mu.Unlock()
}

// ForEach applies a function to each book in order.
// If the function returns false, iteration stops early.
func (b *Books) ForEach(fn func(index int, book Book) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, book := range b.books {
		if !fn(i, book) {
			break
		}
	}
}
