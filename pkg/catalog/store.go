package catalog

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// maxLineSize bounds a single persisted line.
const maxLineSize = 1 << 20

// LoadReport describes the outcome of Store.Load.
type LoadReport struct {
	Path    string
	Loaded  int
	Skipped []*errors.ParseError
}

// Store holds the catalog in memory and mirrors it to a flat file after
// every mutation. The in-memory list is authoritative while the process
// runs; the file is authoritative at Load.
type Store struct {
	mu     sync.Mutex
	books  *Books
	path   string
	codec  Codec
	logger *zerolog.Logger
}

// New creates a Store and, unless WithAutoLoad(false) is given, loads the
// backing file. A missing file yields an empty catalog.
func New(opts ...Option) (*Store, error) {
	o := defaults()
	for _, opt := range opts {
		opt(o)
	}

	s := &Store{
		books:  NewBooks(),
		path:   o.path,
		codec:  o.codec,
		logger: o.logger,
	}

	if o.autoLoad {
		if _, err := s.Load(); err != nil {
			return nil, errors.WrapResource("load", "catalog", s.path, err)
		}
	}

	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Codec returns the row codec.
func (s *Store) Codec() Codec {
	return s.codec
}

// Len returns the number of books in memory.
func (s *Store) Len() int {
	return s.books.Len()
}

// List returns every book in catalog order.
func (s *Store) List() []Book {
	return s.books.List()
}

// Search returns books whose title, author or isbn contains keyword,
// ignoring case, in catalog order. No match is an empty slice.
func (s *Store) Search(keyword string) []Book {
	return s.books.Search(keyword)
}

// Load replaces the in-memory catalog with the contents of the backing
// file. Lines that do not decode into exactly three fields are skipped and
// reported; the rest of the file still loads.
func (s *Store) Load() (LoadReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := LoadReport{Path: s.path}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.books.Replace(nil)
			s.logger.Debug().Str("path", s.path).Msg("Catalog file not found, starting empty")
			return report, nil
		}
		return report, errors.WrapIO("open", s.path, err)
	}
	defer f.Close()

	var loaded []Book
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")

		book, perr := s.decodeLine(line, lineNo)
		if perr != nil {
			report.Skipped = append(report.Skipped, perr)
			s.logger.Warn().
				Str("path", s.path).
				Int("line", lineNo).
				Str("content", line).
				Msg("Skipping malformed catalog line")
			continue
		}
		loaded = append(loaded, book)
	}
	if err := scanner.Err(); err != nil {
		return report, errors.WrapIO("read", s.path, err)
	}

	s.books.Replace(loaded)
	report.Loaded = len(loaded)

	s.logger.Info().
		Str("path", s.path).
		Int("loaded", report.Loaded).
		Int("skipped", len(report.Skipped)).
		Msg("Loaded catalog")

	return report, nil
}

// decodeLine parses one persisted line into a Book.
func (s *Store) decodeLine(line string, lineNo int) (Book, *errors.ParseError) {
	fields, err := s.codec.Decode(line)
	if err != nil {
		return Book{}, &errors.ParseError{
			Format:  s.codec.Name(),
			File:    s.path,
			Line:    lineNo,
			Message: err.Error(),
			Err:     err,
		}
	}
	if len(fields) != constants.FieldsPerRecord {
		return Book{}, &errors.ParseError{
			Format:  s.codec.Name(),
			File:    s.path,
			Line:    lineNo,
			Message: fmt.Sprintf("expected %d fields, got %d", constants.FieldsPerRecord, len(fields)),
		}
	}
	return bookFromFields(fields), nil
}

// Save overwrites the backing file with the current catalog and returns the
// number of books written. The write is not atomic.
func (s *Store) Save() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

func (s *Store) save() (int, error) {
	books := s.books.List()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return 0, errors.WrapIO("create", s.path, err)
	}

	w := bufio.NewWriter(f)
	for _, book := range books {
		line, err := s.codec.Encode(book)
		if err != nil {
			f.Close()
			return 0, errors.WrapIO("write", s.path, err)
		}
		if _, err := w.WriteString(line + "\n"); err != nil {
			f.Close()
			return 0, errors.WrapIO("write", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return 0, errors.WrapIO("write", s.path, err)
	}
	if err := f.Close(); err != nil {
		return 0, errors.WrapIO("close", s.path, err)
	}

	s.logger.Info().Str("path", s.path).Int("saved", len(books)).Msg("Saved catalog")
	return len(books), nil
}

// Add appends a new book and saves the catalog. A book whose isbn is already
// present is rejected with an AlreadyExistsError and nothing is written.
func (s *Store) Add(title, author, isbn string) (Book, error) {
	book := Book{Title: title, Author: author, ISBN: isbn}
	if err := validate(book); err != nil {
		return Book{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.books.Exists(isbn) {
		s.logger.Debug().Str("isbn", isbn).Msg("Rejected duplicate isbn")
		return Book{}, errors.NewAlreadyExistsError("book with ISBN", isbn)
	}

	previous := s.books.List()
	s.books.Append(book)
	if _, err := s.save(); err != nil {
		s.books.Replace(previous)
		return Book{}, err
	}

	return book, nil
}

// Delete removes every book whose isbn equals the argument exactly and
// saves the catalog. It returns the number removed, or a NotFoundError when
// nothing matched, in which case the file is left untouched.
func (s *Store) Delete(isbn string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.books.List()
	removed := s.books.RemoveISBN(isbn)
	if len(removed) == 0 {
		return 0, errors.NewNotFoundError("book with ISBN", isbn)
	}

	if _, err := s.save(); err != nil {
		s.books.Replace(previous)
		return 0, err
	}

	if len(removed) > 1 {
		s.logger.Warn().Str("isbn", isbn).Int("removed", len(removed)).Msg("Removed duplicate isbn entries")
	}
	return len(removed), nil
}

// validate rejects field values that cannot live on a single line.
func validate(book Book) error {
	checks := []struct {
		field string
		value string
	}{
		{"title", book.Title},
		{"author", book.Author},
		{"isbn", book.ISBN},
	}
	for _, c := range checks {
		if strings.ContainsAny(c.value, "\r\n") {
			return errors.NewValidationError(c.field, c.value, "must not contain line breaks")
		}
	}
	return nil
}
