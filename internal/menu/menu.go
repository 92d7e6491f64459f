// Package menu runs the interactive catalog menu: a numbered list of
// actions re-prompted until the user exits or input ends.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/emoji"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/catalog"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Selection values shown in the menu.
const (
	SelectAdd    = "1"
	SelectSearch = "2"
	SelectDelete = "3"
	SelectList   = "4"
	SelectExit   = "5"
)

const menuText = `
%s Book Catalog
  1. Add book
  2. Search books
  3. Delete book
  4. List all books
  5. Exit
`

// Menu drives the interactive loop over a single store.
type Menu struct {
	store  *catalog.Store
	in     io.Reader
	lines  <-chan string
	out    io.Writer
	alerts alerts.Writer
	format output.Format
	logger *zerolog.Logger
}

// Option configures a Menu.
type Option func(*Menu)

// WithAlerts sets the writer used for status lines.
func WithAlerts(w alerts.Writer) Option {
	return func(m *Menu) {
		if w != nil {
			m.alerts = w
		}
	}
}

// WithFormat sets the format used to print book lists.
func WithFormat(format output.Format) Option {
	return func(m *Menu) {
		m.format = format
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Menu) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a Menu reading selections from in and writing to out.
func New(store *catalog.Store, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		store:  store,
		in:     in,
		out:    out,
		alerts: alerts.NewWriterTo(out),
		format: output.FormatTable,
		logger: logging.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// readLines feeds trimmed input lines into a channel that is closed at EOF.
// Closing done releases the reader once the consumer stops listening.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case ch <- strings.TrimSpace(scanner.Text()):
			case <-done:
				return
			}
		}
	}()
	return ch
}

// Run shows the menu until the user selects exit or input ends, both of
// which return nil. Cancelling ctx returns ctx.Err().
func (m *Menu) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	m.lines = readLines(m.in, done)

	for {
		fmt.Fprintf(m.out, menuText, emoji.Book)

		selection, err := m.prompt(ctx, "Select an option: ")
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		m.logger.Debug().Str("selection", selection).Msg("Menu selection")

		switch selection {
		case SelectAdd:
			err = m.add(ctx)
		case SelectSearch:
			err = m.search(ctx)
		case SelectDelete:
			err = m.delete(ctx)
		case SelectList:
			err = m.list()
		case SelectExit:
			return m.alerts.WriteAlert(alerts.NewInfo("Goodbye"))
		default:
			err = m.alerts.WriteAlert(alerts.NewError(fmt.Sprintf("Invalid selection %q, choose 1-5", selection)))
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// prompt writes label and waits for the next input line.
func (m *Menu) prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(m.out, label)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-m.lines:
		if !ok {
			fmt.Fprintln(m.out)
			return "", io.EOF
		}
		return line, nil
	}
}

func (m *Menu) add(ctx context.Context) error {
	title, err := m.prompt(ctx, "Title: ")
	if err != nil {
		return err
	}
	author, err := m.prompt(ctx, "Author: ")
	if err != nil {
		return err
	}
	isbn, err := m.prompt(ctx, "ISBN: ")
	if err != nil {
		return err
	}

	book, err := m.store.Add(title, author, isbn)
	switch {
	case errors.IsAlreadyExists(err):
		return m.alerts.WriteAlert(alerts.NewWarning(fmt.Sprintf("A book with ISBN %s already exists", isbn)))
	case err != nil:
		return m.alerts.WriteAlert(alerts.NewError("Could not add book").WithError(err))
	}
	return m.alerts.WriteAlert(alerts.NewSuccess(fmt.Sprintf("Added %s", book)))
}

func (m *Menu) search(ctx context.Context) error {
	keyword, err := m.prompt(ctx, "Keyword: ")
	if err != nil {
		return err
	}

	results := m.store.Search(keyword)
	if len(results) == 0 {
		return m.alerts.WriteAlert(alerts.NewInfo(fmt.Sprintf("No books matched %q", keyword)))
	}

	if err := m.alerts.WriteAlert(alerts.NewInfo(fmt.Sprintf("Found %d book(s)", len(results)))); err != nil {
		return err
	}
	return output.FormatBooks(m.out, results, m.format)
}

func (m *Menu) delete(ctx context.Context) error {
	isbn, err := m.prompt(ctx, "ISBN: ")
	if err != nil {
		return err
	}

	removed, err := m.store.Delete(isbn)
	switch {
	case errors.IsNotFound(err):
		return m.alerts.WriteAlert(alerts.NewInfo(fmt.Sprintf("No book with ISBN %s", isbn)))
	case err != nil:
		return m.alerts.WriteAlert(alerts.NewError("Could not delete book").WithError(err))
	}
	return m.alerts.WriteAlert(alerts.NewSuccess(fmt.Sprintf("Deleted %d book(s) with ISBN %s", removed, isbn)))
}

func (m *Menu) list() error {
	books := m.store.List()
	if len(books) == 0 {
		return m.alerts.WriteAlert(alerts.NewInfo("The catalog is empty"))
	}
	return output.FormatBooks(m.out, books, m.format)
}
