package catalog

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Codec encodes a Book to one persisted line and decodes a line back into
// its raw fields. Decode does not check the field count; the Store does.
type Codec interface {
	Name() string
	Encode(book Book) (string, error)
	Decode(line string) ([]string, error)
}

// Row format names accepted by ParseCodec.
const (
	RowFormatPlain  = "plain"
	RowFormatQuoted = "quoted"
)

// ParseCodec returns the codec registered under name.
func ParseCodec(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case RowFormatPlain:
		return PlainCodec{}, nil
	case RowFormatQuoted, "csv", "":
		return QuotedCodec{}, nil
	default:
		return nil, errors.NewValidationError("row_format", name, "must be one of: plain, quoted")
	}
}

// PlainCodec joins and splits fields on a bare comma. Nothing is escaped,
// so a field containing a comma changes the field count of its line.
type PlainCodec struct{}

// Name implements Codec.
func (PlainCodec) Name() string { return RowFormatPlain }

// Encode implements Codec.
func (PlainCodec) Encode(book Book) (string, error) {
	return strings.Join(book.Fields(), constants.FieldDelimiter), nil
}

// Decode implements Codec.
func (PlainCodec) Decode(line string) ([]string, error) {
	return strings.Split(line, constants.FieldDelimiter), nil
}

// QuotedCodec writes RFC 4180 rows, quoting a field only when it holds a
// comma, a quote or leading whitespace. Unquoted rows are identical to
// PlainCodec output, so plain files load unchanged.
type QuotedCodec struct{}

// Name implements Codec.
func (QuotedCodec) Name() string { return RowFormatQuoted }

// Encode implements Codec.
func (QuotedCodec) Encode(book Book) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(book.Fields()); err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// Decode implements Codec.
func (QuotedCodec) Decode(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	fields, err := r.Read()
	if err == io.EOF {
		// csv treats a blank line as no record at all
		return []string{""}, nil
	}
	if err != nil {
		return nil, err
	}
	return fields, nil
}
