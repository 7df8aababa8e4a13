package extract

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultDelimiter separates the stripped prefix segment from the kept value.
const DefaultDelimiter = "/"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options controls a single column extraction.
type Options struct {
	// Column is the 1-based field index.
	Column int
	// Prefix filters values when PrefixSet is true. An empty Prefix with
	// PrefixSet keeps every row but still strips it.
	Prefix    string
	PrefixSet bool
	// HasHeader excludes the first row.
	HasHeader bool
	// StrictIndex makes a short row fatal instead of skipping it.
	StrictIndex bool
	// Delimiter used by Strip. Empty means DefaultDelimiter.
	Delimiter string
}

func (o Options) delimiter() string {
	if o.Delimiter == "" {
		return DefaultDelimiter
	}
	return o.Delimiter
}

// File extracts the configured column from the CSV file at path.
func File(path string, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	defer f.Close()
	return extract(f, path, opts)
}

// Read extracts the configured column from r.
func Read(r io.Reader, opts Options) ([]string, error) {
	return extract(r, "input", opts)
}

// Strip returns everything after the first occurrence of delim in value.
// A value without delim yields the empty string.
func Strip(value, delim string) string {
	_, after, found := strings.Cut(value, delim)
	if !found {
		return ""
	}
	return after
}

func extract(r io.Reader, path string, opts Options) ([]string, error) {
	if opts.Column < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColumn, opts.Column)
	}

	cr := csv.NewReader(skipBOM(r))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	idx := opts.Column - 1
	delim := opts.delimiter()

	var (
		values   []string
		row      int
		short    int
		filtered int
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &InputError{Path: path, Row: row, Err: err}
		}
		if row == 1 && opts.HasHeader {
			continue
		}

		if idx >= len(record) {
			if opts.StrictIndex {
				return nil, fmt.Errorf("%s row %d: %w: the expected index '%d' was not found",
					path, row, ErrIndexNotFound, opts.Column)
			}
			short++
			continue
		}

		field := record[idx]
		if !opts.PrefixSet {
			values = append(values, field)
			continue
		}
		if !strings.HasPrefix(field, opts.Prefix) {
			filtered++
			continue
		}
		values = append(values, Strip(field, delim))
	}

	slog.Debug("extracted column",
		"path", path,
		"column", opts.Column,
		"rows", row,
		"kept", len(values),
		"filtered", filtered,
		"short", short,
	)
	return values, nil
}

// skipBOM drops a leading UTF-8 byte-order mark, which spreadsheet exports
// commonly prepend and which would otherwise end up in the first field.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
