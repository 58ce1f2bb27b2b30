// Package fetcher reads tabular OFLC inputs from CSV, XLSX, and ZIP sources.
package fetcher

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultBatchSize is the number of rows returned per batch when none is configured.
const DefaultBatchSize = 10000

// CSVOptions configures the batch CSV reader.
type CSVOptions struct {
	Delimiter  rune // default ','
	Comment    rune // comment character (0 = none)
	LazyQuotes bool
	TrimSpace  bool
	BatchSize  int // rows per batch, default DefaultBatchSize
}

// BatchReader reads a headed CSV stream in fixed-size row batches. It makes a
// single pass over the input and cannot be rewound.
type BatchReader struct {
	reader *csv.Reader
	header []string
	size   int
	trim   bool
	done   bool
	rows   int64
}

// NewBatchReader consumes the header row of r and returns a reader positioned
// at the first data row.
func NewBatchReader(r io.Reader, opts CSVOptions) (*BatchReader, error) {
	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	if opts.Comment != 0 {
		reader.Comment = opts.Comment
	}
	reader.LazyQuotes = opts.LazyQuotes
	reader.FieldsPerRecord = -1 // allow variable fields

	size := opts.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}

	header, err := reader.Read()
	if err == io.EOF {
		return nil, eris.New("csv: empty input, no header row")
	}
	if err != nil {
		return nil, eris.Wrap(err, "csv: read header")
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	return &BatchReader{
		reader: reader,
		header: header,
		size:   size,
		trim:   opts.TrimSpace,
	}, nil
}

// Header returns the trimmed header row.
func (b *BatchReader) Header() []string {
	return b.header
}

// Rows returns the number of data rows read so far.
func (b *BatchReader) Rows() int64 {
	return b.rows
}

// Next returns the next batch of at most BatchSize rows. The final batch may
// be short; after it Next returns io.EOF.
func (b *BatchReader) Next() ([][]string, error) {
	if b.done {
		return nil, io.EOF
	}

	batch := make([][]string, 0, b.size)
	for len(batch) < b.size {
		record, err := b.reader.Read()
		if err == io.EOF {
			b.done = true
			break
		}
		if err != nil {
			return nil, eris.Wrapf(err, "csv: read row %d", b.rows+1)
		}
		if b.trim {
			for i, field := range record {
				record[i] = strings.TrimSpace(field)
			}
		}
		b.rows++
		batch = append(batch, record)
	}

	if len(batch) == 0 {
		return nil, io.EOF
	}
	return batch, nil
}

// ColumnIndex maps header names to their positions. Duplicate names keep the
// first position.
func ColumnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		if _, ok := idx[col]; !ok {
			idx[col] = i
		}
	}
	return idx
}

// Field returns the named column of record, or "" when the column is absent
// or the record is short.
func Field(record []string, colIdx map[string]int, name string) string {
	i, ok := colIdx[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
