// Package geography loads the OFLC geography reference table and resolves
// free-text metro names to official area codes.
package geography

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/wage-cli/internal/fetcher"
)

// Reference table column names.
const (
	ColArea     = "Area"
	ColAreaName = "AreaName"
)

// ErrMissingColumn is returned when the reference table lacks a join column.
var ErrMissingColumn = eris.New("geography: missing required column")

// Area is one official geography record.
type Area struct {
	Code string `json:"id"`
	Name string `json:"name"`
}

// Mapping maps area codes to the first display name observed for each code.
// The reference table repeats a code once per county, so later names for a
// known code are ignored. Blank names never claim a code.
type Mapping struct {
	names map[string]string
	order []string // codes in first-seen file order
}

// NewMapping builds a Mapping from areas in file order.
func NewMapping(areas []Area) *Mapping {
	m := &Mapping{names: make(map[string]string, len(areas))}
	for _, a := range areas {
		m.add(a.Code, a.Name)
	}
	return m
}

func (m *Mapping) add(code, name string) {
	if name == "" {
		return
	}
	if _, ok := m.names[code]; ok {
		return
	}
	m.names[code] = name
	m.order = append(m.order, code)
}

// Len returns the number of distinct area codes.
func (m *Mapping) Len() int { return len(m.order) }

// Name returns the display name for code.
func (m *Mapping) Name(code string) (string, bool) {
	name, ok := m.names[code]
	return name, ok
}

// Candidates returns every area sorted by code ascending. Resolution scans
// candidates in this order, which makes first-match-wins reproducible.
func (m *Mapping) Candidates() []Area {
	out := m.collect()
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Areas returns every area sorted by display name, then code.
func (m *Mapping) Areas() []Area {
	out := m.collect()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Code < out[j].Code
	})
	return out
}

func (m *Mapping) collect() []Area {
	out := make([]Area, 0, len(m.order))
	for _, code := range m.order {
		out = append(out, Area{Code: code, Name: m.names[code]})
	}
	return out
}

// LoadMapping reads the geography reference table at path. Files ending in
// .xlsx are read as workbooks; anything else is parsed as CSV. All columns
// are kept as strings.
func LoadMapping(path string) (*Mapping, error) {
	log := zap.L().With(zap.String("path", path))
	log.Info("loading geography data")

	var (
		header []string
		rows   [][]string
		err    error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		header, rows, err = fetcher.ReadXLSXTable(path, fetcher.XLSXOptions{})
		if err != nil {
			return nil, eris.Wrapf(err, "geography: read %s", path)
		}
	} else {
		header, rows, err = readCSV(path)
		if err != nil {
			return nil, err
		}
	}

	m, err := buildMapping(header, rows)
	if err != nil {
		return nil, eris.Wrapf(err, "geography: load %s", path)
	}

	log.Info("loaded geography data", zap.Int("rows", len(rows)), zap.Int("areas", m.Len()))
	return m, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, eris.Wrap(err, "geography: open reference file")
	}
	defer f.Close() //nolint:errcheck

	br, err := fetcher.NewBatchReader(f, fetcher.CSVOptions{LazyQuotes: true, TrimSpace: true})
	if err != nil {
		return nil, nil, eris.Wrap(err, "geography: read reference file")
	}

	var rows [][]string
	for {
		batch, err := br.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, eris.Wrap(err, "geography: read reference file")
		}
		rows = append(rows, batch...)
	}
	return br.Header(), rows, nil
}

func buildMapping(header []string, rows [][]string) (*Mapping, error) {
	colIdx := fetcher.ColumnIndex(header)
	for _, col := range []string{ColArea, ColAreaName} {
		if _, ok := colIdx[col]; !ok {
			return nil, eris.Wrapf(ErrMissingColumn, "column %q", col)
		}
	}

	m := &Mapping{names: make(map[string]string)}
	for _, row := range rows {
		code := fetcher.Field(row, colIdx, ColArea)
		if code == "" {
			continue
		}
		m.add(code, fetcher.Field(row, colIdx, ColAreaName))
	}
	return m, nil
}
