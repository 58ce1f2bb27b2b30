package report

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/wage-cli/internal/wage"
)

// Console prints each table to Out and saves it as CSV under Dir.
type Console struct {
	Out io.Writer
	Dir string
	cur *Currency
}

// NewConsole returns a Console renderer.
func NewConsole(out io.Writer, dir string) *Console {
	return &Console{Out: out, Dir: dir, cur: NewCurrency()}
}

// Render prints the table and writes the occupation CSV. It returns the CSV
// path.
func (c *Console) Render(occ wage.Occupation, rows []wage.AnnualizedRow) (string, error) {
	if err := WriteTable(c.Out, occ.Name, rows, c.cur); err != nil {
		return "", eris.Wrap(err, "report: print table")
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "report: create %s", c.Dir)
	}
	path := filepath.Join(c.Dir, FileName(occ.Name))
	if err := WriteCSV(path, rows); err != nil {
		return "", err
	}

	zap.L().Info("saved report", zap.String("occupation", occ.Name), zap.String("path", path))
	return path, nil
}

// JSON writes each table as a wages/<soc>.json export under Dir.
type JSON struct {
	Dir string
}

// Render writes the occupation export and returns its path.
func (j *JSON) Render(occ wage.Occupation, rows []wage.AnnualizedRow) (string, error) {
	path, err := WriteWagesJSON(j.Dir, occ, rows)
	if err != nil {
		return "", err
	}
	zap.L().Info("saved wage export", zap.String("occupation", occ.Name), zap.String("path", path))
	return path, nil
}
