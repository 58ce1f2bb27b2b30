package report

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/wage-cli/internal/wage"
)

// csvColumns defines the ordered report CSV columns.
var csvColumns = []string{"Metro", "Area", "L1_yr", "L2_yr", "L3_yr", "L4_yr"}

// FileName returns the CSV file name for an occupation:
// "Software Developers" → "Software_Developers_wages.csv".
func FileName(occupation string) string {
	return strings.ReplaceAll(occupation, " ", "_") + "_wages.csv"
}

// WriteCSV writes rows to path. Output depends only on rows, so identical
// input yields a byte-identical file.
func WriteCSV(path string, rows []wage.AnnualizedRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return eris.Wrap(err, "report: write csv header")
	}
	for _, r := range rows {
		record := []string{
			r.Metro,
			r.Area,
			formatAnnual(r.L1Yr),
			formatAnnual(r.L2Yr),
			formatAnnual(r.L3Yr),
			formatAnnual(r.L4Yr),
		}
		if err := w.Write(record); err != nil {
			return eris.Wrap(err, "report: write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "report: flush csv")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	return nil
}

// formatAnnual renders v in shortest round-trip form, always with a decimal
// point: 93600 → "93600.0", 106038.4 → "106038.4".
func formatAnnual(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
