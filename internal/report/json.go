package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"

	"github.com/sells-group/wage-cli/internal/geography"
	"github.com/sells-group/wage-cli/internal/wage"
)

// WagesFile is the per-occupation JSON export document.
type WagesFile struct {
	Soc        string               `json:"soc"`
	Occupation string               `json:"occupation"`
	Summary    wage.Summary         `json:"summary"`
	Wages      []wage.AnnualizedRow `json:"wages"`
}

// WriteAreasJSON writes every geography area, sorted by name, to
// dir/areas.json.
func WriteAreasJSON(dir string, areas []geography.Area) (string, error) {
	if areas == nil {
		areas = []geography.Area{}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "report: create %s", dir)
	}
	path := filepath.Join(dir, "areas.json")
	if err := writeJSON(path, areas, true); err != nil {
		return "", err
	}
	return path, nil
}

// WriteWagesJSON writes one occupation's rows to dir/wages/<soc>.json.
func WriteWagesJSON(dir string, occ wage.Occupation, rows []wage.AnnualizedRow) (string, error) {
	wagesDir := filepath.Join(dir, "wages")
	if err := os.MkdirAll(wagesDir, 0o755); err != nil {
		return "", eris.Wrapf(err, "report: create %s", wagesDir)
	}

	doc := WagesFile{
		Soc:        occ.SocCode,
		Occupation: occ.Name,
		Summary:    wage.Summarize(rows),
		Wages:      rows,
	}
	path := filepath.Join(wagesDir, occ.SocCode+".json")
	if err := writeJSON(path, doc, false); err != nil {
		return "", err
	}
	return path, nil
}

func writeJSON(path string, v any, indent bool) error {
	var (
		data []byte
		err  error
	)
	if indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return eris.Wrapf(err, "report: marshal %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "report: write %s", path)
	}
	return nil
}
