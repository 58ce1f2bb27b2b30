package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/wage-cli/internal/geography"
	"github.com/sells-group/wage-cli/internal/report"
	"github.com/sells-group/wage-cli/internal/wage"
)

const testGeography = `Area,AreaName,StateAb,State,CountyTownName
35620,"New York-Newark-Jersey City, NY-NJ-PA",NY,New York,Bronx County
35620,"New York-Newark-Jersey City, NY-NJ",NJ,New Jersey,Bergen County
18140,"Columbus, OH",OH,Ohio,Franklin County
17980,"Columbus, GA-AL",GA,Georgia,Muscogee County
31540,"Madison, WI",WI,Wisconsin,Dane County
`

const testWages = `Area,SocCode,GeoLvl,Level1,Level2,Level3,Level4,Average,Label
35620,15-1252,1,45.00,55.00,65.00,75.00,60.00,x
17980,15-1252,1,20.00,25.00,30.00,35.00,27.50,x
18140,15-1252,1,35.00,40.00,50.00,60.00,46.25,x
31540,15-1252,1,30.00,38.00,44.00,50.00,40.50,x
18140,17-2171,1,50.00,60.00,70.00,80.00,65.00,x
`

func testTargets() wage.Targets {
	return wage.Targets{
		Metros: []string{
			"New York-Newark-Jersey City, NY-NJ",
			"Columbus, OH",
			"Madison, WI",
			"Boise City, ID",
		},
		Occupations: []wage.Occupation{
			{Name: "Software Developers", SocCode: "15-1252"},
			{Name: "Actors", SocCode: "27-2011"},
			{Name: "Petroleum Engineers", SocCode: "17-2171"},
		},
	}
}

func writeInputs(t *testing.T, geo, wages string) Options {
	t.Helper()
	dir := t.TempDir()
	opts := Options{
		GeographyPath: filepath.Join(dir, "Geography.csv"),
		WagesPath:     filepath.Join(dir, "ALC_Export.csv"),
		ChunkSize:     2,
	}
	require.NoError(t, os.WriteFile(opts.GeographyPath, []byte(geo), 0o644))
	require.NoError(t, os.WriteFile(opts.WagesPath, []byte(wages), 0o644))
	return opts
}

type recordingRenderer struct {
	calls []wage.Occupation
	rows  map[string][]wage.AnnualizedRow
	err   error
	clock *clockwork.FakeClock
}

func (r *recordingRenderer) Render(occ wage.Occupation, rows []wage.AnnualizedRow) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.clock != nil {
		r.clock.Advance(2 * time.Second)
	}
	if r.rows == nil {
		r.rows = make(map[string][]wage.AnnualizedRow)
	}
	r.calls = append(r.calls, occ)
	r.rows[occ.SocCode] = rows
	return occ.SocCode + ".out", nil
}

func TestRun_EndToEnd(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	rec := &recordingRenderer{}

	result, err := New(opts, rec).Run(context.Background(), testTargets())
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, []string{"Boise City, ID"}, result.Resolution.Unresolved)
	assert.Equal(t, "18140", result.Resolution.Codes["Columbus, OH"])

	// Zero-match occupation is skipped without stopping the run.
	assert.Equal(t, []wage.Occupation{{Name: "Actors", SocCode: "27-2011"}}, result.Empty)
	require.Len(t, result.Reports, 2)
	assert.Equal(t, []wage.Occupation{
		{Name: "Software Developers", SocCode: "15-1252"},
		{Name: "Petroleum Engineers", SocCode: "17-2171"},
	}, rec.calls)

	want := []wage.AnnualizedRow{
		{Metro: "Madison, WI", Area: "31540", L1Yr: 62400, L2Yr: 79040, L3Yr: 91520, L4Yr: 104000},
		{Metro: "Columbus, OH", Area: "18140", L1Yr: 72800, L2Yr: 83200, L3Yr: 104000, L4Yr: 124800},
		{Metro: "New York-Newark-Jersey City, NY-NJ", Area: "35620", L1Yr: 93600, L2Yr: 114400, L3Yr: 135200, L4Yr: 156000},
	}
	if diff := cmp.Diff(want, result.Reports[0].Rows); diff != "" {
		t.Errorf("Software Developers rows mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "15-1252.out", result.Reports[0].Path)
	assert.Equal(t, 3, result.Reports[0].Summary.Count)
	assert.Equal(t, 83200.0, result.Reports[0].Summary.MedianL2)
}

func TestRun_OutputRowsRespectFilters(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	result, err := New(opts, &recordingRenderer{}).Run(context.Background(), testTargets())
	require.NoError(t, err)

	codes := result.Resolution.CodeSet()
	for _, rep := range result.Reports {
		for i, row := range rep.Rows {
			_, ok := codes[row.Area]
			assert.True(t, ok, "area %s not resolved", row.Area)
			// Columbus GA-AL must never leak in.
			assert.NotEqual(t, "17980", row.Area)
			if i > 0 {
				assert.LessOrEqual(t, rep.Rows[i-1].L2Yr, row.L2Yr)
			}
		}
	}
}

func TestRun_NoResolvedMetros(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	targets := wage.Targets{
		Metros:      []string{"Nowhere, ZZ"},
		Occupations: testTargets().Occupations,
	}
	rec := &recordingRenderer{}

	result, err := New(opts, rec).Run(context.Background(), targets)
	require.NoError(t, err)
	assert.Empty(t, result.Reports)
	assert.Len(t, result.Empty, 3)
	assert.Empty(t, rec.calls)
}

func TestRun_MissingGeographyIsFatal(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	opts.GeographyPath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := New(opts, &recordingRenderer{}).Run(context.Background(), testTargets())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pipeline: load geography")
}

func TestRun_MissingWagesIsFatal(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	opts.WagesPath = filepath.Join(t.TempDir(), "missing.csv")

	_, err := New(opts, &recordingRenderer{}).Run(context.Background(), testTargets())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wage: open wage file")
}

func TestRun_MalformedWageSchemaIsFatal(t *testing.T) {
	opts := writeInputs(t, testGeography, "Area,Soc,Level1\n35620,15-1252,1\n")

	_, err := New(opts, &recordingRenderer{}).Run(context.Background(), testTargets())
	require.Error(t, err)
	assert.True(t, eris.Is(err, wage.ErrMissingColumn))
}

func TestRun_MalformedGeographySchemaIsFatal(t *testing.T) {
	opts := writeInputs(t, "Code,Name\n1,One\n", testWages)

	_, err := New(opts, &recordingRenderer{}).Run(context.Background(), testTargets())
	require.Error(t, err)
	assert.True(t, eris.Is(err, geography.ErrMissingColumn))
}

func TestRun_RendererErrorPropagates(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)

	_, err := New(opts, &recordingRenderer{err: eris.New("disk full")}).Run(context.Background(), testTargets())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRun_NoRenderer(t *testing.T) {
	_, err := New(Options{}, nil).Run(context.Background(), testTargets())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no renderer")
}

func TestRun_CancelledContext(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(opts, &recordingRenderer{}).Run(ctx, testTargets())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context cancelled")
}

func TestRun_ElapsedUsesClock(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	clock := clockwork.NewFakeClock()
	opts.Clock = clock

	result, err := New(opts, &recordingRenderer{clock: clock}).Run(context.Background(), testTargets())
	require.NoError(t, err)
	assert.Equal(t, 4*time.Second, result.Elapsed)
}

func TestRun_CSVOutputIsIdempotent(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)
	targets := testTargets()

	runOnce := func() map[string][]byte {
		dir := t.TempDir()
		var out bytes.Buffer
		result, err := New(opts, report.NewConsole(&out, dir)).Run(context.Background(), targets)
		require.NoError(t, err)

		files := make(map[string][]byte)
		for _, rep := range result.Reports {
			data, err := os.ReadFile(rep.Path)
			require.NoError(t, err)
			files[filepath.Base(rep.Path)] = data
		}
		// No CSV for the zero-match occupation.
		_, err = os.Stat(filepath.Join(dir, report.FileName("Actors")))
		assert.True(t, os.IsNotExist(err))
		return files
	}

	first, second := runOnce(), runOnce()
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Software_Developers_wages.csv")
	assert.Contains(t, first, "Petroleum_Engineers_wages.csv")
}

func TestResolve(t *testing.T) {
	opts := writeInputs(t, testGeography, testWages)

	mapping, res, err := New(opts, nil).Resolve(testTargets())
	require.NoError(t, err)
	assert.Equal(t, 4, mapping.Len())
	assert.Equal(t, []string{"New York-Newark-Jersey City, NY-NJ", "Columbus, OH", "Madison, WI"}, res.Resolved)
}
