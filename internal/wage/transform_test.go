package wage

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnualize_SoftwareDevelopersScenario(t *testing.T) {
	records := []Record{
		{SocCode: "15-1252", Area: "35620", Levels: [4]string{"45.00", "55.00", "65.00", "75.00"}},
	}
	codeToMetro := map[string]string{"35620": "New York-Newark-Jersey City, NY-NJ"}

	rows := Annualize(records, codeToMetro)
	require.Len(t, rows, 1)
	assert.Equal(t, AnnualizedRow{
		Metro: "New York-Newark-Jersey City, NY-NJ",
		Area:  "35620",
		L1Yr:  93600,
		L2Yr:  114400,
		L3Yr:  135200,
		L4Yr:  156000,
	}, rows[0])
}

func TestAnnualize_ExactMultiplication(t *testing.T) {
	records := []Record{
		{Area: "1", Levels: [4]string{"40.87", "51.23", "61.6", "71.96"}},
	}
	rows := Annualize(records, map[string]string{"1": "One"})
	require.Len(t, rows, 1)

	got := []float64{rows[0].L1Yr, rows[0].L2Yr, rows[0].L3Yr, rows[0].L4Yr}
	for i, lvl := range records[0].Levels {
		hourly, err := strconv.ParseFloat(lvl, 64)
		require.NoError(t, err)
		assert.Equal(t, hourly*HoursPerYear, got[i], "level %d", i+1)
	}
}

func TestAnnualize_SortedByL2(t *testing.T) {
	records := []Record{
		{Area: "a", Levels: [4]string{"1", "30", "1", "1"}},
		{Area: "b", Levels: [4]string{"1", "10", "1", "1"}},
		{Area: "c", Levels: [4]string{"1", "20", "1", "1"}},
		{Area: "d", Levels: [4]string{"1", "10", "2", "1"}},
	}
	rows := Annualize(records, map[string]string{"a": "A", "b": "B", "c": "C", "d": "D"})
	require.Len(t, rows, 4)

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].L2Yr, rows[i].L2Yr)
	}
	// Ties keep extraction order.
	assert.Equal(t, []string{"B", "D", "C", "A"}, []string{rows[0].Metro, rows[1].Metro, rows[2].Metro, rows[3].Metro})
}

func TestAnnualize_DropsUnjoinedAreas(t *testing.T) {
	records := []Record{
		{Area: "1", Levels: [4]string{"1", "2", "3", "4"}},
		{Area: "2", Levels: [4]string{"1", "2", "3", "4"}},
	}
	rows := Annualize(records, map[string]string{"1": "One"})
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].Area)
}

func TestAnnualize_DropsNonNumericLevels(t *testing.T) {
	records := []Record{
		{Area: "1", Levels: [4]string{"1", "", "3", "4"}},
		{Area: "2", Levels: [4]string{"1", "2", "n/a", "4"}},
		{Area: "3", Levels: [4]string{" 1.5 ", "2", "3", "4"}},
	}
	rows := Annualize(records, map[string]string{"1": "One", "2": "Two", "3": "Three"})
	require.Len(t, rows, 1)
	assert.Equal(t, "Three", rows[0].Metro)
	assert.Equal(t, 1.5*HoursPerYear, rows[0].L1Yr)
}

func TestAnnualize_DropsNaNLevels(t *testing.T) {
	records := []Record{
		{Area: "1", Levels: [4]string{"40", "50", "60", "70"}},
		{Area: "2", Levels: [4]string{"40", "NaN", "60", "70"}},
		{Area: "3", Levels: [4]string{"5", "10", "15", "20"}},
		{Area: "4", Levels: [4]string{"Inf", "20", "30", "40"}},
		{Area: "5", Levels: [4]string{"1", "2", "3", "-inf"}},
	}
	codeToMetro := map[string]string{"1": "One", "2": "Two", "3": "Three", "4": "Four", "5": "Five"}

	rows := Annualize(records, codeToMetro)
	require.Len(t, rows, 2)
	assert.Equal(t, "Three", rows[0].Metro)
	assert.Equal(t, "One", rows[1].Metro)
	assert.Equal(t, []float64{20800, 104000}, []float64{rows[0].L2Yr, rows[1].L2Yr})
}

func TestAnnualize_Empty(t *testing.T) {
	assert.Empty(t, Annualize(nil, map[string]string{"1": "One"}))
}
