package wage

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Annualize joins records to their metro names, converts the four hourly
// levels to annual figures and sorts the result by L2Yr ascending. Records
// whose area has no metro are dropped silently; records with a level that is
// not a finite number (including NaN and Inf) are dropped with a warning.
func Annualize(records []Record, codeToMetro map[string]string) []AnnualizedRow {
	rows := make([]AnnualizedRow, 0, len(records))
	for _, rec := range records {
		metro, ok := codeToMetro[rec.Area]
		if !ok {
			continue
		}

		var yearly [4]float64
		valid := true
		for i, lvl := range rec.Levels {
			hourly, err := strconv.ParseFloat(strings.TrimSpace(lvl), 64)
			if err != nil || math.IsNaN(hourly) || math.IsInf(hourly, 0) {
				zap.L().Warn("dropping wage row with non-numeric level",
					zap.String("soc_code", rec.SocCode),
					zap.String("area", rec.Area),
					zap.Int("level", i+1),
					zap.String("value", lvl),
				)
				valid = false
				break
			}
			yearly[i] = hourly * HoursPerYear
		}
		if !valid {
			continue
		}

		rows = append(rows, AnnualizedRow{
			Metro: metro,
			Area:  rec.Area,
			L1Yr:  yearly[0],
			L2Yr:  yearly[1],
			L3Yr:  yearly[2],
			L4Yr:  yearly[3],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].L2Yr < rows[j].L2Yr })
	return rows
}
