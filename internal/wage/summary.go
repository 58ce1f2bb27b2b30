package wage

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the spread of the L2 annual wage across a report.
type Summary struct {
	Count    int     `json:"count"`
	MinL2    float64 `json:"min_l2_yr"`
	MaxL2    float64 `json:"max_l2_yr"`
	MeanL2   float64 `json:"mean_l2_yr"`
	MedianL2 float64 `json:"median_l2_yr"`
}

// Summarize computes L2Yr statistics. The median is the empirical 50th
// percentile (the lower middle value for even counts).
func Summarize(rows []AnnualizedRow) Summary {
	if len(rows) == 0 {
		return Summary{}
	}

	l2 := make([]float64, len(rows))
	for i, r := range rows {
		l2[i] = r.L2Yr
	}
	sort.Float64s(l2)

	return Summary{
		Count:    len(l2),
		MinL2:    l2[0],
		MaxL2:    l2[len(l2)-1],
		MeanL2:   stat.Mean(l2, nil),
		MedianL2: stat.Quantile(0.5, stat.Empirical, l2, nil),
	}
}
