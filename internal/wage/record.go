// Package wage extracts OFLC prevailing-wage rows and annualizes them.
package wage

import "github.com/rotisserie/eris"

// HoursPerYear is the full-time hour count used to annualize hourly levels.
const HoursPerYear = 2080

// ALC export column names.
const (
	ColArea    = "Area"
	ColSocCode = "SocCode"
	ColLevel1  = "Level1"
	ColLevel2  = "Level2"
	ColLevel3  = "Level3"
	ColLevel4  = "Level4"
)

var requiredColumns = []string{ColArea, ColSocCode, ColLevel1, ColLevel2, ColLevel3, ColLevel4}

// ErrMissingColumn is returned when the wage file lacks a required column.
var ErrMissingColumn = eris.New("wage: missing required column")

// Record is one wage survey row. Keys and levels are kept exactly as they
// appear in the file.
type Record struct {
	SocCode string
	Area    string
	Levels  [4]string // hourly Level1..Level4
}

// AnnualizedRow is one report line: a metro and its four annual wage levels.
type AnnualizedRow struct {
	Metro string  `json:"metro"`
	Area  string  `json:"area_id"`
	L1Yr  float64 `json:"l1_yr"`
	L2Yr  float64 `json:"l2_yr"`
	L3Yr  float64 `json:"l3_yr"`
	L4Yr  float64 `json:"l4_yr"`
}
