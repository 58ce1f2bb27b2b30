// Package report renders annualized wage tables to the console, CSV, and JSON.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/wage-cli/internal/wage"
)

const tableWidth = 120

// Currency formats an annual wage as whole US dollars with thousands
// separators, e.g. 114400 → "$114,400".
type Currency struct {
	p *message.Printer
}

// NewCurrency returns a US-English currency formatter.
func NewCurrency() *Currency {
	return &Currency{p: message.NewPrinter(language.AmericanEnglish)}
}

// Format rounds v half-to-even and renders it with a dollar sign.
func (c *Currency) Format(v float64) string {
	return "$" + c.p.Sprintf("%d", int64(math.RoundToEven(v)))
}

// WriteTable prints the aligned console table for one occupation.
func WriteTable(w io.Writer, title string, rows []wage.AnnualizedRow, cur *Currency) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", title)
	b.WriteString(strings.Repeat("=", tableWidth))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%-50s %10s %15s %15s %15s %15s\n",
		"Metro Area", "Area Code", "L1 (Annual)", "L2 (Annual)", "L3 (Annual)", "L4 (Annual)")
	b.WriteString(strings.Repeat("-", tableWidth))
	b.WriteByte('\n')

	for _, r := range rows {
		fmt.Fprintf(&b, "%-50s %10s %15s %15s %15s %15s\n",
			r.Metro, r.Area,
			cur.Format(r.L1Yr), cur.Format(r.L2Yr), cur.Format(r.L3Yr), cur.Format(r.L4Yr))
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
