// internal/output/report.go
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/thackl/mbc-prime/core/report"
)

// WriteReport prints the locus report as TSV, one row per surviving window.
// A "# locus N" marker line precedes the first row of each locus. The three
// alignment display columns are only populated in verbose runs.
func WriteReport(w io.Writer, rows []report.Row, header, verbose bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	lastLocus := 0
	for _, r := range rows {
		if r.Locus != lastLocus {
			if _, err := fmt.Fprintf(w, "# locus %d\n", r.Locus); err != nil {
				return err
			}
			lastLocus = r.Locus
		}
		matched, incAln, excAln := "", "", ""
		if verbose {
			matched, incAln, excAln = r.Matched, r.IncAligned, r.ExcAligned
		}
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			r.Locus, r.Pos, r.TrimmedPos, r.Score,
			FractionsCSV(r.Inc), FractionsCSV(r.Exc),
			r.Forward, r.Reverse,
			matched, incAln, excAln,
			r.Info,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// FractionsCSV renders the five cumulative mismatch fractions rounded to two
// decimals, comma separated.
func FractionsCSV(f [5]float64) string {
	parts := make([]string, len(f))
	for i, v := range f {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, ",")
}
