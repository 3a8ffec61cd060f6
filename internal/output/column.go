// internal/output/column.go
package output

import (
	"fmt"
	"io"

	"github.com/thackl/mbc-prime/core/alignment"
	"github.com/thackl/mbc-prime/core/colscore"
)

// WriteColumnScores prints the legacy per-column score table: original and
// trimmed coordinates (1-based), the MCC/F-beta statistic, the conservation
// signal, and the window-averaged consensus value re-aligned to columns.
func WriteColumnScores(w io.Writer, results []colscore.Result, colMap alignment.ColumnIndexMap, consensus []float64, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ColumnTSVHeader); err != nil {
			return err
		}
	}
	for i, res := range results {
		pos := 0
		if i < len(colMap) {
			pos = colMap[i] + 1
		}
		cons := 0.0
		if i < len(consensus) {
			cons = consensus[i]
		}
		_, err := fmt.Fprintf(w, "%d\t%d\t%.2f\t%.2f\t%.2f\n",
			pos, i+1, res.Score, res.Conservation, cons)
		if err != nil {
			return err
		}
	}
	return nil
}
