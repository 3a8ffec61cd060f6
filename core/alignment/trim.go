// core/alignment/trim.go
package alignment

import (
	"math"

	"github.com/thackl/mbc-prime/core/nucleo"
)

// ColumnIndexMap maps a post-trim column index back to its original
// pre-trim column. Built once by Trim, read-only afterwards.
type ColumnIndexMap []int

// Trim drops low-information columns: a column survives when its count of
// unambiguous bases is at least round(rows * minCanonFraction). Returns the
// trimmed alignment and the index map back to original coordinates. If every
// column is dropped the result is an empty alignment (zero windows, not an
// error).
func Trim(aln Alignment, minCanonFraction float64) (Alignment, ColumnIndexMap) {
	rows := aln.Rows()
	if rows == 0 {
		return Alignment{}, nil
	}
	threshold := int(math.Round(float64(rows) * minCanonFraction))

	var keep ColumnIndexMap
	col := make([]byte, rows)
	for i := 0; i < aln.Len(); i++ {
		col = aln.Column(i, col)
		if nucleo.CountCanonical(col) >= threshold {
			keep = append(keep, i)
		}
	}

	out := Alignment{Records: make([]Record, rows)}
	for r, rec := range aln.Records {
		seq := make([]byte, len(keep))
		for j, i := range keep {
			seq[j] = rec.Seq[i]
		}
		out.Records[r] = Record{ID: rec.ID, Seq: seq}
	}
	return out, keep
}

// MaskTerminalGaps replaces leading and trailing gap runs of every record
// with the unknown sentinel, so missing sequence ends are not scored as true
// deletions. Internal gaps are left alone. The input is not modified.
func MaskTerminalGaps(aln Alignment) Alignment {
	out := Alignment{Records: make([]Record, aln.Rows())}
	for r, rec := range aln.Records {
		seq := append([]byte(nil), rec.Seq...)
		for i := 0; i < len(seq) && nucleo.IsGap(seq[i]); i++ {
			seq[i] = nucleo.Unknown
		}
		for i := len(seq) - 1; i >= 0 && nucleo.IsGap(seq[i]); i-- {
			seq[i] = nucleo.Unknown
		}
		out.Records[r] = Record{ID: rec.ID, Seq: seq}
	}
	return out
}
