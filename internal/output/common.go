// internal/output/common.go
package output

import (
	"errors"
	"io"
	"syscall"
)

// TSVHeader is the canonical header row of the locus report.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "group\tpos\ttrimmed_pos\tscore\tinc: 0,1,2,3,4+ mismatches\texc: 0,1,2,3,4+ mismatches\tprimer forward\tprimer reverse\tinc-exc-matched\tinc-aligned\texc-aligned\tinfo"

// ColumnTSVHeader is the header of the legacy per-column score table.
const ColumnTSVHeader = "pos\ttrimmed_pos\tscore\tconservation\tconsensus"

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
