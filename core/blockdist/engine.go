// core/blockdist/engine.go
package blockdist

import (
	"github.com/thackl/mbc-prime/core/alignment"
)

// Bound is the edit-distance ceiling; anything beyond it lands in the
// overflow bucket.
const Bound = 3

// Bucket indices of WindowResult.Inc / WindowResult.Exc.
const (
	BucketOverflow = 4 // >= Bound+1 mismatches
	BucketAmbig    = 5
	BucketCount    = 6
)

// Config holds the per-run block scan parameters.
type Config struct {
	TargetSeqs  int // x: rows 0..x-1 are the target group
	PrimerLen   int
	MaxAmbig    int  // ambiguity recode threshold per window sequence
	NeedDisplay bool // compute the representative pairwise alignment
}

// WindowResult is the block-distance outcome for one window start.
// Inc/Exc count group rows by edit distance from the target representative:
// indices 0..3 exact distances, 4 overflow, 5 ambiguous rows.
type WindowResult struct {
	Start   int
	Inc     [BucketCount]int
	Exc     [BucketCount]int
	IncRows int
	ExcRows int
	ARep    string // target representative, "" when every target row is ambiguous
	BRep    string // exclusion representative, display only

	IncAligned string
	Matched    string
	ExcAligned string
}

// Engine scans alignment windows and buckets group sequences by mismatch
// count against the target representative.
type Engine struct {
	cfg Config
}

// New creates an Engine.
func New(c Config) *Engine { return &Engine{cfg: c} }

// NeedDisplay reports whether ScanWindow wants an Aligner for the
// representative pairwise alignment.
func (e *Engine) NeedDisplay() bool { return e.cfg.NeedDisplay }

// Windows returns the number of window start positions for an alignment of
// length cols.
func (e *Engine) Windows(cols int) int {
	n := cols - e.cfg.PrimerLen + 1
	if n < 0 {
		return 0
	}
	return n
}

// ScanWindow computes the WindowResult for the window starting at column
// start. al supplies the illustrative pairwise alignment and may be nil when
// Config.NeedDisplay is false.
func (e *Engine) ScanWindow(aln alignment.Alignment, start int, al *Aligner) WindowResult {
	x := e.cfg.TargetSeqs
	res := WindowResult{Start: start, IncRows: x, ExcRows: aln.Rows() - x}

	tRows := make([][]byte, 0, x)
	eRows := make([][]byte, 0, aln.Rows()-x)
	for i, rec := range aln.Records {
		if i < x {
			tRows = append(tRows, rec.Seq)
		} else {
			eRows = append(eRows, rec.Seq)
		}
	}

	tCounts, tAmbig := CountUnique(tRows, start, e.cfg.PrimerLen, e.cfg.MaxAmbig)
	eCounts, eAmbig := CountUnique(eRows, start, e.cfg.PrimerLen, e.cfg.MaxAmbig)
	res.Inc[BucketAmbig] = tAmbig
	res.Exc[BucketAmbig] = eAmbig

	aRep, aN, ok := tCounts.MostFrequent()
	if !ok {
		// every target row ambiguous: zero result, reporter filters it out
		return res
	}
	res.ARep = aRep
	res.Inc[0] = aN
	delete(tCounts, aRep)

	rep := []byte(aRep)
	for seq, n := range tCounts {
		if d, within := BoundedDistance([]byte(seq), rep, Bound); within {
			res.Inc[d] += n
		} else {
			res.Inc[BucketOverflow] += n
		}
	}

	if bRep, _, ok := eCounts.MostFrequent(); ok {
		res.BRep = bRep
	}
	// the discriminative comparison: every exclusion sequence against the
	// *target* representative
	for seq, n := range eCounts {
		if d, within := BoundedDistance([]byte(seq), rep, Bound); within {
			res.Exc[d] += n
		} else {
			res.Exc[BucketOverflow] += n
		}
	}

	if e.cfg.NeedDisplay && al != nil && res.ARep != "" && res.BRep != "" {
		q, m, t, err := al.Display([]byte(res.ARep), []byte(res.BRep))
		if err == nil {
			res.IncAligned, res.Matched, res.ExcAligned = q, m, t
		}
	}
	return res
}
