// core/blockdist/align.go
package blockdist

import (
	"github.com/shenwei356/wfa"
)

// Aligner produces the illustrative global alignment between group
// representatives. It wraps a wavefront aligner; not safe for concurrent
// use, so every pipeline worker owns one.
type Aligner struct {
	algn *wfa.Aligner
}

// NewAligner returns a global-alignment Aligner with default penalties.
func NewAligner() *Aligner {
	return &Aligner{algn: wfa.New(wfa.DefaultPenalties, &wfa.Options{GlobalAlignment: true})}
}

// Close returns the underlying aligner to its pool.
func (a *Aligner) Close() {
	if a.algn != nil {
		wfa.RecycleAligner(a.algn)
		a.algn = nil
	}
}

// Display aligns q against t and returns the aligned query, the match
// marker line and the aligned target, all of equal length.
func (a *Aligner) Display(q, t []byte) (string, string, string, error) {
	cigar, err := a.algn.Align(q, t)
	if err != nil {
		return "", "", "", err
	}
	defer wfa.RecycleAlignmentResult(cigar)
	Q, M, T := cigar.AlignmentText(&q, &t, false)
	return string(*Q), string(*M), string(*T), nil
}
