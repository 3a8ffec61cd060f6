// core/alignment/alignment.go
package alignment

import "fmt"

// Record is one aligned sequence: a FASTA header plus its row of the MSA.
type Record struct {
	ID  string
	Seq []byte
}

// Alignment is an ordered set of equal-length records. Rows 0..x-1 form the
// target group, rows x..n-1 the exclusion group; x is supplied by the caller.
type Alignment struct {
	Records []Record
}

// Rows returns the number of records.
func (a Alignment) Rows() int { return len(a.Records) }

// Len returns the alignment length (column count), 0 for an empty alignment.
func (a Alignment) Len() int {
	if len(a.Records) == 0 {
		return 0
	}
	return len(a.Records[0].Seq)
}

// Column copies column i into dst (allocating when dst is too small) and
// returns it.
func (a Alignment) Column(i int, dst []byte) []byte {
	if cap(dst) < len(a.Records) {
		dst = make([]byte, len(a.Records))
	}
	dst = dst[:len(a.Records)]
	for r := range a.Records {
		dst[r] = a.Records[r].Seq[i]
	}
	return dst
}

// Validate rejects alignments that must not reach scoring: an empty set of
// records, an empty first row, or rows of unequal length.
func (a Alignment) Validate() error {
	if len(a.Records) == 0 {
		return fmt.Errorf("alignment: no records")
	}
	want := len(a.Records[0].Seq)
	if want == 0 {
		return fmt.Errorf("alignment: record %q has empty sequence", a.Records[0].ID)
	}
	for _, r := range a.Records[1:] {
		if len(r.Seq) != want {
			return fmt.Errorf("alignment: record %q length %d differs from %d; input is not an alignment",
				r.ID, len(r.Seq), want)
		}
	}
	return nil
}
