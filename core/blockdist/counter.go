// core/blockdist/counter.go
package blockdist

import (
	"github.com/thackl/mbc-prime/core/nucleo"
)

// Counter maps unique window subsequences to occurrence counts.
type Counter map[string]int

// CountUnique builds the unique-sequence counts for one group block. Rows
// with more than maxAmbig ambiguous characters collapse into the ambiguity
// tally instead of inflating sequence diversity; the tally is returned
// separately and never enters the map.
func CountUnique(rows [][]byte, start, length, maxAmbig int) (Counter, int) {
	counts := make(Counter, len(rows))
	ambig := 0
	for _, row := range rows {
		win := row[start : start+length]
		if nucleo.CountAmbiguous(win) > maxAmbig {
			ambig++
			continue
		}
		counts[string(win)]++
	}
	return counts, ambig
}

// MostFrequent returns the highest-count sequence in c, breaking count ties
// by the lexicographically smallest sequence so the representative does not
// depend on row order. ok is false for an empty counter.
func (c Counter) MostFrequent() (seq string, n int, ok bool) {
	for s, k := range c {
		if !ok || k > n || (k == n && s < seq) {
			seq, n, ok = s, k, true
		}
	}
	return seq, n, ok
}
