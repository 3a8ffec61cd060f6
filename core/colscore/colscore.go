// core/colscore/colscore.go
package colscore

import (
	"math"

	"github.com/thackl/mbc-prime/core/nucleo"
)

// Result is the per-column statistic pair: Score is the MCC (or F-beta)
// contrasting target vs exclusion composition, Conservation the fraction of
// non-gap target rows carrying the consensus base.
type Result struct {
	Score        float64
	Consensus    byte
	Conservation float64
}

// Score computes the column statistic for col split into target rows 0..x-1
// and exclusion rows x..n-1. With beta >= 0 the F-beta score replaces the
// MCC. Ties for the most frequent base break to the lexicographically
// smallest character so results do not depend on row order.
func Score(col []byte, x int, beta float64) Result {
	var tFreq, eFreq [256]int
	tGaps, eGaps := 0, 0
	for i, c := range col {
		c = upper(c)
		if i < x {
			tFreq[c]++
			if nucleo.IsGap(c) {
				tGaps++
			}
		} else {
			eFreq[c]++
			if nucleo.IsGap(c) {
				eGaps++
			}
		}
	}

	ac, tp := mostFrequent(&tFreq)
	if tp == 0 || nucleo.IsGap(ac) {
		// all-gap majority: a gap cannot be a primer base
		return Result{Consensus: ac}
	}

	tnTotal := x - tGaps
	fn := tnTotal - tp
	fp := eFreq[ac]
	bnTotal := (len(col) - x) - eGaps
	tn := bnTotal - fp

	res := Result{Consensus: ac}
	if tnTotal > 0 {
		res.Conservation = float64(tp) / float64(tnTotal)
	}

	if beta >= 0 {
		b2 := beta * beta
		den := (1+b2)*float64(tp) + b2*float64(fn) + float64(fp)
		if den == 0 {
			return res
		}
		res.Score = (1 + b2) * float64(tp) / den
		return res
	}

	num := float64(tp*tn - fp*fn)
	prod := float64(tp+fp) * float64(tp+fn) * float64(tn+fp) * float64(tn+fn)
	den := 1.0
	if prod > 0 {
		den = math.Sqrt(prod)
	}
	res.Score = num / den
	return res
}

// ScoreColumns runs Score over every column of the alignment and returns the
// per-column results in column order.
func ScoreColumns(cols int, column func(i int) []byte, x int, beta float64) []Result {
	out := make([]Result, cols)
	for i := 0; i < cols; i++ {
		out[i] = Score(column(i), x, beta)
	}
	return out
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// mostFrequent picks the highest-count character, breaking count ties by
// byte order.
func mostFrequent(freq *[256]int) (byte, int) {
	best, bestN := byte(0), 0
	for c := 0; c < 256; c++ {
		if freq[c] > bestN {
			best, bestN = byte(c), freq[c]
		}
	}
	return best, bestN
}
