// core/report/report.go
package report

import (
	"strings"

	"github.com/thackl/mbc-prime/core/alignment"
	"github.com/thackl/mbc-prime/core/blockdist"
	"github.com/thackl/mbc-prime/core/nucleo"
)

// Config holds the reporter's filter thresholds.
type Config struct {
	Mismatches  int     // mm: score averages thresholds 0..mm-1
	MinScore    float64 // windows below are dropped
	MaxAmbigWin float64 // ceiling on either group's ambiguous fraction
	MaxRepGaps  int     // max gap characters tolerated in the representative
}

// Row is one reported window, immutable once emitted. Loci group
// column-contiguous surviving windows purely for report numbering.
type Row struct {
	Locus      int
	Pos        int // original column coordinate (1-based)
	TrimmedPos int // trimmed column coordinate (1-based)
	Score      float64
	Inc        [5]float64 // cumulative mismatch fractions, thresholds 0..4
	Exc        [5]float64
	Forward    string // target representative
	Reverse    string // its reverse complement
	Matched    string
	IncAligned string
	ExcAligned string
	Info       float64 // consensus conservation signal for the window
}

// Cumulative normalizes bucket counts into fractions of the group's row
// count and accumulates them over mismatch thresholds 0..4.
func Cumulative(buckets [blockdist.BucketCount]int, rows int) [5]float64 {
	var out [5]float64
	if rows <= 0 {
		return out
	}
	sum := 0.0
	for i := 0; i < 5; i++ {
		sum += float64(buckets[i]) / float64(rows)
		out[i] = sum
	}
	return out
}

// Score averages the target/exclusion cumulative-fraction gap over mismatch
// thresholds 0..mm-1: high when near-representative sequences are common
// among targets and rare among exclusions.
func Score(inc, exc [5]float64, mm int) float64 {
	if mm <= 0 {
		mm = 1
	}
	if mm > len(inc) {
		mm = len(inc)
	}
	sum := 0.0
	for t := 0; t < mm; t++ {
		sum += inc[t] - exc[t]
	}
	return sum / float64(mm)
}

// Build converts window results into report rows: it scores each window,
// applies the quality filters, and numbers maximal runs of column-contiguous
// survivors as loci. results must be in ascending window order. info holds
// the per-window consensus signal (may be nil) indexed by window start.
func Build(results []blockdist.WindowResult, colMap alignment.ColumnIndexMap, info []float64, cfg Config) []Row {
	var (
		rows  []Row
		locus int
		prev  = -2 // anything non-adjacent to window 0
	)
	for _, res := range results {
		if res.ARep == "" {
			continue // all-ambiguous target group: score undefined
		}
		if strings.Count(res.ARep, string(nucleo.Gap)) > cfg.MaxRepGaps {
			continue
		}
		incAmbig := frac(res.Inc[blockdist.BucketAmbig], res.IncRows)
		excAmbig := frac(res.Exc[blockdist.BucketAmbig], res.ExcRows)
		if incAmbig > cfg.MaxAmbigWin || excAmbig > cfg.MaxAmbigWin {
			continue
		}
		inc := Cumulative(res.Inc, res.IncRows)
		exc := Cumulative(res.Exc, res.ExcRows)
		score := Score(inc, exc, cfg.Mismatches)
		if score < cfg.MinScore {
			continue
		}

		if res.Start != prev+1 {
			locus++
		}
		prev = res.Start

		row := Row{
			Locus:      locus,
			TrimmedPos: res.Start + 1,
			Score:      score,
			Inc:        inc,
			Exc:        exc,
			Forward:    res.ARep,
			Reverse:    string(nucleo.RevComp([]byte(res.ARep))),
			Matched:    res.Matched,
			IncAligned: res.IncAligned,
			ExcAligned: res.ExcAligned,
		}
		if res.Start < len(colMap) {
			row.Pos = colMap[res.Start] + 1
		}
		if res.Start < len(info) {
			row.Info = info[res.Start]
		}
		rows = append(rows, row)
	}
	return rows
}

func frac(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total)
}
