// core/report/report_test.go
package report

import (
	"math"
	"testing"

	"github.com/thackl/mbc-prime/core/blockdist"
)

func TestCumulative(t *testing.T) {
	buckets := [6]int{2, 1, 1, 0, 0, 0}
	got := Cumulative(buckets, 4)
	want := [5]float64{0.5, 0.75, 1.0, 1.0, 1.0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("cumulative[%d] = %f, want %f", i, got[i], want[i])
		}
	}
	if got := Cumulative(buckets, 0); got != [5]float64{} {
		t.Errorf("zero rows must yield zero fractions, got %v", got)
	}
}

func TestScore(t *testing.T) {
	inc := [5]float64{1, 1, 1, 1, 1}
	exc := [5]float64{0, 0, 0.5, 1, 1}
	if got := Score(inc, exc, 2); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("Score(mm=2) = %f, want 1.0", got)
	}
	if got := Score(inc, exc, 3); math.Abs(got-(2.5/3)) > 1e-9 {
		t.Errorf("Score(mm=3) = %f, want %f", got, 2.5/3)
	}
	if got := Score(inc, inc, 2); got != 0 {
		t.Errorf("identical curves must score 0, got %f", got)
	}
}

func passingResult(start int) blockdist.WindowResult {
	return blockdist.WindowResult{
		Start:   start,
		Inc:     [6]int{4, 0, 0, 0, 0, 0},
		Exc:     [6]int{0, 0, 0, 0, 4, 0},
		IncRows: 4,
		ExcRows: 4,
		ARep:    "ACGT",
		BRep:    "TTTT",
	}
}

func defaultCfg() Config {
	return Config{Mismatches: 2, MinScore: 0.5, MaxAmbigWin: 0.2, MaxRepGaps: 3}
}

func TestBuildContiguityGrouping(t *testing.T) {
	var results []blockdist.WindowResult
	for _, s := range []int{5, 6, 7, 10, 11} {
		results = append(results, passingResult(s))
	}
	colMap := make([]int, 40)
	for i := range colMap {
		colMap[i] = i + 100
	}
	rows := Build(results, colMap, nil, defaultCfg())
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	wantLoci := []int{1, 1, 1, 2, 2}
	for i, r := range rows {
		if r.Locus != wantLoci[i] {
			t.Errorf("row %d locus = %d, want %d", i, r.Locus, wantLoci[i])
		}
	}
	// coordinates are 1-based; pos follows the column index map
	if rows[0].TrimmedPos != 6 || rows[0].Pos != 106 {
		t.Errorf("row 0 pos = %d/%d, want 106/6", rows[0].Pos, rows[0].TrimmedPos)
	}
	if rows[0].Reverse != "ACGT" {
		t.Errorf("reverse primer = %q, want ACGT", rows[0].Reverse)
	}
}

func TestBuildFilters(t *testing.T) {
	cfg := defaultCfg()

	undef := passingResult(0)
	undef.ARep = ""
	if rows := Build([]blockdist.WindowResult{undef}, nil, nil, cfg); len(rows) != 0 {
		t.Error("undefined (all-ambiguous) window must be dropped")
	}

	gappy := passingResult(0)
	gappy.ARep = "A--C--G--T"
	if rows := Build([]blockdist.WindowResult{gappy}, nil, nil, cfg); len(rows) != 0 {
		t.Error("representative with >3 gaps must be dropped")
	}

	ambig := passingResult(0)
	ambig.Inc[blockdist.BucketAmbig] = 2 // 0.5 > 0.2
	if rows := Build([]blockdist.WindowResult{ambig}, nil, nil, cfg); len(rows) != 0 {
		t.Error("excess target ambiguity must be dropped")
	}

	weak := passingResult(0)
	weak.Exc = [6]int{4, 0, 0, 0, 0, 0} // exclusions identical to targets
	if rows := Build([]blockdist.WindowResult{weak}, nil, nil, cfg); len(rows) != 0 {
		t.Error("low-score window must be dropped")
	}

	good := passingResult(0)
	rows := Build([]blockdist.WindowResult{good}, nil, nil, cfg)
	if len(rows) != 1 {
		t.Fatalf("clean window must survive, got %d rows", len(rows))
	}
	if math.Abs(rows[0].Score-1.0) > 1e-9 {
		t.Errorf("score = %f, want 1.0", rows[0].Score)
	}
}
