// core/blockdist/engine_test.go
package blockdist

import (
	"testing"

	"github.com/thackl/mbc-prime/core/alignment"
)

func mkAln(rows ...string) alignment.Alignment {
	var a alignment.Alignment
	for i, s := range rows {
		a.Records = append(a.Records, alignment.Record{ID: string(rune('a' + i)), Seq: []byte(s)})
	}
	return a
}

func TestCountUnique(t *testing.T) {
	rows := [][]byte{
		[]byte("ACGT"),
		[]byte("ACGT"),
		[]byte("AC-T"),
		[]byte("NNGT"), // 2 ambiguous chars -> recoded
	}
	counts, ambig := CountUnique(rows, 0, 4, 0)
	if ambig != 1 {
		t.Errorf("ambig = %d, want 1", ambig)
	}
	if counts["ACGT"] != 2 || counts["AC-T"] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if _, ok := counts["NNGT"]; ok {
		t.Error("ambiguous row must not enter the counter")
	}
	// with a looser recode threshold the row is counted normally
	counts, ambig = CountUnique(rows, 0, 4, 2)
	if ambig != 0 || counts["NNGT"] != 1 {
		t.Errorf("maxAmbig=2: counts=%v ambig=%d", counts, ambig)
	}
}

func TestMostFrequentTieBreak(t *testing.T) {
	c := Counter{"TTTT": 2, "AAAA": 2, "CCCC": 1}
	seq, n, ok := c.MostFrequent()
	if !ok || n != 2 || seq != "AAAA" {
		t.Errorf("MostFrequent = (%q,%d,%v), want (AAAA,2,true)", seq, n, ok)
	}
	var empty Counter
	if _, _, ok := empty.MostFrequent(); ok {
		t.Error("empty counter must report ok=false")
	}
}

func TestScanWindowBuckets(t *testing.T) {
	// 4 target rows: representative ACGT (x2), one at distance 1, one at 2.
	// 3 exclusion rows: one equals the representative, one at distance 1,
	// one beyond the bound.
	aln := mkAln(
		"ACGT",
		"ACGT",
		"ACTT",
		"AGTT",
		"ACGT",
		"TCGT",
		"TTTC",
	)
	eng := New(Config{TargetSeqs: 4, PrimerLen: 4})
	res := eng.ScanWindow(aln, 0, nil)

	if res.ARep != "ACGT" {
		t.Fatalf("ARep = %q, want ACGT", res.ARep)
	}
	if res.Inc != [6]int{2, 1, 1, 0, 0, 0} {
		t.Errorf("Inc = %v, want [2 1 1 0 0 0]", res.Inc)
	}
	if res.Exc != [6]int{1, 1, 0, 0, 1, 0} {
		t.Errorf("Exc = %v, want [1 1 0 0 1 0]", res.Exc)
	}
	if res.BRep != "ACGT" {
		t.Errorf("BRep = %q, want ACGT (most frequent exclusion)", res.BRep)
	}
	if res.IncRows != 4 || res.ExcRows != 3 {
		t.Errorf("rows = %d/%d", res.IncRows, res.ExcRows)
	}
}

func TestScanWindowAllAmbiguousTargets(t *testing.T) {
	aln := mkAln(
		"NNNN",
		"????",
		"ACGT",
	)
	eng := New(Config{TargetSeqs: 2, PrimerLen: 4})
	res := eng.ScanWindow(aln, 0, nil)
	if res.ARep != "" {
		t.Fatalf("expected empty representative, got %q", res.ARep)
	}
	if res.Inc[BucketAmbig] != 2 {
		t.Errorf("Inc ambig = %d, want 2", res.Inc[BucketAmbig])
	}
	if res.Inc[0] != 0 || res.Exc[0] != 0 {
		t.Errorf("zero buckets expected: Inc=%v Exc=%v", res.Inc, res.Exc)
	}
}

func TestWindows(t *testing.T) {
	eng := New(Config{PrimerLen: 4})
	if got := eng.Windows(10); got != 7 {
		t.Errorf("Windows(10) = %d, want 7", got)
	}
	if got := eng.Windows(3); got != 0 {
		t.Errorf("Windows(3) = %d, want 0", got)
	}
}
