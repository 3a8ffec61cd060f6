// internal/pipeline/pipeline_test.go
package pipeline

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/thackl/mbc-prime/core/alignment"
	"github.com/thackl/mbc-prime/core/blockdist"
)

func testAln(rows int, seq string) alignment.Alignment {
	var a alignment.Alignment
	for i := 0; i < rows; i++ {
		a.Records = append(a.Records, alignment.Record{ID: string(rune('a' + i)), Seq: []byte(seq)})
	}
	return a
}

// Results must come back in ascending window order regardless of thread count.
func TestScanWindowsOrdered(t *testing.T) {
	seq := strings.Repeat("ACGT", 16) // 64 columns
	aln := testAln(6, seq)
	eng := blockdist.New(blockdist.Config{TargetSeqs: 3, PrimerLen: 8})

	for _, threads := range []int{1, 4} {
		results, err := ScanWindows(context.Background(), Config{Threads: threads}, aln, eng, nil)
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if len(results) != 64-8+1 {
			t.Fatalf("threads=%d: got %d results, want 57", threads, len(results))
		}
		for i, r := range results {
			if r.Start != i {
				t.Fatalf("threads=%d: results[%d].Start = %d", threads, i, r.Start)
			}
			if r.ARep != seq[i:i+8] {
				t.Errorf("threads=%d: window %d representative %q", threads, i, r.ARep)
			}
		}
	}
}

func TestScanWindowsCallback(t *testing.T) {
	aln := testAln(4, "ACGTACGTAC")
	eng := blockdist.New(blockdist.Config{TargetSeqs: 2, PrimerLen: 4})
	var n int64
	_, err := ScanWindows(context.Background(), Config{Threads: 2}, aln, eng, func() {
		atomic.AddInt64(&n, 1)
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Errorf("callback ran %d times, want 7", n)
	}
}

func TestScanWindowsEmpty(t *testing.T) {
	aln := testAln(2, "AC") // shorter than the window
	eng := blockdist.New(blockdist.Config{TargetSeqs: 1, PrimerLen: 4})
	results, err := ScanWindows(context.Background(), Config{}, aln, eng, nil)
	if err != nil || results != nil {
		t.Errorf("expected (nil,nil), got (%v,%v)", results, err)
	}
}

func TestScanWindowsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	aln := testAln(2, strings.Repeat("ACGT", 8))
	eng := blockdist.New(blockdist.Config{TargetSeqs: 1, PrimerLen: 4})
	if _, err := ScanWindows(ctx, Config{Threads: 2}, aln, eng, nil); err == nil {
		t.Error("expected context error")
	}
}
