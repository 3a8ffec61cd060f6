// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/thackl/mbc-prime/core/alignment"
	"github.com/thackl/mbc-prime/core/blockdist"
)

// Config controls the window scan.
type Config struct {
	Threads int // number of worker goroutines (0 = all CPUs)
}

// ScanWindows runs the block distance engine over every window start of the
// shared read-only alignment. Windows are embarrassingly parallel; each
// worker owns its pairwise aligner and writes into a preallocated slot, so
// results come back in ascending window order ready for the reporter's
// order-sensitive locus grouping. onWindow (optional) is called once per
// finished window, e.g. to advance a progress bar.
func ScanWindows(
	ctx context.Context,
	cfg Config,
	aln alignment.Alignment,
	eng *blockdist.Engine,
	onWindow func(),
) ([]blockdist.WindowResult, error) {
	n := eng.Windows(aln.Len())
	if n == 0 {
		return nil, nil
	}
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	if threads > n {
		threads = n
	}

	results := make([]blockdist.WindowResult, n)
	jobs := make(chan int, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			var al *blockdist.Aligner
			if eng.NeedDisplay() {
				al = blockdist.NewAligner()
				defer al.Close()
			}
			for {
				select {
				case <-ctx.Done():
					return
				case start, ok := <-jobs:
					if !ok {
						return
					}
					results[start] = eng.ScanWindow(aln, start, al)
					if onWindow != nil {
						onWindow()
					}
				}
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
