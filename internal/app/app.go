// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/thackl/mbc-prime/core/alignment"
	"github.com/thackl/mbc-prime/core/blockdist"
	"github.com/thackl/mbc-prime/core/colscore"
	"github.com/thackl/mbc-prime/core/report"
	"github.com/thackl/mbc-prime/internal/cli"
	"github.com/thackl/mbc-prime/internal/output"
	"github.com/thackl/mbc-prime/internal/pipeline"
	"github.com/thackl/mbc-prime/internal/version"
)

// RunContext parses argv, runs the scan and writes the report. Exit codes:
// 0 success (zero loci included), 2 usage/validation error, 3 I/O or write
// error, 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("mbc-prime")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "mbc-prime version %s\n", version.Version)
		return 0
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.InfoLevel)
	if opts.Quiet {
		log.SetLevel(logrus.ErrorLevel)
	} else if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	aln, err := alignment.ParseFile(opts.Alignment)
	if err != nil {
		log.Errorf("read alignment: %v", err)
		return 3
	}
	if err := aln.Validate(); err != nil {
		log.Errorf("%v", err)
		return 2
	}
	if opts.TargetSeqs >= aln.Rows() {
		log.Errorf("--target-seqs (%d) must leave at least one exclusion record (%d records total)",
			opts.TargetSeqs, aln.Rows())
		return 2
	}
	log.WithFields(logrus.Fields{
		"records": aln.Rows(),
		"columns": aln.Len(),
		"target":  opts.TargetSeqs,
	}).Info("alignment loaded")

	trimmed, colMap := alignment.Trim(aln, opts.MinCanonCol)
	trimmed = alignment.MaskTerminalGaps(trimmed)
	log.WithFields(logrus.Fields{
		"kept":    trimmed.Len(),
		"dropped": aln.Len() - trimmed.Len(),
	}).Info("low-information columns trimmed")

	if opts.TrimmedOut != "" {
		if err := writeTrimmed(opts.TrimmedOut, trimmed); err != nil {
			log.Errorf("write trimmed alignment: %v", err)
			return 3
		}
		log.Debugf("trimmed alignment written to %s", opts.TrimmedOut)
	}

	outw, closeOut, err := openOutput(opts.Output, stdout)
	if err != nil {
		log.Errorf("open output: %v", err)
		return 3
	}
	defer closeOut()
	bw := bufio.NewWriter(outw)

	// per-column conservation signal; informational in the block path
	cols := colscore.ScoreColumns(trimmed.Len(), func(i int) []byte {
		return trimmed.Column(i, nil)
	}, opts.TargetSeqs, opts.Beta)
	conservation := make([]float64, len(cols))
	for i, c := range cols {
		conservation[i] = c.Conservation
	}
	consensus := colscore.MovingAverage(conservation, opts.PrimerLen)

	if opts.Mode == cli.ModeColumn {
		padded := colscore.PadToColumns(consensus, opts.PrimerLen)
		if err := output.WriteColumnScores(bw, cols, colMap, padded, opts.Header); err != nil {
			return flushExit(bw, stderr, err)
		}
		return flushExit(bw, stderr, nil)
	}

	eng := blockdist.New(blockdist.Config{
		TargetSeqs:  opts.TargetSeqs,
		PrimerLen:   opts.PrimerLen,
		MaxAmbig:    opts.MaxAmbigSeq,
		NeedDisplay: opts.Verbose,
	})
	nWindows := eng.Windows(trimmed.Len())
	log.Debugf("scanning %d windows of length %d", nWindows, opts.PrimerLen)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var onWindow func()
	var progress *mpb.Progress
	if !opts.Quiet && nWindows > 0 {
		// ctx-bound so an interrupt does not leave Wait hanging
		progress = mpb.NewWithContext(ctx, mpb.WithWidth(40), mpb.WithOutput(stderr))
		bar := progress.AddBar(int64(nWindows),
			mpb.PrependDecorators(
				decor.Name("scanned windows: "),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
		onWindow = bar.Increment
	}

	results, err := pipeline.ScanWindows(ctx, pipeline.Config{Threads: opts.Threads}, trimmed, eng, onWindow)
	if progress != nil {
		progress.Wait()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		log.Errorf("window scan: %v", err)
		return 3
	}

	rows := report.Build(results, colMap, consensus, report.Config{
		Mismatches:  opts.Mismatches,
		MinScore:    opts.MinScore,
		MaxAmbigWin: opts.MaxAmbigWin,
		MaxRepGaps:  3,
	})
	loci := 0
	if len(rows) > 0 {
		loci = rows[len(rows)-1].Locus
	}
	log.WithFields(logrus.Fields{
		"windows": nWindows,
		"rows":    len(rows),
		"loci":    loci,
	}).Info("scan finished")

	if err := output.WriteReport(bw, rows, opts.Header, opts.Verbose); err != nil {
		return flushExit(bw, stderr, err)
	}
	return flushExit(bw, stderr, nil)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushExit(bw *bufio.Writer, stderr io.Writer, err error) int {
	if err == nil {
		err = bw.Flush()
	} else {
		_ = bw.Flush()
	}
	if output.IsBrokenPipe(err) {
		return 0
	}
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func openOutput(path string, stdout io.Writer) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return stdout, func() {}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { _ = fh.Close() }, nil
}

func writeTrimmed(path string, aln alignment.Alignment) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := alignment.Write(fh, aln); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
