// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"github.com/thackl/mbc-prime/internal/version"
)

// Scoring modes
const (
	ModeBlock  = "block"  // canonical: edit-distance buckets per window
	ModeColumn = "column" // legacy: per-column MCC / F-beta statistic
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Alignment  string
	TargetSeqs int

	// Scoring parameters
	PrimerLen   int
	Mismatches  int
	MinScore    float64
	MinCanonCol float64
	MaxAmbigWin float64
	MaxAmbigSeq int
	Beta        float64
	Mode        string

	// Performance
	Threads int

	// Output
	Output     string
	TrimmedOut string
	Verbose    bool
	Header     bool // true unless --no-header
	Quiet      bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: find group-discriminating primer loci in a multiple sequence alignment

The first --target-seqs records of the alignment form the target group the
primer should amplify; all remaining records form the exclusion group.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	// Input
	fs.StringVar(&opt.Alignment, "alignment", "", "aligned FASTA file ('-' = stdin, .gz ok) [*]")
	fs.StringVar(&opt.Alignment, "a", "", "shorthand for --alignment")
	fs.IntVar(&opt.TargetSeqs, "target-seqs", 0, "number of leading target-group records [*]")
	fs.IntVar(&opt.TargetSeqs, "t", 0, "shorthand for --target-seqs")

	// Scoring parameters
	fs.IntVar(&opt.PrimerLen, "primer-length", 20, "primer window length [20]")
	fs.IntVar(&opt.PrimerLen, "l", 20, "shorthand for --primer-length")
	fs.IntVar(&opt.Mismatches, "mismatches", 2, "target mismatch threshold for the discrimination score (1-4) [2]")
	fs.IntVar(&opt.Mismatches, "m", 2, "shorthand for --mismatches")
	fs.Float64Var(&opt.MinScore, "min-score", 0.5, "minimum discrimination score to report [0.5]")
	fs.Float64Var(&opt.MinCanonCol, "min-canon-col", 0.2, "minimum per-column canonical-base fraction to keep the column [0.2]")
	fs.Float64Var(&opt.MaxAmbigWin, "max-ambig-win", 0.2, "maximum per-group ambiguous-sequence fraction per window [0.2]")
	fs.IntVar(&opt.MaxAmbigSeq, "max-ambig-seq", 0, "ambiguous characters tolerated per window sequence before recoding [0]")
	fs.Float64Var(&opt.Beta, "beta", -1, "column mode: use F-beta score with this beta instead of MCC (-1 = MCC) [-1]")
	fs.StringVar(&opt.Mode, "score-mode", ModeBlock, "scoring mode: block | column ["+ModeBlock+"]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "-", "report destination ('-' = stdout) [-]")
	fs.StringVar(&opt.Output, "o", "-", "shorthand for --output")
	fs.StringVar(&opt.TrimmedOut, "trimmed-out", "", "write the trimmed/masked alignment as FASTA to this path []")
	fs.BoolVar(&opt.Verbose, "verbose", false, "include per-locus representative alignment columns [false]")
	fs.BoolVar(&opt.Verbose, "v", false, "shorthand for --verbose")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in the report [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress log messages and progress bar [false]")

	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// A single positional argument may stand in for --alignment.
	if args := fs.Args(); len(args) > 0 {
		if opt.Alignment != "" {
			return opt, errors.New("--alignment conflicts with a positional alignment argument")
		}
		if len(args) > 1 {
			return opt, fmt.Errorf("unexpected arguments: %v", args[1:])
		}
		opt.Alignment = args[0]
	}

	// Validation
	if opt.Alignment == "" {
		return opt, errors.New("an alignment file is required (--alignment or positional)")
	}
	if opt.TargetSeqs < 1 {
		return opt, errors.New("--target-seqs must be ≥ 1")
	}
	if opt.PrimerLen < 1 {
		return opt, errors.New("--primer-length must be ≥ 1")
	}
	if opt.Mismatches < 1 || opt.Mismatches > 4 {
		return opt, errors.New("--mismatches must be between 1 and 4")
	}
	if opt.MinCanonCol < 0 || opt.MinCanonCol > 1 {
		return opt, errors.New("--min-canon-col must be within [0,1]")
	}
	if opt.MaxAmbigWin < 0 || opt.MaxAmbigWin > 1 {
		return opt, errors.New("--max-ambig-win must be within [0,1]")
	}
	if opt.MaxAmbigSeq < 0 {
		return opt, errors.New("--max-ambig-seq must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	if opt.Mode != ModeBlock && opt.Mode != ModeColumn {
		return opt, fmt.Errorf("invalid --score-mode %q", opt.Mode)
	}
	return opt, nil
}
