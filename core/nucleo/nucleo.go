// core/nucleo/nucleo.go
package nucleo

// Gap is the internal alignment gap character.
// Unknown marks terminal gap runs after preprocessing so they are not
// scored as true deletions relative to other rows.
const (
	Gap     = '-'
	Unknown = '?'
)

var canonical [256]bool

func init() {
	for _, c := range []byte("ATGCUatgcu") {
		canonical[c] = true
	}
}

// IsCanonical reports whether c is an unambiguous nucleotide base.
func IsCanonical(c byte) bool { return canonical[c] }

// IsGap reports whether c is an internal alignment gap.
func IsGap(c byte) bool { return c == Gap }

// IsUnknown reports whether c is the masked terminal-gap sentinel.
func IsUnknown(c byte) bool { return c == Unknown }

// IsAmbiguous reports whether c carries no usable base information:
// N, IUPAC degeneracy codes, masked terminal gaps, and any other
// non-canonical, non-gap character.
func IsAmbiguous(c byte) bool { return !canonical[c] && c != Gap }

// CountCanonical returns the number of unambiguous bases in s.
func CountCanonical(s []byte) int {
	n := 0
	for _, c := range s {
		if canonical[c] {
			n++
		}
	}
	return n
}

// CountAmbiguous returns the number of ambiguous characters in s
// (gaps excluded).
func CountAmbiguous(s []byte) int {
	n := 0
	for _, c := range s {
		if IsAmbiguous(c) {
			n++
		}
	}
	return n
}

// CountGaps returns the number of internal gap characters in s.
func CountGaps(s []byte) int {
	n := 0
	for _, c := range s {
		if c == Gap {
			n++
		}
	}
	return n
}
