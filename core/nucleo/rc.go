// core/nucleo/rc.go
package nucleo

var complement [256]byte

func init() {
	pairs := map[byte]byte{
		'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'U': 'A',
		'R': 'Y', 'Y': 'R',
		'S': 'S', 'W': 'W',
		'K': 'M', 'M': 'K',
		'B': 'V', 'V': 'B',
		'D': 'H', 'H': 'D',
		'N': 'N',
	}
	for b, c := range pairs {
		complement[b] = c
		// preserve case through the round trip
		complement[b+'a'-'A'] = c + 'a' - 'A'
	}
	complement[Gap] = Gap
	complement[Unknown] = Unknown
}

// RevComp returns the reverse complement of seq. Case is preserved;
// unrecognized characters map to 'N'.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
