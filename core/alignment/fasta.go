// core/alignment/fasta.go
package alignment

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path; "-" means stdin. Gzip input is detected
// by magic number (1F 8B) or by .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// Parse reads a FASTA alignment from r. The whole alignment is materialized;
// scoring needs random access to every row. Headers keep everything after
// '>' (whitespace trimmed), sequence lines are concatenated verbatim.
func Parse(r io.Reader) (Alignment, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		aln Alignment
		id  string
		seq []byte
		any bool
	)
	flush := func() {
		if !any {
			return
		}
		aln.Records = append(aln.Records, Record{ID: id, Seq: seq})
		seq = nil
	}
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = string(bytes.TrimSpace(line[1:]))
			any = true
			continue
		}
		if !any {
			return Alignment{}, fmt.Errorf("fasta: sequence data before first header")
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return Alignment{}, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return aln, nil
}

// ParseFile opens path (gzip/stdin aware) and parses it.
func ParseFile(path string) (Alignment, error) {
	rc, err := Open(path)
	if err != nil {
		return Alignment{}, err
	}
	defer rc.Close()
	return Parse(rc)
}

// Write emits aln as FASTA with sequence lines wrapped at 80 columns.
func Write(w io.Writer, aln Alignment) error {
	bw := bufio.NewWriter(w)
	for _, rec := range aln.Records {
		if _, err := fmt.Fprintf(bw, ">%s\n", rec.ID); err != nil {
			return err
		}
		for off := 0; off < len(rec.Seq); off += 80 {
			end := off + 80
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			if _, err := bw.Write(rec.Seq[off:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
