// 18 Oct 2026

package seq

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/chimera/pkg/seq/common"
)

// DefaultWidth is the number of symbols per line on output.
const DefaultWidth = 60

var ErrBadWidth = errors.New("line width must not be negative")

// Options contains the choices for writing.
type Options struct {
	Width  int  // symbols per line, 0 puts each sequence on one line
	DryRun bool // Do not write any files
}

// WriteFasta writes sequences to w, breaking sequence lines after
// width symbols. Empty sequences are skipped.
func WriteFasta(w io.Writer, seq_set []Seq, width int) error {
	if width < 0 {
		return ErrBadWidth
	}
	bw := bufio.NewWriter(w)
	for _, s := range seq_set {
		if s.Empty() {
			continue
		}
		fmt.Fprintf(bw, "%c%s\n", cmmt_char, s.GetCmmt())
		b := s.GetSeq()
		if width > 0 {
			for ; len(b) > width; b = b[width:] {
				bw.Write(b[:width])
				bw.WriteByte(NL)
			}
		}
		bw.Write(b)
		bw.WriteByte(NL)
	}
	return bw.Flush() // bufio keeps the first error, so this finds it
}

// WriteToF takes a filename and a slice of sequences and writes them.
// The file only appears once everything has been written, so a
// failure does not leave a partial file behind.
// A filename of "-" is standard output.
func WriteToF(outseq_fname string, seq_set []Seq, s_opts *Options) error {
	if s_opts.Width < 0 {
		return ErrBadWidth
	}
	if s_opts.DryRun {
		return WriteFasta(io.Discard, seq_set, s_opts.Width)
	}
	err := common.WrtAtomic(outseq_fname, func(w io.Writer) error {
		return WriteFasta(w, seq_set, s_opts.Width)
	})
	if err != nil {
		return fmt.Errorf("writing output sequence file: %w", err)
	}
	return nil
}
