// 18 Oct 2026
// Getting sequences off the disk. Files are memory mapped rather than
// read through a buffer. Compressed files are spotted by their magic
// number or by the name.

package seq

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

var gzMagic = []byte{0x1f, 0x8b}

// isGzip looks at the first bytes of a file and its name.
func isGzip(fname string, b []byte) bool {
	return bytes.HasPrefix(b, gzMagic) || strings.HasSuffix(fname, ".gz")
}

// parse decides if the data is compressed and hands it to the lexer.
func parse(fname string, b []byte) ([]Seq, error) {
	if !isGzip(fname, b) {
		return readBytes(b)
	}
	gr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return ReadFasta(gr)
}

// mapAndParse maps an open file read-only, parses it and unmaps it.
func mapAndParse(fp *os.File) (seqs []Seq, err error) {
	info, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 { // cannot map zero bytes
		return nil, ErrNoSeqs
	}
	m, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping file: %w", err)
	}
	defer func() {
		if uerr := m.Unmap(); uerr != nil && err == nil {
			err = uerr
		}
	}()
	return parse(fp.Name(), m)
}

// Readfile takes a filename and reads sequences from it.
// A name of "" or "-" means standard input, which cannot be mapped,
// so it is read normally.
// Errors are wrapped with the filename.
func Readfile(fname string) ([]Seq, error) {
	if fname == "" || fname == "-" {
		seqs, err := ReadFasta(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return seqs, nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err // already has the name in it
	}
	defer fp.Close()
	seqs, err := mapAndParse(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return seqs, nil
}

// ReadOne reads a file which must contain one sequence only.
func ReadOne(fname string) (Seq, error) {
	seqs, err := Readfile(fname)
	if err != nil {
		return Seq{}, err
	}
	s, err := single(seqs)
	if err != nil {
		return Seq{}, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}
