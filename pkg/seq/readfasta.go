// Reader for fasta format files.

package seq

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/chimera/pkg/white"
)

var (
	ErrNoSeqs    = errors.New("no sequences found")
	ErrNotSingle = errors.New("expected exactly one sequence")
	ErrZeroLen   = errors.New("zero length sequence")
	ErrNoHeader  = errors.New("text before first \">\" comment line")
)

const NL = '\n'

// lexer walks over a complete fasta file held in memory. The input
// may be memory mapped and read-only, so nothing is changed in place.
type lexer struct {
	input []byte
	seqs  []Seq
	cmmt  string
	err   error
}

type stateFn func(*lexer) stateFn

// gstart skips leading white space and expects a comment character.
func gstart(l *lexer) stateFn {
	l.input = bytes.TrimLeft(l.input, " \t\r\n")
	if len(l.input) == 0 {
		return nil
	}
	if l.input[0] != cmmt_char {
		l.err = fmt.Errorf("%w: starts %q", ErrNoHeader, trimStr(string(l.input), 40))
		return nil
	}
	l.input = l.input[1:]
	return gcmmt
}

// We are reading a comment. It runs to the end of the line.
func gcmmt(l *lexer) stateFn {
	var line []byte
	if ndx := bytes.IndexByte(l.input, NL); ndx == -1 {
		line, l.input = l.input, nil
	} else {
		line, l.input = l.input[:ndx], l.input[ndx+1:]
	}
	l.cmmt = string(bytes.TrimRight(line, "\r"))
	return gseq
}

// We are reading a sequence. It runs until a line starting with the
// comment character or the end of input.
func gseq(l *lexer) stateFn {
	var chunk []byte
	more := false
	switch ndx := bytes.Index(l.input, []byte{NL, cmmt_char}); {
	case len(l.input) > 0 && l.input[0] == cmmt_char:
		chunk, l.input, more = nil, l.input[1:], true
	case ndx == -1:
		chunk, l.input = l.input, nil
	default:
		chunk, l.input, more = l.input[:ndx], l.input[ndx+2:], true
	}

	s := make([]byte, len(chunk)) // copy out, the input may be mapped
	copy(s, chunk)
	white.Remove(&s)
	if len(s) == 0 {
		l.err = fmt.Errorf("%w after >%s", ErrZeroLen, trimStr(l.cmmt, 40))
		return nil
	}
	l.seqs = append(l.seqs, Seq{cmmt: l.cmmt, seq: s})
	l.cmmt = ""
	if more {
		return gcmmt
	}
	return nil
}

// readBytes runs the lexer over a complete fasta file.
func readBytes(b []byte) ([]Seq, error) {
	l := lexer{input: b}
	for state := gstart; state != nil; {
		state = state(&l)
	}
	if l.err != nil {
		return nil, l.err
	}
	if len(l.seqs) == 0 {
		return nil, ErrNoSeqs
	}
	return l.seqs, nil
}

// ReadFasta reads fasta formatted sequences from a reader.
// Read errors are returned as they come from the reader.
func ReadFasta(rdr io.Reader) ([]Seq, error) {
	b, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return readBytes(b)
}

// ReadOneRdr reads from rdr and insists on there being exactly one
// sequence.
func ReadOneRdr(rdr io.Reader) (Seq, error) {
	seqs, err := ReadFasta(rdr)
	if err != nil {
		return Seq{}, err
	}
	return single(seqs)
}

func single(seqs []Seq) (Seq, error) {
	if len(seqs) != 1 {
		return Seq{}, fmt.Errorf("%w, found %d", ErrNotSingle, len(seqs))
	}
	return seqs[0], nil
}
