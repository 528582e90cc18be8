// 20 Dec 2017

// Package seq provides functions for sequences,
// which usually begin their lives in fasta format. It can
// read and write them.
//
// Input files are mapped into memory and the lexer walks over the
// mapped bytes. Anything we keep is copied out before the file is
// unmapped, so a Seq never points into the mapping.
package seq

import (
	"fmt"
	"strings"
)

// Seq is one sequence with its comment line.
type Seq struct {
	cmmt string
	seq  []byte
}

// A marker to say what type of sequence we have, protein, DNA, ...
type SeqType byte

const (
	Unchecked SeqType = iota // Has not been looked at yet
	Unknown                  // Really unknown, not a protein or nucleotide
	Protein                  //
	DNA                      //
	RNA                      //
	Ntide                    // Nucleotide
)

func (t SeqType) String() string {
	switch t {
	case Unchecked:
		return "unchecked"
	case Protein:
		return "protein"
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Ntide:
		return "nucleotide"
	}
	return "unknown"
}

// Constants
const cmmt_char byte = '>' // and this introduces comments in fasta format

// NewSeq makes a sequence from a comment (without the leading ">")
// and the symbols. The byte slice is not copied.
func NewSeq(cmmt string, s []byte) Seq { return Seq{cmmt: cmmt, seq: s} }

// Function GetSeq returns the sequence as the original byte slice
func (s Seq) GetSeq() []byte { return s.seq }

// Function GetCmmt returns the comment, without the leading ">"
func (s Seq) GetCmmt() string { return s.cmmt }

// Function Len
func (s Seq) Len() int { return len(s.seq) }

// Empty returns true if a sequence has no symbols.
func (s Seq) Empty() bool { return len(s.seq) == 0 }

// ID returns the identifier for a sequence.
// Of course it does not really know that. It just returns the first
// word in the comment which is likely to be the identifier.
func (s Seq) ID() string {
	tmp := strings.Fields(s.cmmt)
	if len(tmp) == 0 {
		return ""
	}
	return tmp[0]
}

// Desc is whatever follows the identifier on the comment line,
// with the white space at either end removed.
func (s Seq) Desc() string {
	c := strings.TrimSpace(s.cmmt)
	if i := strings.IndexAny(c, " \t"); i != -1 {
		return strings.TrimSpace(c[i:])
	}
	return ""
}

// trimStr trims a string to n bytes if it is longer
func trimStr(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// String returns a sequence, with its comment at the start as
// a single string
func (s Seq) String() (t string) {
	return fmt.Sprintf("%c%s\n%s", cmmt_char, s.cmmt, s.seq)
}
