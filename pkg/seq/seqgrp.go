// 6 Apr 2020
// seqgrp does simple, common calculations on a set of sequences.
// Here the sequences are not an alignment. We only want to know
// which symbols are in each sequence and how often.

package seq

import (
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
)

const nSym = 256
const badMap uint8 = 255

// SeqGrp is a group of sequences, with some additional information
// such as what type (protein, nucleotide) and the number of symbols
// that have been used.
type SeqGrp struct {
	symUsed  [nSym]bool  // which symbols are actually used
	mapping  [nSym]uint8 // mapping['C'] tells me the index used for C
	revmap   []uint8     // revmap[2] tells me the character in place 2
	seqs     []Seq
	counts   *matrix.FMatrix2d
	stype    SeqType
	usedKnwn bool // Do we know how many symbols are used ?
}

// NewSeqGrp puts some sequences in a group. They are not copied.
func NewSeqGrp(seqs ...Seq) *SeqGrp {
	return &SeqGrp{seqs: seqs}
}

// NSeq returns the number of sequences
func (seqgrp *SeqGrp) NSeq() int { return len(seqgrp.seqs) }

// SeqSlc return the slice of sequences
func (seqgrp *SeqGrp) SeqSlc() []Seq { return seqgrp.seqs }

// Revmap returns the symbols in the order of the rows in Counts.
func (seqgrp *SeqGrp) Revmap() []uint8 {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	return seqgrp.revmap
}

// SetSymUsed fills out the bool slice which says whether or not a
// symbol was used
func (seqgrp *SeqGrp) SetSymUsed() {
	for _, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			seqgrp.symUsed[c] = true
		}
	}
	seqgrp.usedKnwn = true
}

// GetType looks at a set of sequences and returns its best guess
// as to the type of sequence. Case does not matter.
func (seqgrp *SeqGrp) GetType() SeqType {
	if seqgrp.stype != Unchecked { // If the sequence type has been
		return seqgrp.stype //        set, just return it.
	}
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	var used [nSym]bool
	for c, u := range seqgrp.symUsed {
		if u {
			uc := byte(c)
			if 'a' <= uc && uc <= 'z' {
				uc -= 'a' - 'A'
			}
			used[uc] = true
		}
	}
	seqgrp.stype = guessType(&used)
	return seqgrp.stype
}

func guessType(used *[nSym]bool) SeqType {
	protType := []byte{
		'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
		'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //          just return protein type.
			return Protein
		}
	}
	if used['T'] && used['U'] {
		return Ntide
	}
	if used['T'] {
		return DNA
	}
	if used['U'] {
		return RNA
	}
	// If we have ACG, but neither T or U, it is a nucleotide
	// but we cannot tell if it is RNA or DNA
	if used['A'] || used['C'] || used['G'] {
		return Ntide
	}
	return Unknown
}

// TypeOf guesses the type of a single sequence.
func TypeOf(s Seq) SeqType { return NewSeqGrp(s).GetType() }

// mapsyms looks at the symbols(characters, bases, residues) used in a
// seqgrp. It then makes a little array for mapping.
func (seqgrp *SeqGrp) mapsyms() {
	if !seqgrp.usedKnwn {
		seqgrp.SetSymUsed()
	}
	for i := range seqgrp.mapping { // Initialise with bad value, to
		seqgrp.mapping[i] = badMap //  trap errors later
	}
	seqgrp.revmap = seqgrp.revmap[:0]
	var n uint8
	for i := range seqgrp.symUsed {
		if seqgrp.symUsed[i] {
			if n == badMap {
				panic("program bug: too many symbols")
			}
			seqgrp.mapping[i] = n
			seqgrp.revmap = append(seqgrp.revmap, uint8(i))
			n++
		}
	}
}

// Composition counts how many of each symbol appear in each sequence.
// counts.Mat looks like [number_of_symbols][number_of_seqs]
// The rows follow Revmap().
func (seqgrp *SeqGrp) Composition() *matrix.FMatrix2d {
	if len(seqgrp.revmap) == 0 {
		seqgrp.mapsyms()
	}
	nrow := len(seqgrp.revmap)
	ncol := len(seqgrp.seqs)
	seqgrp.counts = matrix.NewFMatrix2d(nrow, ncol)
	if nrow == 0 {
		return seqgrp.counts
	}
	for j, ss := range seqgrp.seqs {
		for _, c := range ss.GetSeq() {
			seqgrp.counts.Mat[seqgrp.mapping[c]][j] += 1
		}
	}
	return seqgrp.counts
}

// Count returns the count of symbol c in sequence j.
func (seqgrp *SeqGrp) Count(c byte, j int) int {
	if seqgrp.counts == nil {
		seqgrp.Composition()
	}
	m := seqgrp.mapping[c]
	if m == badMap || !seqgrp.symUsed[c] {
		return 0
	}
	return int(seqgrp.counts.Mat[m][j])
}

// WriteComp writes the composition table. There is one column per
// sequence, headed by names, and one row per symbol.
// format is a format string like "%8.0f"
func (seqgrp *SeqGrp) WriteComp(w io.Writer, names []string, format string) error {
	if len(names) != len(seqgrp.seqs) {
		return fmt.Errorf("have %d names for %d sequences", len(names), len(seqgrp.seqs))
	}
	if seqgrp.counts == nil {
		seqgrp.Composition()
	}
	width := len(fmt.Sprintf(format, 0.))
	fmt.Fprint(w, "sym")
	for _, n := range names {
		fmt.Fprintf(w, " %*s", width, trimStr(n, width))
	}
	fmt.Fprintln(w)
	for ic, m := range seqgrp.revmap {
		fmt.Fprintf(w, "%-3c", m)
		for j := range seqgrp.seqs {
			fmt.Fprint(w, " ")
			fmt.Fprintf(w, format, seqgrp.counts.Mat[ic][j])
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
