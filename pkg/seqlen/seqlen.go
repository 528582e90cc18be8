// 15 May 2025
// 18 Oct 2026 used for checking chimera input and output

// Package seqlen visits a fasta file and reports the identifier, the
// length without gaps and the guessed type of each sequence. The
// output is tab separated, for a spreadsheet.
package seqlen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andrew-torda/chimera/pkg/seq"
	"github.com/andrew-torda/chimera/pkg/seq/common"
)

// CmdArgs come from the command line.
type CmdArgs struct {
	InSeqFname  string
	OutCntFname string // "" or "-" for stdout
	KeepGaps    bool   // count gap characters as part of the length
}

// Row is one line of output.
type Row struct {
	ID   string
	Len  int
	Type seq.SeqType
}

// Lengths measures each sequence.
func Lengths(seqs []seq.Seq, keepGaps bool) []Row {
	rows := make([]Row, len(seqs))
	for i, s := range seqs {
		n := s.Len()
		if !keepGaps {
			n -= bytes.Count(s.GetSeq(), []byte{common.GapChar})
		}
		rows[i] = Row{ID: s.ID(), Len: n, Type: seq.TypeOf(s)}
	}
	return rows
}

// Write prints a header line and then one line per row.
func Write(w io.Writer, rows []Row) error {
	fmt.Fprintln(w, "id\tlength\ttype")
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", r.ID, r.Len, r.Type); err != nil {
			return err
		}
	}
	return nil
}

// Mymain reads the sequences and writes the table.
func Mymain(args *CmdArgs) error {
	seqs, err := seq.Readfile(args.InSeqFname)
	if err != nil {
		return err
	}
	out := args.OutCntFname
	if out == "" {
		out = "-"
	}
	rows := Lengths(seqs, args.KeepGaps)
	return common.WrtAtomic(out, func(w io.Writer) error { return Write(w, rows) })
}
