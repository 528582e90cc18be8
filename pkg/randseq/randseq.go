// 31 July 2020
// 18 Oct 2026 nucleotides, written through seq.WriteFasta

// Package randseq makes random sequences for testing and benchmarks.
// Sequences can be written tidily, or with spaces and newlines
// scattered through them to give the fasta reader something to chew.
package randseq

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/chimera/pkg/seq"
)

const (
	nPadWhite = 9 // one white space character per this many symbols
)

var (
	dnaLetters     = []byte("ACGT")
	proteinLetters = []byte("ACDEFGHIKLMNPQRSTVWY")
)

var ErrBadArgs = errors.New("number and length of sequences must not be negative")

// Args is the set of arguments passed to Main.
type Args struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Cmmt    string    // comment for the sequences, a number is added
	Nseq    int       // number of sequences
	Len     int       // length of sequences
	Width   int       // symbols per line, as for seq.WriteFasta
	Protein bool      // amino acids instead of nucleotides
	Messy   bool      // scatter white space through the sequences
}

// getseq returns a byte slice with a random sequence in it, with spare
// capacity for the white space that might be added later.
func getseq(seqlen int, letters []byte, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen, seqlen+seqlen/nPadWhite)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// addInner puts n copies of c at random places in s.
func addInner(s []byte, n int, c byte, rnd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := rnd.Intn(len(s))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace fills the spare capacity of s with white space. We flip a
// coin. Heads, there are only spaces. Tails, about a ninth of them are
// newlines.
func addspace(s []byte, rnd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	nNL := 0
	if rnd.Intn(2) == 0 {
		nNL = toAdd / 9
	}
	s = addInner(s, toAdd-nNL, ' ', rnd)
	return addInner(s, nNL, '\n', rnd)
}

// cmmt gives comment lines like "something 01", "something 02"...
func cmmt(args *Args, i int) string {
	width := len(fmt.Sprintf("%d", args.Nseq))
	return fmt.Sprintf("%s %0*d", args.Cmmt, width, i)
}

// Seqs returns the sequences without writing them.
func Seqs(args *Args) ([]seq.Seq, error) {
	if args.Nseq < 0 || args.Len < 0 {
		return nil, ErrBadArgs
	}
	letters := dnaLetters
	if args.Protein {
		letters = proteinLetters
	}
	rnd := rand.New(rand.NewSource(args.Iseed))
	seqs := make([]seq.Seq, args.Nseq)
	for i := range seqs {
		seqs[i] = seq.NewSeq(cmmt(args, i+1), getseq(args.Len, letters, rnd))
	}
	return seqs, nil
}

// writeseqs takes sequences off the channel and writes them. After an
// error it keeps reading so the sender is not blocked.
func writeseqs(sChan <-chan seq.Seq, args *Args, spacernd *rand.Rand) (err error) {
	for s := range sChan {
		if err != nil {
			continue
		}
		if !args.Messy {
			err = seq.WriteFasta(args.Wrtr, []seq.Seq{s}, args.Width)
			continue
		}
		b := addspace(s.GetSeq(), spacernd)
		_, err = fmt.Fprintf(args.Wrtr, ">%s\n%s\n", s.GetCmmt(), b)
	}
	return err
}

// Main writes random sequences to args.Wrtr. One goroutine makes
// sequences while another writes them.
func Main(args *Args) error {
	seqs, err := Seqs(args)
	if err != nil {
		return err
	}
	if args.Width < 0 {
		return seq.ErrBadWidth
	}
	var wg sync.WaitGroup
	var werr error
	sChan := make(chan seq.Seq)
	wg.Add(1)
	go func() {
		defer wg.Done()
		werr = writeseqs(sChan, args, rand.New(rand.NewSource(args.Iseed+1)))
	}()
	for _, s := range seqs {
		sChan <- s
	}
	close(sChan)
	wg.Wait()
	return werr
}
