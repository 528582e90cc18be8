// 31 July 2020
// 18 Oct 2026 cobra flags, nucleotides by default

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/chimera/pkg/randseq"
	"github.com/andrew-torda/chimera/pkg/seq"
	. "github.com/andrew-torda/chimera/pkg/seq/common"
)

const iseed int64 = 1637

func newRootCmd(args *randseq.Args, ran *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "randseq [flags] file length",
		Short:         "Write random sequences for testing",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, pos []string) error {
			nlen, err := strconv.ParseUint(pos[1], 10, 32)
			if err != nil {
				return fmt.Errorf("length %q is not a positive integer", pos[1])
			}
			*ran = true
			args.Len = int(nlen)
			return WrtAtomic(pos[0], func(w io.Writer) error {
				args.Wrtr = w
				return randseq.Main(args)
			})
		},
	}
	f := cmd.Flags()
	f.IntVarP(&args.Nseq, "nseq", "n", 1, "number of sequences")
	f.StringVarP(&args.Cmmt, "comment", "c", "random", "comment line, a number is added")
	f.Int64VarP(&args.Iseed, "seed", "r", iseed, "random number seed")
	f.IntVarP(&args.Width, "width", "w", seq.DefaultWidth, "symbols per line")
	f.BoolVarP(&args.Messy, "messy", "m", false, "scatter spaces and newlines through the sequences")
	f.BoolVarP(&args.Protein, "protein", "P", false, "amino acids instead of nucleotides")
	return cmd
}

func execute(argv []string, stdout, stderr io.Writer) int {
	var args randseq.Args
	var ran bool
	cmd := newRootCmd(&args, &ran)
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		if !ran {
			fmt.Fprint(stderr, cmd.UsageString())
			return ExitUsageError
		}
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
