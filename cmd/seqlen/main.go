// 25 may 2025
// seqlen visits a fasta file and counts the length of each sequence
// after removing gaps.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/chimera/pkg/seqlen"
	. "github.com/andrew-torda/chimera/pkg/seq/common"
)

func main() {
	var cmdArgs seqlen.CmdArgs
	cmd := &cobra.Command{
		Use:           "seqlen [options] input [output]",
		Short:         "Print the identifier, length and type of each sequence",
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdArgs.InSeqFname = args[0]
			if len(args) > 1 {
				cmdArgs.OutCntFname = args[1]
			}
			cmd.SilenceUsage = true
			return seqlen.Mymain(&cmdArgs)
		},
	}
	cmd.Flags().BoolVarP(&cmdArgs.KeepGaps, "gaps", "g", false, "count gaps in the length")
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
