// 18 Oct 2026
// Put a random piece of a donor genome into a recipient genome.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/chimera/pkg/chimeragen"
	"github.com/andrew-torda/chimera/pkg/config"
	"github.com/andrew-torda/chimera/pkg/logging"
	"github.com/andrew-torda/chimera/pkg/seq"
	. "github.com/andrew-torda/chimera/pkg/seq/common"
)

// app holds the flags and where output goes for one run.
type app struct {
	stdout, stderr io.Writer
	flags          chimeragen.CmdFlag
	cfgFile        string
	ran            bool // got past flag parsing
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chimera -d donor.fa -r recipient.fa -p percentage [flags]",
		Short:         "Put a random piece of one genome into another",
		Long:          long,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	f := cmd.Flags()
	f.StringVarP(&a.flags.Donor, "donor", "d", "", "donor sequence file, fasta, may be gzipped, - for stdin")
	f.StringVarP(&a.flags.Recipient, "recipient", "r", "", "recipient sequence file")
	f.Float64VarP(&a.flags.Percentage, "percentage", "p", 0, "percent of the shorter sequence to transfer, 0 < p <= 100")
	f.StringVarP(&a.flags.Out, "out", "o", config.DefaultOut, "output file, - for stdout")
	f.StringVarP(&a.cfgFile, "config", "c", "", "yaml file with default settings")
	f.IntVarP(&a.flags.Width, "width", "w", seq.DefaultWidth, "symbols per output line, 0 for one line")
	f.BoolVarP(&a.flags.Stats, "stats", "s", false, "print where the piece came from and went, and composition")
	f.StringVar(&a.flags.Plot, "plot", "", "write a picture of the splice to this png file")
	f.StringVarP(&a.flags.LogLevel, "log-level", "l", "warn", "debug, info, warn or error")
	for _, name := range []string{"donor", "recipient", "percentage"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err) // only if the flag name is wrong
		}
	}
	return cmd
}

const long = `Chimera takes a piece of the donor sequence and puts it in place of a
piece of the same length in the recipient. The length is the given
percentage of the shorter sequence, rounded down. Both positions are
random. The result is written in fasta format.`

// merge fills in everything not given on the command line from the
// config file, or from the defaults if there is no file.
func (a *app) merge(cmd *cobra.Command) error {
	s, err := config.Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("%w: %w", chimeragen.ErrUsage, err)
	}
	from := chimeragen.FromSettings(s)
	changed := cmd.Flags().Changed
	if !changed("out") {
		a.flags.Out = from.Out
	}
	if !changed("width") {
		a.flags.Width = from.Width
	}
	if !changed("stats") {
		a.flags.Stats = from.Stats
	}
	if !changed("plot") {
		a.flags.Plot = from.Plot
	}
	if !changed("log-level") {
		a.flags.LogLevel = from.LogLevel
	}
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	a.ran = true
	if err := a.merge(cmd); err != nil {
		return err
	}
	logger, err := logging.New(a.flags.LogLevel, a.stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", chimeragen.ErrUsage, err)
	}
	logger.Debug("settings", "flags", fmt.Sprintf("%+v", a.flags), "config", a.cfgFile)
	return chimeragen.Mymain(&a.flags, a.stdout, a.stderr, logger)
}

// execute runs the command and turns the result into an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	switch {
	case err == nil:
		return ExitSuccess
	case !a.ran || errors.Is(err, chimeragen.ErrUsage):
		fmt.Fprintln(stderr, err)
		fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsageError
	}
	fmt.Fprintln(stderr, err)
	return ExitFailure
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}
