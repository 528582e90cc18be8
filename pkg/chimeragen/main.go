// 18 Oct 2026

// Package chimeragen reads a donor and a recipient sequence, makes a
// chimera and writes it out. It is everything the chimera command
// does, apart from parsing the command line.
package chimeragen

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/andrew-torda/chimera/pkg/chimera"
	"github.com/andrew-torda/chimera/pkg/config"
	"github.com/andrew-torda/chimera/pkg/logging"
	"github.com/andrew-torda/chimera/pkg/seq"
	"github.com/andrew-torda/chimera/pkg/splicemap"
)

// ErrUsage marks mistakes in how the program was called, as opposed
// to things that went wrong while running.
var ErrUsage = errors.New("usage")

var validate = validator.New()

// CmdFlag is what comes in from the command line and config file.
type CmdFlag struct {
	Donor      string  `validate:"required"`
	Recipient  string  `validate:"required"`
	Percentage float64 // checked by chimera.CheckPercentage
	Out        string  `validate:"required"`
	Width      int     `validate:"gte=0"`
	Stats      bool    // print the plan and composition, to stderr if Out is "-"
	Plot       string  // png file for a splice map
	LogLevel   string  // checked by logging.ParseLevel
}

// FromSettings starts a CmdFlag from config file settings. The caller
// then overwrites whatever was given on the command line.
func FromSettings(s config.Settings) CmdFlag {
	return CmdFlag{
		Out:      s.Out,
		Width:    s.Width,
		Stats:    s.Stats,
		Plot:     s.Plot,
		LogLevel: s.LogLevel,
	}
}

// Validate checks the struct tags, the log level and that standard
// input is not asked for twice.
func (f *CmdFlag) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if _, err := logging.ParseLevel(f.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if f.Donor == "-" && f.Recipient == "-" {
		return fmt.Errorf("%w: donor and recipient cannot both come from standard input", ErrUsage)
	}
	return nil
}

// warnExists logs a warning if we are about to trash a file.
func warnExists(fname string, logger *logging.Logger) {
	if _, err := os.Stat(fname); err == nil {
		logger.Warn("overwriting old version", "file", fname)
	}
}

// load reads the one sequence in a file and logs what it found.
func load(role, fname string, logger *logging.Logger) (seq.Seq, error) {
	s, err := seq.ReadOne(fname)
	if err != nil {
		return seq.Seq{}, fmt.Errorf("reading %s: %w", role, err)
	}
	logger.Info("read "+role, "file", fname, "id", s.ID(), "len", s.Len(), "type", seq.TypeOf(s))
	return s, nil
}

// Mymain makes a chimera with the global random number generator.
func Mymain(flags *CmdFlag, stdout, stderr io.Writer, logger *logging.Logger) error {
	return Run(flags, nil, stdout, stderr, logger)
}

// Run does the work. rnd may be nil. The percentage is checked before
// any file is opened. If the sequence goes to stdout, the stats go to
// stderr so stdout stays fasta.
func Run(flags *CmdFlag, rnd chimera.Intner, stdout, stderr io.Writer, logger *logging.Logger) error {
	if err := flags.Validate(); err != nil {
		return err
	}
	if err := chimera.CheckPercentage(flags.Percentage); err != nil {
		return err
	}
	donor, err := load("donor", flags.Donor, logger)
	if err != nil {
		return err
	}
	recipient, err := load("recipient", flags.Recipient, logger)
	if err != nil {
		return err
	}
	if dt, rt := seq.TypeOf(donor), seq.TypeOf(recipient); dt != rt {
		logger.Warn("donor and recipient look like different kinds of sequence",
			"donor", dt, "recipient", rt)
	}

	r, err := chimera.New(rnd).Generate(donor.GetSeq(), recipient.GetSeq(), flags.Percentage)
	if err != nil {
		return err
	}
	logger.Info("spliced", "len", r.Plan.Len,
		"donor_start", r.Plan.DonorStart, "recipient_start", r.Plan.RecipStart)
	if r.Plan.Len == 0 {
		logger.Warn("percentage too small, nothing was transferred",
			"percentage", chimera.FormatPercent(flags.Percentage))
	}

	out := seq.NewSeq(r.Header(), r.Seq)
	if flags.Out == "-" {
		err = seq.WriteFasta(stdout, []seq.Seq{out}, flags.Width)
	} else {
		warnExists(flags.Out, logger)
		err = seq.WriteToF(flags.Out, []seq.Seq{out}, &seq.Options{Width: flags.Width})
	}
	if err != nil {
		return err
	}
	if flags.Plot != "" {
		m := splicemap.FromResult(r, donor.Len(), recipient.Len())
		if err := splicemap.WriteFile(flags.Plot, m, splicemap.DefaultWidth); err != nil {
			return fmt.Errorf("splice map: %w", err)
		}
		logger.Info("wrote splice map", "file", flags.Plot)
	}
	if flags.Stats {
		st := stats{run: logger.RunID, donor: donor, recipient: recipient, chimera: out, res: r}
		w := stdout
		if flags.Out == "-" {
			w = stderr
		}
		if err := st.write(w); err != nil {
			return err
		}
	}
	if flags.Out != "-" {
		fmt.Fprintln(stdout, "Chimeric genome saved to", flags.Out)
	}
	return nil
}
