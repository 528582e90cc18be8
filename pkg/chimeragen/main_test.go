package chimeragen_test

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/chimera/pkg/chimera"
	. "github.com/andrew-torda/chimera/pkg/chimeragen"
	"github.com/andrew-torda/chimera/pkg/config"
	"github.com/andrew-torda/chimera/pkg/logging"
	"github.com/andrew-torda/chimera/pkg/seq"
)

// fixed hands out the same numbers over and over.
type fixed struct {
	vals []int
	i    int
}

func (f *fixed) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

type setup struct {
	dir   string
	flags CmdFlag
}

func newSetup(t *testing.T, donor, recipient string) *setup {
	t.Helper()
	dir := t.TempDir()
	d := filepath.Join(dir, "donor.fa")
	r := filepath.Join(dir, "recipient.fa")
	require.NoError(t, os.WriteFile(d, []byte(donor), 0o644))
	require.NoError(t, os.WriteFile(r, []byte(recipient), 0o644))
	flags := FromSettings(config.Default())
	flags.Donor = d
	flags.Recipient = r
	flags.Percentage = 50
	flags.Out = filepath.Join(dir, "output.fasta")
	return &setup{dir: dir, flags: flags}
}

const (
	donorA = ">d1 all A\nAAAAAAAAAA\n"
	recipC = ">r1 all C\nCCCCC\nCCCCC\n"
)

func TestRun(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	var stdout bytes.Buffer
	require.NoError(t, Run(&s.flags, &fixed{vals: []int{2, 3}}, &stdout, io.Discard, logging.Discard()))
	assert.Equal(t, "Chimeric genome saved to "+s.flags.Out+"\n", stdout.String())

	b, err := os.ReadFile(s.flags.Out)
	require.NoError(t, err)
	assert.Equal(t, ">Chimeric Genome Replaced 50.0% of donor sequence\nCCCAAAAACC\n", string(b))
	got, err := seq.ReadOne(s.flags.Out)
	require.NoError(t, err)
	assert.Equal(t, chimera.ID, got.GetCmmt()[:len(chimera.ID)])
}

func TestMymainRandom(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	var stdout bytes.Buffer
	require.NoError(t, Mymain(&s.flags, &stdout, io.Discard, logging.Discard()))
	got, err := seq.ReadOne(s.flags.Out)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Len())
	assert.Equal(t, 5, strings.Count(string(got.GetSeq()), "A"))
}

func TestWidth(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	s.flags.Width = 4
	require.NoError(t, Run(&s.flags, &fixed{vals: []int{0}}, &bytes.Buffer{}, io.Discard, logging.Discard()))
	b, err := os.ReadFile(s.flags.Out)
	require.NoError(t, err)
	assert.Equal(t, ">Chimeric Genome Replaced 50.0% of donor sequence\nAAAA\nACCC\nCC\n", string(b))
}

// TestBadPercentage checks the percentage is looked at before the
// files, so a missing file does not hide the real problem.
func TestBadPercentage(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	s.flags.Donor = filepath.Join(s.dir, "not_there.fa")
	for _, p := range []float64{0, 100.0001, -3} {
		s.flags.Percentage = p
		var stdout bytes.Buffer
		err := Run(&s.flags, nil, &stdout, io.Discard, logging.Discard())
		assert.ErrorIs(t, err, chimera.ErrInvalidArgument)
		assert.Empty(t, stdout.String())
		_, err = os.Stat(s.flags.Out)
		assert.ErrorIs(t, err, os.ErrNotExist)
	}
}

func TestLoadErrors(t *testing.T) {
	s := newSetup(t, donorA+">d2\nAC\n", recipC)
	err := Run(&s.flags, nil, &bytes.Buffer{}, io.Discard, logging.Discard())
	assert.ErrorIs(t, err, seq.ErrNotSingle)
	assert.ErrorContains(t, err, "reading donor")

	s = newSetup(t, donorA, "")
	err = Run(&s.flags, nil, &bytes.Buffer{}, io.Discard, logging.Discard())
	assert.ErrorIs(t, err, seq.ErrNoSeqs)
	assert.ErrorContains(t, err, "reading recipient")

	s = newSetup(t, donorA, recipC)
	s.flags.Recipient = filepath.Join(s.dir, "missing.fa")
	err = Run(&s.flags, nil, &bytes.Buffer{}, io.Discard, logging.Discard())
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = os.Stat(s.flags.Out)
	assert.ErrorIs(t, err, os.ErrNotExist, "no output on failure")
}

func TestValidate(t *testing.T) {
	good := CmdFlag{Donor: "d", Recipient: "r", Out: "o", Percentage: 5}
	require.NoError(t, good.Validate())

	bad := map[string]func(f *CmdFlag){
		"no donor":     func(f *CmdFlag) { f.Donor = "" },
		"no recipient": func(f *CmdFlag) { f.Recipient = "" },
		"no out":       func(f *CmdFlag) { f.Out = "" },
		"width":        func(f *CmdFlag) { f.Width = -1 },
		"log level":    func(f *CmdFlag) { f.LogLevel = "loud" },
		"debugging":    func(f *CmdFlag) { f.LogLevel = "debugging" },
		"stdin twice":  func(f *CmdFlag) { f.Donor, f.Recipient = "-", "-" },
	}
	for _, lvl := range []string{"INFO", "Warning", "debug", ""} {
		f := good
		f.LogLevel = lvl
		assert.NoError(t, f.Validate(), lvl)
	}
	for name, change := range bad {
		f := good
		change(&f)
		err := f.Validate()
		assert.ErrorIs(t, err, ErrUsage, name)
		err = Run(&f, nil, &bytes.Buffer{}, io.Discard, logging.Discard())
		assert.ErrorIs(t, err, ErrUsage, name)
	}
}

func TestStats(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	s.flags.Stats = true
	var stdout bytes.Buffer
	logger, err := logging.New("warn", &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, Run(&s.flags, &fixed{vals: []int{1, 4}}, &stdout, io.Discard, logger))
	out := stdout.String()
	assert.Contains(t, out, "run        "+logger.RunID+"\n")
	assert.Contains(t, out, "donor      d1 length 10\n")
	assert.Contains(t, out, "replaced   5 symbols\n")
	assert.Contains(t, out, "donor      2 to 6\n")
	assert.Contains(t, out, "recipient  5 to 9\n")
	assert.Contains(t, out, "donated    AAAAA\n")
	assert.Contains(t, out, "original   CCCCC\n")
	assert.Contains(t, out, "sym      donor  recipient    chimera\n")
	assert.Contains(t, out, "A           10          0          5\n")
	assert.Contains(t, out, "C            0         10          5\n")
	assert.True(t, strings.HasSuffix(out, "Chimeric genome saved to "+s.flags.Out+"\n"))
}

func TestStatsNothingMoved(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	s.flags.Stats = true
	s.flags.Percentage = 1
	var stdout, log bytes.Buffer
	logger, err := logging.New("warn", &log)
	require.NoError(t, err)
	require.NoError(t, Run(&s.flags, nil, &stdout, io.Discard, logger))
	assert.Contains(t, stdout.String(), "donated    (none)\n")
	assert.Contains(t, log.String(), "nothing was transferred")
}

func TestPlot(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	s.flags.Plot = filepath.Join(s.dir, "map.png")
	require.NoError(t, Run(&s.flags, nil, &bytes.Buffer{}, io.Discard, logging.Discard()))
	fp, err := os.Open(s.flags.Plot)
	require.NoError(t, err)
	defer fp.Close()
	_, err = png.DecodeConfig(fp)
	assert.NoError(t, err)
}

func TestWarnings(t *testing.T) {
	s := newSetup(t, ">prot\nMKLVWWHEEKLS\n", recipC)
	require.NoError(t, os.WriteFile(s.flags.Out, []byte(">old\nA\n"), 0o644))
	var log bytes.Buffer
	logger, err := logging.New("warn", &log)
	require.NoError(t, err)
	require.NoError(t, Run(&s.flags, nil, &bytes.Buffer{}, io.Discard, logger))
	assert.Contains(t, log.String(), "overwriting old version")
	assert.Contains(t, log.String(), "different kinds of sequence")
	assert.Contains(t, log.String(), "donor=protein")
	assert.Contains(t, log.String(), "run="+logger.RunID)
}

func TestFromSettings(t *testing.T) {
	f := FromSettings(config.Settings{Out: "x.fa", Width: 7, LogLevel: "info", Stats: true, Plot: "p.png"})
	assert.Equal(t, CmdFlag{Out: "x.fa", Width: 7, LogLevel: "info", Stats: true, Plot: "p.png"}, f)
}

func TestOutToStdout(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	s.flags.Out = "-"
	var stdout bytes.Buffer
	require.NoError(t, Run(&s.flags, &fixed{vals: []int{0, 5}}, &stdout, io.Discard, logging.Discard()))
	assert.Equal(t, ">Chimeric Genome Replaced 50.0% of donor sequence\nCCCCCAAAAA\n", stdout.String())
}

// TestStatsWithStdout sends the sequence to stdout, so the stats have
// to go elsewhere or they would be read as sequence.
func TestStatsWithStdout(t *testing.T) {
	s := newSetup(t, donorA, recipC)
	s.flags.Out = "-"
	s.flags.Stats = true
	var stdout, stderr bytes.Buffer
	require.NoError(t, Run(&s.flags, &fixed{vals: []int{0, 5}}, &stdout, &stderr, logging.Discard()))
	got, err := seq.ReadOneRdr(&stdout)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Len())
	assert.Equal(t, "CCCCCAAAAA", string(got.GetSeq()))
	assert.Contains(t, stderr.String(), "donated    AAAAA\n")
	assert.Contains(t, stderr.String(), "sym      donor  recipient    chimera\n")
}
