// Check our files against the biogo fasta reader and writer, so that
// other tools can read what we write and we can read what they write.

package seq_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/chimera/pkg/seq"
)

func lettersToString(ls alphabet.Letters) string {
	b := make([]byte, len(ls))
	for i, l := range ls {
		b[i] = byte(l)
	}
	return string(b)
}

func TestBiogoReadsOurs(t *testing.T) {
	want := strings.Repeat("GATTACA", 30)
	fname := filepath.Join(t.TempDir(), "ours.fasta")
	require.NoError(t, WriteToF(fname, []Seq{NewSeq("Chimeric Genome Replaced 50.0% of donor sequence", []byte(want))}, &Options{Width: DefaultWidth}))

	fp, err := os.Open(fname)
	require.NoError(t, err)
	defer fp.Close()
	sc := seqio.NewScanner(fasta.NewReader(fp, linear.NewSeq("", nil, alphabet.DNA)))
	var got []*linear.Seq
	for sc.Next() {
		got = append(got, sc.Seq().(*linear.Seq))
	}
	require.NoError(t, sc.Error())
	require.Len(t, got, 1)
	assert.Equal(t, want, lettersToString(got[0].Seq))
	assert.Equal(t, "Chimeric", got[0].ID)
}

func TestWeReadBiogo(t *testing.T) {
	want := strings.Repeat("ACGT", 41)
	var buf bytes.Buffer
	s := linear.NewSeq("recipient_7", alphabet.BytesToLetters([]byte(want)), alphabet.DNA)
	s.Desc = "from biogo"
	w := fasta.NewWriter(&buf, 50)
	_, err := w.Write(s)
	require.NoError(t, err)

	got, err := ReadOneRdr(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, string(got.GetSeq()))
	assert.Equal(t, "recipient_7", got.ID())
}
