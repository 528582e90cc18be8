// 20 April 2020

package seq_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/chimera/pkg/seq"
)

func TestComposition(t *testing.T) {
	grp := NewSeqGrp(
		NewSeq("donor", []byte("AAAAAAAAAA")),
		NewSeq("recipient", []byte("CCCCCCCCCC")),
		NewSeq("chimera", []byte("CCAAAAACCC")),
	)
	counts := grp.Composition()
	nrow, ncol := counts.Size()
	assert.Equal(t, 2, nrow)
	assert.Equal(t, 3, ncol)
	assert.Equal(t, []uint8{'A', 'C'}, grp.Revmap())

	assert.Equal(t, 10, grp.Count('A', 0))
	assert.Equal(t, 0, grp.Count('C', 0))
	assert.Equal(t, 10, grp.Count('C', 1))
	assert.Equal(t, 5, grp.Count('A', 2))
	assert.Equal(t, 5, grp.Count('C', 2))
	assert.Equal(t, 0, grp.Count('G', 2), "unused symbol")
}

func TestWriteComp(t *testing.T) {
	grp := NewSeqGrp(NewSeq("a", []byte("ACGT")), NewSeq("b", []byte("AAGG")))
	var buf bytes.Buffer
	require.NoError(t, grp.WriteComp(&buf, []string{"donor", "recip"}, "%6.0f"))
	want := "sym  donor  recip\n" +
		"A        1      2\n" +
		"C        1      0\n" +
		"G        1      2\n" +
		"T        1      0\n"
	assert.Equal(t, want, buf.String())

	assert.Error(t, grp.WriteComp(&buf, []string{"only one"}, "%6.0f"))
}

func TestGetType(t *testing.T) {
	tests := []struct {
		s    string
		want SeqType
	}{
		{"ACGTACGT", DNA},
		{"acgtn", DNA},
		{"ACGUACGU", RNA},
		{"ACGACG", Ntide},
		{"ACGTU", Ntide},
		{"MKLVWYE", Protein},
		{"---", Unknown},
	}
	for _, tt := range tests {
		got := TypeOf(NewSeq("x", []byte(tt.s)))
		assert.Equal(t, tt.want, got, "%s", tt.s)
	}
	assert.Equal(t, "DNA", DNA.String())
}

func TestEmptyGroup(t *testing.T) {
	grp := NewSeqGrp()
	counts := grp.Composition()
	nrow, _ := counts.Size()
	assert.Zero(t, nrow)
	assert.Zero(t, grp.NSeq())
}
