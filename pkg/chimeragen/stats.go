// 18 Oct 2026

package chimeragen

import (
	"fmt"
	"io"

	"github.com/andrew-torda/chimera/pkg/chimera"
	"github.com/andrew-torda/chimera/pkg/seq"
)

const maxShow = 60 // longest piece of sequence printed in full

type stats struct {
	run       string
	donor     seq.Seq
	recipient seq.Seq
	chimera   seq.Seq
	res       *chimera.Result
}

// show prints a piece of sequence, cut down if it is long.
func show(b []byte) string {
	if len(b) == 0 {
		return "(none)"
	}
	if len(b) > maxShow {
		return fmt.Sprintf("%s... (%d symbols)", b[:maxShow], len(b))
	}
	return string(b)
}

// write prints the plan, the two pieces and a composition table.
// Positions are printed counting from 1.
func (st *stats) write(w io.Writer) error {
	p := st.res.Plan
	fmt.Fprintf(w, "run        %s\n", st.run)
	fmt.Fprintf(w, "donor      %s length %d\n", st.donor.ID(), st.donor.Len())
	fmt.Fprintf(w, "recipient  %s length %d\n", st.recipient.ID(), st.recipient.Len())
	fmt.Fprintf(w, "replaced   %d symbols\n", p.Len)
	if p.Len > 0 {
		fmt.Fprintf(w, "donor      %d to %d\n", p.DonorStart+1, p.DonorStart+p.Len)
		fmt.Fprintf(w, "recipient  %d to %d\n", p.RecipStart+1, p.RecipStart+p.Len)
	}
	fmt.Fprintf(w, "donated    %s\n", show(st.res.Donated))
	fmt.Fprintf(w, "original   %s\n", show(st.res.Original))

	grp := seq.NewSeqGrp(st.donor, st.recipient, st.chimera)
	return grp.WriteComp(w, []string{"donor", "recipient", "chimera"}, "%10.0f")
}
