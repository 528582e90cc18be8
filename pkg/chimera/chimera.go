// 18 Oct 2026

// Package chimera makes a chimeric sequence. A piece of a donor
// sequence is cut out and put in place of a piece of the same length in
// a recipient sequence. The length of the piece is a percentage of the
// shorter of the two sequences. Where the piece comes from and where it
// goes are chosen at random, independently of each other.
//
// Nothing here reads or writes files. The caller hands over the
// symbols and gets new symbols back. The inputs are never changed.
package chimera

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ID is the identifier given to every chimeric sequence.
const ID = "Chimeric Genome"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrBadPlan         = errors.New("splice plan does not fit the sequences")
)

// Intner draws integers uniformly from [0, n). *math/rand.Rand is one.
type Intner interface {
	Intn(n int) int
}

// globalRand uses the package level generator from math/rand, which
// is seeded randomly at start up.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

// Plan says how long the transferred piece is and where it starts
// in the donor and in the recipient.
type Plan struct {
	Len        int
	DonorStart int
	RecipStart int
}

// Result is a chimeric sequence with the information needed to write
// it out. Donated and Original are slices of the inputs, not copies.
type Result struct {
	Seq      []byte // the new sequence
	ID       string
	Desc     string
	Plan     Plan
	Donated  []byte // the piece taken from the donor
	Original []byte // the piece of recipient that was replaced
}

// Generator makes chimeras with its own source of random numbers.
// The zero value uses the global math/rand source.
type Generator struct {
	rnd Intner
}

// New returns a Generator drawing from rnd. If rnd is nil, the global
// math/rand source is used.
func New(rnd Intner) *Generator {
	return &Generator{rnd: rnd}
}

// CheckPercentage returns an error unless 0 < percentage <= 100.
// NaN is rejected too.
func CheckPercentage(percentage float64) error {
	if !(percentage > 0 && percentage <= 100) {
		return fmt.Errorf("%w: percentage must be between 0 and 100 (0 excluded), got %s",
			ErrInvalidArgument, FormatPercent(percentage))
	}
	return nil
}

// ReplacementLen is floor(min(nDonor, nRecip) * percentage / 100).
// It does not check the percentage.
func ReplacementLen(nDonor, nRecip int, percentage float64) int {
	return int(math.Floor(float64(min(nDonor, nRecip)) * percentage / 100))
}

// inclusive draws from [0, hi].
func inclusive(rnd Intner, hi int) int { return rnd.Intn(hi + 1) }

// NewPlan works out the replacement length and draws the two start
// positions, first the donor, then the recipient.
func NewPlan(nDonor, nRecip int, percentage float64, rnd Intner) (Plan, error) {
	if err := CheckPercentage(percentage); err != nil {
		return Plan{}, err
	}
	n := ReplacementLen(nDonor, nRecip, percentage)
	return Plan{
		Len:        n,
		DonorStart: inclusive(rnd, nDonor-n),
		RecipStart: inclusive(rnd, nRecip-n),
	}, nil
}

// Check returns ErrBadPlan if the plan would reach outside either sequence.
func (p Plan) Check(nDonor, nRecip int) error {
	switch {
	case p.Len < 0, p.Len > min(nDonor, nRecip),
		p.DonorStart < 0, p.DonorStart > nDonor-p.Len,
		p.RecipStart < 0, p.RecipStart > nRecip-p.Len:
		return fmt.Errorf("%w: %+v with donor length %d, recipient length %d",
			ErrBadPlan, p, nDonor, nRecip)
	}
	return nil
}

// Splice returns a new slice, the recipient with the planned piece
// of donor put in. Neither input is changed.
func Splice(donor, recipient []byte, p Plan) ([]byte, error) {
	if err := p.Check(len(donor), len(recipient)); err != nil {
		return nil, err
	}
	part := donor[p.DonorStart : p.DonorStart+p.Len]
	out := make([]byte, 0, len(recipient))
	out = append(out, recipient[:p.RecipStart]...)
	out = append(out, part...)
	out = append(out, recipient[p.RecipStart+p.Len:]...)
	return out, nil
}

// Description is the text that goes after the identifier.
func Description(percentage float64) string {
	return "Replaced " + FormatPercent(percentage) + "% of donor sequence"
}

// FormatPercent prints a number the shortest way that reads back
// exactly, but always with a decimal point unless it is in
// exponent form, so 50 comes out as "50.0".
func FormatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'g', -1, 64)
	if strings.ContainsAny(s, ".eIN") { // N for NaN, I for Inf
		return s
	}
	return s + ".0"
}

// Generate transfers percentage % of the shorter sequence from donor to
// recipient. An error wrapping ErrInvalidArgument comes back if
// percentage is not in (0, 100]. Nothing is computed in that case.
func (g *Generator) Generate(donor, recipient []byte, percentage float64) (*Result, error) {
	rnd := g.rnd
	if rnd == nil {
		rnd = globalRand{}
	}
	plan, err := NewPlan(len(donor), len(recipient), percentage, rnd)
	if err != nil {
		return nil, err
	}
	s, err := Splice(donor, recipient, plan)
	if err != nil {
		return nil, err // cannot happen with a plan from NewPlan
	}
	return &Result{
		Seq:      s,
		ID:       ID,
		Desc:     Description(percentage),
		Plan:     plan,
		Donated:  donor[plan.DonorStart : plan.DonorStart+plan.Len : plan.DonorStart+plan.Len],
		Original: recipient[plan.RecipStart : plan.RecipStart+plan.Len : plan.RecipStart+plan.Len],
	}, nil
}

// Generate is Generator.Generate with the global random source.
func Generate(donor, recipient []byte, percentage float64) (*Result, error) {
	return New(nil).Generate(donor, recipient, percentage)
}

// Header is the whole fasta comment line, without the ">".
func (r *Result) Header() string { return r.ID + " " + r.Desc }
