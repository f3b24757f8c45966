package report

import (
	"fmt"
	"strings"

	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/registry"
)

// DmaxReport summarizes a maximum-D search: the graph size, the maximum
// value of D found, and every distinct (up to level isomorphism)
// witnessing arrangement with its multiplicity.
type DmaxReport struct {
	N               int
	D               int64
	Representatives []*core.LinearArrangement
	Multiplicities  []int64
}

// NewDmaxReport builds a report from reg, which must have recorded at
// least one arrangement.
func NewDmaxReport(n int, reg *registry.Registry) (*DmaxReport, error) {
	best, ok := reg.Best()
	if !ok {
		return nil, ErrEmptyRegistry
	}

	reps := reg.Representatives()
	mults := make([]int64, len(reps))
	for i := range reps {
		mults[i] = reg.Multiplicity(i)
	}

	return &DmaxReport{
		N:               n,
		D:               best,
		Representatives: reps,
		Multiplicities:  mults,
	}, nil
}

// String implements fmt.Stringer.
func (r *DmaxReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dmax report: n=%d D=%d classes=%d\n", r.N, r.D, len(r.Representatives))
	for i, rep := range r.Representatives {
		fmt.Fprintf(&b, "  class %d (x%d): %v\n", i, r.Multiplicities[i], rep.Positions())
	}
	return b.String()
}
