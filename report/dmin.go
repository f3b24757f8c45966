package report

import (
	"fmt"
	"strings"

	"github.com/arjun-meyer/lal/core"
)

// DminReport summarizes a single minimum-D arrangement: the tree size,
// the minimum value of D found, and the witnessing arrangement.
type DminReport struct {
	N           int
	D           int64
	Arrangement *core.LinearArrangement
}

// NewDminReport builds a report from a Dmin result.
func NewDminReport(n int, d int64, arr *core.LinearArrangement) *DminReport {
	return &DminReport{N: n, D: d, Arrangement: arr}
}

// String implements fmt.Stringer.
func (r *DminReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dmin report: n=%d D=%d\n", r.N, r.D)
	fmt.Fprintf(&b, "  arrangement: %v\n", r.Arrangement.Positions())
	return b.String()
}
