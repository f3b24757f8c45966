package registry

import (
	"github.com/arjun-meyer/lal/core"
	"github.com/arjun-meyer/lal/levelsig"
)

// class is one equivalence class of arrangements under level isomorphism.
type class struct {
	representative *core.LinearArrangement
	signature      []int
	mirror         []int
	count          int64
}

// Registry accumulates the arrangements of maximum D seen so far, kept
// deduplicated by level isomorphism.
type Registry struct {
	g       *core.Graph
	best    int64
	hasBest bool
	classes []*class
}

// New creates an empty registry over the edge-length function of g.
func New(g *core.Graph) *Registry {
	return &Registry{g: g}
}

// Best returns the current maximum value and whether any arrangement has
// been added yet.
func (r *Registry) Best() (int64, bool) { return r.best, r.hasBest }

// Count returns the number of distinct level-isomorphism classes stored.
func (r *Registry) Count() int { return len(r.classes) }

// Representatives returns one arrangement per stored class, in class
// order; Multiplicity(i) gives the count for class i.
func (r *Registry) Representatives() [](*core.LinearArrangement) {
	reps := make([]*core.LinearArrangement, len(r.classes))
	for i, c := range r.classes {
		reps[i] = c.representative
	}
	return reps
}

// Multiplicity returns the number of arrangements folded into class i.
func (r *Registry) Multiplicity(i int) int64 { return r.classes[i].count }

// Add offers value/arrangement to the registry. If value is less than the
// current maximum, it is ignored. If greater, the registry is reset to
// hold only this arrangement. If equal, the arrangement's level signature
// is computed and compared (directly or mirrored) against every existing
// class; a match increments that class's count, otherwise a new class is
// appended.
func (r *Registry) Add(value int64, arr *core.LinearArrangement) {
	r.AddMultiplicity(value, arr, 1)
}

// AddMultiplicity behaves like Add, except a matching or newly created
// class has its count increased by mult instead of by 1. Used when a
// single representative stands in for a known number of raw arrangements
// that share its level signature by construction (e.g. every permutation
// of mutually interchangeable vertices within the independent-set
// completion shortcut), rather than one arrangement actually built per
// count.
func (r *Registry) AddMultiplicity(value int64, arr *core.LinearArrangement, mult int64) {
	if mult <= 0 {
		return
	}
	if r.hasBest && value < r.best {
		return
	}
	if !r.hasBest || value > r.best {
		r.best = value
		r.hasBest = true
		r.classes = r.classes[:0]
	}

	sig := levelsig.PerPosition(r.g, arr)
	for _, c := range r.classes {
		if levelsig.Equal(sig, c.signature) || levelsig.Equal(sig, c.mirror) {
			c.count += mult
			return
		}
	}
	r.classes = append(r.classes, &class{
		representative: arr.Clone(),
		signature:      sig,
		mirror:         levelsig.MirrorPerPosition(sig),
		count:          mult,
	})
}

// Merge folds other into r under the same rules Add uses: if other's
// maximum exceeds r's, other's classes replace r's entirely; if equal,
// classes are folded in by signature match; if other's maximum is lower,
// it is dropped entirely.
func (r *Registry) Merge(other *Registry) {
	if !other.hasBest {
		return
	}
	if !r.hasBest || other.best > r.best {
		r.best = other.best
		r.hasBest = true
		r.classes = append([]*class(nil), other.classes...)
		return
	}
	if other.best < r.best {
		return
	}
	for _, oc := range other.classes {
		matched := false
		for _, c := range r.classes {
			if levelsig.Equal(oc.signature, c.signature) || levelsig.Equal(oc.signature, c.mirror) {
				c.count += oc.count
				matched = true
				break
			}
		}
		if !matched {
			r.classes = append(r.classes, oc)
		}
	}
}
