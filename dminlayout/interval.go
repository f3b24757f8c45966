package dminlayout

import "github.com/arjun-meyer/lal/core"

// place records where, relative to its parent, a subtree's root has been
// positioned: to the parent's left, to its right, or (only for the tree's
// overall root) nowhere in particular.
type place int

const (
	placeLeftOf place = iota
	placeRightOf
	placeNoneOf
)

const (
	sideRight = 0
	sideLeft  = 1
)

func otherSide(s int) int { return (s + 1) & 1 }

// optimalIntervalOf lays out the subtree rooted at r within [ini,fin] and
// returns the sum of the lengths of all edges inside that subtree plus
// the part of the anchor edge from r to its own parent that lies inside
// [ini,fin]: the number of subtree vertices between r and the end of the
// interval facing the parent (0 when r is the overall root). Ported from
// the Gildea/Hochberg/Alemany recursion: children are consumed in
// decreasing subtree-size order, alternating which end of the interval
// they occupy and moving inward, so the largest subtrees end up farthest
// from r.
func optimalIntervalOf(L [][]childEntry, r int, rPlace place, ini, fin int, arr *core.LinearArrangement) int64 {
	children := L[r]

	side := sideLeft
	if rPlace == placeRightOf {
		side = sideRight
	}

	var accSizeLeft, accSizeRight int64
	var nIntervalsLeft, nIntervalsRight int64
	var D, d int64

	for _, ch := range children {
		ni := int64(ch.size)

		var childIni, childFin int
		var childPlace place
		if side == sideLeft {
			childPlace = placeLeftOf
			childIni = ini
			childFin = ini + ch.size - 1
		} else {
			childPlace = placeRightOf
			childIni = fin - ch.size + 1
			childFin = fin
		}

		D += optimalIntervalOf(L, ch.child, childPlace, childIni, childFin, arr)

		if side == sideLeft {
			d += ni * nIntervalsLeft
		} else {
			d += ni * nIntervalsRight
		}
		d++

		if side == sideLeft {
			nIntervalsLeft++
			accSizeLeft += ni
			ini += ch.size
		} else {
			nIntervalsRight++
			accSizeRight += ni
			fin -= ch.size
		}

		side = otherSide(side)
	}

	arr.Assign(r, ini)

	switch rPlace {
	case placeLeftOf:
		D += accSizeRight
	case placeRightOf:
		D += accSizeLeft
	}

	return D + d
}
