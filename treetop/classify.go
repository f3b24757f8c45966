package treetop

import "github.com/arjun-meyer/lal/core"

// Classify determines t's shape using the degree histogram and
// the "internal degree after leaf removal" count, and caches the result
// on t. Classification is idempotent (re-running yields the same bits)
// and core.TreeTypeUnknown is cleared whenever any concrete bit is set.
func Classify(t *core.FreeTree) core.TreeType {
	tt := classify(t)
	t.SetCachedTreeType(tt)
	return tt
}

func classify(t *core.FreeTree) core.TreeType {
	n := t.N()
	switch {
	case n == 0:
		return core.TreeTypeEmpty
	case n == 1:
		return core.TreeTypeSingleton | core.TreeTypeCaterpillar
	case n == 2, n == 3:
		return core.TreeTypeLinear | core.TreeTypeStar | core.TreeTypeBistar | core.TreeTypeCaterpillar
	}

	var nDeg1, nDeg2, nDegGe2, nDegGe3 uint
	degInternal := make([]int64, n)

	for u := 0; u < n; u++ {
		du := t.Degree(u)
		if du > 1 {
			degInternal[u] += int64(du)
		}
		switch {
		case du == 1:
			nDeg1++
		case du == 2:
			nDeg2++
		}
		if du > 1 {
			nDegGe2++
		}
		if du > 2 {
			nDegGe3++
		}
		if du == 1 {
			degInternal[t.Neighbors(u)[0]]--
		}
	}

	var out core.TreeType

	isLinear := nDeg1 == 2
	isCaterpillar := isLinear

	isBistar := nDegGe2 == 2 && uint(n)-nDegGe2 == nDeg1
	if isBistar {
		isCaterpillar = true
	}

	isQuasistar := uint(n)-nDegGe2 == nDeg1 &&
		((nDeg2 == 2 && nDegGe3 == 0) || (nDegGe3 == 1 && nDeg2 == 1))
	if isQuasistar {
		isCaterpillar = true
	}

	isStar := nDegGe2 == 1 && nDeg1 == uint(n)-1
	if isStar {
		isCaterpillar = true
	}

	isSpider := nDegGe3 == 1 && nDeg1+nDeg2 == uint(n)-1
	isTwoLinear := nDegGe3 == 2 && nDeg1+nDeg2 == uint(n)-2

	if !isCaterpillar {
		var n1 int
		for u := 0; u < n; u++ {
			if degInternal[u] == 1 {
				n1++
			}
		}
		isCaterpillar = n1 == 2 || n1 == 0
	}

	if isLinear {
		out |= core.TreeTypeLinear
	}
	if isStar {
		out |= core.TreeTypeStar
	}
	if isQuasistar {
		out |= core.TreeTypeQuasiStar
	}
	if isBistar {
		out |= core.TreeTypeBistar
	}
	if isCaterpillar {
		out |= core.TreeTypeCaterpillar
	}
	if isSpider {
		out |= core.TreeTypeSpider
	}
	if isTwoLinear {
		out |= core.TreeTypeTwoLinear
	}
	return out
}
