// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

// pair bundles a text position with its current sort key so that the
// copy-assisted sort below can compare and move keys sequentially in
// scratch instead of chasing ISA pointers on every comparison.
type pair struct {
	value int32
	key   int32
}

// quickCopy behaves like quick but, when cfg.UseCopy is set and scratch
// is large enough, sorts a copy of sa[first:last]'s (value,key) pairs in
// scratch for better cache locality before writing the result back. It
// falls back to quick directly when copy-assisted sorting isn't
// profitable, the range is shorter than the 7-pair pivot sample, or the
// pivot sample turns out degenerate.
func (cfg Config) quickCopy(sa []int32, first, last int, scratch []pair, dir Dir, key keyFunc, cb cbFunc) {
	n := last - first
	if !cfg.UseCopy || n < cfg.ScratchThreshold || n < 7 || len(scratch) < n {
		cfg.quick(sa, first, last, dir, key, cb)
		return
	}

	s := scratch[:n]
	for i := 0; i < n; i++ {
		v := sa[first+i]
		s[i] = pair{v, key(v)}
	}

	_, mid1, _ := medianPair7(s, 0)
	if degenerateSample(s, mid1) {
		cfg.quick(sa, first, last, dir, key, cb)
		return
	}
	piv := s[mid1].key

	a, b := partitionPair(s, 0, n, piv)

	for i := 0; i < n; i++ {
		sa[first+i] = s[i].value
	}

	cfg.sortZone(sa, first, first+a, scratch, key)
	cfg.sortZone(sa, first+b, last, scratch, key)

	callRange(sa, first, last, dir, key, cb)
}

// sortZone sorts sa[first:last] by key, the way quickCopy hands each of the
// two non-equal zones it split off to the full recursive engine instead of
// insertion-sorting them directly: only ranges at or below
// InsertionThreshold get a plain insertion sort, everything else recurses
// through quickCopy (falling through to quick when copying isn't
// profitable). No callback is invoked here; quickCopy fires cb once, for
// its whole range, only after every zone is fully sorted.
func (cfg Config) sortZone(sa []int32, first, last int, scratch []pair, key keyFunc) {
	if last-first <= cfg.InsertionThreshold {
		insertionSort(sa, first, last, key)
		return
	}
	cfg.quickCopy(sa, first, last, scratch, NoCB, key, nil)
}

// degenerateSample reports whether at least 4 of the 7 keys sampled by
// medianPair7 equal the chosen median, signalling a pivot sample too
// skewed to trust. This is the pair-sample analogue of quickBudget's own
// p1==p2||p2==p3 check: with no three-way pair partition to fall back on
// here, skew is judged by a plain count over the 7 samples instead.
func degenerateSample(s []pair, mid int) bool {
	k := s[mid].key
	count := 0
	for i := 0; i < 7 && i < len(s); i++ {
		if s[i].key == k {
			count++
		}
	}
	return count >= 4
}

// medianPair7 runs median7's comparator network over the 7 pairs starting
// at first and returns indices c, d, e, whose keys are in non-decreasing
// order but are not always exactly ranks 1, 3, 5 among them.
func medianPair7(s []pair, first int) (lo, mid, hi int) {
	a, b, c, d, e, f, g := first, first+1, first+2, first+3, first+4, first+5, first+6
	cswapPair(s, a, c)
	cswapPair(s, e, g)
	cswapPair(s, a, e)
	cswapPair(s, c, g)
	cswapPair(s, c, e)
	cswapPair(s, a, g)
	cswapPair(s, b, f)
	cswapPair(s, b, d)
	cswapPair(s, d, f)
	cmovgPair(s, b, c)
	cmovlPair(s, b, e)
	cmovlPair(s, d, e)
	cmovgPair(s, d, c)
	return c, d, e
}

func cswapPair(s []pair, a, b int) {
	if s[b].key < s[a].key {
		s[a], s[b] = s[b], s[a]
	}
}
func cmovlPair(s []pair, a, b int) {
	if s[b].key < s[a].key {
		s[a], s[b] = s[b], s[a]
	}
}
func cmovgPair(s []pair, a, b int) {
	if s[a].key < s[b].key {
		s[a], s[b] = s[b], s[a]
	}
}

// partitionPair splits s[first:last] into keys < piv, == piv, > piv,
// returning the two split points, as partition3 does for sa.
func partitionPair(s []pair, first, last int, piv int32) (a, b int) {
	pa, pb := first, first
	pc, pd := last, last
	for {
		for pb < pc && s[pb].key <= piv {
			if s[pb].key == piv {
				s[pa], s[pb] = s[pb], s[pa]
				pa++
			}
			pb++
		}
		for pb < pc && s[pc-1].key >= piv {
			pc--
			if s[pc].key == piv {
				pd--
				s[pc], s[pd] = s[pd], s[pc]
			}
		}
		if pb >= pc {
			break
		}
		s[pb], s[pc-1] = s[pc-1], s[pb]
		pb++
		pc--
	}
	n := min(pa-first, pb-pa)
	swapRangePair(s, first, pb-n, n)
	n = min(pd-pc, last-pd)
	swapRangePair(s, pb, last-n, n)
	a = first + (pb - pa)
	b = last - (pd - pc)
	return a, b
}

func swapRangePair(s []pair, i, j, n int) {
	for k := 0; k < n; k++ {
		s[i+k], s[j+k] = s[j+k], s[i+k]
	}
}

