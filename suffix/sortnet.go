// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import "math/bits"

// keyFunc maps an SA entry (a text position) to its current sort key.
type keyFunc func(a int32) int32

// cmovl moves the smaller of the two key values at a and b into a.
func cmovl(sa []int32, key keyFunc, a, b int) {
	if key(sa[b]) < key(sa[a]) {
		sa[a], sa[b] = sa[b], sa[a]
	}
}

// cmovg moves the larger of the two key values at a and b into a.
func cmovg(sa []int32, key keyFunc, a, b int) {
	if key(sa[a]) < key(sa[b]) {
		sa[a], sa[b] = sa[b], sa[a]
	}
}

// median3 arranges sa[a], sa[b], sa[c] so that sa[b] holds the median key
// and returns b.
func median3(sa []int32, key keyFunc, a, b, c int) int {
	if key(sa[c]) < key(sa[a]) {
		sa[a], sa[c] = sa[c], sa[a]
	}
	cmovg(sa, key, b, a)
	cmovl(sa, key, b, c)
	return b
}

// median5 arranges sa[a..e] so that sa[c] holds the median of the five keys
// and returns c.
func median5(sa []int32, key keyFunc, a, b, c, d, e int) int {
	cswapKey(sa, key, a, b)
	cswapKey(sa, key, d, e)
	cswapKey(sa, key, c, e)
	cswapKey(sa, key, c, d)
	cswapKey(sa, key, b, e)
	cswapKey(sa, key, a, d)
	cswapKey(sa, key, a, c)
	cswapKey(sa, key, b, d)
	cswapKey(sa, key, b, c)
	return c
}

// cswapKey swaps sa[a] and sa[b] if sa[b]'s key is smaller.
func cswapKey(sa []int32, key keyFunc, a, b int) {
	if key(sa[b]) < key(sa[a]) {
		sa[a], sa[b] = sa[b], sa[a]
	}
}

// median7 runs a comparator network over the 7 consecutive elements
// starting at first and returns positions c, d, e (lower pivot, median,
// upper pivot), whose keys are in non-decreasing order. The network does
// not fully order the seven keys, so these are not always exactly ranks
// 1, 3, 5 among them.
func median7(sa []int32, key keyFunc, first int) (lo, mid, hi int) {
	a, b, c, d, e, f, g := first, first+1, first+2, first+3, first+4, first+5, first+6

	cswapKey(sa, key, a, c)
	cswapKey(sa, key, e, g)
	cswapKey(sa, key, a, e)
	cswapKey(sa, key, c, g)
	cswapKey(sa, key, c, e)
	cswapKey(sa, key, a, g)

	cswapKey(sa, key, b, f)
	cswapKey(sa, key, b, d)

	cswapKey(sa, key, d, f)
	cmovg(sa, key, b, c)
	cmovl(sa, key, b, e)
	cmovl(sa, key, d, e)
	cmovg(sa, key, d, c)

	return c, d, e
}

// median15 reads 15 elements starting at first and returns the positions
// holding approximate ranks 3, 7, 11 among them, combining two median7
// samples with the remaining element via median3 rather than running a
// dedicated 15-wide sorting network.
func median15(sa []int32, key keyFunc, first int) (lo, mid, hi int) {
	lo1, mid1, hi1 := median7(sa, key, first)
	lo2, mid2, hi2 := median7(sa, key, first+7)
	last := first + 14
	lo = median3(sa, key, lo1, lo2, last)
	mid = median3(sa, key, mid1, mid2, last)
	hi = median3(sa, key, hi1, hi2, last)
	return lo, mid, hi
}

// ilog returns floor(3*floor(log2(v))/2), the recursion budget for a
// range of length v before quick falls back to heapsort.
func ilog(v int) int {
	if v <= 1 {
		return 0
	}
	lg := bits.Len(uint(v)) - 1
	return (3 * lg) / 2
}

const (
	median21 = 256
	median65 = 8192
)

// pivot selects three pivot candidates for the range [first,last) and
// returns their keys in non-decreasing order. Ranges shorter than 7 use
// their first, middle and last element as the sample.
func pivot(sa []int32, key keyFunc, first, last int) (p1, p2, p3 int32) {
	n := last - first
	switch {
	case n < 7:
		a, b, c := first, first+n/2, last-1
		cswapKey(sa, key, a, c)
		cswapKey(sa, key, a, b)
		cswapKey(sa, key, b, c)
		return key(sa[a]), key(sa[b]), key(sa[c])
	case n < median21:
		a, b, c := median7(sa, key, first)
		return key(sa[a]), key(sa[b]), key(sa[c])
	case n < median65:
		mid := first + n/2
		a1, b1, c1 := median7(sa, key, first)
		a2, b2, c2 := median7(sa, key, mid-3)
		a3, b3, c3 := median7(sa, key, last-7)
		p1 = key(sa[median3(sa, key, a1, a2, a3)])
		p2 = key(sa[median3(sa, key, b1, b2, b3)])
		p3 = key(sa[median3(sa, key, c1, c2, c3)])
		return p1, p2, p3
	default:
		lower := first + n/4
		mid := first + n/2
		upper := first + 3*n/4
		a1, b1, c1 := median15(sa, key, first)
		a2, b2, c2 := median15(sa, key, lower-7)
		a3, b3, c3 := median15(sa, key, mid-7)
		a4, b4, c4 := median15(sa, key, upper-7)
		a5, b5, c5 := median15(sa, key, last-15)
		p1 = key(sa[median5(sa, key, a1, a2, a3, a4, a5)])
		p2 = key(sa[median5(sa, key, b1, b2, b3, b4, b5)])
		p3 = key(sa[median5(sa, key, c1, c2, c3, c4, c5)])
		return p1, p2, p3
	}
}
