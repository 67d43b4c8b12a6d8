// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

// partition3 splits sa[first:last] into three zones by piv: keys less than
// piv, keys equal to piv, and keys greater than piv. It returns the two
// split points (a, b) such that [first,a) holds keys < piv, [a,b) holds
// keys == piv and [b,last) holds keys > piv. piv need not occur in the
// range.
func partition3(sa []int32, key keyFunc, first, last int, piv int32) (a, b int) {
	pa, pb := first, first
	pc, pd := last, last

	for {
		for pb < pc && key(sa[pb]) <= piv {
			if key(sa[pb]) == piv {
				sa[pa], sa[pb] = sa[pb], sa[pa]
				pa++
			}
			pb++
		}
		for pb < pc && key(sa[pc-1]) >= piv {
			pc--
			if key(sa[pc]) == piv {
				pd--
				sa[pc], sa[pd] = sa[pd], sa[pc]
			}
		}
		if pb >= pc {
			break
		}
		sa[pb], sa[pc-1] = sa[pc-1], sa[pb]
		pb++
		pc--
	}

	n := min(pa-first, pb-pa)
	swapRange(sa, first, pb-n, n)
	n = min(pd-pc, last-pd)
	swapRange(sa, pb, last-n, n)

	a = first + (pb - pa)
	b = last - (pd - pc)
	return a, b
}

// exchange3 splits sa[first:last] into four zones using three ordered
// pivot values p1 <= p2 <= p3, all of which must actually occur in the
// range. It returns the three split points so that [first,a) holds
// keys < p1, [a,b) holds p1 <= keys <= p2, [b,c) holds p2 < keys <= p3,
// and [c,last) holds keys > p3.
//
// It runs in three passes, each a plain partition3 by one of the pivots:
// first split on p2 to separate <=p2 from >p2, then split each side on
// p1 and p3 respectively to pull out the <p1 and >p3 tails.
func exchange3(sa []int32, key keyFunc, first, last int, p1, p2, p3 int32) (a, b, c int) {
	_, b = partition3(sa, key, first, last, p2)
	a, _ = partition3(sa, key, first, b, p1)
	_, c = partition3(sa, key, b, last, p3)
	return a, b, c
}

// swapRange exchanges the n elements starting at i with the n elements
// starting at j.
func swapRange(sa []int32, i, j, n int) {
	for k := 0; k < n; k++ {
		sa[i+k], sa[j+k] = sa[j+k], sa[i+k]
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
