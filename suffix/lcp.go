// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math"
	"math/bits"
)

// InvertSA computes isa, the inverse of sa, such that isa[sa[i]] == i for
// every i. daware builds and maintains exactly this inverse while sorting;
// InvertSA lets a caller rebuild it from sa alone afterwards, once it's let
// the inverse go stale (e.g. by permuting sa further).
func InvertSA(sa, isa []int32) {
	if len(sa) != len(isa) {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(isa)=%d",
			len(sa), len(isa)))
	}
	for i, v := range sa {
		isa[v] = int32(i)
	}
}

// LCP computes the longest-common-prefix array for t: lcp[i] is the length
// of the common prefix shared by the suffixes at sa[i-1] and sa[i] (lcp[0]
// is always 0). If sa or isa are nil or the wrong length, sa is built with
// Sort and isa with InvertSA.
func LCP(t []byte, sa, isa, lcp []int32) {
	if len(t) > math.MaxInt32 {
		panic(fmt.Errorf("suffix: len(t)=%d > MaxInt32", len(t)))
	}
	if len(sa) != len(t) {
		sa = make([]int32, len(t))
		Sort(t, sa)
	}
	if len(isa) != len(sa) {
		isa = make([]int32, len(sa))
		InvertSA(sa, isa)
	}
	if len(lcp) != len(t) {
		panic(fmt.Errorf("suffix: len(lcp)=%d != len(t)=%d",
			len(lcp), len(t)))
	}

	buildLCP(t, sa, isa, lcp)
}

// buildLCP fills lcp by Kasai's method: isa gives each text
// position's rank directly, so the suffix immediately before it in sa order
// is found in O(1) via sa[isa[i]-1], and the running common-prefix length
// drops by at most one suffix's worth as i advances through the text.
func buildLCP(t []byte, sa, isa, lcp []int32) {
	l := int32(0)
	for i, rank := range isa {
		if rank == 0 {
			lcp[0] = 0
			l = 0
			continue
		}
		j := sa[rank-1]
		l += int32(matchLen(t[int32(i)+l:], t[j+l:]))
		lcp[rank] = l
		if l > 0 {
			l--
		}
	}
}

// matchLen returns the length of the common prefix of p and q, comparing
// eight and then four bytes at a time before falling back to a byte loop
// for whatever remains.
func matchLen(p, q []byte) int {
	if len(q) > len(p) {
		p, q = q, p
	}
	n := 0
	for len(q) >= 8 {
		x := readLE64(p) ^ readLE64(q)
		k := bits.TrailingZeros64(x) >> 3
		n += k
		if k < 8 {
			return n
		}
		p, q = p[8:], q[8:]
	}
	if len(q) >= 4 {
		x := readLE32(p) ^ readLE32(q)
		k := bits.TrailingZeros32(x) >> 3
		n += k
		if k < 4 {
			return n
		}
		p, q = p[4:], q[4:]
	}
	for i, b := range q {
		if p[i] != b {
			break
		}
		n++
	}
	return n
}

// readLE64 loads a little-endian uint64 from p, which must be at least 8
// bytes long. Inlines to a single unaligned move on little-endian targets.
func readLE64(p []byte) uint64 {
	_ = p[7]
	return uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 |
		uint64(p[3])<<24 | uint64(p[4])<<32 | uint64(p[5])<<40 |
		uint64(p[6])<<48 | uint64(p[7])<<56
}

// readLE32 loads a little-endian uint32 from p, which must be at least 4
// bytes long.
func readLE32(p []byte) uint32 {
	_ = p[3]
	return uint32(p[0]) | uint32(p[1])<<8 | uint32(p[2])<<16 |
		uint32(p[3])<<24
}
