// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math"
)

// sentinel is written into the virtual ISA cell one past the end of the
// text; it must compare smaller than any real group name or embedded
// depth so that a suffix running off the end of t always sorts first
// among suffixes sharing its prefix.
const sentinel = math.MinInt32

// Sort computes the suffix array of t into sa, which must have the same
// length as t. It bucket-sorts t by first byte to build an initial ISA,
// then hands off to daware to complete the sort.
func Sort(t []byte, sa []int32) {
	cfg := DefaultConfig()
	cfg.sort(t, sa)
}

// Sort is like the package-level Sort but uses cfg's tunables.
func (cfg Config) Sort(t []byte, sa []int32) {
	if err := cfg.Verify(); err != nil {
		panic(err)
	}
	cfg.sort(t, sa)
}

func (cfg Config) sort(t []byte, sa []int32) {
	n := len(t)
	if len(sa) != n {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(t)=%d", len(sa), n))
	}
	if n > math.MaxInt32 {
		panic(fmt.Errorf("suffix: len(t)=%d > MaxInt32", n))
	}
	if n == 0 {
		return
	}

	var counts [256]int32
	for _, c := range t {
		counts[c]++
	}
	var starts [257]int32
	for c := 0; c < 256; c++ {
		starts[c+1] = starts[c] + counts[c]
	}

	isa := make([]int32, n+1)
	isa[n] = sentinel

	fill := starts
	for i := 0; i < n; i++ {
		c := t[i]
		sa[fill[c]] = int32(i)
		fill[c]++
	}
	for i := 0; i < n; i++ {
		isa[sa[i]] = starts[t[sa[i]]]
	}

	if n > 1 {
		cfg.daware(sa, isa, 0, n)
	} else {
		sa[0] = finalize(sa[0])
	}

	// Phase B unflags the finalised cells it sweeps, but its
	// left-to-right sweep starts one past the array's own first cell
	// (nothing to its left ever needs it as a neighbour), so that one
	// cell may still carry its flag; strip any flag from the whole
	// array here and rebuild ISA as the true inverse permutation.
	for i := 0; i < n; i++ {
		sa[i] = unwrap(sa[i])
	}
	InvertSA(sa, isa[:n])
}
