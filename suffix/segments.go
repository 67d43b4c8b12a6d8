// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"fmt"
	"math"
)

// lcpInterval is a still-open run of suffixes sharing a common-prefix
// length of at least n, tracked on scanSegments' stack while its end
// position is still being discovered.
type lcpInterval struct {
	n int32
	j int32
}

func scanSegments(sa, lcp []int32, minLen, maxLen int32, f func(m int, s []int32)) {
	stack := make([]lcpInterval, 1, 16)
	// stack[0] is the implicit zero-value sentinel interval {0, 0}.
scan:
	for j := int32(1); ; j++ {
		var n int32
		if j < int32(len(lcp)) {
			n = lcp[j]
			if n > maxLen {
				n = maxLen
			}
		} else {
			n = -1
		}
		for {
			top := stack[len(stack)-1]
			switch {
			case n > top.n:
				stack = append(stack, lcpInterval{n, j - 1})
				continue scan
			case n == top.n:
				continue scan
			}
			if top.n >= minLen {
				f(int(top.n), sa[top.j:j])
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break scan
			}
		}
	}
}

// Segments reports every maximal run of suffixes sharing a common prefix
// of length between minLen and maxLen, by walking sa and lcp (as built by
// Sort and LCP) with a stack of still-open common-prefix runs. Each run is
// delivered to f as a slice into sa; Segments never reorders sa itself, but
// f is free to permute the slice it's handed.
func Segments(sa, lcp []int32, minLen, maxLen int, f func(m int, segment []int32)) {
	if len(sa) != len(lcp) {
		panic(fmt.Errorf("suffix: len(sa)=%d != len(lcp)=%d", len(sa), len(lcp)))
	}
	if !(0 <= minLen && minLen <= math.MaxInt32) {
		panic(fmt.Errorf("suffix: minLen=%d out of range", minLen))
	}
	if !(maxLen <= math.MaxInt32) {
		panic(fmt.Errorf("suffix: maxLen=%d larger than MaxInt32=%d",
			maxLen, math.MaxInt32))
	}
	if maxLen < minLen {
		return
	}
	scanSegments(sa, lcp, int32(minLen), int32(maxLen), f)
}
