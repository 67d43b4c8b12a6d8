// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

// TestQuickCopyMatchesQuick checks that copy-assisted sorting produces
// the same order as the in-place engine for the same input, regardless
// of whether the scratch buffer is large enough to be used.
func TestQuickCopyMatchesQuick(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(2000)
		base := make([]int32, n)
		for i := range base {
			base[i] = int32(rng.Intn(100))
		}

		plain := slices.Clone(base)
		cfgPlain := DefaultConfig()
		cfgPlain.quick(plain, 0, n, LR, identityKey, func(a, b int) {})

		copied := slices.Clone(base)
		cfgCopy := DefaultConfig()
		cfgCopy.UseCopy = true
		cfgCopy.ScratchThreshold = 0
		cfgCopy.ScratchCapacity = n
		scratch := make([]pair, n)
		cfgCopy.quickCopy(copied, 0, n, scratch, LR, identityKey, func(a, b int) {})

		if !slices.Equal(plain, copied) {
			t.Fatalf("n=%d: quick and quickCopy disagree:\nquick:     %v\nquickCopy: %v",
				n, plain, copied)
		}
	}
}

func TestQuickCopyFallsBackWhenScratchTooSmall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseCopy = true
	cfg.ScratchThreshold = 0
	sa := []int32{5, 3, 1, 4, 1, 2}
	want := append([]int32(nil), sa...)
	cfg.quick(want, 0, len(want), LR, identityKey, func(a, b int) {})

	got := []int32{5, 3, 1, 4, 1, 2}
	scratch := make([]pair, 2) // smaller than len(got)
	cfg.quickCopy(got, 0, len(got), scratch, LR, identityKey, func(a, b int) {})

	if !slices.Equal(want, got) {
		t.Fatalf("quickCopy with undersized scratch = %v; want %v", got, want)
	}
}
