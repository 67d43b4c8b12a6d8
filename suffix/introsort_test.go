// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import (
	"math/rand"
	"sort"
	"testing"
)

func TestQuickSortsByKey(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 300; trial++ {
		n := rng.Intn(500)
		sa := make([]int32, n)
		for i := range sa {
			sa[i] = int32(rng.Intn(50))
		}
		for _, dir := range []Dir{RL, LR, NoCB} {
			s := append([]int32(nil), sa...)
			var runs [][2]int
			cb := func(a, b int) { runs = append(runs, [2]int{a, b}) }
			if dir == NoCB {
				cfg.quick(s, 0, n, dir, identityKey, nil)
			} else {
				cfg.quick(s, 0, n, dir, identityKey, cb)
			}
			for i := 1; i < n; i++ {
				if s[i-1] > s[i] {
					t.Fatalf("dir=%v: not sorted at %d: %v", dir, i, s)
				}
			}
			if dir != NoCB {
				total := 0
				for _, r := range runs {
					total += r[1] - r[0]
				}
				if total != n {
					t.Fatalf("dir=%v: callback runs cover %d of %d elements", dir, total, n)
				}
			}
		}
	}
}

func TestCallRangeOrder(t *testing.T) {
	sa := []int32{1, 1, 2, 2, 2, 3}
	var lr, rl [][2]int
	callRange(sa, 0, len(sa), LR, identityKey, func(a, b int) { lr = append(lr, [2]int{a, b}) })
	callRange(sa, 0, len(sa), RL, identityKey, func(a, b int) { rl = append(rl, [2]int{a, b}) })

	wantLR := [][2]int{{0, 2}, {2, 5}, {5, 6}}
	wantRL := [][2]int{{5, 6}, {2, 5}, {0, 2}}
	for i, r := range wantLR {
		if lr[i] != r {
			t.Fatalf("LR run %d = %v; want %v", i, lr[i], r)
		}
	}
	for i, r := range wantRL {
		if rl[i] != r {
			t.Fatalf("RL run %d = %v; want %v", i, rl[i], r)
		}
	}

	var none [][2]int
	callRange(sa, 0, len(sa), NoCB, identityKey, func(a, b int) { none = append(none, [2]int{a, b}) })
	if len(none) != 0 {
		t.Fatalf("NoCB invoked callback %d times; want 0", len(none))
	}
}

func TestHeapSort(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 100; trial++ {
		n := rng.Intn(200)
		sa := make([]int32, n)
		for i := range sa {
			sa[i] = int32(rng.Intn(30))
		}
		want := append([]int32(nil), sa...)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		heapSort(sa, 0, n, identityKey)
		for i := range sa {
			if sa[i] != want[i] {
				t.Fatalf("heapSort mismatch at %d: got %v want %v", i, sa, want)
			}
		}
	}
}

func TestInsertionSort(t *testing.T) {
	sa := []int32{5, 3, 1, 4, 1, 2}
	insertionSort(sa, 0, len(sa), identityKey)
	want := []int32{1, 1, 2, 3, 4, 5}
	for i := range want {
		if sa[i] != want[i] {
			t.Fatalf("insertionSort = %v; want %v", sa, want)
		}
	}
}
