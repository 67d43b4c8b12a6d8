// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

import "testing"

// TestResolveDepth exercises the sign-bit depth-embedding arithmetic
// shared by phaseA's initial group depth and name's next-depth
// computation.
func TestResolveDepth(t *testing.T) {
	tests := []struct {
		base, n, want int32
	}{
		{1, 0, 1},
		{1, 5, 1},
		{1, -3, 4},
		{4, 0, 4},
		{4, -7, 11},
	}
	for _, tc := range tests {
		got := resolveDepth(tc.base, tc.n)
		if got != tc.want {
			t.Errorf("resolveDepth(%d,%d) = %d; want %d", tc.base, tc.n, got, tc.want)
		}
	}
}

func TestNegPart(t *testing.T) {
	tests := []struct {
		n, want int32
	}{
		{0, 0},
		{5, 0},
		{-1, 1},
		{-42, 42},
	}
	for _, tc := range tests {
		if got := negPart(tc.n); got != tc.want {
			t.Errorf("negPart(%d) = %d; want %d", tc.n, got, tc.want)
		}
	}
}

func TestFinalizeRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, 42, 1000000} {
		f := finalize(v)
		if !finalized(f) {
			t.Fatalf("finalize(%d)=%d not reported finalized", v, f)
		}
		if finalized(v) {
			t.Fatalf("plain value %d reported finalized", v)
		}
		if got := unwrap(f); got != v {
			t.Fatalf("unwrap(finalize(%d)) = %d", v, got)
		}
		if got := unwrap(v); got != v {
			t.Fatalf("unwrap(%d) = %d; want %d", v, got, v)
		}
	}
}

// TestDawareAllDistinct exercises phase A through Sort for a string whose
// suffixes are already all distinct after the first character, so every
// group folds to a singleton without needing induction.
func TestDawareAllDistinct(t *testing.T) {
	p := []byte("abcdefgh")
	sa := make([]int32, len(p))
	Sort(p, sa)
	if err := verifySuffixArray(p, sa); err != nil {
		t.Fatal(err)
	}
}

// TestDawareRepetitive stresses the induction machinery with long runs
// of repeated characters and tandem repeats.
func TestDawareRepetitive(t *testing.T) {
	tests := []string{
		"aaaaaaaaaaaaaaaaaaaa",
		"abababababababab",
		"aabbaabbaabbaabb",
		"xyzxyzxyzxyzxyzxyzxyz",
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc, func(t *testing.T) {
			p := []byte(tc)
			sa := make([]int32, len(p))
			Sort(p, sa)
			if err := verifySuffixArray(p, sa); err != nil {
				t.Fatal(err)
			}
		})
	}
}
