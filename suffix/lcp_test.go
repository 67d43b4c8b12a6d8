package suffix

import (
	"bytes"
	"testing"
)

func FuzzLCP(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("a"))
	f.Add([]byte("ab"))
	f.Add([]byte("ba"))
	f.Add([]byte("ababbab"))
	f.Fuzz(func(t *testing.T, text []byte) {
		sa := make([]int32, len(text))
		Sort(text, sa)
		for i := 1; i < len(sa); i++ {
			if bytes.Compare(text[sa[i-1]:], text[sa[i]:]) > 0 {
				t.Fatalf("sa[%d]=%d not <= sa[%d]=%d", i-1, sa[i-1], i, sa[i])
			}
		}

		lcp := make([]int32, len(text))
		LCP(text, sa, nil, lcp)
		for i, l := range lcp {
			if i == 0 {
				if l != 0 {
					t.Fatal("lcp[0] != 0")
				}
				continue
			}
			want := matchLen(text[sa[i-1]:], text[sa[i]:])
			if int(l) != want {
				t.Fatalf("lcp[%d] = %d; want %d", i, l, want)
			}
		}
	})
}

func TestInvertSA(t *testing.T) {
	sa := []int32{4, 2, 0, 3, 1}
	isa := make([]int32, len(sa))
	InvertSA(sa, isa)
	for i, v := range sa {
		if int(isa[v]) != i {
			t.Fatalf("isa[%d]=%d; want %d", v, isa[v], i)
		}
	}
}

func TestMatchLen(t *testing.T) {
	tests := []struct {
		p, q string
		want int
	}{
		{"", "", 0},
		{"abc", "", 0},
		{"abcdefgh", "abcdefgh", 8},
		{"abcdefghij", "abcdefghxy", 8},
		{"abcdefgx", "abcdefgy", 7},
		{"abcd", "abce", 3},
		{"x", "y", 0},
	}
	for _, tc := range tests {
		got := matchLen([]byte(tc.p), []byte(tc.q))
		if got != tc.want {
			t.Fatalf("matchLen(%q,%q) = %d; want %d", tc.p, tc.q, got, tc.want)
		}
	}
}
