// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

// Dir selects the traversal and callback-delivery order of quick.
type Dir int

const (
	// RL sorts right-to-left and delivers equal-key runs back to
	// front.
	RL Dir = iota
	// LR sorts left-to-right and delivers equal-key runs front to
	// back.
	LR
	// NoCB sorts left-to-right like LR but never invokes cb.
	NoCB
)

// cbFunc is invoked once for every maximal run of equal keys quick finds,
// with the half-open range [a,b) of positions in sa holding that run. It
// is never invoked for NoCB.
type cbFunc func(a, b int)

// quick sorts sa[first:last] by key, invoking cb once per maximal
// equal-key run in the order dir specifies. The recursion budget is
// computed once from the initial range length and threaded by value
// through the whole recursion tree; once it is exhausted quick falls back
// to heapsort instead of recursing further.
func (cfg Config) quick(sa []int32, first, last int, dir Dir, key keyFunc, cb cbFunc) {
	budget := ilog(last - first)
	cfg.quickBudget(sa, first, last, dir, key, cb, budget)
}

func (cfg Config) quickBudget(sa []int32, first, last int, dir Dir, key keyFunc, cb cbFunc, budget int) {
	for {
		if last-first <= cfg.InsertionThreshold {
			insertionSort(sa, first, last, key)
			callRange(sa, first, last, dir, key, cb)
			return
		}
		if budget == 0 {
			heapSort(sa, first, last, key)
			callRange(sa, first, last, dir, key, cb)
			return
		}
		budget--

		p1, p2, p3 := pivot(sa, key, first, last)
		if p1 == p2 || p2 == p3 {
			a, b := partition3(sa, key, first, last, p2)
			if dir != RL {
				cfg.quickBudget(sa, first, a, dir, key, cb, budget)
				if dir != NoCB {
					cb(a, b)
				}
				first = b
			} else {
				cfg.quickBudget(sa, b, last, dir, key, cb, budget)
				cb(a, b)
				last = a
			}
			continue
		}

		a, b, c := exchange3(sa, key, first, last, p1, p2, p3)
		if dir != RL {
			cfg.quickBudget(sa, first, a, dir, key, cb, budget)
			cfg.quickBudget(sa, a, b, dir, key, cb, budget)
			cfg.quickBudget(sa, b, c, dir, key, cb, budget)
			first = c
		} else {
			cfg.quickBudget(sa, c, last, dir, key, cb, budget)
			cfg.quickBudget(sa, b, c, dir, key, cb, budget)
			cfg.quickBudget(sa, a, b, dir, key, cb, budget)
			last = a
		}
	}
}

// insertionSort sorts sa[first:last] by key using straight insertion. It
// is only ever called on short ranges.
func insertionSort(sa []int32, first, last int, key keyFunc) {
	for i := first + 1; i < last; i++ {
		tmp := sa[i]
		val := key(tmp)
		j := i
		for j > first && val < key(sa[j-1]) {
			sa[j] = sa[j-1]
			j--
		}
		sa[j] = tmp
	}
}

// heapSort sorts sa[first:last] by key. It is quick's fallback once the
// recursion budget is exhausted, bounding worst-case time to O(n log n).
func heapSort(sa []int32, first, last int, key keyFunc) {
	a := sa[first:last]
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n, key)
	}
	for i := n - 1; i > 0; i-- {
		a[0], a[i] = a[i], a[0]
		siftDown(a, 0, i, key)
	}
}

func siftDown(a []int32, i, n int, key keyFunc) {
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		largest := l
		if r := l + 1; r < n && key(a[r]) > key(a[largest]) {
			largest = r
		}
		if key(a[i]) >= key(a[largest]) {
			return
		}
		a[i], a[largest] = a[largest], a[i]
		i = largest
	}
}

// callRange delivers every maximal equal-key run in [first,last) to cb,
// front-to-back for LR and back-to-front for RL. It is a no-op for NoCB.
func callRange(sa []int32, first, last int, dir Dir, key keyFunc, cb cbFunc) {
	if dir == NoCB {
		return
	}
	if dir != RL {
		for f := first; f < last; {
			l := f + 1
			for l < last && key(sa[f]) == key(sa[l]) {
				l++
			}
			cb(f, l)
			f = l
		}
		return
	}
	for l := last; l > first; {
		f := l - 1
		for f > first && key(sa[f-1]) == key(sa[l-1]) {
			f--
		}
		cb(f, l)
		l = f
	}
}
