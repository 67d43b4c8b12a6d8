// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

// groupPartition splits the group [first,last), all currently sharing the
// group name first, into three bands by comparing one more character at
// depth: a lower band with smaller suffixes, the remaining to-be-induced
// band (still named first) and an upper band with larger suffixes (named
// after its own start). It hands the three bands to induce, which folds
// in whatever can be recovered from already-sorted neighbours, and
// returns induce's split between finalised and still-sortable cells.
func (cfg Config) groupPartition(sa, isa []int32, first, last int, depth int32) int {
	key := indexFunc(isa, depth)
	name := int32(first)

	a, b := partition3(sa, key, first, last, name)

	sGroup := int32(b)
	for i := b; i < last; i++ {
		isa[sa[i]] = sGroup
	}

	return cfg.induce(sa, isa, first, a, b, last, depth, name)
}

// induce recovers sort order for the to-be-induced band [b,e) from the
// already-ordered bands [a,b) and [e,f): for every suffix v held in those
// bands, position v-depth is pulled into this band when ISA[v-depth] still
// names this group. It returns the split between finalised
// (SA cells with the sign bit set) and still-sortable cells.
func (cfg Config) induce(sa, isa []int32, a, b, e, f int, depth, group int32) int {
	if b == e {
		if a != b {
			sa[b-1] = finalize(sa[b-1])
		}
		return b
	}

	key := indexFunc(isa, depth)
	c, d := b, e

	for b != e && int32(e-b)*cfg.InduceThreshold < int32((b-a)+(f-e)) {
		cgroup := int32(b)
		for i := b; i < e; i++ {
			isa[sa[i]] = cgroup
		}
		c, d = partition3(sa, key, b, e, cgroup)
		group = cgroup
		dgroup := int32(d)
		for i := d; i < e; i++ {
			isa[sa[i]] = dgroup
		}
		if a != b {
			sa[b-1] = finalize(sa[b-1])
		}
		a, b, f, e = b, c, e, d
	}

	for e != f {
		for it := f; it != e; it-- {
			v := unwrap(sa[it-1])
			if depth <= v {
				v -= depth
				if isa[v] == group {
					d--
					sa[d] = v
				}
			}
		}
		dgroup := int32(d)
		for i := d; i < e; i++ {
			isa[sa[i]] = dgroup
		}
		f, e = e, d
	}

	for b != d {
		cgroup := int32(b)
		for it := a; it != b; it++ {
			v := sa[it]
			if depth <= v {
				v -= depth
				if isa[v] == group {
					sa[c] = v
					isa[v] = cgroup
					c++
				}
			}
		}
		sa[b-1] = finalize(sa[b-1])
		a, b = b, c
	}
	if a != b {
		sa[b-1] = finalize(sa[b-1])
	}
	return b
}

// nameFunc builds the cb passed to quick when sorting a group at depth by
// one more character: it assigns every maximal equal-key run its own
// group name, embeds the next required depth in the following ISA cell,
// and recurses into groupPartition to keep descending.
func (cfg Config) nameFunc(sa, isa []int32, depth int32) cbFunc {
	var cb cbFunc
	cb = func(a, b int) {
		if b-a < 2 {
			pos := sa[a]
			isa[pos] = int32(a)
			sa[a] = finalize(pos)
			return
		}

		n := isa[sa[a]+depth+1]
		ndepth := resolveDepth(depth+1, n)

		for c := a; c < b; c++ {
			pos := sa[c]
			isa[pos] = int32(a)
			isa[pos+1] = -ndepth
		}

		cfg.groupPartition(sa, isa, a, b, ndepth)
	}
	return cb
}
