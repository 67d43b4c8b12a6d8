// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

// daware sorts sa[first:last] into suffix-array order given that isa
// already names, for every position in range, the group (initially the
// bucket by first character) it belongs to, with isa sized len(t)+1 and
// isa[len(t)] set to a sentinel smaller than any group name or embedded
// depth. It is called once for the whole array: phase A's right-to-left
// walk discovers each initial bucket as just another group boundary, so
// no separate per-bucket driving loop is needed above this.
//
// Phase A descends groups from widest to narrowest, right to left,
// folding singleton groups into the finalised zone as it goes. Phase B
// then induces the remaining finalised groups left to right, renaming
// each to its own start so later groups can use it as a neighbour.
func (cfg Config) daware(sa, isa []int32, first, last int) {
	var scratch []pair
	if cfg.UseCopy {
		n := last - first
		if n > cfg.ScratchCapacity {
			n = cfg.ScratchCapacity
		}
		scratch = make([]pair, n)
	}
	cfg.phaseA(sa, isa, first, last, scratch)
	cfg.phaseB(sa, isa, first, last, scratch)
}

// phaseA walks groups right to left. The current group is first split
// by groupPartition, which induces as much of it as possible from its
// already-sorted neighbours; what remains sortable is then walked from
// the right, folding singleton subgroups directly and handing the rest
// to quick<RL> with nameFunc as its equal-range callback.
//
// The walk stops once only position first remains as a group of its own;
// that cell is then left raw (not finalised). When position first shares
// its group with other positions, it is handled with that group like any
// other cell. phaseB starts its own sweep one past first, so daware's
// caller is responsible for unwrapping/renaming position first itself
// once both phases are done.
func (cfg Config) phaseA(sa, isa []int32, first, last int, scratch []pair) {
	gl := last
	for gl > first+1 {
		gf := int(isa[sa[gl-1]])

		if gl-gf > 1 {
			gc := cfg.groupPartition(sa, isa, gf, gl, 1)

			sgl := gl
			for gc < sgl {
				if finalized(sa[sgl-1]) {
					sgl = int(isa[unwrap(sa[sgl-1])])
					continue
				}

				sgf := int(isa[sa[sgl-1]])
				if sgl-sgf < 2 {
					sgl--
					sa[sgl] = finalize(sa[sgf])
					continue
				}

				n := isa[sa[sgl-1]+1]
				depth := resolveDepth(1, n)

				cb := cfg.nameFunc(sa, isa, depth)
				key := indexFunc(isa, depth)
				cfg.quickCopy(sa, sgf, sgl, scratch, RL, key, cb)
			}
		} else {
			sa[gf] = finalize(sa[gf])
		}

		gl = gf
	}
}

// phaseB walks left to right over whatever phase A left un-finalised:
// runs of still-sortable cells bounded by a finalised marker. Each run
// is sorted in place by quick<NoCB> (no further naming needed, since
// nothing deeper will ever consult these positions again), renamed to
// its own start, and the finalised neighbours immediately following it
// are unflagged and renamed in turn before the scan resumes.
//
// last is the true end of the array here, not another group's boundary,
// so there is no guaranteed finalised marker beyond it to scan onto: a
// run that reaches last without meeting one is bounded there instead of
// being unflipped, since there is nothing to unflip.
func (cfg Config) phaseB(sa, isa []int32, first, last int, scratch []pair) {
	gf := first + 1
	for gf < last {
		gl := gf
		for gl < last && !finalized(sa[gl]) {
			gl++
		}
		if gl < last {
			gl++
			sa[gl-1] = unwrap(sa[gl-1])
		}

		n := isa[sa[gf]+1]
		depth := resolveDepth(1, n)
		key := indexFunc(isa, depth)
		cfg.quickCopy(sa, gf, gl, scratch, NoCB, key, nil)

		for a := gf; a < gl; a++ {
			isa[sa[a]] = int32(a)
		}

		gf = gl
		for gf < last && finalized(sa[gf]) {
			sa[gf] = unwrap(sa[gf])
			isa[sa[gf]] = int32(gf)
			gf++
		}
	}
}
