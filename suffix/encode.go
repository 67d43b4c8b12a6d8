// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

package suffix

// SA cells use the sign bit to flag a finalised (uniquely sorted) entry.
// A non-negative SA cell is still sortable (type S); the bitwise
// complement of a negative SA cell recovers the finalised text position
// (type F).
//
// ISA cells overload the sign bit differently: a non-negative ISA cell
// names the group the suffix currently belongs to; a negative ISA cell
// embeds the next sort depth required for that position, discovered by an
// earlier group-naming pass, as -depth.

// finalize marks the text position v as finalised.
func finalize(v int32) int32 { return ^v }

// finalized reports whether the SA cell v is finalised.
func finalized(v int32) bool { return v < 0 }

// unwrap recovers the text position from a possibly finalised SA cell.
func unwrap(v int32) int32 {
	if v < 0 {
		return ^v
	}
	return v
}

// negPart returns -n if n is negative, 0 otherwise. Applied to an ISA
// cell it recovers the embedded next-sort-depth, or 0 if the cell instead
// holds a group name.
func negPart(n int32) int32 {
	if n < 0 {
		return -n
	}
	return 0
}

// resolveDepth derives the depth to use for a group descent or a renaming
// step from an ISA cell n that may embed an already-known depth. base is
// the depth that applies when n carries no embedded information (a plain
// group name or the end-of-text sentinel); when n does embed a depth, that
// embedded amount is added on top of base.
func resolveDepth(base, n int32) int32 {
	if n == sentinel {
		return base
	}
	return base + negPart(n)
}

// indexFunc returns the key function reading ISA at depth for a text
// position a, i.e. isa[a+depth]. isa must be sized len(t)+1, with the
// extra trailing cell holding a sentinel smaller than any real group name
// or byte value, so that suffixes running past the end of the text always
// compare smallest.
func indexFunc(isa []int32, depth int32) keyFunc {
	return func(a int32) int32 { return isa[a+depth] }
}
