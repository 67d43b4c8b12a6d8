// SPDX-FileCopyrightText: © 2021 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package suffix computes suffix arrays using a depth-aware variant of
// induced sorting. The core algorithm, daware, descends through groups of
// suffixes from the widest (shallowest) to the narrowest (deepest),
// inducing as many positions as possible from already-sorted neighbours
// before falling back to comparison sorting, and folds the next required
// comparison depth into otherwise-unused bits of the inverse suffix array
// so that repeated group descents never restart from depth zero.
package suffix
