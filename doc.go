// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package vebset provides an ordered set of uint16, backed by a
// van Emde Boas tree (vEB-tree).
//
// The set supports membership, insertion and deletion in O(log log U) time,
// and crucially also predecessor and successor queries in O(log log U),
// where U = 2^16 is the fixed universe size.
//
// The tree is a recursive, universe-halving structure: every internal node
// owns a summary child indexing which of its direct children are non-empty,
// and a fixed-size array of those children. The cached min/max at every
// node, together with the invariant that the min is never duplicated into a
// child, is what keeps successor/predecessor queries down to a handful of
// recursive calls instead of a linear scan.
//
// Below a small fixed universe (baseBits bits) the recursion bottoms out
// into a flat bit-vector leaf, where membership and scans are already
// constant time.
//
// The set is not safe for concurrent use without external synchronization;
// see the package-level Cursor documentation for invalidation rules.
package vebset
