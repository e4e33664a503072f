// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebset

import "github.com/bits-and-blooms/bitset"

// vebLevel is a single level of the recursive van Emde Boas tree, for some
// universe of 2^k values. Which set of fields is meaningful is decided
// purely by comparing k against baseBits at every call site — there is no
// tag field and no interface, since the level's width is always known
// statically by its caller and dynamic dispatch would only cost an
// indirection for no benefit.
//
// leaf is populated when k <= baseBits: a flat bit-vector over the 2^k
// values, with no separate min/max cache (linear scans over <=16 bits are
// already constant time).
//
// The remaining fields are populated when k > baseBits: empty, min and max
// are the cached extrema of this subtree; min is never duplicated into
// summary or children. summary indexes, by high-bit value, which entries of
// children are non-empty. children is a fixed-size array of 1<<kHi
// sub-levels, each covering kLo bits.
type vebLevel struct {
	leaf *bitset.BitSet

	empty    bool
	min, max uint32
	summary  *vebLevel
	children []*vebLevel
}

// isEmptyLevel reports whether the subtree rooted at n holds no elements.
func isEmptyLevel(n *vebLevel, k int) bool {
	if k <= baseBits {
		return leafMin(n.leaf) == noValue
	}
	return n.empty
}

// minOf returns the smallest element of the subtree, or noValue if empty.
func minOf(n *vebLevel, k int) uint32 {
	if k <= baseBits {
		return leafMin(n.leaf)
	}
	if n.empty {
		return noValue
	}
	return n.min
}

// maxOf returns the largest element of the subtree, or noValue if empty.
func maxOf(n *vebLevel, k int) uint32 {
	if k <= baseBits {
		return leafMax(n.leaf, k)
	}
	if n.empty {
		return noValue
	}
	return n.max
}

// containsLevel reports whether x is a member of the subtree rooted at n.
func containsLevel(x uint32, n *vebLevel, k int) bool {
	if k <= baseBits {
		return leafContains(x, n.leaf)
	}
	if n.empty {
		return false
	}
	if x == n.min || x == n.max {
		return true
	}
	_, kLo := splitBits(k)
	h, l := split(x, kLo)
	return containsLevel(l, n.children[h], kLo)
}

// insertLevel inserts x into the subtree rooted at n, returning true if x
// was not already present.
//
// The min is never pushed into a child directly: on first insert it simply
// becomes both min and max; on a later insert smaller than the current min,
// the old min is demoted and recursively inserted into a child instead,
// which is what keeps the recursion to one child per level.
func insertLevel(x uint32, n *vebLevel, k int) bool {
	if k <= baseBits {
		return leafInsert(x, n.leaf)
	}

	if n.empty {
		n.min, n.max = x, x
		n.empty = false
		return true
	}

	if x == n.min || x == n.max {
		return false
	}

	if x < n.min {
		x, n.min = n.min, x
	}
	if x > n.max {
		n.max = x
	}

	kHi, kLo := splitBits(k)
	h, l := split(x, kLo)
	child := n.children[h]

	if isEmptyLevel(child, kLo) {
		insertLevel(h, n.summary, kHi)
		insertLevel(l, child, kLo) // O(1): child was empty, this just sets its min/max (or one leaf bit)
		return true
	}
	return insertLevel(l, child, kLo)
}

// eraseLevel removes x from the subtree rooted at n, returning true if x
// had been present.
func eraseLevel(x uint32, n *vebLevel, k int) bool {
	if k <= baseBits {
		return leafErase(x, n.leaf)
	}

	if n.empty {
		return false
	}

	if n.min == n.max {
		if x == n.min {
			n.empty = true
			return true
		}
		return false
	}

	kHi, kLo := splitBits(k)

	if x == n.min {
		if isEmptyLevel(n.summary, kHi) {
			n.min = n.max
			return true
		}
		h := minOf(n.summary, kHi)
		l := minOf(n.children[h], kLo)
		n.min = combine(h, l, kLo)
		eraseLevel(l, n.children[h], kLo)
		if isEmptyLevel(n.children[h], kLo) {
			eraseLevel(h, n.summary, kHi)
		}
		return true
	}

	if x == n.max {
		// With two or more elements the max is also stored in a child:
		// remove it there, then recompute max from what remains.
		h, l := split(x, kLo)
		eraseLevel(l, n.children[h], kLo)
		if isEmptyLevel(n.children[h], kLo) {
			eraseLevel(h, n.summary, kHi)
		}
		if isEmptyLevel(n.summary, kHi) {
			n.max = n.min
			return true
		}
		hMax := maxOf(n.summary, kHi)
		n.max = combine(hMax, maxOf(n.children[hMax], kLo), kLo)
		return true
	}

	h, l := split(x, kLo)
	if !containsLevel(h, n.summary, kHi) {
		return false
	}
	removed := eraseLevel(l, n.children[h], kLo)
	if removed && isEmptyLevel(n.children[h], kLo) {
		eraseLevel(h, n.summary, kHi)
	}
	return removed
}

// successorLevel returns the smallest element strictly greater than x in
// the subtree rooted at n, or noValue if there is none.
func successorLevel(x uint32, n *vebLevel, k int) uint32 {
	if k <= baseBits {
		return leafSuccessor(x, n.leaf)
	}
	if n.empty {
		return noValue
	}
	if x < n.min {
		return n.min
	}

	kHi, kLo := splitBits(k)
	h, l := split(x, kLo)

	childMax := maxOf(n.children[h], kLo)
	if childMax != noValue && l < childMax {
		return combine(h, successorLevel(l, n.children[h], kLo), kLo)
	}

	nextH := successorLevel(h, n.summary, kHi)
	if nextH == noValue {
		if n.max > x {
			return n.max
		}
		return noValue
	}
	return combine(nextH, minOf(n.children[nextH], kLo), kLo)
}

// predecessorLevel returns the largest element strictly smaller than x in
// the subtree rooted at n, or noValue if there is none.
func predecessorLevel(x uint32, n *vebLevel, k int) uint32 {
	if k <= baseBits {
		return leafPredecessor(x, n.leaf)
	}
	if n.empty {
		return noValue
	}
	if x > n.max {
		return n.max
	}

	kHi, kLo := splitBits(k)
	h, l := split(x, kLo)

	childMin := minOf(n.children[h], kLo)
	if childMin != noValue && l > childMin {
		return combine(h, predecessorLevel(l, n.children[h], kLo), kLo)
	}

	prevH := predecessorLevel(h, n.summary, kHi)
	if prevH != noValue {
		return combine(prevH, maxOf(n.children[prevH], kLo), kLo)
	}

	if n.min != noValue && n.min < x {
		return n.min
	}
	return noValue
}
