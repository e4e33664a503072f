// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebset

import "github.com/bits-and-blooms/bitset"

// newLeaf allocates a zeroed bit-vector covering the 2^k values of a base
// case level. Only ever called with k <= baseBits.
func newLeaf(k int) *bitset.BitSet {
	return bitset.New(uint(1) << uint(k))
}

// cloneLeaf returns an independent copy of a leaf's bit-vector.
func cloneLeaf(b *bitset.BitSet) *bitset.BitSet {
	return b.Clone()
}

// leafContains reports whether x is set in the leaf.
func leafContains(x uint32, b *bitset.BitSet) bool {
	return b.Test(uint(x))
}

// leafInsert sets bit x, returning true if it was newly inserted.
func leafInsert(x uint32, b *bitset.BitSet) bool {
	if b.Test(uint(x)) {
		return false
	}
	b.Set(uint(x))
	return true
}

// leafErase clears bit x, returning true if it had been set.
func leafErase(x uint32, b *bitset.BitSet) bool {
	if !b.Test(uint(x)) {
		return false
	}
	b.Clear(uint(x))
	return true
}

// leafMin returns the smallest set bit, or noValue if the leaf is empty.
func leafMin(b *bitset.BitSet) uint32 {
	if i, ok := b.NextSet(0); ok {
		return uint32(i)
	}
	return noValue
}

// leafMax returns the largest set bit, or noValue if the leaf is empty.
// The universe is tiny (<=16 bits) so a reverse linear scan is constant
// time, which is all the base case needs.
func leafMax(b *bitset.BitSet, k int) uint32 {
	for i := int(1)<<uint(k) - 1; i >= 0; i-- {
		if b.Test(uint(i)) {
			return uint32(i)
		}
	}
	return noValue
}

// leafSuccessor returns the smallest set bit strictly greater than x, or
// noValue if none exists.
func leafSuccessor(x uint32, b *bitset.BitSet) uint32 {
	if i, ok := b.NextSet(uint(x) + 1); ok {
		return uint32(i)
	}
	return noValue
}

// leafPredecessor returns the largest set bit strictly smaller than x, or
// noValue if none exists.
func leafPredecessor(x uint32, b *bitset.BitSet) uint32 {
	for i := int(x) - 1; i >= 0; i-- {
		if b.Test(uint(i)) {
			return uint32(i)
		}
	}
	return noValue
}

