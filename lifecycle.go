// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebset

import (
	"sync"
	"sync/atomic"
)

// levelPool is a type-safe wrapper around sync.Pool, specialized for
// reusing *vebLevel instances across build/destroy cycles (e.g. repeated
// Clone + discard in a benchmark loop). It tracks simple allocation
// statistics for diagnostics.
//
// A nil *levelPool is valid and simply disables pooling: build allocates
// fresh levels and destroy drops them for the garbage collector, which is
// the default a bare Set uses.
type levelPool struct {
	sync.Pool

	totalAllocated atomic.Int64
	currentLive    atomic.Int64
}

// newLevelPool creates a pool of *vebLevel.
func newLevelPool() *levelPool {
	p := &levelPool{}
	p.New = func() any {
		p.totalAllocated.Add(1)
		return new(vebLevel)
	}
	return p
}

// get retrieves a *vebLevel from the pool, or allocates a fresh one.
func (p *levelPool) get() *vebLevel {
	if p == nil {
		return new(vebLevel)
	}
	p.currentLive.Add(1)
	return p.Pool.Get().(*vebLevel)
}

// put returns a *vebLevel to the pool for reuse, after resetting its state.
func (p *levelPool) put(n *vebLevel) {
	if p == nil || n == nil {
		return
	}
	p.currentLive.Add(-1)
	n.reset()
	p.Pool.Put(n)
}

// reset clears a level's state so it can be handed back out by build
// without carrying over stale children, summary, or leaf bits.
func (n *vebLevel) reset() {
	n.leaf = nil
	n.empty = false
	n.min, n.max = 0, 0
	n.summary = nil
	n.children = nil
}

// buildLevel allocates a fresh, empty subtree covering 2^k values.
//
// This eagerly allocates the full recursive structure down to every leaf,
// which is the classic (non lazily-expanded) van Emde Boas construction:
// O(U) work and space up front (for k = 16: 4,627 levels, 4,369 of them
// 16-bit leaves), in a single build, in exchange for O(1) child lookups later.
func buildLevel(k int, pool *levelPool) *vebLevel {
	if k <= baseBits {
		n := pool.get()
		n.leaf = newLeaf(k)
		return n
	}

	kHi, kLo := splitBits(k)

	n := pool.get()
	n.empty = true
	n.summary = buildLevel(kHi, pool)
	n.children = make([]*vebLevel, 1<<uint(kHi))
	for i := range n.children {
		n.children[i] = buildLevel(kLo, pool)
	}
	return n
}

// destroyLevel releases a subtree bottom-up: children first, then the
// summary, then the node itself.
//
// In Go this is mostly a courtesy to the garbage collector (there is no
// manual free), but recycling through pool lets a caller that repeatedly
// builds and discards trees (e.g. a benchmark loop) avoid reallocating the
// whole structure on every iteration.
func destroyLevel(n *vebLevel, k int, pool *levelPool) {
	if n == nil {
		return
	}
	if k <= baseBits {
		pool.put(n)
		return
	}

	kHi, kLo := splitBits(k)
	for _, c := range n.children {
		destroyLevel(c, kLo, pool)
	}
	destroyLevel(n.summary, kHi, pool)
	pool.put(n)
}

// cloneLevel produces a structurally independent deep copy of the subtree
// rooted at n: a fresh level is built with identical layout, with no node
// shared between source and destination.
func cloneLevel(n *vebLevel, k int, pool *levelPool) *vebLevel {
	if k <= baseBits {
		c := pool.get()
		c.leaf = cloneLeaf(n.leaf)
		return c
	}

	c := pool.get()
	c.empty = n.empty
	c.min, c.max = n.min, n.max

	kHi, kLo := splitBits(k)
	c.summary = cloneLevel(n.summary, kHi, pool)
	c.children = make([]*vebLevel, len(n.children))
	for i, child := range n.children {
		c.children[i] = cloneLevel(child, kLo, pool)
	}
	return c
}
