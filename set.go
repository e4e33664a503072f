// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebset

// Set is an ordered set of uint16, backed by a van Emde Boas tree.
//
// The zero value is not ready to use; construct one with New or NewPooled.
// A Set is not safe for concurrent readers and writers, or for concurrent
// mutation from multiple goroutines; see the package doc.
type Set struct {
	root *vebLevel
	size int
	pool *levelPool
}

// New returns an empty Set.
func New() *Set {
	return &Set{root: buildLevel(totalBits, nil)}
}

// NewPooled returns an empty Set whose internal tree levels are recycled
// through a sync.Pool-backed allocator on Destroy/Clone, instead of being
// left for the garbage collector. Useful for callers that repeatedly build
// and discard sets, such as a benchmark loop.
func NewPooled() *Set {
	p := newLevelPool()
	return &Set{root: buildLevel(totalBits, p), pool: p}
}

// Destroy releases the set's entire tree. The Set must not be used again
// afterwards, except that calling Destroy again is a no-op.
func (s *Set) Destroy() {
	if s.root == nil {
		return
	}
	destroyLevel(s.root, totalBits, s.pool)
	s.root = nil
	s.size = 0
}

// Clone returns a deep copy of the set: a structurally independent tree
// with the same elements. Mutating the clone does not affect the original
// and vice versa.
func (s *Set) Clone() *Set {
	return &Set{
		root: cloneLevel(s.root, totalBits, s.pool),
		size: s.size,
		pool: s.pool,
	}
}

// Assign replaces s's contents with a deep copy of src's, releasing s's
// previous tree first. This is the copy-assignment counterpart to Clone.
func (s *Set) Assign(src *Set) {
	if s == src {
		return
	}
	destroyLevel(s.root, totalBits, s.pool)
	s.root = cloneLevel(src.root, totalBits, s.pool)
	s.size = src.size
}

// Swap exchanges the entire observable state of s and o — root, size, and
// pool — in O(1).
func (s *Set) Swap(o *Set) {
	s.root, o.root = o.root, s.root
	s.size, o.size = o.size, s.size
	s.pool, o.pool = o.pool, s.pool
}

// Empty reports whether the set holds no elements.
func (s *Set) Empty() bool {
	return s.size == 0
}

// Size returns the number of elements currently in the set.
func (s *Set) Size() int {
	return s.size
}

// Contains reports whether x is a member of the set.
func (s *Set) Contains(x uint16) bool {
	return containsLevel(uint32(x), s.root, totalBits)
}

// Find returns a cursor naming x if present, or the past-the-end cursor
// otherwise.
func (s *Set) Find(x uint16) Cursor {
	if s.Contains(x) {
		return Cursor{s, uint32(x)}
	}
	return Cursor{s, cursorPastEnd}
}

// Insert adds x to the set, returning a cursor naming x (whether it was
// newly inserted or already present) and a bool that is true iff x was
// newly inserted.
func (s *Set) Insert(x uint16) (Cursor, bool) {
	inserted := insertLevel(uint32(x), s.root, totalBits)
	if inserted {
		s.size++
	}
	return Cursor{s, uint32(x)}, inserted
}

// EraseValue removes x from the set, returning true iff x had been
// present.
func (s *Set) EraseValue(x uint16) bool {
	removed := eraseLevel(uint32(x), s.root, totalBits)
	if removed {
		s.size--
	}
	return removed
}

// EraseAt removes the element named by c, returning true iff it was
// present. It is false for a past-the-end or before-begin cursor, or a
// cursor from a different set.
func (s *Set) EraseAt(c Cursor) bool {
	if c.set != s {
		return false
	}
	v, ok := c.Value()
	if !ok {
		return false
	}
	return s.EraseValue(v)
}

// Successor returns a cursor naming the smallest element strictly greater
// than x, or the past-the-end cursor if none exists.
func (s *Set) Successor(x uint16) Cursor {
	v := successorLevel(uint32(x), s.root, totalBits)
	if v == noValue {
		return Cursor{s, cursorPastEnd}
	}
	return Cursor{s, v}
}

// Predecessor returns a cursor naming the largest element strictly smaller
// than x, or the past-the-end cursor if none exists.
func (s *Set) Predecessor(x uint16) Cursor {
	v := predecessorLevel(uint32(x), s.root, totalBits)
	if v == noValue {
		return Cursor{s, cursorPastEnd}
	}
	return Cursor{s, v}
}

// Begin returns a cursor naming the smallest element, or End() if the set
// is empty.
func (s *Set) Begin() Cursor {
	m := minOf(s.root, totalBits)
	if m == noValue {
		return Cursor{s, cursorPastEnd}
	}
	return Cursor{s, m}
}

// End returns the past-the-end cursor for this set.
func (s *Set) End() Cursor {
	return Cursor{s, cursorPastEnd}
}

// RBegin returns a cursor naming the largest element, the starting point
// for reverse traversal via Cursor.Prev, or REnd() if the set is empty.
func (s *Set) RBegin() Cursor {
	m := maxOf(s.root, totalBits)
	if m == noValue {
		return Cursor{s, cursorBeforeBegin}
	}
	return Cursor{s, m}
}

// REnd returns the before-begin cursor, the terminal position of reverse
// traversal.
func (s *Set) REnd() Cursor {
	return Cursor{s, cursorBeforeBegin}
}

// MinCursor is an alias for Begin, matching the internal component naming
// in the design ("min_cursor()").
func (s *Set) MinCursor() Cursor { return s.Begin() }

// MaxCursor is an alias for RBegin, matching the internal component naming
// in the design ("max_cursor()").
func (s *Set) MaxCursor() Cursor { return s.RBegin() }
