// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebset

import "testing"

func TestBuildLevelIsEmpty(t *testing.T) {
	t.Parallel()

	for _, k := range []int{4, 8, 16} {
		n := buildLevel(k, nil)
		if !isEmptyLevel(n, k) {
			t.Errorf("buildLevel(%d): expected empty", k)
		}
		if got := minOf(n, k); got != noValue {
			t.Errorf("buildLevel(%d): minOf = %d, want noValue", k, got)
		}
		if got := maxOf(n, k); got != noValue {
			t.Errorf("buildLevel(%d): maxOf = %d, want noValue", k, got)
		}
	}
}

// TestSingleElementInvariant checks that a subtree holding exactly one
// element stores it only in min/max, never pushed down into a child.
func TestSingleElementInvariant(t *testing.T) {
	t.Parallel()

	const k = 16
	n := buildLevel(k, nil)
	insertLevel(12345, n, k)

	if n.min != 12345 || n.max != 12345 {
		t.Fatalf("min/max = %d/%d, want 12345/12345", n.min, n.max)
	}

	kHi, kLo := splitBits(k)
	if !isEmptyLevel(n.summary, kHi) {
		t.Fatalf("summary should be empty when subtree holds a single element")
	}
	for i, c := range n.children {
		if !isEmptyLevel(c, kLo) {
			t.Fatalf("children[%d] should be empty when subtree holds a single element", i)
		}
	}
}

func TestInsertPromotesMinOnSmallerValue(t *testing.T) {
	t.Parallel()

	const k = 16
	n := buildLevel(k, nil)
	insertLevel(100, n, k)
	insertLevel(50, n, k)

	if n.min != 50 {
		t.Fatalf("min = %d, want 50", n.min)
	}
	if n.max != 100 {
		t.Fatalf("max = %d, want 100", n.max)
	}
	// the old min (100) must have been pushed down into a child, not left
	// dangling at top level only.
	_, kLo := splitBits(k)
	h, l := split(100, kLo)
	if !containsLevel(l, n.children[h], kLo) {
		t.Fatalf("100 should be stored in children[%d] after 50 became the new min", h)
	}
}

func TestEraseOnTwoElementSetCollapsesToSingleton(t *testing.T) {
	t.Parallel()

	const k = 16
	n := buildLevel(k, nil)
	insertLevel(7, n, k)
	insertLevel(9, n, k)

	if !eraseLevel(7, n, k) {
		t.Fatalf("erase(7) = false, want true")
	}
	if n.min != 9 || n.max != 9 {
		t.Fatalf("min/max after collapsing to singleton = %d/%d, want 9/9", n.min, n.max)
	}
}

func TestSuccessorPredecessorAgainstNaiveScan(t *testing.T) {
	t.Parallel()

	const k = 16
	n := buildLevel(k, nil)

	present := map[uint32]bool{}
	for _, x := range []uint32{3, 17, 18, 300, 301, 65000, 65535, 0} {
		insertLevel(x, n, k)
		present[x] = true
	}

	naiveSuccessor := func(x uint32) uint32 {
		best := noValue
		for y := range present {
			if y > x && (best == noValue || y < best) {
				best = y
			}
		}
		return best
	}
	naivePredecessor := func(x uint32) uint32 {
		best := noValue
		for y := range present {
			if y < x && (best == noValue || y > best) {
				best = y
			}
		}
		return best
	}

	for x := uint32(0); x < 1<<16; x += 13 {
		if got, want := successorLevel(x, n, k), naiveSuccessor(x); got != want {
			t.Fatalf("successor(%d) = %d, want %d", x, got, want)
		}
		if got, want := predecessorLevel(x, n, k), naivePredecessor(x); got != want {
			t.Fatalf("predecessor(%d) = %d, want %d", x, got, want)
		}
	}
}
