// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/karlveb/vebset"
)

// reference is a plain sorted-slice ordered set, used only to cross-check
// vebset.Set's successor/predecessor/membership answers during the fuzz
// run. It is deliberately the simplest possible correct implementation.
type reference struct {
	sorted []uint16
	has    map[uint16]bool
}

func newReference() *reference {
	return &reference{has: make(map[uint16]bool)}
}

func (r *reference) insert(x uint16) bool {
	if r.has[x] {
		return false
	}
	r.has[x] = true
	i := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i] >= x })
	r.sorted = append(r.sorted, 0)
	copy(r.sorted[i+1:], r.sorted[i:])
	r.sorted[i] = x
	return true
}

func (r *reference) erase(x uint16) bool {
	if !r.has[x] {
		return false
	}
	delete(r.has, x)
	i := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i] >= x })
	r.sorted = append(r.sorted[:i], r.sorted[i+1:]...)
	return true
}

// successor returns the smallest element strictly greater than x, and ok.
func (r *reference) successor(x uint16) (uint16, bool) {
	i := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i] > x })
	if i == len(r.sorted) {
		return 0, false
	}
	return r.sorted[i], true
}

// predecessor returns the largest element strictly smaller than x, and ok.
func (r *reference) predecessor(x uint16) (uint16, bool) {
	i := sort.Search(len(r.sorted), func(i int) bool { return r.sorted[i] >= x })
	if i == 0 {
		return 0, false
	}
	return r.sorted[i-1], true
}

// worker drives a single vebset.Set through a random operation stream,
// checking every query against a reference set built from the same
// operation stream.
type worker struct {
	set *vebset.Set
	ref *reference
	rng *rand.Rand
	ops int
}

func newWorker(seed int64, ops int) *worker {
	return &worker{
		set: vebset.New(),
		ref: newReference(),
		rng: rand.New(rand.NewSource(seed)),
		ops: ops,
	}
}

// run executes the configured number of random operations, returning the
// first invariant violation it finds, if any.
func (w *worker) run() error {
	for i := 0; i < w.ops; i++ {
		x := uint16(w.rng.Intn(1 << 16))

		switch w.rng.Intn(4) {
		case 0:
			_, got := w.set.Insert(x)
			want := w.ref.insert(x)
			if got != want {
				return fmt.Errorf("op %d: insert(%d) = %v, want %v", i, x, got, want)
			}
		case 1:
			got := w.set.EraseValue(x)
			want := w.ref.erase(x)
			if got != want {
				return fmt.Errorf("op %d: erase(%d) = %v, want %v", i, x, got, want)
			}
		case 2:
			wantVal, wantOK := w.ref.successor(x)
			gotCursor := w.set.Successor(x)
			gotVal, gotOK := gotCursor.Value()
			if gotOK != wantOK || (gotOK && gotVal != wantVal) {
				return fmt.Errorf("op %d: successor(%d) = (%d, %v), want (%d, %v)", i, x, gotVal, gotOK, wantVal, wantOK)
			}
		default:
			wantVal, wantOK := w.ref.predecessor(x)
			gotCursor := w.set.Predecessor(x)
			gotVal, gotOK := gotCursor.Value()
			if gotOK != wantOK || (gotOK && gotVal != wantVal) {
				return fmt.Errorf("op %d: predecessor(%d) = (%d, %v), want (%d, %v)", i, x, gotVal, gotOK, wantVal, wantOK)
			}
		}

		if w.set.Size() != len(w.ref.sorted) {
			return fmt.Errorf("op %d: size = %d, want %d", i, w.set.Size(), len(w.ref.sorted))
		}
	}
	return nil
}
