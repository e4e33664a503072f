// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package vebset

import "testing"

func TestCursorEqualityNilIsNil(t *testing.T) {
	t.Parallel()

	s := New()
	a := s.End()
	b := s.Find(1) // 1 is absent, so this is also past-the-end

	if !a.Equal(b) {
		t.Fatalf("two past-the-end cursors on the same set should be equal")
	}
}

func TestCursorFromDifferentSetsNotEqual(t *testing.T) {
	t.Parallel()

	s1 := New()
	s2 := New()
	s1.Insert(1)
	s2.Insert(1)

	c1 := s1.Find(1)
	c2 := s2.Find(1)
	if c1.Equal(c2) {
		t.Fatalf("cursors from different sets must not compare equal")
	}
}

func TestCursorNextFromBeforeBeginReachesBegin(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert(5)
	s.Insert(10)

	rend := s.REnd()
	next := rend.Next()

	got, ok := next.Value()
	if !ok || got != 5 {
		t.Fatalf("REnd().Next() = (%v, %v), want (5, true)", got, ok)
	}
}

func TestCursorPrevFromEndReachesRBegin(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert(5)
	s.Insert(10)

	end := s.End()
	prev := end.Prev()

	got, ok := prev.Value()
	if !ok || got != 10 {
		t.Fatalf("End().Prev() = (%v, %v), want (10, true)", got, ok)
	}
}

func TestCursorPastEndNextIsNoOp(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert(1)

	end := s.End()
	still := end.Next()
	if !still.Equal(end) {
		t.Fatalf("Next() on past-the-end cursor must remain past-the-end")
	}
}

func TestCursorBeforeBeginPrevIsNoOp(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert(1)

	rend := s.REnd()
	still := rend.Prev()
	if !still.Equal(rend) {
		t.Fatalf("Prev() on before-begin cursor must remain before-begin")
	}
}

func TestCursorOnEmptySet(t *testing.T) {
	t.Parallel()

	s := New()

	if s.Begin().Valid() {
		t.Fatalf("Begin() on an empty set must be invalid")
	}
	if s.RBegin().Valid() {
		t.Fatalf("RBegin() on an empty set must be invalid")
	}
	if _, ok := s.Begin().Value(); ok {
		t.Fatalf("Value() on an invalid cursor must report ok=false")
	}
}

func TestFindReturnsDereferenceableCursor(t *testing.T) {
	t.Parallel()

	s := New()
	s.Insert(42)

	c := s.Find(42)
	v, ok := c.Value()
	if !ok || v != 42 {
		t.Fatalf("Find(42).Value() = (%v, %v), want (42, true)", v, ok)
	}
}

func TestInsertReturnsCursorToElement(t *testing.T) {
	t.Parallel()

	s := New()
	c, inserted := s.Insert(77)
	if !inserted {
		t.Fatalf("expected newly inserted")
	}
	v, ok := c.Value()
	if !ok || v != 77 {
		t.Fatalf("Insert(77) cursor = (%v, %v), want (77, true)", v, ok)
	}

	c2, inserted2 := s.Insert(77)
	if inserted2 {
		t.Fatalf("expected not-inserted on duplicate")
	}
	v2, ok2 := c2.Value()
	if !ok2 || v2 != 77 {
		t.Fatalf("duplicate Insert(77) cursor = (%v, %v), want (77, true)", v2, ok2)
	}
}
