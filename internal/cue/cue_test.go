package cue

import "testing"

func stops() []Stop {
	return []Stop{
		{Name: "intro", Progress: 0},
		{Name: "peak", Progress: 0.5},
		{Name: "end", Progress: 1},
	}
}

func TestAdvanceAndPrevious(t *testing.T) {
	l := New(stops())
	if l.Current().Name != "intro" {
		t.Fatalf("expected intro first, got %q", l.Current().Name)
	}
	if !l.Advance() || l.Current().Name != "peak" {
		t.Fatal("Advance did not reach peak")
	}
	if !l.Advance() || l.Current().Name != "end" {
		t.Fatal("Advance did not reach end")
	}
	if l.Advance() {
		t.Fatal("Advance past the end should fail")
	}
	if !l.Previous() || l.Current().Name != "peak" {
		t.Fatal("Previous did not step back")
	}
}

func TestPreviousAtStart(t *testing.T) {
	l := New(stops())
	if l.Previous() {
		t.Fatal("Previous at start should fail")
	}
}

func TestJump(t *testing.T) {
	l := New(stops())
	if !l.Jump(2) || l.Current().Name != "end" {
		t.Fatal("Jump(2) failed")
	}
	if l.Jump(3) || l.Jump(-1) {
		t.Fatal("out-of-range Jump should fail")
	}
}

func TestNearest(t *testing.T) {
	l := New(stops())
	if s := l.Nearest(0.6); s == nil || s.Name != "peak" {
		t.Fatalf("Nearest(0.6) = %v", s)
	}
	// Exactly between intro and peak: the earlier stop wins.
	if s := l.Nearest(0.25); s == nil || s.Name != "intro" {
		t.Fatalf("Nearest(0.25) = %v", s)
	}
	if l.CurrentIndex() != 0 {
		t.Fatalf("Nearest did not move current, index %d", l.CurrentIndex())
	}
}

func TestEmptyList(t *testing.T) {
	l := New(nil)
	if l.Current() != nil || l.Nearest(0.5) != nil {
		t.Fatal("empty list should have no stops")
	}
	if l.Advance() || l.Previous() {
		t.Fatal("navigation on empty list should fail")
	}
}
