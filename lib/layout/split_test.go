// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"errors"
	"testing"
)

func TestSplit_FixedExact(t *testing.T) {
	sizes, err := Split(8, []Constraint{Fixed(3), Fixed(5)})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if sizes[0] != 3 || sizes[1] != 5 {
		t.Errorf("expected [3 5], got %v", sizes)
	}
}

func TestSplit_PercentConservation(t *testing.T) {
	// Three 33% children: flooring leaves one cell, which goes to the
	// last child so the split covers the whole parent.
	sizes, err := Split(100, []Constraint{Pct(33), Pct(33), Pct(33)})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	total := sizes[0] + sizes[1] + sizes[2]
	if total != 100 {
		t.Errorf("expected conservation of 100 cells, got %d (%v)", total, sizes)
	}
	if sizes[0] != 33 || sizes[1] != 33 || sizes[2] != 34 {
		t.Errorf("expected [33 33 34], got %v", sizes)
	}
}

func TestSplit_PercentAfterFixed(t *testing.T) {
	// Percent children divide what is left after fixed consumers:
	// 50% of (20-10) is 5.
	sizes, err := Split(20, []Constraint{Fixed(10), Pct(50), Pct(50)})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if sizes[0] != 10 || sizes[1] != 5 || sizes[2] != 5 {
		t.Errorf("expected [10 5 5], got %v", sizes)
	}
}

func TestSplit_MinStretchesEqually(t *testing.T) {
	sizes, err := Split(20, []Constraint{Fixed(4), AtLeast(2), AtLeast(2)})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	// 16 cells remain after the fixed child; each min child takes its
	// floor of 2 plus half of the 12-cell leftover.
	if sizes[0] != 4 || sizes[1] != 8 || sizes[2] != 8 {
		t.Errorf("expected [4 8 8], got %v", sizes)
	}
	if sizes[0]+sizes[1]+sizes[2] != 20 {
		t.Errorf("expected conservation, got %v", sizes)
	}
}

func TestSplit_MaxCapped(t *testing.T) {
	sizes, err := Split(20, []Constraint{AtMost(5), AtLeast(1)})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if sizes[0] != 5 {
		t.Errorf("expected max child capped at 5, got %d", sizes[0])
	}
	if sizes[1] != 15 {
		t.Errorf("expected min child to absorb the refused cells, got %d", sizes[1])
	}
}

func TestSplit_Ratio(t *testing.T) {
	sizes, err := Split(30, []Constraint{
		{Kind: Ratio, Num: 1, Den: 3},
		{Kind: Ratio, Num: 2, Den: 3},
	})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if sizes[0] != 10 || sizes[1] != 20 {
		t.Errorf("expected [10 20], got %v", sizes)
	}
}

func TestSplit_Overflow(t *testing.T) {
	_, err := Split(10, []Constraint{Fixed(8), AtLeast(5)})
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected OverflowError, got %v", err)
	}
	if overflow.Needed != 13 || overflow.Available != 10 {
		t.Errorf("expected needed=13 available=10, got needed=%d available=%d", overflow.Needed, overflow.Available)
	}
}

func TestSplit_AllFixedStretchesLastChild(t *testing.T) {
	// With only fixed constraints the last child absorbs the remainder
	// so the split still covers the whole parent.
	sizes, err := Split(10, []Constraint{Fixed(2), Fixed(3)})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if sizes[0] != 2 || sizes[1] != 8 {
		t.Errorf("expected [2 8], got %v", sizes)
	}
}

func TestSplit_AllFixedConservation(t *testing.T) {
	sizes, err := Split(10, []Constraint{Fixed(3), Fixed(3)})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if total := sizes[0] + sizes[1]; total != 10 {
		t.Errorf("expected conservation of 10 cells, got %d (%v)", total, sizes)
	}
	if sizes[0] != 3 || sizes[1] != 7 {
		t.Errorf("expected [3 7], got %v", sizes)
	}
}

func TestSplit_Empty(t *testing.T) {
	sizes, err := Split(10, nil)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(sizes) != 0 {
		t.Errorf("expected no sizes, got %v", sizes)
	}
}

func TestSplitRect_Vertical(t *testing.T) {
	area := Rect{X: 0, Y: 0, W: 20, H: 10}
	rects, err := SplitRect(area, Vertical, []Constraint{Fixed(3), AtLeast(1)})
	if err != nil {
		t.Fatalf("SplitRect failed: %v", err)
	}
	if rects[0] != (Rect{X: 0, Y: 0, W: 20, H: 3}) {
		t.Errorf("unexpected first rect: %v", rects[0])
	}
	if rects[1] != (Rect{X: 0, Y: 3, W: 20, H: 7}) {
		t.Errorf("unexpected second rect: %v", rects[1])
	}
}

func TestSplitRect_Horizontal(t *testing.T) {
	area := Rect{X: 2, Y: 1, W: 20, H: 5}
	rects, err := SplitRect(area, Horizontal, []Constraint{Pct(25), AtLeast(1)})
	if err != nil {
		t.Fatalf("SplitRect failed: %v", err)
	}
	if rects[0] != (Rect{X: 2, Y: 1, W: 5, H: 5}) {
		t.Errorf("unexpected first rect: %v", rects[0])
	}
	if rects[1] != (Rect{X: 7, Y: 1, W: 15, H: 5}) {
		t.Errorf("unexpected second rect: %v", rects[1])
	}
}
