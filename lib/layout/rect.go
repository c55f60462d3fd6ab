// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "fmt"

// Rect is a rectangle in terminal cell coordinates. X grows rightward,
// Y grows downward, and the origin is the top-left corner of the area
// the backend reported.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Inner returns the rectangle shrunk by margin cells on every side.
// A bordered container calls this with margin 1 to reserve its border
// row/column before laying out content. Dimensions never go negative;
// a rectangle too small for the margin collapses to zero size at its
// center-ish origin.
func (r Rect) Inner(margin int) Rect {
	inner := Rect{
		X: r.X + margin,
		Y: r.Y + margin,
		W: r.W - 2*margin,
		H: r.H - 2*margin,
	}
	if inner.W < 0 {
		inner.W = 0
	}
	if inner.H < 0 {
		inner.H = 0
	}
	return inner
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell at (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// String formats the rectangle as "WxH@(X,Y)" for logs and test output.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", r.W, r.H, r.X, r.Y)
}
