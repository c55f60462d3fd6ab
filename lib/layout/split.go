// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import "fmt"

// OverflowError reports a layout whose fixed and minimum constraints
// demand more cells than the parent has. The runtime surfaces this to
// the caller instead of silently clamping: an over-subscribed layout
// is a markup bug, and guessing a clipping strategy would hide it.
type OverflowError struct {
	// Needed is the total cell count the constraints demand.
	Needed int
	// Available is the length the parent actually had.
	Available int
}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("layout overflow: constraints need %d cells, only %d available", e.Needed, e.Available)
}

// Split resolves a constraint list against an available length and
// returns the cell count assigned to each child, in order.
//
// Resolution happens in passes: fixed constraints consume their exact
// length first; percentage and ratio constraints then consume their
// fraction of what remains; minimum constraints reserve their floor;
// finally, any leftover length is shared equally among the stretchy
// (min/max) children, with max children capped at their limit. When
// there are no stretchy children, the remainder goes to the last
// non-fixed child, or to the last child when every constraint is
// fixed, so the split always conserves the full length.
//
// Returns an [OverflowError] when the demands exceed the available
// length.
func Split(length int, constraints []Constraint) ([]int, error) {
	if length < 0 {
		length = 0
	}
	sizes := make([]int, len(constraints))

	fixedTotal := 0
	minTotal := 0
	for _, constraint := range constraints {
		switch constraint.Kind {
		case Length:
			fixedTotal += constraint.Value
		case Min:
			minTotal += constraint.Value
		}
	}
	if fixedTotal+minTotal > length {
		return nil, &OverflowError{Needed: fixedTotal + minTotal, Available: length}
	}

	// Fixed children first; percent and ratio children divide what is
	// left after them.
	afterFixed := length - fixedTotal
	allocated := fixedTotal
	for index, constraint := range constraints {
		switch constraint.Kind {
		case Length:
			sizes[index] = constraint.Value
		case Percent:
			sizes[index] = afterFixed * constraint.Value / 100
			allocated += sizes[index]
		case Ratio:
			sizes[index] = afterFixed * constraint.Num / constraint.Den
			allocated += sizes[index]
		case Min:
			sizes[index] = constraint.Value
			allocated += sizes[index]
		}
	}
	remaining := length - allocated
	if remaining < 0 {
		return nil, &OverflowError{Needed: allocated, Available: length}
	}

	// Share the leftover equally among stretchy children. Max children
	// take their share up to the cap; whatever a cap refuses flows to
	// the last uncapped child.
	stretchCount := 0
	for _, constraint := range constraints {
		if constraint.Kind == Min || constraint.Kind == Max {
			stretchCount++
		}
	}
	if stretchCount > 0 {
		share := remaining / stretchCount
		extra := remaining % stretchCount
		granted := 0
		lastUncapped := -1
		for index, constraint := range constraints {
			if constraint.Kind != Min && constraint.Kind != Max {
				continue
			}
			want := share
			if extra > 0 {
				want++
				extra--
			}
			if constraint.Kind == Max && want > constraint.Value {
				want = constraint.Value
			}
			if constraint.Kind == Min {
				lastUncapped = index
			}
			sizes[index] += want
			granted += want
		}
		if leftover := remaining - granted; leftover > 0 && lastUncapped >= 0 {
			sizes[lastUncapped] += leftover
		}
		return sizes, nil
	}

	// No stretchy children: the positive remainder goes to the last
	// non-fixed child, or to the last child outright when every
	// constraint is fixed, so the split always covers the parent.
	if remaining > 0 && len(constraints) > 0 {
		target := len(constraints) - 1
		for index := len(constraints) - 1; index >= 0; index-- {
			if constraints[index].Kind != Length {
				target = index
				break
			}
		}
		sizes[target] += remaining
	}
	return sizes, nil
}

// SplitRect divides area among the constraints along direction and
// returns one rectangle per child, in document order. Children span
// the full cross axis.
func SplitRect(area Rect, direction Direction, constraints []Constraint) ([]Rect, error) {
	axis := area.H
	if direction == Horizontal {
		axis = area.W
	}
	sizes, err := Split(axis, constraints)
	if err != nil {
		return nil, err
	}

	rects := make([]Rect, len(sizes))
	offset := 0
	for index, size := range sizes {
		if direction == Horizontal {
			rects[index] = Rect{X: area.X + offset, Y: area.Y, W: size, H: area.H}
		} else {
			rects[index] = Rect{X: area.X, Y: area.Y + offset, W: area.W, H: size}
		}
		offset += size
	}
	return rects, nil
}
