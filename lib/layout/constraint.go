// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction selects the axis a layout splits along.
type Direction int

const (
	// Vertical stacks children top to bottom (the markup default).
	Vertical Direction = iota
	// Horizontal places children left to right.
	Horizontal
)

// String returns the markup spelling of the direction.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseDirection maps a markup direction attribute to a Direction.
// Anything other than "horizontal" means vertical, matching the
// attribute's documented default.
func ParseDirection(text string) Direction {
	if strings.EqualFold(strings.TrimSpace(text), "horizontal") {
		return Horizontal
	}
	return Vertical
}

// ConstraintKind identifies how a Constraint's value is interpreted.
type ConstraintKind int

const (
	// Length consumes exactly Value cells.
	Length ConstraintKind = iota
	// Percent consumes Value percent of the length remaining after
	// all Length constraints are satisfied.
	Percent
	// Min consumes at least Value cells and shares any leftover
	// length equally with the other stretchy children.
	Min
	// Max consumes at most Value cells, taking its share of leftover
	// length up to that cap.
	Max
	// Ratio consumes Num/Den of the length remaining after all
	// Length constraints are satisfied.
	Ratio
)

// Constraint is one child's sizing rule within a layout split.
type Constraint struct {
	Kind  ConstraintKind
	Value int
	// Num and Den are only meaningful for Ratio constraints.
	Num int
	Den int
}

// Fixed returns a constraint consuming exactly n cells.
func Fixed(n int) Constraint {
	return Constraint{Kind: Length, Value: n}
}

// Pct returns a constraint consuming p percent of the non-fixed length.
func Pct(p int) Constraint {
	return Constraint{Kind: Percent, Value: p}
}

// AtLeast returns a minimum-with-stretch constraint.
func AtLeast(n int) Constraint {
	return Constraint{Kind: Min, Value: n}
}

// AtMost returns a stretch constraint capped at n cells.
func AtMost(n int) Constraint {
	return Constraint{Kind: Max, Value: n}
}

// String returns the markup spelling of the constraint.
func (c Constraint) String() string {
	switch c.Kind {
	case Percent:
		return fmt.Sprintf("%d%%", c.Value)
	case Min:
		return fmt.Sprintf("%dmin", c.Value)
	case Max:
		return fmt.Sprintf("%dmax", c.Value)
	case Ratio:
		return fmt.Sprintf("%d:%d", c.Num, c.Den)
	default:
		return strconv.Itoa(c.Value)
	}
}

// ParseConstraint parses the markup constraint grammar: a bare integer
// (fixed cells), "N%" (percentage), "Nmin" (minimum with stretch),
// "Nmax" (stretch capped at N), or "X:Y" (ratio). The error is
// descriptive but untyped; the markup parser wraps it into its own
// error taxonomy with position information.
func ParseConstraint(text string) (Constraint, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Constraint{}, fmt.Errorf("empty constraint")
	}

	switch {
	case strings.HasSuffix(trimmed, "%"):
		value, err := parseConstraintValue(strings.TrimSuffix(trimmed, "%"))
		if err != nil {
			return Constraint{}, err
		}
		if value > 100 {
			return Constraint{}, fmt.Errorf("percentage %d exceeds 100", value)
		}
		return Pct(value), nil

	case strings.HasSuffix(trimmed, "min"):
		value, err := parseConstraintValue(strings.TrimSuffix(trimmed, "min"))
		if err != nil {
			return Constraint{}, err
		}
		return AtLeast(value), nil

	case strings.HasSuffix(trimmed, "max"):
		value, err := parseConstraintValue(strings.TrimSuffix(trimmed, "max"))
		if err != nil {
			return Constraint{}, err
		}
		return AtMost(value), nil

	case strings.Contains(trimmed, ":"):
		numText, denText, _ := strings.Cut(trimmed, ":")
		num, err := parseConstraintValue(numText)
		if err != nil {
			return Constraint{}, err
		}
		den, err := parseConstraintValue(denText)
		if err != nil {
			return Constraint{}, err
		}
		if den == 0 {
			return Constraint{}, fmt.Errorf("ratio %q has zero denominator", trimmed)
		}
		if num > den {
			return Constraint{}, fmt.Errorf("ratio %q exceeds 1", trimmed)
		}
		return Constraint{Kind: Ratio, Num: num, Den: den}, nil

	default:
		value, err := parseConstraintValue(trimmed)
		if err != nil {
			return Constraint{}, err
		}
		return Fixed(value), nil
	}
}

// parseConstraintValue parses a non-negative integer component of a
// constraint expression.
func parseConstraintValue(text string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("constraint value %q is not an integer", strings.TrimSpace(text))
	}
	if value < 0 {
		return 0, fmt.Errorf("constraint value %d is negative", value)
	}
	return value, nil
}
