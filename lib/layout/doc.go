// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package layout implements the geometric half of the tuimark runtime:
// rectangles, sizing constraints, and directional constraint splitting.
//
// A markup layout divides its assigned rectangle among its children
// along one axis. Each child carries a [Constraint] that says how much
// of that axis it wants: an exact cell count, a percentage of what is
// left after the exact consumers, a minimum with stretch, a maximum
// cap, or a ratio. [Split] resolves a constraint list against an
// available length and either accounts for every cell (no silent
// rounding loss) or reports an [OverflowError] so the caller can
// decide what to do about an over-subscribed layout.
//
// This package is purely arithmetic. It knows nothing about nodes,
// styles, or terminals; the runtime walks the markup tree and calls
// into it with concrete rectangles.
package layout
