// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/tuimark/lib/layout"
)

func stripLines(lines []string) []string {
	stripped := make([]string, len(lines))
	for index, line := range lines {
		stripped[index] = ansi.Strip(line)
	}
	return stripped
}

func TestCompose_BlankFrame(t *testing.T) {
	frame := Compose(5, 2, nil)
	if len(frame) != 2 {
		t.Fatalf("frame height = %d, want 2", len(frame))
	}
	for y, line := range frame {
		if line != "     " {
			t.Errorf("line %d = %q, want five spaces", y, line)
		}
	}
}

func TestCompose_LaterOpsOverlay(t *testing.T) {
	ops := []DrawOp{
		{Rect: layout.Rect{X: 0, Y: 0, W: 5, H: 1}, Lines: []string{"AAAAA"}},
		{Rect: layout.Rect{X: 2, Y: 0, W: 2, H: 1}, Lines: []string{"BB"}},
	}
	frame := stripLines(Compose(5, 1, ops))
	if frame[0] != "AABBA" {
		t.Fatalf("composed line = %q, want %q", frame[0], "AABBA")
	}
}

func TestCompose_ClipsAtRightEdge(t *testing.T) {
	ops := []DrawOp{
		{Rect: layout.Rect{X: 3, Y: 0, W: 5, H: 1}, Lines: []string{"XXXXX"}},
	}
	frame := stripLines(Compose(5, 1, ops))
	if frame[0] != "   XX" {
		t.Fatalf("composed line = %q, want %q", frame[0], "   XX")
	}
}

func TestCompose_SkipsLinesOutsideFrame(t *testing.T) {
	ops := []DrawOp{
		{Rect: layout.Rect{X: 0, Y: -1, W: 3, H: 3}, Lines: []string{"TOP", "MID", "BOT"}},
	}
	frame := stripLines(Compose(3, 2, ops))
	// Row -1 ("TOP") is dropped, rows 0 and 1 land.
	if frame[0] != "MID" || frame[1] != "BOT" {
		t.Fatalf("frame = %q, want [MID BOT]", frame)
	}
}

func TestCompose_StyledOverlayKeepsWidth(t *testing.T) {
	styled := "\x1b[31mRED\x1b[0m"
	ops := []DrawOp{
		{Rect: layout.Rect{X: 1, Y: 0, W: 3, H: 1}, Lines: []string{styled}},
	}
	frame := Compose(6, 1, ops)
	plain := ansi.Strip(frame[0])
	if plain != " RED  " {
		t.Fatalf("stripped line = %q, want %q", plain, " RED  ")
	}
	if got := ansi.StringWidth(frame[0]); got != 6 {
		t.Fatalf("visible width = %d, want 6", got)
	}
}

func TestSplice_PadsShortBase(t *testing.T) {
	// Anchoring past the end of a short base line pads the gap.
	result := ansi.Strip(splice("ab", "XY", 4, 10))
	if result != "ab  XY" {
		t.Fatalf("spliced = %q, want %q", result, "ab  XY")
	}
}
