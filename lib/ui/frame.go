// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose assembles draw ops into a full frame: height lines of width
// cells. Ops are applied in order, so later rectangles (dialog
// overlays) cover earlier ones. Splicing is ANSI-aware: styled
// content on either side of an op keeps its escape sequences intact.
func Compose(width, height int, ops []DrawOp) []string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	blank := strings.Repeat(" ", width)
	frame := make([]string, height)
	for index := range frame {
		frame[index] = blank
	}

	for _, op := range ops {
		for lineIndex, line := range op.Lines {
			y := op.Rect.Y + lineIndex
			if y < 0 || y >= height {
				continue
			}
			frame[y] = splice(frame[y], line, op.Rect.X, width)
		}
	}
	return frame
}

// splice replaces a horizontal span of base with overlay content
// starting at column x. SGR resets bracket the overlay so styling
// never bleeds between neighbouring rectangles.
func splice(base, overlay string, x, totalWidth int) string {
	if x >= totalWidth {
		return base
	}
	if x < 0 {
		overlay = ansi.TruncateLeft(overlay, -x, "")
		x = 0
	}

	overlayWidth := ansi.StringWidth(overlay)
	if x+overlayWidth > totalWidth {
		overlay = ansi.Truncate(overlay, totalWidth-x, "")
		overlayWidth = totalWidth - x
	}

	var result strings.Builder
	if x > 0 {
		prefix := ansi.Truncate(base, x, "")
		result.WriteString(prefix)
		// Pad when the base line is shorter than the anchor column.
		if gap := x - ansi.StringWidth(prefix); gap > 0 {
			result.WriteString(strings.Repeat(" ", gap))
		}
	}
	result.WriteString("\x1b[0m")
	result.WriteString(overlay)
	result.WriteString("\x1b[0m")

	if suffixStart := x + overlayWidth; suffixStart < ansi.StringWidth(base) {
		result.WriteString(ansi.TruncateLeft(base, suffixStart, ""))
	}
	return result.String()
}
