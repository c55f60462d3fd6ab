// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/tuimark/lib/markup"
	"github.com/bureau-foundation/tuimark/lib/style"
)

// paint turns placements into draw ops: one opaque rectangle per
// widget, styled through the sheet and theme. Placements arrive in
// paint order, so the ops overlay correctly as-is.
func paint(placements []Placement, sheet *style.Sheet, theme style.Theme, focusedID string) []DrawOp {
	var ops []DrawOp
	for _, placement := range placements {
		if placement.Rect.Empty() {
			continue
		}
		width, height := placement.Rect.W, placement.Rect.H

		var lines []string
		switch element := placement.Node.(type) {
		case *markup.Container:
			resolved := sheet.Resolve(theme, "container", element.ID, element.Inline, "", false)
			lip := resolved.Lip(theme)
			if element.Border == markup.BorderAll {
				lines = box(width, height, element.Title, lip)
			} else {
				lines = fill(width, height, lip)
			}

		case *markup.Paragraph:
			resolved := sheet.Resolve(theme, "p", element.ID, element.Inline, "", false)
			lip := resolved.Lip(theme)
			lines = fill(width, height, lip)
			lines[0] = lip.Render(alignLine(element.Text, width, element.Align))

		case *markup.Button:
			focused := element.ID == focusedID
			resolved := sheet.Resolve(theme, "button", element.ID, element.Inline, element.FocusInline, focused)
			lip := resolved.Lip(theme)
			lines = fill(width, height, lip)
			label := "[ " + element.Label + " ]"
			lines[height/2] = lip.Render(alignLine(label, width, markup.AlignCenter))

		case *markup.Dialog:
			resolved := sheet.Resolve(theme, "dialog", element.ID, "", "", false)
			lines = box(width, height, "", resolved.Lip(theme))

		default:
			continue
		}
		ops = append(ops, DrawOp{Rect: placement.Rect, Lines: lines})
	}
	return ops
}

// fill produces height blank lines of width cells, each carrying the
// style so backgrounds cover whatever sits underneath.
func fill(width, height int, lip lipgloss.Style) []string {
	blank := lip.Render(strings.Repeat(" ", width))
	lines := make([]string, height)
	for index := range lines {
		lines[index] = blank
	}
	return lines
}

// box draws a bordered rectangle with the title embedded in the top
// edge. Rectangles too small for a border degrade to a plain fill.
func box(width, height int, title string, lip lipgloss.Style) []string {
	if width < 2 || height < 2 {
		return fill(width, height, lip)
	}
	border := lipgloss.NormalBorder()
	innerWidth := width - 2

	top := title
	if top != "" {
		top = ansi.Truncate(top, innerWidth, "")
	}
	top += strings.Repeat(border.Top, innerWidth-ansi.StringWidth(top))

	lines := make([]string, height)
	lines[0] = lip.Render(border.TopLeft + top + border.TopRight)
	middle := lip.Render(border.Left + strings.Repeat(" ", innerWidth) + border.Right)
	for index := 1; index < height-1; index++ {
		lines[index] = middle
	}
	lines[height-1] = lip.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerWidth) + border.BottomRight)
	return lines
}

// alignLine truncates text to the width and pads it to exactly the
// width according to the alignment.
func alignLine(text string, width int, align markup.Align) string {
	text = ansi.Truncate(text, width, "")
	position := lipgloss.Left
	switch align {
	case markup.AlignCenter:
		position = lipgloss.Center
	case markup.AlignRight:
		position = lipgloss.Right
	}
	return lipgloss.PlaceHorizontal(width, position, text)
}
