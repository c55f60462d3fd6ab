// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"

	"github.com/bureau-foundation/tuimark/lib/action"
	"github.com/bureau-foundation/tuimark/lib/layout"
	"github.com/bureau-foundation/tuimark/lib/markup"
)

// Placement is one node bound to a concrete rectangle for the current
// frame. Placements come out in paint order: parents before children,
// dialog overlays last.
type Placement struct {
	Node markup.Node
	Rect layout.Rect
	// Dialog is the owning dialog's id for nodes painted inside an
	// overlay, "" for the main view. Dialog-button placements hold
	// synthesized button nodes named by the dialog convention.
	Dialog string
}

// computer walks the tree for one frame. Dialogs are collected during
// the main walk and laid out afterward against the full area, so they
// overlay everything regardless of where the markup declares them.
type computer struct {
	area       layout.Rect
	visible    func(*markup.Dialog) bool
	placements []Placement
	dialogs    []*markup.Dialog
	inDialog   string
}

// computePlacements resolves the tree against a terminal area.
// Hidden dialogs are skipped entirely, subtree included: they
// contribute no placements and no focusable buttons.
func computePlacements(root *markup.Layout, area layout.Rect, visible func(*markup.Dialog) bool) ([]Placement, error) {
	c := &computer{area: area, visible: visible}
	if err := c.walkLayout(root, area); err != nil {
		return nil, err
	}
	for _, dialog := range c.dialogs {
		if !c.visible(dialog) {
			continue
		}
		if err := c.placeDialog(dialog); err != nil {
			return nil, err
		}
	}
	return c.placements, nil
}

// walkLayout splits a layout's rectangle among its non-dialog
// children. Containers contribute their declared constraint; bare
// children get the default constraint of one cell.
func (c *computer) walkLayout(node *markup.Layout, rect layout.Rect) error {
	var children []markup.Node
	var constraints []layout.Constraint
	for _, child := range node.Children {
		if dialog, ok := child.(*markup.Dialog); ok {
			c.dialogs = append(c.dialogs, dialog)
			continue
		}
		children = append(children, child)
		if container, ok := child.(*markup.Container); ok {
			constraints = append(constraints, container.Constraint)
		} else {
			constraints = append(constraints, layout.Fixed(1))
		}
	}

	rects, err := layout.SplitRect(rect, node.Direction, constraints)
	if err != nil {
		if node.ID != "" {
			return fmt.Errorf("layout %q: %w", node.ID, err)
		}
		return err
	}
	for index, child := range children {
		if err := c.placeNode(child, rects[index]); err != nil {
			return err
		}
	}
	return nil
}

func (c *computer) placeNode(node markup.Node, rect layout.Rect) error {
	switch element := node.(type) {
	case *markup.Layout:
		return c.walkLayout(element, rect)

	case *markup.Container:
		c.placements = append(c.placements, Placement{Node: element, Rect: rect, Dialog: c.inDialog})
		inner := rect
		if element.Border == markup.BorderAll {
			inner = rect.Inner(1)
		}
		for _, child := range element.Children {
			if dialog, ok := child.(*markup.Dialog); ok {
				c.dialogs = append(c.dialogs, dialog)
				continue
			}
			if err := c.placeNode(child, inner); err != nil {
				return err
			}
		}
		return nil

	default:
		// Paragraphs and buttons fill their assigned rectangle.
		c.placements = append(c.placements, Placement{Node: node, Rect: rect, Dialog: c.inDialog})
		return nil
	}
}

// placeDialog lays out a visible dialog: a centered box, the body
// layout inside it, and one synthesized button per label along the
// bottom row of the content area.
func (c *computer) placeDialog(dialog *markup.Dialog) error {
	rect := dialogRect(c.area)
	c.placements = append(c.placements, Placement{Node: dialog, Rect: rect, Dialog: dialog.ID})

	c.inDialog = dialog.ID
	defer func() { c.inDialog = "" }()

	inner := rect.Inner(1)
	bodyRect := layout.Rect{X: inner.X, Y: inner.Y, W: inner.W, H: inner.H - 1}
	if dialog.Body != nil && !bodyRect.Empty() {
		if err := c.walkLayout(dialog.Body, bodyRect); err != nil {
			return fmt.Errorf("dialog %q: %w", dialog.ID, err)
		}
	}

	if len(dialog.Buttons) == 0 || inner.H < 1 {
		return nil
	}
	buttonRow := layout.Rect{X: inner.X, Y: inner.Y + inner.H - 1, W: inner.W, H: 1}
	constraints := make([]layout.Constraint, len(dialog.Buttons))
	for index := range constraints {
		constraints[index] = layout.AtLeast(1)
	}
	cells, err := layout.SplitRect(buttonRow, layout.Horizontal, constraints)
	if err != nil {
		return fmt.Errorf("dialog %q button row: %w", dialog.ID, err)
	}
	for index, label := range dialog.Buttons {
		button := &markup.Button{
			ID:     fmt.Sprintf("%s_btn_%s", dialog.ID, label),
			Label:  label,
			Action: action.ButtonAction(dialog.ID, label),
			Index:  index,
		}
		c.placements = append(c.placements, Placement{Node: button, Rect: cells[index], Dialog: dialog.ID})
	}
	return nil
}

// dialogRect centers a dialog in the area: three fifths of the width
// and two fifths of the height, with floors so small terminals still
// get a usable box.
func dialogRect(area layout.Rect) layout.Rect {
	width := area.W * 3 / 5
	if width < 20 {
		width = 20
	}
	if width > area.W {
		width = area.W
	}
	height := area.H * 2 / 5
	if height < 7 {
		height = 7
	}
	if height > area.H {
		height = area.H
	}
	return layout.Rect{
		X: area.X + (area.W-width)/2,
		Y: area.Y + (area.H-height)/2,
		W: width,
		H: height,
	}
}

// ComputeMap resolves the tree against an area and returns the
// rectangle for every node that has an id. Tests and layout tooling
// use this to assert geometry without painting.
func ComputeMap(root *markup.Layout, area layout.Rect, visible func(*markup.Dialog) bool) (map[string]layout.Rect, error) {
	placements, err := computePlacements(root, area, visible)
	if err != nil {
		return nil, err
	}
	rects := make(map[string]layout.Rect)
	for _, placement := range placements {
		if id := placement.Node.NodeID(); id != "" {
			rects[id] = placement.Rect
		}
	}
	return rects, nil
}
