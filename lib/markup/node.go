// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"strings"

	"github.com/bureau-foundation/tuimark/lib/layout"
)

// Kind identifies a node variant. The set is closed: layout, style
// resolution, and painting all switch exhaustively over it, so adding
// a widget means adding one Kind and one arm per consumer.
type Kind int

const (
	// KindLayout is a directional splitter with container children.
	KindLayout Kind = iota
	// KindContainer is a sized box ("container" or "block" in markup)
	// with an optional border and title.
	KindContainer
	// KindParagraph is a text widget ("p" in markup).
	KindParagraph
	// KindButton is a focusable, activatable widget.
	KindButton
	// KindDialog is a modal overlay gated on a state key.
	KindDialog
)

// String returns the markup tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindContainer:
		return "container"
	case KindParagraph:
		return "p"
	case KindButton:
		return "button"
	case KindDialog:
		return "dialog"
	default:
		return "unknown"
	}
}

// Node is one element of the UI tree. The implementations are exactly
// [*Layout], [*Container], [*Paragraph], [*Button], and [*Dialog];
// consumers type-switch over them.
type Node interface {
	// Kind returns the node's variant.
	Kind() Kind
	// NodeID returns the node's id attribute, or "" when absent.
	NodeID() string

	isNode()
}

// Align is a paragraph's horizontal text alignment.
type Align int

const (
	// AlignLeft is the default alignment.
	AlignLeft Align = iota
	// AlignCenter centers text in the content area.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// ParseAlign maps an align attribute to an Align. Unknown values fall
// back to left, the documented default.
func ParseAlign(text string) Align {
	switch strings.TrimSpace(text) {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// Border is a container's border mode.
type Border int

const (
	// BorderNone draws no border (the default).
	BorderNone Border = iota
	// BorderAll draws a full box and reserves a one-cell margin from
	// the content area.
	BorderAll
)

// ParseBorder maps a border attribute to a Border. Anything other
// than "all" means no border.
func ParseBorder(text string) Border {
	if strings.EqualFold(strings.TrimSpace(text), "all") {
		return BorderAll
	}
	return BorderNone
}

// Layout splits its rectangle among its children along a direction.
type Layout struct {
	ID        string
	Direction layout.Direction
	Children  []Node
}

// Kind implements Node.
func (l *Layout) Kind() Kind { return KindLayout }

// NodeID implements Node.
func (l *Layout) NodeID() string { return l.ID }

func (l *Layout) isNode() {}

// Container is a sized box inside a layout. Its constraint drives the
// parent's split; its border, title, and inline style drive painting.
// "block" in markup is an alias for the same element.
type Container struct {
	ID         string
	Constraint layout.Constraint
	Border     Border
	Title      string
	Inline     string
	Children   []Node
}

// Kind implements Node.
func (c *Container) Kind() Kind { return KindContainer }

// NodeID implements Node.
func (c *Container) NodeID() string { return c.ID }

func (c *Container) isNode() {}

// Paragraph is a static text widget.
type Paragraph struct {
	ID     string
	Text   string
	Align  Align
	Inline string
}

// Kind implements Node.
func (p *Paragraph) Kind() Kind { return KindParagraph }

// NodeID implements Node.
func (p *Paragraph) NodeID() string { return p.ID }

func (p *Paragraph) isNode() {}

// Button is a focusable widget that dispatches a named action when
// activated. Index is its position in the tab order; ties are broken
// by document order.
type Button struct {
	ID          string
	Label       string
	Action      string
	Index       int
	Inline      string
	FocusInline string
}

// Kind implements Node.
func (b *Button) Kind() Kind { return KindButton }

// NodeID implements Node.
func (b *Button) NodeID() string { return b.ID }

func (b *Button) isNode() {}

// Dialog is a modal overlay. It renders only while the state value
// under ShowKey is the literal string "true". Its body is a layout
// painted inside a centered box, with one synthesized button per
// label in Buttons along the bottom edge. Button activation
// dispatches "on_<dialog id>_btn_<label>", falling back to Action
// when that name is unregistered.
type Dialog struct {
	ID      string
	ShowKey string
	Buttons []string
	Action  string
	Body    *Layout
}

// Kind implements Node.
func (d *Dialog) Kind() Kind { return KindDialog }

// NodeID implements Node.
func (d *Dialog) NodeID() string { return d.ID }

func (d *Dialog) isNode() {}

// Document is a parsed markup source: the render tree plus the raw
// text of the first styles block. Both are immutable after parsing.
type Document struct {
	// Root is the top-level layout element.
	Root *Layout

	// Styles is the raw text of the document's first styles block,
	// or "" when the document has none. lib/style parses it.
	Styles string

	// ExtraStyles counts styles blocks beyond the first. They are
	// ignored (first one wins); a nonzero count is worth a warning
	// log but is not an error.
	ExtraStyles int
}

// Walk visits every node in the render tree in document order,
// including dialog bodies. It stops early when visit returns false.
func (d *Document) Walk(visit func(Node) bool) {
	walkNode(d.Root, visit)
}

func walkNode(node Node, visit func(Node) bool) bool {
	if !visit(node) {
		return false
	}
	switch element := node.(type) {
	case *Layout:
		for _, child := range element.Children {
			if !walkNode(child, visit) {
				return false
			}
		}
	case *Container:
		for _, child := range element.Children {
			if !walkNode(child, visit) {
				return false
			}
		}
	case *Dialog:
		if element.Body != nil {
			if !walkNode(element.Body, visit) {
				return false
			}
		}
	}
	return true
}
