// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bureau-foundation/tuimark/lib/layout"
)

// frame is one open element during parsing. Children attach to their
// parent when the element closes, so dialog bodies can be validated
// as a whole.
type frame struct {
	tag      string // canonical tag ("block" folds into "container")
	node     Node
	text     strings.Builder
	children []Node
	line     int
}

// parser carries decoder state through one Parse call.
type parser struct {
	source  string
	decoder *xml.Decoder
	ids     map[string]int // id -> line of first definition
	stack   []*frame
	doc     *Document
}

// Parse parses markup source text into a Document. The returned
// Document is immutable; callers hand it to the runtime once and
// never touch it again. All errors are [*Error] values classified by
// [ErrorKind].
func Parse(source string) (*Document, error) {
	p := &parser{
		source:  source,
		decoder: xml.NewDecoder(strings.NewReader(source)),
		ids:     make(map[string]int),
		doc:     &Document{},
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.doc, nil
}

// ParseFile reads and parses a markup file. The document is parsed
// exactly once at load time; there is no reload path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markup file: %w", err)
	}
	doc, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// tags is the fixed element vocabulary. Unknown elements are a parse
// error rather than being skipped: a typo'd tag silently dropping a
// subtree is much harder to debug than a load failure.
var tags = map[string]bool{
	"layout":    true,
	"container": true,
	"block":     true,
	"p":         true,
	"button":    true,
	"dialog":    true,
	"styles":    true,
}

func (p *parser) run() error {
	for {
		token, err := p.decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.decodeError(err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if err := p.startElement(t); err != nil {
				return err
			}
		case xml.CharData:
			if top := p.top(); top != nil {
				top.text.Write(t)
			}
		case xml.EndElement:
			if err := p.endElement(); err != nil {
				return err
			}
		}
		// Comments, directives, and processing instructions are
		// ignored.
	}

	if p.doc.Root == nil {
		return parseError(Malformed, 0, "document has no root <layout> element")
	}
	return nil
}

// decodeError converts an encoding/xml failure into a Malformed parse
// error, preserving the decoder's line number when it has one.
func (p *parser) decodeError(err error) *Error {
	line := p.line()
	var syntax *xml.SyntaxError
	if errors.As(err, &syntax) {
		line = syntax.Line
	}
	return &Error{Kind: Malformed, Line: line, message: err.Error(), wrapped: err}
}

// line computes the current 1-based source line from the decoder's
// byte offset.
func (p *parser) line() int {
	offset := int(p.decoder.InputOffset())
	if offset > len(p.source) {
		offset = len(p.source)
	}
	return 1 + strings.Count(p.source[:offset], "\n")
}

func (p *parser) top() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *parser) startElement(start xml.StartElement) error {
	tag := start.Name.Local
	line := p.line()

	if !tags[tag] {
		return parseError(UnknownTag, line, "<%s> is not a tuimark element", tag)
	}
	if tag == "block" {
		tag = "container"
	}

	if parent := p.top(); parent != nil {
		switch parent.tag {
		case "p", "button", "styles":
			return parseError(Malformed, line, "<%s> cannot contain <%s>", parent.tag, tag)
		}
	} else {
		if p.doc.Root != nil {
			return parseError(Malformed, line, "document has more than one root element")
		}
		if tag != "layout" {
			return parseError(Malformed, line, "root element must be <layout>, got <%s>", tag)
		}
	}

	id := attr(start, "id")
	if id != "" {
		if firstLine, taken := p.ids[id]; taken {
			return parseError(DuplicateID, line, "id %q already defined at line %d", id, firstLine)
		}
		p.ids[id] = line
	}

	node, err := p.buildNode(tag, id, start, line)
	if err != nil {
		return err
	}

	// The runtime synthesizes an id for each dialog button, so those
	// ids are reserved here: a user element claiming one would collide
	// in focus matching.
	if dialog, ok := node.(*Dialog); ok {
		for _, label := range dialog.Buttons {
			reserved := dialog.ID + "_btn_" + label
			if firstLine, taken := p.ids[reserved]; taken {
				return parseError(DuplicateID, line, "dialog %q button %q needs id %q, already defined at line %d", dialog.ID, label, reserved, firstLine)
			}
			p.ids[reserved] = line
		}
	}

	p.stack = append(p.stack, &frame{tag: tag, node: node, line: line})
	return nil
}

// buildNode constructs the node for an opening tag from its
// attributes. Children and text content are filled in when the
// element closes. Unknown attributes are ignored so documents can
// carry annotations for future runtimes.
func (p *parser) buildNode(tag, id string, start xml.StartElement, line int) (Node, error) {
	switch tag {
	case "layout":
		return &Layout{
			ID:        id,
			Direction: layout.ParseDirection(attr(start, "direction")),
		}, nil

	case "container":
		constraintText := attr(start, "constraint")
		if constraintText == "" {
			constraintText = "1"
		}
		constraint, err := layout.ParseConstraint(constraintText)
		if err != nil {
			return nil, &Error{Kind: InvalidConstraint, Line: line, message: err.Error(), wrapped: err}
		}
		return &Container{
			ID:         id,
			Constraint: constraint,
			Border:     ParseBorder(attr(start, "border")),
			Title:      attr(start, "title"),
			Inline:     attr(start, "styles"),
		}, nil

	case "p":
		return &Paragraph{
			ID:     id,
			Align:  ParseAlign(attr(start, "align")),
			Inline: attr(start, "styles"),
		}, nil

	case "button":
		if id == "" {
			return nil, parseError(Malformed, line, "<button> requires an id")
		}
		index := 0
		if indexText := attr(start, "index"); indexText != "" {
			parsed, err := strconv.Atoi(strings.TrimSpace(indexText))
			if err != nil {
				return nil, parseError(Malformed, line, "button %q has non-integer index %q", id, indexText)
			}
			index = parsed
		}
		return &Button{
			ID:          id,
			Action:      attr(start, "action"),
			Index:       index,
			Inline:      attr(start, "styles"),
			FocusInline: attr(start, "focus_styles"),
		}, nil

	case "dialog":
		if id == "" {
			return nil, parseError(Malformed, line, "<dialog> requires an id")
		}
		var buttons []string
		for _, label := range strings.Split(attr(start, "buttons"), "|") {
			if trimmed := strings.TrimSpace(label); trimmed != "" {
				buttons = append(buttons, trimmed)
			}
		}
		return &Dialog{
			ID:      id,
			ShowKey: attr(start, "show"),
			Buttons: buttons,
			Action:  attr(start, "action"),
		}, nil

	case "styles":
		return nil, nil

	default:
		return nil, parseError(UnknownTag, line, "<%s> is not a tuimark element", tag)
	}
}

func (p *parser) endElement() error {
	top := p.top()
	p.stack = p.stack[:len(p.stack)-1]

	// A styles block detaches from the render tree. The first one
	// wins; extras are counted so the loader can warn about them.
	if top.tag == "styles" {
		if p.doc.Styles == "" {
			p.doc.Styles = strings.TrimSpace(top.text.String())
		} else {
			p.doc.ExtraStyles++
		}
		return nil
	}

	switch element := top.node.(type) {
	case *Layout:
		element.Children = top.children
	case *Container:
		element.Children = top.children
	case *Paragraph:
		element.Text = strings.TrimSpace(top.text.String())
	case *Button:
		element.Label = strings.TrimSpace(top.text.String())
	case *Dialog:
		if len(top.children) != 1 {
			return parseError(Malformed, top.line, "dialog %q must contain exactly one <layout>", element.ID)
		}
		body, ok := top.children[0].(*Layout)
		if !ok {
			return parseError(Malformed, top.line, "dialog %q body must be a <layout>", element.ID)
		}
		element.Body = body
	}

	if parent := p.top(); parent != nil {
		parent.children = append(parent.children, top.node)
		return nil
	}

	root, ok := top.node.(*Layout)
	if !ok {
		// Unreachable: startElement rejects non-layout roots.
		return parseError(Malformed, top.line, "root element must be <layout>")
	}
	p.doc.Root = root
	return nil
}

// attr returns the value of a named attribute on a start element, or
// "" when absent.
func attr(start xml.StartElement, name string) string {
	for _, attribute := range start.Attr {
		if attribute.Name.Local == name {
			return attribute.Value
		}
	}
	return ""
}
