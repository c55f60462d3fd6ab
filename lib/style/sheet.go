// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"fmt"
	"strings"
)

// Pseudo is a rule's interaction-state qualifier.
type Pseudo int

const (
	// PseudoNone applies in every state.
	PseudoNone Pseudo = iota
	// PseudoFocus applies only while the node is focused.
	PseudoFocus
)

// Rule is one stylesheet rule: a selector, an optional pseudo-state,
// and the declarations it contributes. Exactly one of Type and ID is
// set.
type Rule struct {
	// Type matches every element of a markup type ("button", "p").
	Type string
	// ID matches the single element with this id ("#footer" in
	// markup, stored without the hash).
	ID string
	// Pseudo narrows the rule to an interaction state.
	Pseudo Pseudo
	// Style holds the rule's declarations. Tokens are stored as
	// written; they are validated against a theme at resolution.
	Style Style
}

// Sheet is a parsed stylesheet: the ordered rules from a document's
// styles block. Immutable after parsing.
type Sheet struct {
	Rules []Rule
}

// ParseSheet parses stylesheet text:
//
//	button { fg: red; bg: black }
//	button:focus { fg: white }
//	#footer { weight: bold }
//
// Structure errors (unbalanced braces, empty or unparsable selectors)
// fail the parse; they indicate a broken document and surface at load
// time. Individual declarations fail softly instead: an unknown
// property name is skipped, and color/weight token validity is
// checked later, during resolution.
func ParseSheet(text string) (*Sheet, error) {
	sheet := &Sheet{}
	rest := strings.TrimSpace(text)

	for rest != "" {
		open := strings.Index(rest, "{")
		if open < 0 {
			return nil, fmt.Errorf("stylesheet: expected '{' after %q", clip(rest))
		}
		closing := strings.Index(rest, "}")
		if closing < open {
			return nil, fmt.Errorf("stylesheet: unbalanced braces near %q", clip(rest))
		}

		selectorText := strings.TrimSpace(rest[:open])
		declarations := rest[open+1 : closing]
		rest = strings.TrimSpace(rest[closing+1:])

		rule, err := parseSelector(selectorText)
		if err != nil {
			return nil, err
		}
		rule.Style = parseDeclarations(declarations)
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet, nil
}

// parseSelector parses "name", "#name", "name:focus", or "#name:focus".
func parseSelector(text string) (Rule, error) {
	if text == "" {
		return Rule{}, fmt.Errorf("stylesheet: rule without a selector")
	}

	var rule Rule
	selector, pseudo, hasPseudo := strings.Cut(text, ":")
	if hasPseudo {
		if strings.TrimSpace(pseudo) != "focus" {
			return Rule{}, fmt.Errorf("stylesheet: unknown pseudo-class %q in selector %q", pseudo, text)
		}
		rule.Pseudo = PseudoFocus
	}

	selector = strings.TrimSpace(selector)
	if name, isID := strings.CutPrefix(selector, "#"); isID {
		if name == "" {
			return Rule{}, fmt.Errorf("stylesheet: empty id selector in %q", text)
		}
		rule.ID = name
		return rule, nil
	}
	if selector == "" || strings.ContainsAny(selector, " \t\n#") {
		return Rule{}, fmt.Errorf("stylesheet: invalid selector %q", text)
	}
	rule.Type = selector
	return rule, nil
}

// ParseInline parses an inline style attribute: semicolon-separated
// "property:value" pairs, as in styles="fg:white;bg:gray". Unknown
// properties are skipped.
func ParseInline(attribute string) Style {
	return parseDeclarations(attribute)
}

// parseDeclarations parses "fg: red; bg: black; weight: bold" into a
// Style, skipping anything it does not recognize.
func parseDeclarations(text string) Style {
	var declared Style
	for _, declaration := range strings.Split(text, ";") {
		property, value, ok := strings.Cut(declaration, ":")
		if !ok {
			continue
		}
		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		switch property {
		case "fg":
			declared.Fg = value
		case "bg":
			declared.Bg = value
		case "weight":
			switch strings.ToLower(value) {
			case "bold":
				declared.Weight = WeightBold
			case "normal":
				declared.Weight = WeightNormal
			}
		}
	}
	return declared
}

// Resolve computes the effective style for a node. typeName and id
// identify the node for selector matching; inline and focusInline are
// the node's styles and focus_styles attributes. Layers merge in
// increasing precedence: type rule, id rule, inline, then (only when
// focused) type:focus rule, id:focus rule, focus_styles. Declarations
// whose color or weight tokens the theme rejects are dropped
// individually, so a typo in a high-precedence layer falls back to
// the value beneath it instead of killing the render.
//
// Resolve is pure: identical inputs always produce identical output.
func (s *Sheet) Resolve(theme Theme, typeName, id, inline, focusInline string, focused bool) Style {
	var resolved Style

	layer := func(candidate Style) {
		resolved = resolved.Merge(validate(theme, candidate))
	}

	s.matchRules(layer, typeName, id, PseudoNone)
	layer(ParseInline(inline))
	if focused {
		s.matchRules(layer, typeName, id, PseudoFocus)
		layer(ParseInline(focusInline))
	}
	return resolved
}

// matchRules applies matching type rules then matching id rules for
// one pseudo-state, preserving sheet order within each group.
func (s *Sheet) matchRules(layer func(Style), typeName, id string, pseudo Pseudo) {
	if s == nil {
		return
	}
	for _, rule := range s.Rules {
		if rule.Pseudo == pseudo && rule.Type != "" && rule.Type == typeName {
			layer(rule.Style)
		}
	}
	if id == "" {
		return
	}
	for _, rule := range s.Rules {
		if rule.Pseudo == pseudo && rule.ID == id {
			layer(rule.Style)
		}
	}
}

// validate drops color tokens the theme does not recognize. Weight
// tokens were already filtered during declaration parsing.
func validate(theme Theme, candidate Style) Style {
	if _, ok := theme.Color(candidate.Fg); candidate.Fg != "" && !ok {
		candidate.Fg = ""
	}
	if _, ok := theme.Color(candidate.Bg); candidate.Bg != "" && !ok {
		candidate.Bg = ""
	}
	return candidate
}

// clip shortens text for error messages.
func clip(text string) string {
	if len(text) > 40 {
		return text[:40] + "..."
	}
	return text
}
