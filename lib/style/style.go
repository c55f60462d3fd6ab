// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package style

import "github.com/charmbracelet/lipgloss"

// Weight is a text weight declaration.
type Weight int

const (
	// WeightUnset means the style says nothing about weight.
	WeightUnset Weight = iota
	// WeightNormal explicitly resets to regular text.
	WeightNormal
	// WeightBold renders bold/bright text.
	WeightBold
)

// Style is a resolved set of render attributes for one node in one
// interaction state. Fg and Bg hold color tokens (theme names, ANSI
// indices, or hex values); empty means unset. The zero value is the
// terminal default.
type Style struct {
	Fg     string
	Bg     string
	Weight Weight
}

// IsZero reports whether the style sets nothing.
func (s Style) IsZero() bool {
	return s.Fg == "" && s.Bg == "" && s.Weight == WeightUnset
}

// Merge overlays another style on top of this one: every attribute
// the overlay sets wins, everything else is kept. Merge is how the
// cascade applies layers in increasing precedence.
func (s Style) Merge(over Style) Style {
	if over.Fg != "" {
		s.Fg = over.Fg
	}
	if over.Bg != "" {
		s.Bg = over.Bg
	}
	if over.Weight != WeightUnset {
		s.Weight = over.Weight
	}
	return s
}

// Lip converts the resolved style to a lipgloss style for painting,
// mapping color tokens through the theme. Tokens the theme cannot
// resolve are skipped; by the time a style reaches painting it has
// already been validated during resolution, so this is a backstop.
func (s Style) Lip(theme Theme) lipgloss.Style {
	painted := lipgloss.NewStyle()
	if color, ok := theme.Color(s.Fg); ok {
		painted = painted.Foreground(color)
	}
	if color, ok := theme.Color(s.Bg); ok {
		painted = painted.Background(color)
	}
	if s.Weight == WeightBold {
		painted = painted.Bold(true)
	}
	return painted
}
