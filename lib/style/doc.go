// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package style implements the cascading style model for tuimark
// documents: a small CSS-like stylesheet language, inline style
// attributes, and the resolution rules that combine them into one
// concrete [Style] per node per interaction state.
//
// A stylesheet rule selects by element type ("button") or by id
// ("#footer"), optionally narrowed to the focus pseudo-state
// ("button:focus"), and declares fg, bg, and weight properties.
// Resolution merges matching rules in increasing precedence:
//
//	type rule < id rule < inline styles attribute
//	  < type:focus rule < id:focus rule < focus_styles attribute
//
// with the focus layers applied only while the node is focused, so a
// focused widget is always visually distinguishable regardless of its
// base styling.
//
// Color and weight tokens are validated against a [Theme] during
// resolution. Unrecognized tokens drop just that declaration and
// resolution continues: styling is best-effort and never aborts a
// render. Themes map the documented color names to lipgloss colors
// and can be overridden from a YAML file.
package style
