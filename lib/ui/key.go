// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

// KeyCode is an opaque key identity. The runtime only distinguishes
// the keys it handles itself (focus traversal and activation) plus a
// resize notification; everything else flows through to the caller's
// fallback handler unchanged.
type KeyCode int

const (
	// KeyRune is a printable character; the rune is in KeyEvent.Rune.
	KeyRune KeyCode = iota
	// KeyEnter activates the focused button.
	KeyEnter
	// KeySpace also activates the focused button.
	KeySpace
	// KeyTab moves focus forward.
	KeyTab
	// KeyBackTab (shift+tab) moves focus backward.
	KeyBackTab
	// KeyEsc is delivered to the fallback handler; by convention
	// applications use it to open a quit dialog.
	KeyEsc
	// KeyUp, KeyDown, KeyLeft, and KeyRight are arrow keys. Left and
	// right traverse dialog buttons while a dialog is open.
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	// KeyResize is synthesized by the backend when the terminal
	// changes size. The loop re-renders and consumes it.
	KeyResize
)

// Mod is a bit-set of key modifiers.
type Mod uint8

const (
	// ModCtrl is the control modifier.
	ModCtrl Mod = 1 << iota
	// ModShift is the shift modifier.
	ModShift
	// ModAlt is the alt/meta modifier.
	ModAlt
)

// KeyEvent is one input event from the event source.
type KeyEvent struct {
	Code KeyCode
	// Rune holds the character for KeyRune events.
	Rune rune
	Mods Mod
}

// Rune returns a printable-character event, a convenience for tests
// and scripted sources.
func Rune(r rune) KeyEvent {
	return KeyEvent{Code: KeyRune, Rune: r}
}

// Key returns an event for a special key.
func Key(code KeyCode) KeyEvent {
	return KeyEvent{Code: code}
}
