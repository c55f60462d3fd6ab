// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package ui is the tuimark runtime: it ties the markup tree, the
// stylesheet, and the action registry together into a running
// terminal application.
//
// An [App] is constructed once from a parsed document, actions are
// registered by name, and [App.Loop] then owns the terminal until an
// action returns Quit. Each iteration renders the tree (layout against
// the current terminal size, style resolution per node, painting via
// the backend), blocks for exactly one input event, dispatches it
// (focused-button activation, focus traversal, or the caller's
// fallback handler), and applies the resulting state replacement.
// The loop is single-threaded and fully event-driven: the only
// suspension point is the blocking wait for input, and the UI state
// is owned exclusively by the loop.
//
// The terminal itself is behind two narrow interfaces. [Backend]
// accepts rectangles of painted lines and restores the terminal on
// teardown; [EventSource] delivers key events. lib/teaterm provides
// the production implementation; [MemoryBackend] and [ScriptSource]
// serve tests and the one-shot [App.Check] render used to verify
// layout and styling without a terminal.
package ui
