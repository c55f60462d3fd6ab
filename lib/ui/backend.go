// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/tuimark/lib/layout"
)

// DrawOp is one painted rectangle: styled lines to place at a
// position. Lines are relative to the rectangle's top-left corner and
// already padded/truncated to its width.
type DrawOp struct {
	Rect  layout.Rect
	Lines []string
}

// Backend is the terminal rendering collaborator. The runtime does
// not know how cells are written; it hands over rectangle/content
// pairs once per render pass and calls Restore exactly once when the
// loop exits, on every exit path.
type Backend interface {
	// Size returns the current drawable area in cells.
	Size() (width, height int, err error)
	// Draw paints one full frame. Ops arrive in paint order; later
	// ops overlay earlier ones.
	Draw(ops []DrawOp) error
	// Restore returns the terminal to the mode it was in before the
	// loop started. It is called exactly once.
	Restore() error
}

// EventSource is the input collaborator: a blocking feed of key
// events. The runtime never polls; it blocks here between renders.
type EventSource interface {
	NextEvent() (KeyEvent, error)
}

// MemoryBackend is an in-memory Backend for tests and for one-shot
// layout verification via [App.Check]. It composes draw ops into a
// frame exactly like the production backend and keeps counters so
// tests can assert on render and restore behavior.
type MemoryBackend struct {
	width  int
	height int

	frame    []string
	lastOps  []DrawOp
	Draws    int
	Restores int
}

// NewMemoryBackend creates a memory backend with a fixed size.
func NewMemoryBackend(width, height int) *MemoryBackend {
	return &MemoryBackend{width: width, height: height}
}

// Size implements Backend.
func (m *MemoryBackend) Size() (int, int, error) {
	return m.width, m.height, nil
}

// Resize changes the reported size; the next Draw composes against
// the new geometry.
func (m *MemoryBackend) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Draw implements Backend.
func (m *MemoryBackend) Draw(ops []DrawOp) error {
	m.frame = Compose(m.width, m.height, ops)
	m.lastOps = append([]DrawOp(nil), ops...)
	m.Draws++
	return nil
}

// Restore implements Backend.
func (m *MemoryBackend) Restore() error {
	m.Restores++
	return nil
}

// Ops returns the draw ops from the most recent frame.
func (m *MemoryBackend) Ops() []DrawOp {
	return m.lastOps
}

// Lines returns the last composed frame with all ANSI styling
// stripped: plain text suitable for screen assertions.
func (m *MemoryBackend) Lines() []string {
	stripped := make([]string, len(m.frame))
	for index, line := range m.frame {
		stripped[index] = ansi.Strip(line)
	}
	return stripped
}

// Line returns one stripped frame line, or "" when out of range.
func (m *MemoryBackend) Line(y int) string {
	if y < 0 || y >= len(m.frame) {
		return ""
	}
	return ansi.Strip(m.frame[y])
}

// ScriptSource is an EventSource that replays a fixed event sequence.
// Reading past the end returns an error, which fails the loop rather
// than hanging a test.
type ScriptSource struct {
	events []KeyEvent
	cursor int
}

// NewScriptSource creates a source that delivers the given events in
// order.
func NewScriptSource(events ...KeyEvent) *ScriptSource {
	return &ScriptSource{events: events}
}

// NextEvent implements EventSource.
func (s *ScriptSource) NextEvent() (KeyEvent, error) {
	if s.cursor >= len(s.events) {
		return KeyEvent{}, fmt.Errorf("script source exhausted after %d events", len(s.events))
	}
	event := s.events[s.cursor]
	s.cursor++
	return event, nil
}
