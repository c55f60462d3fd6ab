// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"sort"

	"github.com/bureau-foundation/tuimark/lib/action"
	"github.com/bureau-foundation/tuimark/lib/markup"
)

// FocusStateKey is the reserved state key holding the id of the
// focused button. Actions may write it to move focus programmatically;
// a CleanFocus response deletes it, which snaps focus back to the
// first focusable button on the next render.
const FocusStateKey = "__tuimark_focus"

// focusEntry is one button eligible for focus this frame, with enough
// context to activate it.
type focusEntry struct {
	button *markup.Button
	dialog string
}

// focusables returns the buttons that can hold focus, in traversal
// order. While any dialog is visible the topmost one owns focus
// exclusively: only its buttons are returned. Order is the button's
// declared index first, then placement order for ties.
func focusables(placements []Placement) []focusEntry {
	topDialog := ""
	for _, placement := range placements {
		if _, ok := placement.Node.(*markup.Dialog); ok {
			topDialog = placement.Dialog
		}
	}

	var entries []focusEntry
	for _, placement := range placements {
		button, ok := placement.Node.(*markup.Button)
		if !ok {
			continue
		}
		if topDialog != "" && placement.Dialog != topDialog {
			continue
		}
		entries = append(entries, focusEntry{button: button, dialog: placement.Dialog})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].button.Index < entries[j].button.Index
	})
	return entries
}

// effectiveFocus returns the index into entries of the button that
// holds focus. A stale or absent focus key snaps to the first entry.
// Returns -1 when nothing is focusable.
func effectiveFocus(state action.State, entries []focusEntry) int {
	if len(entries) == 0 {
		return -1
	}
	current := state[FocusStateKey]
	for index, entry := range entries {
		if entry.button.ID == current {
			return index
		}
	}
	return 0
}

// moveFocus writes the focus key for the entry delta steps away from
// the current focus, wrapping at both ends.
func moveFocus(state action.State, entries []focusEntry, delta int) {
	if len(entries) == 0 {
		return
	}
	current := effectiveFocus(state, entries)
	next := (current + delta) % len(entries)
	if next < 0 {
		next += len(entries)
	}
	state[FocusStateKey] = entries[next].button.ID
}
