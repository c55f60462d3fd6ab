// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package action

import "maps"

// State is the UI's shared mutable data: a flat string-to-string map.
// Keys are developer-defined ("show_dialog") except for the runtime's
// reserved bookkeeping keys, which carry a "__tuimark" prefix. Values
// are compared as literal strings; visibility flags in particular are
// the strings "true" and "false".
type State map[string]string

// Clone returns an independent copy. The runtime clones before every
// handler call so handlers can build a new state from the snapshot
// without aliasing live data.
func (s State) Clone() State {
	if s == nil {
		return State{}
	}
	return maps.Clone(s)
}

// responseKind discriminates Response values.
type responseKind int

const (
	respNoop responseKind = iota
	respQuit
	respReplace
	respCleanFocus
)

// Response is a handler's verdict: leave the state alone, replace it,
// replace it and drop focus, or terminate the loop. Construct with
// [Noop], [Quit], [Replace], or [CleanFocus]; the zero value is Noop.
type Response struct {
	kind  responseKind
	state State
}

// Noop keeps the current state and continues the loop.
func Noop() Response {
	return Response{kind: respNoop}
}

// Quit terminates the runtime loop. The loop restores the terminal
// and returns control to the caller.
func Quit() Response {
	return Response{kind: respQuit}
}

// Replace substitutes the UI state wholesale with newState.
func Replace(newState State) Response {
	return Response{kind: respReplace, state: newState}
}

// CleanFocus substitutes the UI state like [Replace] and additionally
// clears the focus bookkeeping, so no widget is focused on the next
// render. Dialog-dismissing handlers use this so focus does not
// linger on a button that just disappeared.
func CleanFocus(newState State) Response {
	return Response{kind: respCleanFocus, state: newState}
}

// IsQuit reports whether the response terminates the loop.
func (r Response) IsQuit() bool {
	return r.kind == respQuit
}

// IsNoop reports whether the response leaves the state untouched.
func (r Response) IsNoop() bool {
	return r.kind == respNoop
}

// ClearsFocus reports whether the response drops the focus bookkeeping.
func (r Response) ClearsFocus() bool {
	return r.kind == respCleanFocus
}

// NewState returns the replacement state and whether one was supplied.
func (r Response) NewState() (State, bool) {
	if r.kind == respReplace || r.kind == respCleanFocus {
		return r.state, true
	}
	return nil, false
}
