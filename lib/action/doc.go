// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package action implements the event-response half of the tuimark
// runtime: the string-keyed UI [State], named [Handler] registration,
// and the [Response] values handlers return.
//
// Handlers are registered by name before the runtime loop starts and
// are immutable afterward. Each invocation receives a snapshot of the
// UI state and returns a Response: keep everything as is, replace the
// state wholesale, replace it and clear focus, or quit the loop.
// Handlers never receive a mutable alias into live state, which is
// what lets the loop sequence all mutation without locks.
//
// Dialog buttons are addressed by convention rather than explicit
// wiring: a dialog with id "dlg1" and a button labeled "Yes"
// dispatches the action named "on_dlg1_btn_Yes". [ButtonAction]
// builds these names; registering a handler under one is all it takes
// to wire a dialog button.
package action
