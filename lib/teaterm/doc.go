// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package teaterm is the production terminal backend. It adapts a
// bubbletea program to the blocking [ui.Backend] and [ui.EventSource]
// interfaces the runtime loop consumes.
//
// bubbletea owns the terminal: raw mode, the alternate screen, signal
// handling, and resize notification all come from the program. The
// adapter inverts its message-driven shape into the loop's blocking
// one: composed frames flow in through Program.Send and are returned
// verbatim from View, while key messages flow out through a channel
// that [Terminal.NextEvent] reads. Restore quits the program and waits
// for it to hand the terminal back.
package teaterm
