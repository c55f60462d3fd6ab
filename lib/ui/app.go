// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"log/slog"

	"github.com/bureau-foundation/tuimark/lib/action"
	"github.com/bureau-foundation/tuimark/lib/layout"
	"github.com/bureau-foundation/tuimark/lib/markup"
	"github.com/bureau-foundation/tuimark/lib/style"
)

// FallbackFunc handles key events the runtime does not consume itself:
// printable characters, escape, and arrows outside a dialog. It
// receives a snapshot of the state; mutations only take effect through
// the returned response.
type FallbackFunc func(KeyEvent, action.State) action.Response

// Option configures an App at construction time.
type Option func(*App)

// WithState seeds the initial UI state. The map is cloned; the caller
// keeps no handle into the running state.
func WithState(initial action.State) Option {
	return func(app *App) { app.state = initial.Clone() }
}

// WithTheme replaces the default color theme.
func WithTheme(theme style.Theme) Option {
	return func(app *App) { app.theme = theme }
}

// WithLogger sets the logger for runtime diagnostics (dispatch
// anomalies, ignored extra styles blocks). Defaults to discard.
func WithLogger(logger *slog.Logger) Option {
	return func(app *App) {
		if logger != nil {
			app.logger = logger
		}
	}
}

// App is a markup document bound to a theme, an action registry, and
// the UI state. Construct it once, register actions, then hand the
// terminal to [App.Loop].
type App struct {
	document *markup.Document
	sheet    *style.Sheet
	theme    style.Theme
	registry *action.Registry
	state    action.State
	logger   *slog.Logger

	// buildErr holds the first error from chained AddAction calls so
	// registration can be fluent; Loop and Check report it.
	buildErr error
}

// New builds an App from a parsed document. The document's styles
// block is parsed here, so a broken stylesheet fails at load time, not
// mid-session.
func New(document *markup.Document, options ...Option) (*App, error) {
	app := &App{
		document: document,
		theme:    style.DefaultTheme(),
		state:    action.State{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(app)
	}
	app.registry = action.NewRegistry(app.logger)

	sheet, err := style.ParseSheet(document.Styles)
	if err != nil {
		return nil, err
	}
	app.sheet = sheet
	if document.ExtraStyles > 0 {
		app.logger.Warn("ignoring extra styles blocks", "count", document.ExtraStyles)
	}
	return app, nil
}

// Load parses markup source and builds an App from it.
func Load(source string, options ...Option) (*App, error) {
	document, err := markup.Parse(source)
	if err != nil {
		return nil, err
	}
	return New(document, options...)
}

// AddAction registers a named handler. Calls chain; a registration
// error is latched and reported by Loop, so a fluent setup block needs
// only one error check.
func (a *App) AddAction(name string, handler action.Handler) *App {
	if a.buildErr == nil {
		if _, err := a.registry.Add(name, handler); err != nil {
			a.buildErr = err
		}
	}
	return a
}

// State returns a snapshot of the current UI state.
func (a *App) State() action.State {
	return a.state.Clone()
}

// Loop runs the application until an action returns Quit or an error
// occurs. The backend is restored exactly once on every exit path,
// including a propagating panic. Each iteration renders one frame,
// blocks for one event, dispatches it, and applies the response.
func (a *App) Loop(backend Backend, events EventSource, fallback FallbackFunc) (err error) {
	if a.buildErr != nil {
		return a.buildErr
	}
	defer func() {
		if restoreErr := backend.Restore(); restoreErr != nil && err == nil {
			err = fmt.Errorf("restore terminal: %w", restoreErr)
		}
	}()

	for {
		entries, renderErr := a.render(backend)
		if renderErr != nil {
			return renderErr
		}

		event, eventErr := events.NextEvent()
		if eventErr != nil {
			return fmt.Errorf("read input: %w", eventErr)
		}

		response := a.dispatch(event, entries, fallback)
		if response.IsQuit() {
			return nil
		}
		a.apply(response)
	}
}

// Check renders a single frame at the given size against an in-memory
// backend and returns the frame with styling stripped. It exercises
// the full parse/layout/style/paint path, so tests and a --check CLI
// flag can validate a document without a terminal.
func (a *App) Check(width, height int) ([]string, error) {
	if a.buildErr != nil {
		return nil, a.buildErr
	}
	backend := NewMemoryBackend(width, height)
	if _, err := a.render(backend); err != nil {
		return nil, err
	}
	return backend.Lines(), nil
}

// render computes placements for the current terminal size, paints
// them, and returns the focusable buttons for the frame.
func (a *App) render(backend Backend) ([]focusEntry, error) {
	width, height, err := backend.Size()
	if err != nil {
		return nil, fmt.Errorf("terminal size: %w", err)
	}
	area := layout.Rect{W: width, H: height}

	placements, err := computePlacements(a.document.Root, area, a.dialogVisible)
	if err != nil {
		return nil, err
	}
	entries := focusables(placements)

	focusedID := ""
	if index := effectiveFocus(a.state, entries); index >= 0 {
		focusedID = entries[index].button.ID
	}
	if err := backend.Draw(paint(placements, a.sheet, a.theme, focusedID)); err != nil {
		return nil, fmt.Errorf("draw frame: %w", err)
	}
	return entries, nil
}

// dispatch routes one event: traversal and activation keys are handled
// here, everything else goes to the fallback handler.
func (a *App) dispatch(event KeyEvent, entries []focusEntry, fallback FallbackFunc) action.Response {
	dialogOpen := len(entries) > 0 && entries[0].dialog != ""

	switch event.Code {
	case KeyResize:
		// The next iteration re-renders at the new size.
		return action.Noop()

	case KeyTab:
		moveFocus(a.state, entries, 1)
		return action.Noop()

	case KeyBackTab:
		moveFocus(a.state, entries, -1)
		return action.Noop()

	case KeyLeft, KeyRight:
		// Arrows traverse buttons only inside a dialog; in the main
		// view they belong to the application.
		if dialogOpen {
			delta := 1
			if event.Code == KeyLeft {
				delta = -1
			}
			moveFocus(a.state, entries, delta)
			return action.Noop()
		}

	case KeyEnter, KeySpace:
		index := effectiveFocus(a.state, entries)
		if index < 0 {
			return action.Noop()
		}
		return a.activate(entries[index])
	}

	if fallback != nil {
		return fallback(event, a.state.Clone())
	}
	return action.Noop()
}

// activate dispatches the action bound to a button. A dialog button
// whose convention name has no handler falls back to the dialog's
// action attribute, so one handler can serve every button of a dialog.
func (a *App) activate(entry focusEntry) action.Response {
	name := entry.button.Action
	if name == "" {
		a.logger.Debug("button has no action", "button", entry.button.ID)
		return action.Noop()
	}
	if !a.registry.Has(name) && entry.dialog != "" {
		if shared := a.dialogAction(entry.dialog); shared != "" && a.registry.Has(shared) {
			name = shared
		}
	}
	return a.registry.Dispatch(name, a.state)
}

// dialogAction returns the action attribute of the dialog with the
// given id, or "".
func (a *App) dialogAction(id string) string {
	found := ""
	a.document.Walk(func(node markup.Node) bool {
		if dialog, ok := node.(*markup.Dialog); ok && dialog.ID == id {
			found = dialog.Action
			return false
		}
		return true
	})
	return found
}

// apply folds a response into the UI state. Replace swaps the whole
// state; CleanFocus additionally drops the focus key so focus snaps to
// the first focusable button on the next frame.
func (a *App) apply(response action.Response) {
	if newState, ok := response.NewState(); ok {
		a.state = newState.Clone()
	}
	if response.ClearsFocus() {
		delete(a.state, FocusStateKey)
	}
}

// dialogVisible reports whether a dialog should render: its show key
// must hold the literal string "true".
func (a *App) dialogVisible(dialog *markup.Dialog) bool {
	return a.state[dialog.ShowKey] == "true"
}
