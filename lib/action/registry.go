// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package action

import (
	"fmt"
	"log/slog"
	"strings"
)

// Handler is a named action: it receives a snapshot of the UI state
// and returns a Response. Handlers must not block; the loop is
// single-threaded and a stalled handler stalls the whole UI.
type Handler func(State) Response

// Registry maps action names to handlers. Registration is append-only
// and happens before the loop starts; re-registering a name replaces
// the previous handler (last registration wins), which is how callers
// override a default wiring.
type Registry struct {
	handlers map[string]Handler
	logger   *slog.Logger
}

// NewRegistry creates an empty registry. The logger records dispatch
// anomalies (panicking handlers, misses for dialog-convention names);
// pass nil to discard them.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Add registers a handler under a name. Empty names or names with
// whitespace are rejected at registration time to catch convention
// typos early ("on_dlg1_btn_Yes " silently never firing is a painful
// bug to find). Returns the registry for chaining.
func (r *Registry) Add(name string, handler Handler) (*Registry, error) {
	if name == "" {
		return r, fmt.Errorf("action name must not be empty")
	}
	if strings.ContainsAny(name, " \t\n") {
		return r, fmt.Errorf("action name %q must not contain whitespace", name)
	}
	if handler == nil {
		return r, fmt.Errorf("action %q: handler must not be nil", name)
	}
	r.handlers[name] = handler
	return r, nil
}

// Has reports whether a handler is registered under name.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Dispatch invokes the handler registered under name with a clone of
// the state. A missing handler is a Noop, not an error: dialog-button
// convention names are dispatched speculatively and are allowed to be
// unwired. A panicking handler is recovered, logged, and downgraded
// to Noop; one faulty action must not take down the terminal.
func (r *Registry) Dispatch(name string, state State) (response Response) {
	handler, ok := r.handlers[name]
	if !ok {
		r.logger.Debug("no handler registered", "action", name)
		return Noop()
	}

	defer func() {
		if panicked := recover(); panicked != nil {
			r.logger.Warn("action handler panicked", "action", name, "panic", panicked)
			response = Noop()
		}
	}()
	return handler(state.Clone())
}

// ButtonAction builds the conventional action name for a dialog
// button: on_<dialogID>_btn_<label>.
func ButtonAction(dialogID, label string) string {
	return fmt.Sprintf("on_%s_btn_%s", dialogID, label)
}
