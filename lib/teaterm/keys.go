// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package teaterm

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/tuimark/lib/ui"
)

// keyMap binds the terminal keys the runtime reacts to. Bindings are
// matched in declaration order; anything unmatched that carries runes
// is delivered as a printable-character event.
type keyMap struct {
	Enter     key.Binding
	Space     key.Binding
	Tab       key.Binding
	BackTab   key.Binding
	Escape    key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Interrupt key.Binding
}

var defaultKeyMap = keyMap{
	Enter:     key.NewBinding(key.WithKeys("enter")),
	Space:     key.NewBinding(key.WithKeys(" ")),
	Tab:       key.NewBinding(key.WithKeys("tab")),
	BackTab:   key.NewBinding(key.WithKeys("shift+tab")),
	Escape:    key.NewBinding(key.WithKeys("esc")),
	Up:        key.NewBinding(key.WithKeys("up")),
	Down:      key.NewBinding(key.WithKeys("down")),
	Left:      key.NewBinding(key.WithKeys("left")),
	Right:     key.NewBinding(key.WithKeys("right")),
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
}

// translate maps a bubbletea key message to a runtime key event. The
// second return is false for keys the runtime has no representation
// for (function keys, page movement, unbound control chords); those
// are dropped at the adapter boundary.
func translate(msg tea.KeyMsg) (ui.KeyEvent, bool) {
	switch {
	case key.Matches(msg, defaultKeyMap.Enter):
		return ui.Key(ui.KeyEnter), true
	case key.Matches(msg, defaultKeyMap.Space):
		return ui.Key(ui.KeySpace), true
	case key.Matches(msg, defaultKeyMap.Tab):
		return ui.Key(ui.KeyTab), true
	case key.Matches(msg, defaultKeyMap.BackTab):
		return ui.Key(ui.KeyBackTab), true
	case key.Matches(msg, defaultKeyMap.Escape):
		return ui.Key(ui.KeyEsc), true
	case key.Matches(msg, defaultKeyMap.Up):
		return ui.Key(ui.KeyUp), true
	case key.Matches(msg, defaultKeyMap.Down):
		return ui.Key(ui.KeyDown), true
	case key.Matches(msg, defaultKeyMap.Left):
		return ui.Key(ui.KeyLeft), true
	case key.Matches(msg, defaultKeyMap.Right):
		return ui.Key(ui.KeyRight), true
	case key.Matches(msg, defaultKeyMap.Interrupt):
		return ui.KeyEvent{Code: ui.KeyRune, Rune: 'c', Mods: ui.ModCtrl}, true
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		event := ui.Rune(msg.Runes[0])
		if msg.Alt {
			event.Mods |= ui.ModAlt
		}
		return event, true
	}
	return ui.KeyEvent{}, false
}
