// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package teaterm

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/tuimark/lib/ui"
)

// eventBuffer bounds the input channel. The loop consumes one event
// per iteration; a burst beyond this (key repeat during a slow render)
// drops the overflow rather than blocking bubbletea's update path.
const eventBuffer = 32

// frameMsg carries one composed frame into the bubbletea program.
type frameMsg string

// config collects construction options.
type config struct {
	input   io.Reader
	output  io.Writer
	profile termenv.Profile
	setProf bool
	logger  *slog.Logger
}

// Option configures a Terminal.
type Option func(*config)

// WithInput substitutes the input stream, primarily for tests.
func WithInput(input io.Reader) Option {
	return func(c *config) { c.input = input }
}

// WithOutput substitutes the output stream, primarily for tests.
func WithOutput(output io.Writer) Option {
	return func(c *config) { c.output = output }
}

// WithColorProfile pins the color profile instead of detecting it from
// the environment. Use termenv.Ascii to force monochrome output.
func WithColorProfile(profile termenv.Profile) Option {
	return func(c *config) {
		c.profile = profile
		c.setProf = true
	}
}

// WithLogger sets the logger for adapter diagnostics (dropped input
// events). Defaults to discard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Terminal runs a bubbletea program and exposes it as a [ui.Backend]
// and [ui.EventSource]. Construct with [New], pass to the runtime
// loop, and let the loop's restore discipline shut it down.
type Terminal struct {
	program *tea.Program
	keys    chan ui.KeyEvent
	ready   chan struct{}
	once    sync.Once
	done    chan struct{}
	runErr  error
	logger  *slog.Logger

	mu     sync.Mutex
	width  int
	height int
}

// New starts the terminal program on the alternate screen and blocks
// until it reports the initial window size, so the first frame is laid
// out against real geometry.
func New(options ...Option) (*Terminal, error) {
	var cfg config
	cfg.logger = slog.New(slog.DiscardHandler)
	for _, option := range options {
		option(&cfg)
	}

	profile := cfg.profile
	if !cfg.setProf {
		profile = termenv.EnvColorProfile()
	}
	lipgloss.SetColorProfile(profile)

	t := &Terminal{
		keys:   make(chan ui.KeyEvent, eventBuffer),
		ready:  make(chan struct{}),
		done:   make(chan struct{}),
		logger: cfg.logger,
	}

	programOptions := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.input != nil {
		programOptions = append(programOptions, tea.WithInput(cfg.input))
	}
	if cfg.output != nil {
		programOptions = append(programOptions, tea.WithOutput(cfg.output))
	}
	t.program = tea.NewProgram(model{terminal: t}, programOptions...)

	go func() {
		_, err := t.program.Run()
		t.runErr = err
		close(t.done)
	}()

	select {
	case <-t.ready:
		return t, nil
	case <-t.done:
		if t.runErr != nil {
			return nil, fmt.Errorf("start terminal: %w", t.runErr)
		}
		return nil, errors.New("terminal program exited before reporting a size")
	}
}

// Size implements ui.Backend.
func (t *Terminal) Size() (int, int, error) {
	select {
	case <-t.done:
		return 0, 0, errors.New("terminal program has exited")
	default:
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height, nil
}

// Draw implements ui.Backend: it composes the ops into a frame and
// sends it to the program, which returns it verbatim from View.
func (t *Terminal) Draw(ops []ui.DrawOp) error {
	width, height, err := t.Size()
	if err != nil {
		return err
	}
	frame := strings.Join(ui.Compose(width, height, ops), "\n")
	t.program.Send(frameMsg(frame))
	return nil
}

// Restore implements ui.Backend: it quits the program and waits for
// the terminal to be handed back (raw mode off, main screen restored).
func (t *Terminal) Restore() error {
	t.program.Quit()
	<-t.done
	return t.runErr
}

// NextEvent implements ui.EventSource. It returns an error once the
// program has exited, which unblocks a loop whose terminal vanished
// underneath it (closed input, fatal program error).
func (t *Terminal) NextEvent() (ui.KeyEvent, error) {
	select {
	case event := <-t.keys:
		return event, nil
	case <-t.done:
		if t.runErr != nil {
			return ui.KeyEvent{}, fmt.Errorf("terminal input: %w", t.runErr)
		}
		return ui.KeyEvent{}, errors.New("terminal program exited")
	}
}

// setSize records new geometry and reports whether this was the first
// size notification, which completes New.
func (t *Terminal) setSize(width, height int) (first bool) {
	t.mu.Lock()
	t.width = width
	t.height = height
	t.mu.Unlock()
	t.once.Do(func() {
		close(t.ready)
		first = true
	})
	return first
}

// deliver hands an event to the loop without blocking the program's
// update path. Overflow beyond the buffer is dropped and logged.
func (t *Terminal) deliver(event ui.KeyEvent) {
	select {
	case t.keys <- event:
	default:
		t.logger.Warn("dropping input event, loop is not keeping up", "code", int(event.Code))
	}
}

// model is the bubbletea side of the adapter. It renders whatever
// frame was last sent and forwards input to the Terminal.
type model struct {
	terminal *Terminal
	frame    string
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)

	case tea.WindowSizeMsg:
		if first := m.terminal.setSize(msg.Width, msg.Height); !first {
			m.terminal.deliver(ui.Key(ui.KeyResize))
		}

	case tea.KeyMsg:
		if event, ok := translate(msg); ok {
			m.terminal.deliver(event)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string { return m.frame }
