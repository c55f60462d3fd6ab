// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// tuimark-demo renders a tuimark document in the terminal. Without
// flags it runs a small built-in application that exercises the whole
// runtime: layout, styles, focus traversal, and dialogs.
//
// Use --layout to run your own document, --theme to recolor it, and
// --check to validate a document headlessly: the frame is rendered at
// a fixed size and printed to stdout instead of taking over the
// terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/tuimark/lib/action"
	"github.com/bureau-foundation/tuimark/lib/style"
	"github.com/bureau-foundation/tuimark/lib/teaterm"
	"github.com/bureau-foundation/tuimark/lib/ui"
	"github.com/bureau-foundation/tuimark/lib/version"
)

// sampleMarkup is the built-in demo document: a title bar, a body with
// two buttons, a message dialog, and a quit confirmation dialog.
const sampleMarkup = `
<layout>
  <styles>
    container { fg: white }
    p { fg: cyan }
    button { fg: black; bg: white }
    button:focus { fg: white; bg: blue; weight: bold }
    dialog { fg: yellow }
  </styles>
  <container id="header" constraint="3" border="all" title="tuimark demo">
    <p id="greeting" align="center">press Tab to move focus, Enter to activate, Esc to quit</p>
  </container>
  <container id="body" constraint="1min">
    <layout direction="horizontal">
      <container constraint="1:2">
        <button id="hello" action="say_hello" index="0">Say hello</button>
      </container>
      <container constraint="1min">
        <button id="bye" action="open_quit" index="1">Quit</button>
      </container>
    </layout>
  </container>
  <dialog id="msgdlg" show="show_message" buttons="OK">
    <layout>
      <p id="message" align="center">hello from tuimark</p>
    </layout>
  </dialog>
  <dialog id="quitdlg" show="show_quit" buttons="Yes|No">
    <layout>
      <p align="center">really quit?</p>
    </layout>
  </dialog>
</layout>`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var layoutPath string
	var themePath string
	var logOutput string
	var check bool
	var width, height int

	flagSet := pflag.NewFlagSet("tuimark-demo", pflag.ContinueOnError)
	flagSet.StringVar(&layoutPath, "layout", "", "path to a tuimark document (default: built-in demo)")
	flagSet.StringVar(&themePath, "theme", "", "path to a YAML theme file")
	flagSet.StringVar(&logOutput, "log-output", "", "write log records to this file")
	flagSet.BoolVar(&check, "check", false, "render one frame to stdout and exit")
	flagSet.IntVar(&width, "width", 80, "frame width for --check")
	flagSet.IntVar(&height, "height", 24, "frame height for --check")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing so it works regardless of
	// other arguments. --version --full adds Go and platform details.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		if len(os.Args) > 2 && os.Args[2] == "--full" {
			fmt.Printf("tuimark-demo %s\n", version.Full())
		} else {
			fmt.Printf("tuimark-demo %s\n", version.Info())
		}
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if args := flagSet.Args(); len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}

	logger := slog.New(slog.DiscardHandler)
	if logOutput != "" {
		logFile, err := os.OpenFile(logOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		logger = slog.New(slog.NewTextHandler(logFile, nil))
	}

	source := sampleMarkup
	if layoutPath != "" {
		data, err := os.ReadFile(layoutPath)
		if err != nil {
			return fmt.Errorf("read layout: %w", err)
		}
		source = string(data)
	}

	options := []ui.Option{ui.WithLogger(logger)}
	if themePath != "" {
		theme, err := style.LoadTheme(themePath)
		if err != nil {
			return err
		}
		options = append(options, ui.WithTheme(theme))
	}

	app, err := ui.Load(source, options...)
	if err != nil {
		return err
	}
	registerDemoActions(app)

	if check {
		lines, err := app.Check(width, height)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(lines, "\n"))
		return nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("stdin is not a terminal (use --check for headless rendering)")
	}

	terminal, err := teaterm.New(teaterm.WithLogger(logger))
	if err != nil {
		return err
	}
	return app.Loop(terminal, terminal, fallback)
}

// registerDemoActions wires the built-in document's actions. They are
// harmless when running a user document that never references them.
func registerDemoActions(app *ui.App) {
	app.AddAction("say_hello", func(state action.State) action.Response {
		state["show_message"] = "true"
		return action.Replace(state)
	})
	app.AddAction("open_quit", openQuit)
	app.AddAction("on_msgdlg_btn_OK", func(state action.State) action.Response {
		delete(state, "show_message")
		return action.CleanFocus(state)
	})
	app.AddAction("on_quitdlg_btn_Yes", func(action.State) action.Response {
		return action.Quit()
	})
	app.AddAction("on_quitdlg_btn_No", func(state action.State) action.Response {
		delete(state, "show_quit")
		return action.CleanFocus(state)
	})
}

func openQuit(state action.State) action.Response {
	state["show_quit"] = "true"
	return action.Replace(state)
}

// fallback handles keys the runtime does not consume: escape opens the
// quit dialog, ctrl+c quits immediately.
func fallback(event ui.KeyEvent, state action.State) action.Response {
	switch {
	case event.Code == ui.KeyEsc:
		return openQuit(state)
	case event.Code == ui.KeyRune && event.Rune == 'c' && event.Mods&ui.ModCtrl != 0:
		return action.Quit()
	}
	return action.Noop()
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tuimark demo: render a declarative markup document as a terminal UI.

Without flags this runs a built-in document demonstrating layout,
styles, focus traversal, and dialogs. Point --layout at your own
document to run it instead; actions it references can only be the
built-in demo ones, so documents with custom actions are better served
by embedding the runtime in your own binary.

Usage:
  tuimark-demo [flags]

Flags:
%s`, flagSet.FlagUsages())
}
