// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"strings"
	"testing"
)

const testSheet = `
button { fg: red; bg: black }
button:focus { fg: lightcyan }
#x { fg: blue }
#footer { weight: bold }
`

func mustParseSheet(t *testing.T, text string) *Sheet {
	t.Helper()
	sheet, err := ParseSheet(text)
	if err != nil {
		t.Fatalf("ParseSheet failed: %v", err)
	}
	return sheet
}

func TestParseSheet_Rules(t *testing.T) {
	sheet := mustParseSheet(t, testSheet)
	if len(sheet.Rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(sheet.Rules))
	}

	first := sheet.Rules[0]
	if first.Type != "button" || first.Pseudo != PseudoNone {
		t.Errorf("unexpected first rule: %+v", first)
	}
	if first.Style.Fg != "red" || first.Style.Bg != "black" {
		t.Errorf("unexpected first rule style: %+v", first.Style)
	}

	focusRule := sheet.Rules[1]
	if focusRule.Type != "button" || focusRule.Pseudo != PseudoFocus {
		t.Errorf("unexpected focus rule: %+v", focusRule)
	}

	idRule := sheet.Rules[3]
	if idRule.ID != "footer" || idRule.Style.Weight != WeightBold {
		t.Errorf("unexpected id rule: %+v", idRule)
	}
}

func TestParseSheet_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing open brace", `button fg: red }`},
		{"unbalanced braces", `button { fg: red`},
		{"empty selector", `{ fg: red }`},
		{"unknown pseudo", `button:hover { fg: red }`},
		{"selector with spaces", `two words { fg: red }`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := ParseSheet(test.text); err == nil {
				t.Error("expected parse error, got nil")
			}
		})
	}
}

func TestParseSheet_UnknownPropertySkipped(t *testing.T) {
	sheet := mustParseSheet(t, `button { fg: red; cursor: pointer }`)
	if sheet.Rules[0].Style.Fg != "red" {
		t.Errorf("expected fg to survive, got %+v", sheet.Rules[0].Style)
	}
}

func TestParseInline(t *testing.T) {
	parsed := ParseInline("fg:white;bg:gray;weight:bold")
	if parsed.Fg != "white" || parsed.Bg != "gray" || parsed.Weight != WeightBold {
		t.Errorf("unexpected inline style: %+v", parsed)
	}

	if !ParseInline("").IsZero() {
		t.Error("expected empty attribute to parse to zero style")
	}
}

func TestResolve_InlineWinsUnfocused(t *testing.T) {
	// Type rule says red, id rule says blue, inline says green: the
	// inline attribute wins while unfocused.
	sheet := mustParseSheet(t, `button { fg: red } #x { fg: blue }`)
	theme := DefaultTheme()

	resolved := sheet.Resolve(theme, "button", "x", "fg:green", "fg:white", false)
	if resolved.Fg != "green" {
		t.Errorf("expected inline fg green, got %q", resolved.Fg)
	}
}

func TestResolve_FocusStylesWinFocused(t *testing.T) {
	sheet := mustParseSheet(t, `button { fg: red } #x { fg: blue }`)
	theme := DefaultTheme()

	resolved := sheet.Resolve(theme, "button", "x", "fg:green", "fg:white", true)
	if resolved.Fg != "white" {
		t.Errorf("expected focus_styles fg white, got %q", resolved.Fg)
	}
}

func TestResolve_IDOverridesType(t *testing.T) {
	sheet := mustParseSheet(t, `button { fg: red; bg: black } #x { fg: blue }`)
	theme := DefaultTheme()

	resolved := sheet.Resolve(theme, "button", "x", "", "", false)
	if resolved.Fg != "blue" {
		t.Errorf("expected id rule to win, got fg=%q", resolved.Fg)
	}
	// The type rule's bg survives: merging is per-attribute.
	if resolved.Bg != "black" {
		t.Errorf("expected type rule bg to survive, got bg=%q", resolved.Bg)
	}
}

func TestResolve_FocusRuleIgnoredUnfocused(t *testing.T) {
	sheet := mustParseSheet(t, testSheet)
	theme := DefaultTheme()

	unfocused := sheet.Resolve(theme, "button", "", "", "", false)
	if unfocused.Fg != "red" {
		t.Errorf("expected fg red while unfocused, got %q", unfocused.Fg)
	}

	focused := sheet.Resolve(theme, "button", "", "", "", true)
	if focused.Fg != "lightcyan" {
		t.Errorf("expected fg lightcyan while focused, got %q", focused.Fg)
	}
}

func TestResolve_InvalidTokenFallsThrough(t *testing.T) {
	// The inline layer has a typo'd color: that declaration drops and
	// the id rule's valid color shows through.
	sheet := mustParseSheet(t, `#x { fg: blue }`)
	theme := DefaultTheme()

	resolved := sheet.Resolve(theme, "p", "x", "fg:notacolor", "", false)
	if resolved.Fg != "blue" {
		t.Errorf("expected invalid inline fg to fall through to blue, got %q", resolved.Fg)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	sheet := mustParseSheet(t, testSheet)
	theme := DefaultTheme()

	first := sheet.Resolve(theme, "button", "x", "fg:green", "fg:white", true)
	for range 10 {
		again := sheet.Resolve(theme, "button", "x", "fg:green", "fg:white", true)
		if again != first {
			t.Fatalf("resolution not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestResolve_NilSheet(t *testing.T) {
	var sheet *Sheet
	resolved := sheet.Resolve(DefaultTheme(), "p", "", "fg:red", "", false)
	if resolved.Fg != "red" {
		t.Errorf("expected inline to resolve against nil sheet, got %+v", resolved)
	}
}

func TestMerge(t *testing.T) {
	base := Style{Fg: "red", Bg: "black", Weight: WeightBold}
	merged := base.Merge(Style{Fg: "blue"})
	if merged.Fg != "blue" || merged.Bg != "black" || merged.Weight != WeightBold {
		t.Errorf("unexpected merge result: %+v", merged)
	}

	reset := base.Merge(Style{Weight: WeightNormal})
	if reset.Weight != WeightNormal {
		t.Errorf("expected weight:normal to override bold, got %+v", reset)
	}
}

func TestStyleLip(t *testing.T) {
	theme := DefaultTheme()
	painted := Style{Fg: "red", Weight: WeightBold}.Lip(theme)
	if !painted.GetBold() {
		t.Error("expected bold lipgloss style")
	}

	rendered := painted.Render("x")
	if !strings.Contains(rendered, "x") {
		t.Errorf("expected rendered text to contain payload, got %q", rendered)
	}
}
