// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestThemeColor(t *testing.T) {
	theme := DefaultTheme()

	tests := []struct {
		token string
		want  lipgloss.Color
		ok    bool
	}{
		{"red", lipgloss.Color("1"), true},
		{"RED", lipgloss.Color("1"), true},
		{" lightcyan ", lipgloss.Color("14"), true},
		{"#ff8800", lipgloss.Color("#ff8800"), true},
		{"245", lipgloss.Color("245"), true},
		{"notacolor", "", false},
		{"#zzz", "", false},
		{"300", "", false},
		{"-1", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		got, ok := theme.Color(test.token)
		if ok != test.ok || got != test.want {
			t.Errorf("Color(%q) = (%q, %v), want (%q, %v)", test.token, got, ok, test.want, test.ok)
		}
	}
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := `
colors:
  gray: "245"
  accent: "#ff8800"
  danger: red
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme failed: %v", err)
	}

	if color, _ := theme.Color("gray"); color != lipgloss.Color("245") {
		t.Errorf("expected gray override to 245, got %q", color)
	}
	if color, _ := theme.Color("accent"); color != lipgloss.Color("#ff8800") {
		t.Errorf("expected accent #ff8800, got %q", color)
	}
	// Values may name palette colors.
	if color, _ := theme.Color("danger"); color != lipgloss.Color("1") {
		t.Errorf("expected danger to resolve to red's index, got %q", color)
	}
	// Untouched names keep their defaults.
	if color, _ := theme.Color("blue"); color != lipgloss.Color("4") {
		t.Errorf("expected blue default, got %q", color)
	}
}

func TestLoadTheme_Errors(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	badValue := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(badValue, []byte("colors:\n  accent: nonsense\n"), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}
	if _, err := LoadTheme(badValue); err == nil {
		t.Error("expected error for unresolvable color value")
	}

	notYAML := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(notYAML, []byte("colors: [not, a, map]"), 0o644); err != nil {
		t.Fatalf("write theme file: %v", err)
	}
	if _, err := LoadTheme(notYAML); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
