// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package style

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Theme maps color names usable in stylesheets and inline styles to
// concrete lipgloss colors. Beyond named colors, any "#rrggbb" hex
// value or bare ANSI 256 index (0-255) is accepted directly.
type Theme struct {
	colors map[string]lipgloss.Color
}

// DefaultTheme returns the built-in palette: the sixteen standard
// terminal color names mapped to their ANSI indices. Designed for the
// common dark-background case; light-background users override via a
// theme file.
func DefaultTheme() Theme {
	return Theme{colors: map[string]lipgloss.Color{
		"black":        lipgloss.Color("0"),
		"red":          lipgloss.Color("1"),
		"green":        lipgloss.Color("2"),
		"yellow":       lipgloss.Color("3"),
		"blue":         lipgloss.Color("4"),
		"magenta":      lipgloss.Color("5"),
		"cyan":         lipgloss.Color("6"),
		"gray":         lipgloss.Color("7"),
		"darkgray":     lipgloss.Color("8"),
		"lightred":     lipgloss.Color("9"),
		"lightgreen":   lipgloss.Color("10"),
		"lightyellow":  lipgloss.Color("11"),
		"lightblue":    lipgloss.Color("12"),
		"lightmagenta": lipgloss.Color("13"),
		"lightcyan":    lipgloss.Color("14"),
		"white":        lipgloss.Color("15"),
	}}
}

// Color resolves a color token to a lipgloss color. Returns false for
// empty or unrecognized tokens; callers drop the declaration and
// continue.
func (t Theme) Color(token string) (lipgloss.Color, bool) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if normalized == "" {
		return "", false
	}
	if color, ok := t.colors[normalized]; ok {
		return color, true
	}
	if strings.HasPrefix(normalized, "#") && len(normalized) == 7 {
		if _, err := strconv.ParseUint(normalized[1:], 16, 32); err == nil {
			return lipgloss.Color(normalized), true
		}
		return "", false
	}
	if index, err := strconv.Atoi(normalized); err == nil && index >= 0 && index <= 255 {
		return lipgloss.Color(normalized), true
	}
	return "", false
}

// themeFile is the YAML shape of a theme override file.
type themeFile struct {
	// Colors maps color names to ANSI indices, hex values, or other
	// named colors already defined by the default palette.
	Colors map[string]string `yaml:"colors"`
}

// LoadTheme reads a YAML theme file and returns the default palette
// with the file's color entries layered on top. The path must be
// explicit; there is no search path or automatic discovery.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, fmt.Errorf("parse theme file %s: %w", path, err)
	}

	theme := DefaultTheme()
	for name, value := range file.Colors {
		normalized := strings.ToLower(strings.TrimSpace(name))
		if normalized == "" {
			continue
		}
		// Values may reference palette names ("red"), indices, or hex.
		resolved, ok := theme.Color(value)
		if !ok {
			return Theme{}, fmt.Errorf("theme file %s: color %q has unrecognized value %q", path, name, value)
		}
		theme.colors[normalized] = resolved
	}
	return theme, nil
}
