// Package theme provides the built-in color palettes and loads user-defined
// palettes from YAML theme files.
package theme

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/errors"
	"github.com/k1LoW/expand"

	"github.com/deckgen/deckgen"
)

var hexRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// builtin maps theme names to palettes. The default theme is deckgen's
// DefaultPalette.
var builtin = map[string]deckgen.Palette{
	"default": deckgen.DefaultPalette,
	"midnight": {
		Primary:    "#7aa2f7",
		Secondary:  "#bb9af7",
		Accent:     "#7dcfff",
		Background: "#1a1b26",
		Text:       "#c0caf5",
		Surface:    "#24283b",
		Border:     "#3b4261",
		Success:    "#9ece6a",
		Warning:    "#e0af68",
		Error:      "#f7768e",
	},
	"paper": {
		Primary:    "#2f3e46",
		Secondary:  "#52796f",
		Accent:     "#bc4b51",
		Background: "#fdfbf7",
		Text:       "#2b2b2b",
		Surface:    "#f1ede4",
		Border:     "#ded8ca",
		Success:    "#4f772d",
		Warning:    "#b08968",
		Error:      "#a4243b",
	},
	"slate": {
		Primary:    "#0f4c81",
		Secondary:  "#5b8bb2",
		Accent:     "#f2a541",
		Background: "#f7f9fb",
		Text:       "#1c2733",
		Surface:    "#e9eef3",
		Border:     "#cfd9e2",
		Success:    "#2c8a5b",
		Warning:    "#d97706",
		Error:      "#b3261e",
	},
}

// Names lists the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Get returns a built-in palette by name.
func Get(name string) (deckgen.Palette, bool) {
	p, ok := builtin[name]
	return p, ok
}

// themeFile is the on-disk theme format: a palette plus an optional base
// theme the palette overlays.
type themeFile struct {
	Base    string          `yaml:"base,omitempty"`
	Palette deckgen.Palette `yaml:"palette"`
}

// LoadFile reads a YAML theme file. Environment variable references in the
// file are expanded before parsing, and empty palette slots inherit from the
// base theme.
func LoadFile(path string) (_ deckgen.Palette, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		return deckgen.Palette{}, err
	}
	tf := &themeFile{}
	if err := yaml.Unmarshal(expand.ExpandenvYAMLBytes(b), tf); err != nil {
		return deckgen.Palette{}, fmt.Errorf("failed to parse theme file %s: %w", path, err)
	}
	base := deckgen.DefaultPalette
	if tf.Base != "" {
		p, ok := Get(tf.Base)
		if !ok {
			return deckgen.Palette{}, fmt.Errorf("unknown base theme: %s", tf.Base)
		}
		base = p
	}
	pal := overlay(base, tf.Palette)
	if err := validate(pal); err != nil {
		return deckgen.Palette{}, fmt.Errorf("invalid theme file %s: %w", path, err)
	}
	return pal, nil
}

// validate rejects palette slots that are set but not #RGB/#RRGGBB hex.
// Empty slots are allowed; the engine falls back for those.
func validate(p deckgen.Palette) error {
	slots := map[string]string{
		"primary":    p.Primary,
		"secondary":  p.Secondary,
		"accent":     p.Accent,
		"background": p.Background,
		"text":       p.Text,
		"surface":    p.Surface,
		"border":     p.Border,
		"success":    p.Success,
		"warning":    p.Warning,
		"error":      p.Error,
	}
	for name, v := range slots {
		if v != "" && !hexRe.MatchString(v) {
			return fmt.Errorf("%s: %q is not a hex color", name, v)
		}
	}
	return nil
}

// Resolve returns the palette for a theme name, falling back to loading it
// as a file path when no built-in matches.
func Resolve(name string) (deckgen.Palette, error) {
	if name == "" {
		return deckgen.DefaultPalette, nil
	}
	if p, ok := Get(name); ok {
		return p, nil
	}
	return LoadFile(name)
}

func overlay(base, over deckgen.Palette) deckgen.Palette {
	pick := func(o, b string) string {
		if o != "" {
			return o
		}
		return b
	}
	return deckgen.Palette{
		Primary:    pick(over.Primary, base.Primary),
		Secondary:  pick(over.Secondary, base.Secondary),
		Accent:     pick(over.Accent, base.Accent),
		Background: pick(over.Background, base.Background),
		Text:       pick(over.Text, base.Text),
		Surface:    pick(over.Surface, base.Surface),
		Border:     pick(over.Border, base.Border),
		Success:    pick(over.Success, base.Success),
		Warning:    pick(over.Warning, base.Warning),
		Error:      pick(over.Error, base.Error),
	}
}
