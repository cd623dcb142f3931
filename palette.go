package deckgen

import (
	"fmt"
	"math"
	"strings"
)

// Palette is a 10-color theme shared by every slide of a presentation.
// All values are #RRGGBB hex strings.
type Palette struct {
	Primary    string `yaml:"primary" json:"primary"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Accent     string `yaml:"accent" json:"accent"`
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text" json:"text"`
	Surface    string `yaml:"surface" json:"surface"`
	Border     string `yaml:"border" json:"border"`
	Success    string `yaml:"success" json:"success"`
	Warning    string `yaml:"warning" json:"warning"`
	Error      string `yaml:"error" json:"error"`
}

// color returns the hex value for a palette role. Empty slots fall back to
// the accent, then the text color, so degenerate palettes still resolve.
func (p Palette) color(role ColorRole) string {
	var c string
	switch role {
	case RolePrimary:
		c = p.Primary
	case RoleSecondary:
		c = p.Secondary
	case RoleAccent, RoleEmphasis, RoleMetric:
		c = p.Accent
	case RoleBackground:
		c = p.Background
	case RoleText, RoleTitle:
		c = p.Text
	case RoleMuted:
		c = p.Text
	case RoleSurface:
		c = p.Surface
	case RoleBorder:
		c = p.Border
	case RoleSuccess:
		c = p.Success
	case RoleWarning:
		c = p.Warning
	case RoleError:
		c = p.Error
	}
	if c == "" {
		c = p.Accent
	}
	if c == "" {
		c = p.Text
	}
	if c == "" {
		c = "#000000"
	}
	return c
}

// DefaultPalette is the fallback theme used when the caller supplies none.
var DefaultPalette = Palette{
	Primary:    "#1a3a5c",
	Secondary:  "#2e6e8e",
	Accent:     "#e8734a",
	Background: "#ffffff",
	Text:       "#1f2430",
	Surface:    "#f4f6f8",
	Border:     "#d8dde3",
	Success:    "#2e7d32",
	Warning:    "#ed6c02",
	Error:      "#c62828",
}

// parseHex decodes #RGB or #RRGGBB. Malformed input returns black and false;
// callers degrade rather than fail.
func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	var v [3]int
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(s[i*2])
		lo, ok2 := hexDigit(s[i*2+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, false
		}
		v[i] = hi<<4 | lo
	}
	return v[0], v[1], v[2], true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

// luminance is the perceptual luminance 0.299R + 0.587G + 0.114B on a
// 0-255 scale.
func luminance(hex string) float64 {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0
	}
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// lumDiff is the absolute perceptual luminance distance between two colors.
func lumDiff(a, b string) float64 {
	return math.Abs(luminance(a) - luminance(b))
}

// blendHex alpha-blends fg over bg and returns a literal #RRGGBB. Text
// colors are always pre-blended so every color declaration in the output is
// a solid hex the contrast pass can reason about.
func blendHex(fg, bg string, alpha float64) string {
	if alpha >= 1 {
		return normalizeHex(fg)
	}
	if alpha < 0 {
		alpha = 0
	}
	fr, fg2, fb, ok := parseHex(fg)
	if !ok {
		return normalizeHex(bg)
	}
	br, bgr, bb, ok := parseHex(bg)
	if !ok {
		br, bgr, bb = 255, 255, 255
	}
	mix := func(f, b int) int {
		v := int(math.Round(float64(f)*alpha + float64(b)*(1-alpha)))
		return max(0, min(255, v))
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(fr, br), mix(fg2, bgr), mix(fb, bb))
}

// rgba formats a hex color at the given alpha as a CSS rgba() value.
func rgba(hex string, alpha float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		r, g, b = 0, 0, 0
	}
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, trimFloat(alpha))
}

func normalizeHex(s string) string {
	r, g, b, ok := parseHex(s)
	if !ok {
		return "#000000"
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// accentCycle is the ordered role rotation that keeps consecutive
// cards/items visually distinct.
var accentCycle = []ColorRole{
	RoleAccent, RolePrimary, RoleSecondary, RoleSuccess, RoleWarning, RoleError,
}

// accentAt rotates through the accent roles by item index.
func accentAt(i int) ColorRole {
	if i < 0 {
		i = 0
	}
	return accentCycle[i%len(accentCycle)]
}
