package deckgen

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
		ok      bool
	}{
		{"#ffffff", 255, 255, 255, true},
		{"#000000", 0, 0, 0, true},
		{"#1a3a5c", 26, 58, 92, true},
		{"#abc", 170, 187, 204, true},
		{"1a3a5c", 26, 58, 92, true},
		{"#xyzxyz", 0, 0, 0, false},
		{"#ffff", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b, ok := parseHex(tt.in)
			if r != tt.r || g != tt.g || b != tt.b || ok != tt.ok {
				t.Errorf("parseHex(%q) = (%d,%d,%d,%v), want (%d,%d,%d,%v)",
					tt.in, r, g, b, ok, tt.r, tt.g, tt.b, tt.ok)
			}
		})
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"#ffffff", 255},
		{"#000000", 0},
		{"#ff0000", 0.299 * 255},
		{"#00ff00", 0.587 * 255},
		{"#0000ff", 0.114 * 255},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := luminance(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("luminance(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBlendHex(t *testing.T) {
	tests := []struct {
		fg, bg string
		alpha  float64
		want   string
	}{
		{"#ffffff", "#000000", 0.5, "#808080"},
		{"#ffffff", "#000000", 1, "#ffffff"},
		{"#ffffff", "#000000", 0, "#000000"},
		{"#1f2430", "#ffffff", 0.5, "#8f9298"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := blendHex(tt.fg, tt.bg, tt.alpha); got != tt.want {
				t.Errorf("blendHex(%q, %q, %v) = %q, want %q", tt.fg, tt.bg, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	tests := []struct {
		hex   string
		alpha float64
		want  string
	}{
		{"#ff0000", 0.5, "rgba(255,0,0,0.5)"},
		{"#ffffff", 0, "rgba(255,255,255,0)"},
		{"#000000", 1.5, "rgba(0,0,0,1)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := rgba(tt.hex, tt.alpha); got != tt.want {
				t.Errorf("rgba(%q, %v) = %q, want %q", tt.hex, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestPaletteColorFallbacks(t *testing.T) {
	empty := Palette{}
	if got := empty.color(RolePrimary); got != "#000000" {
		t.Errorf("empty palette should fall back to black, got %q", got)
	}
	accentOnly := Palette{Accent: "#ff8800"}
	if got := accentOnly.color(RoleSurface); got != "#ff8800" {
		t.Errorf("missing slot should fall back to accent, got %q", got)
	}
	if got := DefaultPalette.color(RoleTitle); got != DefaultPalette.Text {
		t.Errorf("title should resolve to text color, got %q", got)
	}
}

func TestAccentAt(t *testing.T) {
	if accentAt(0) != RoleAccent || accentAt(1) != RolePrimary {
		t.Error("accent cycle starts with accent, primary")
	}
	if accentAt(6) != RoleAccent {
		t.Error("accent cycle wraps after six roles")
	}
	if accentAt(-1) != RoleAccent {
		t.Error("negative index clamps to start")
	}
}
