package deckgen

import (
	"math"
)

// Canvas geometry shared by every builder.
const (
	canvasW = 1280.0
	canvasH = 720.0
	pad     = 53.0

	// usable width when a right-side image panel is present (~68%)
	imageContentW = 870.0
)

// usableWidth is the right bound for content; the image overlay panel
// claims the remaining 30% of the canvas.
func usableWidth(hasImage bool) float64 {
	if hasImage {
		return imageContentW
	}
	return canvasW
}

// contentWidth is the horizontal space between the paddings.
func contentWidth(hasImage bool) float64 {
	return usableWidth(hasImage) - 2*pad
}

// titleFontSize steps the title down as it grows past 30/50/70/90 chars.
func titleFontSize(title string) float64 {
	switch n := len([]rune(title)); {
	case n <= 30:
		return 44
	case n <= 50:
		return 38
	case n <= 70:
		return 32
	case n <= 90:
		return 28
	default:
		return 24
	}
}

// estTextHeight estimates the rendered height of wrapped text. Average
// glyph width is approximated as 0.55em, matching the serializer's
// line-height of 1.4.
func estTextHeight(content string, size, width float64) float64 {
	if width <= 0 || size <= 0 {
		return size * 1.4
	}
	perLine := math.Max(1, math.Floor(width/(size*0.55)))
	lines := math.Ceil(float64(len([]rune(content))) / perLine)
	if lines < 1 {
		lines = 1
	}
	return lines * size * 1.4
}

// titleBlock places the slide title and its accent underline bar, returning
// the nodes plus the y coordinate where body content may start. Non-neutral
// moods get the split-bar variant.
func titleBlock(title string, hasImage bool, mood Mood) ([]Node, float64) {
	if title == "" {
		return nil, pad
	}
	size := titleFontSize(title)
	w := contentWidth(hasImage)
	h := estTextHeight(title, size, w)
	nodes := []Node{
		&Text{X: pad, Y: pad, W: w, H: h + size, Content: title, Size: size, Weight: 700, Color: Solid(RoleTitle)},
	}
	barY := pad + h + 14
	if mood == MoodNeutral || mood == "" {
		nodes = append(nodes, &Rect{X: pad, Y: barY, W: 80, H: 5, Radius: 2.5, Fill: Solid(RoleAccent)})
	} else {
		nodes = append(nodes,
			&Rect{X: pad, Y: barY, W: 56, H: 5, Radius: 2.5, Fill: Solid(RoleEmphasis)},
			&Rect{X: pad + 64, Y: barY, W: 16, H: 5, Radius: 2.5, Fill: Tint(RoleEmphasis, 0.5)},
		)
	}
	return nodes, barY + 5 + 28
}

// gridFor picks columns and rows from item count: up to 3 items fit one
// row, 4 stays one row, 5 and up wraps to two rows.
func gridFor(n int) (cols, rows int) {
	if n <= 0 {
		return 1, 1
	}
	if n <= 4 {
		return n, 1
	}
	rows = 2
	cols = (n + 1) / 2
	return cols, rows
}

// cardFont reduces the per-item font size as rows increase.
func cardFont(rows int) float64 {
	if rows >= 2 {
		return 15
	}
	return 17
}

// clampDim guards layout math against negative or NaN dimensions on
// degenerate input.
func clampDim(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// atLeast1 guards divisors derived from item counts.
func atLeast1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
