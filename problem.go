package deckgen

import (
	"fmt"

	"github.com/deckgen/deckgen/md"
)

// buildProblem and buildSolution share one geometry with opposite emphasis
// roles: problems lean on the error color, solutions on the success color.
// Variant 0 is an emphasized list beside a diagonal backdrop, variant 1 a
// staircase of offset cards.
func buildProblem(in *composeInput) []Node {
	return emphasisList(in, RoleError, problemMarker)
}

func buildSolution(in *composeInput) []Node {
	return emphasisList(in, RoleSuccess, solutionMarker)
}

// problemMarker is a small warning diamond.
func problemMarker(cx, cy float64, role ColorRole) []Node {
	return []Node{
		&Circle{CX: cx, CY: cy, R: 11, Fill: Tint(role, 0.15), Stroke: Solid(role), StrokeWidth: 2},
		&Line{X1: cx, Y1: cy - 5, X2: cx, Y2: cy + 1.5, Stroke: Solid(role), StrokeWidth: 2.5},
		&Line{X1: cx, Y1: cy + 4.5, X2: cx, Y2: cy + 6, Stroke: Solid(role), StrokeWidth: 2.5},
	}
}

// solutionMarker is a checkmark in a circle.
func solutionMarker(cx, cy float64, role ColorRole) []Node {
	return []Node{
		&Circle{CX: cx, CY: cy, R: 11, Fill: Tint(role, 0.15), Stroke: Solid(role), StrokeWidth: 2},
		&Line{X1: cx - 5, Y1: cy, X2: cx - 1.5, Y2: cy + 4, Stroke: Solid(role), StrokeWidth: 2.5},
		&Line{X1: cx - 1.5, Y1: cy + 4, X2: cx + 5.5, Y2: cy - 4, Stroke: Solid(role), StrokeWidth: 2.5},
	}
}

func emphasisList(in *composeInput, role ColorRole, marker func(cx, cy float64, role ColorRole) []Node) []Node {
	nodes, y := emphasisTitle(in, role)
	if in.table != nil {
		return append(nodes, tableNodes(in.table, y, in.hasImage)...)
	}
	lines := in.items(md.SplitProseToItems(in.lines, 2), md.MaxLines)
	if len(lines) == 0 {
		return nodes
	}
	if in.variant == 1 {
		return append(nodes, staircaseCards(lines, y, in.hasImage, role)...)
	}
	return append(nodes, markerList(lines, y, in.hasImage, role, marker)...)
}

// emphasisTitle replaces the standard accent underline with a solid bar in
// the list's emphasis color.
func emphasisTitle(in *composeInput, role ColorRole) ([]Node, float64) {
	if in.title == "" {
		return nil, pad
	}
	size := titleFontSize(in.title)
	w := contentWidth(in.hasImage)
	h := estTextHeight(in.title, size, w)
	nodes := []Node{
		&Rect{X: pad, Y: pad, W: 5, H: h + 6, Radius: 2.5, Fill: Solid(role)},
		&Text{X: pad + 26, Y: pad, W: w - 26, H: h + size, Content: in.title, Size: size, Weight: 700, Color: Solid(RoleTitle)},
	}
	return nodes, pad + h + 40
}

func markerList(lines []string, y float64, hasImage bool, role ColorRole, marker func(cx, cy float64, role ColorRole) []Node) []Node {
	var nodes []Node
	w := contentWidth(hasImage)

	// diagonal backdrop in the list's emphasis color
	right := usableWidth(hasImage)
	nodes = append(nodes,
		&Line{X1: right - 320, Y1: canvasH, X2: right, Y2: canvasH - 320, Stroke: Tint(role, 0.12), StrokeWidth: 3},
		&Line{X1: right - 240, Y1: canvasH, X2: right, Y2: canvasH - 240, Stroke: Tint(role, 0.08), StrokeWidth: 3},
	)

	avail := canvasH - pad - y
	rowH := avail / float64(atLeast1(len(lines)))
	size := 19.0
	if len(lines) >= 6 {
		size = 16
	}
	for i, l := range lines {
		top := y + float64(i)*rowH
		h := estTextHeight(l, size, w-60)
		cy := top + h/2
		nodes = append(nodes, marker(pad+12, cy, role)...)
		nodes = append(nodes, &Text{
			X: pad + 44, Y: top, W: w - 60, H: clampDim(rowH - 8),
			Content: l, Size: size, Color: Solid(RoleText),
		})
	}
	return nodes
}

// staircaseCards offsets each card a step further right, numbering them in
// the emphasis color.
func staircaseCards(lines []string, y float64, hasImage bool, role ColorRole) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	n := len(lines)
	if n > 5 {
		lines, n = lines[:5], 5
	}
	gap := 14.0
	cardH := (canvasH - pad - y - gap*float64(n-1)) / float64(atLeast1(n))
	stepX := clamp((w*0.25)/float64(atLeast1(n-1)), 20, 70)
	cardW := w - stepX*float64(n-1)
	for i, l := range lines {
		x := pad + stepX*float64(i)
		top := y + float64(i)*(cardH+gap)
		nodes = append(nodes,
			&Rect{X: x, Y: top, W: cardW, H: cardH, Radius: 10, Fill: Tint(role, 0.07), Stroke: Tint(role, 0.35), StrokeWidth: 1.5},
			&Text{X: x + 18, Y: top + (cardH-24*1.4)/2, W: 40, H: cardH, Content: fmt.Sprintf("%d", i+1), Size: 24, Weight: 800, Color: Solid(role)},
			&Text{X: x + 66, Y: top + (cardH-17*1.4)/2, W: cardW - 84, H: cardH, Content: l, Size: 17, Color: Solid(RoleText)},
		)
	}
	return nodes
}
