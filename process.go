package deckgen

import (
	"fmt"

	"github.com/deckgen/deckgen/md"
)

// buildProcess renders sequential steps. Variant 0 is a horizontal arrow
// chain of cards, variant 1 a vertical numbered rail, variant 2 a chevron
// strip with descriptions underneath.
func buildProcess(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	lines := in.items(md.SplitProseToItems(in.lines, 3), 6)
	if len(lines) == 0 {
		return nodes
	}
	switch in.variant {
	case 1:
		return append(nodes, processRail(lines, y, in.hasImage)...)
	case 2:
		return append(nodes, processChevrons(lines, y, in.hasImage)...)
	default:
		return append(nodes, processChain(lines, y, in.hasImage)...)
	}
}

func processChain(lines []string, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	n := len(lines)
	gap := 36.0
	cardW := (w - gap*float64(n-1)) / float64(atLeast1(n))
	cardH := clamp((canvasH-pad-y)*0.62, 180, 340)
	top := y + (canvasH-pad-y-cardH)/2
	size := cardFont(1)
	for i, l := range lines {
		x := pad + float64(i)*(cardW+gap)
		nodes = append(nodes,
			&Rect{X: x, Y: top, W: cardW, H: cardH, Radius: 12, Fill: Tint(RoleSurface, 0.7), Stroke: Solid(RoleBorder), StrokeWidth: 1},
			&Circle{CX: x + 34, CY: top + 38, R: 18, Fill: Tint(accentAt(i), 0.15)},
			&Text{X: x + 24, Y: top + 26, W: 20, H: 26, Content: fmt.Sprintf("%d", i+1), Size: 16, Weight: 700, Align: "center", Color: Solid(accentAt(i))},
			&Text{X: x + 20, Y: top + 72, W: cardW - 40, H: cardH - 92, Content: l, Size: size, Color: Solid(RoleText)},
		)
		if i < n-1 {
			nodes = append(nodes, &Line{
				X1: x + cardW + 6, Y1: top + cardH/2, X2: x + cardW + gap - 6, Y2: top + cardH/2,
				Stroke: Solid(RoleAccent), StrokeWidth: 2.5, Arrow: true,
			})
		}
	}
	return nodes
}

func processRail(lines []string, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	n := len(lines)
	railX := pad + 26.0
	avail := canvasH - pad - y
	rowH := avail / float64(atLeast1(n))
	nodes = append(nodes, &Line{
		X1: railX, Y1: y + rowH/2, X2: railX, Y2: y + rowH*(float64(n)-0.5),
		Stroke: Tint(RoleBorder, 0.9), StrokeWidth: 2,
	})
	for i, l := range lines {
		cy := y + rowH*(float64(i)+0.5)
		nodes = append(nodes,
			&Circle{CX: railX, CY: cy, R: 17, Fill: Tint(accentAt(i), 0.15), Stroke: Solid(accentAt(i)), StrokeWidth: 2},
			&Text{X: railX - 17, Y: cy - 11, W: 34, H: 24, Content: fmt.Sprintf("%d", i+1), Size: 15, Weight: 700, Align: "center", Color: Solid(accentAt(i))},
			&Text{X: railX + 44, Y: cy - 13, W: w - 90, H: rowH - 10, Content: l, Size: 18, Color: Solid(RoleText)},
		)
	}
	return nodes
}

func processChevrons(lines []string, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	n := len(lines)
	gap := 10.0
	segW := (w - gap*float64(n-1)) / float64(atLeast1(n))
	stripY := y + 24
	for i, l := range lines {
		x := pad + float64(i)*(segW+gap)
		nodes = append(nodes,
			&Rect{X: x, Y: stripY, W: segW, H: 54, Radius: 27, Fill: Tint(accentAt(i), 0.16)},
			&Text{X: x, Y: stripY + (54-16*1.4)/2, W: segW, H: 54, Content: fmt.Sprintf("%d", i+1), Size: 16, Weight: 700, Align: "center", Color: Solid(accentAt(i))},
			&Text{X: x + 6, Y: stripY + 78, W: segW - 12, H: canvasH - pad - stripY - 78, Content: l, Size: cardFont(1), Align: "center", Color: Solid(RoleText)},
		)
		if i < n-1 {
			nodes = append(nodes, &Line{
				X1: x + segW + 1, Y1: stripY + 27, X2: x + segW + gap - 1, Y2: stripY + 27,
				Stroke: Solid(RoleAccent), StrokeWidth: 2, Arrow: true,
			})
		}
	}
	return nodes
}
