package deckgen

import (
	"strings"

	"github.com/deckgen/deckgen/md"
)

// buildComparison picks the richest structure the body offers: a parsed
// table renders as a table, three or more detected groups as a column grid,
// and anything else as a two-panel versus layout.
func buildComparison(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	if in.table != nil {
		return append(nodes, tableNodes(in.table, y, in.hasImage)...)
	}
	if groups := md.DetectGroups(in.lines); len(groups) >= 3 {
		return append(nodes, groupColumns(groups, y, in.hasImage)...)
	}
	return append(nodes, versusPanels(in.lines, y, in.hasImage)...)
}

// groupColumns renders each comparison group as a named column card.
func groupColumns(groups []md.Group, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	n := len(groups)
	gap := 24.0
	colW := (w - gap*float64(n-1)) / float64(atLeast1(n))
	colH := canvasH - pad - y
	for i, g := range groups {
		x := pad + float64(i)*(colW+gap)
		nodes = append(nodes,
			&Rect{X: x, Y: y, W: colW, H: colH, Radius: 12, Fill: Tint(RoleSurface, 0.7), Stroke: Solid(RoleBorder), StrokeWidth: 1},
			&Rect{X: x, Y: y, W: colW, H: 5, Radius: 2.5, Fill: Solid(accentAt(i))},
			&Text{X: x + 18, Y: y + 22, W: colW - 36, H: 56, Content: g.Name, Size: 18, Weight: 700, Color: Solid(accentAt(i))},
		)
		iy := y + 22 + estTextHeight(g.Name, 18, colW-36) + 16
		for _, item := range g.Items {
			if iy > y+colH-30 {
				break
			}
			h := estTextHeight(item, 14, colW-48)
			nodes = append(nodes,
				&Circle{CX: x + 24, CY: iy + 10, R: 3, Fill: Solid(accentAt(i))},
				&Text{X: x + 38, Y: iy, W: colW - 56, H: h + 14, Content: item, Size: 14, Color: Solid(RoleText)},
			)
			iy += h + 12
		}
	}
	return nodes
}

// versusPanels splits the lines onto two facing panels with a circular
// badge between them. An explicit lone "vs" separator line wins over the
// midpoint split and is never rendered; a short leading line on either
// side renders as that panel's header.
func versusPanels(lines []string, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	left, right := splitVersus(lines)

	gap := 64.0
	panelW := (w - gap) / 2
	panelH := canvasH - pad - y
	cx := pad + panelW + gap/2

	panel := func(x float64, items []string, role ColorRole) {
		nodes = append(nodes,
			&Rect{X: x, Y: y, W: panelW, H: panelH, Radius: 14, Fill: Tint(role, 0.07), Stroke: Tint(role, 0.4), StrokeWidth: 1.5},
		)
		iy := y + 28.0
		if len(items) >= 2 && len([]rune(items[0])) < 35 {
			nodes = append(nodes, &Text{
				X: x + 24, Y: iy, W: panelW - 48, H: 40,
				Content: items[0], Size: 18, Weight: 700, Color: Solid(role),
			})
			iy += 48
			items = items[1:]
		}
		for _, item := range items {
			if iy > y+panelH-34 {
				break
			}
			h := estTextHeight(item, 16, panelW-72)
			nodes = append(nodes,
				&Line{X1: x + 24, Y1: iy + 11, X2: x + 38, Y2: iy + 11, Stroke: Solid(role), StrokeWidth: 2.5},
				&Text{X: x + 52, Y: iy, W: panelW - 72, H: h + 16, Content: item, Size: 16, Color: Solid(RoleText)},
			)
			iy += h + 16
		}
	}
	panel(pad, left, RolePrimary)
	panel(pad+panelW+gap, right, RoleAccent)

	badgeY := y + panelH/2
	nodes = append(nodes,
		&Circle{CX: cx, CY: badgeY, R: 30, Fill: Solid(RoleSurface), Stroke: Solid(RoleBorder), StrokeWidth: 2},
		&Text{X: cx - 30, Y: badgeY - 11, W: 60, H: 26, Content: "VS", Size: 15, Weight: 800, Align: "center", Color: Solid(RoleEmphasis)},
	)
	return nodes
}

// splitVersus splits on the first lone "vs"/"vs." line when one exists,
// dropping the separator, and at the midpoint otherwise.
func splitVersus(lines []string) ([]string, []string) {
	for i, l := range lines {
		switch strings.ToLower(strings.TrimSpace(l)) {
		case "vs", "vs.":
			return lines[:i], lines[i+1:]
		}
	}
	mid := (len(lines) + 1) / 2
	return lines[:mid], lines[mid:]
}
