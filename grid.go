package deckgen

import (
	"fmt"
	"strings"

	"github.com/deckgen/deckgen/md"
)

// gridItem is one card: an optional short name split off the line plus the
// remaining description.
type gridItem struct {
	name string
	desc string
}

func splitGridItem(l string) gridItem {
	for _, sep := range []string{": ", " — ", " - "} {
		if idx := strings.Index(l, sep); idx > 0 && idx <= 40 {
			return gridItem{
				name: strings.TrimSpace(l[:idx]),
				desc: strings.TrimSpace(l[idx+len(sep):]),
			}
		}
	}
	return gridItem{desc: l}
}

// buildFeatureGrid arranges items on the shared grid. Variant 1 drops the
// card chrome for a numbered minimal look; other variants render the card
// grid.
func buildFeatureGrid(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	lines := in.items(md.SplitProseToItems(in.lines, 2), 6)
	if len(lines) == 0 {
		return nodes
	}
	items := make([]gridItem, len(lines))
	for i, l := range lines {
		items[i] = splitGridItem(l)
	}
	if in.variant == 1 {
		return append(nodes, minimalGrid(items, y, in.hasImage)...)
	}
	return append(nodes, cardGrid(items, y, in.hasImage)...)
}

// cardGrid is the default grid: surface cards with an accent top bar.
func cardGrid(items []gridItem, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	cols, rows := gridFor(len(items))
	gap := 24.0
	cellW := (w - gap*float64(cols-1)) / float64(atLeast1(cols))
	cellH := (canvasH - pad - y - gap*float64(rows-1)) / float64(atLeast1(rows))
	size := cardFont(rows)
	for i, it := range items {
		col, row := i%cols, i/cols
		x := pad + float64(col)*(cellW+gap)
		top := y + float64(row)*(cellH+gap)
		nodes = append(nodes,
			&Rect{X: x, Y: top, W: cellW, H: cellH, Radius: 12, Fill: Tint(RoleSurface, 0.7), Stroke: Solid(RoleBorder), StrokeWidth: 1},
			&Rect{X: x, Y: top, W: cellW, H: 5, Radius: 2.5, Fill: Solid(accentAt(i))},
		)
		ty := top + 24.0
		if it.name != "" {
			nodes = append(nodes, &Text{X: x + 20, Y: ty, W: cellW - 40, H: 52, Content: it.name, Size: size + 2, Weight: 700, Color: Solid(RoleTitle)})
			ty += estTextHeight(it.name, size+2, cellW-40) + 10
		}
		nodes = append(nodes, &Text{X: x + 20, Y: ty, W: cellW - 40, H: top + cellH - ty - 16, Content: it.desc, Size: size, Color: Solid(RoleText)})
	}
	return nodes
}

// minimalGrid drops card chrome: oversized index, divider, text.
func minimalGrid(items []gridItem, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)
	cols, rows := gridFor(len(items))
	gap := 40.0
	cellW := (w - gap*float64(cols-1)) / float64(atLeast1(cols))
	cellH := (canvasH - pad - y - gap*float64(rows-1)) / float64(atLeast1(rows))
	size := cardFont(rows)
	for i, it := range items {
		col, row := i%cols, i/cols
		x := pad + float64(col)*(cellW+gap)
		top := y + float64(row)*(cellH+gap)
		nodes = append(nodes,
			&Text{X: x, Y: top, W: cellW, H: 56, Content: fmt.Sprintf("%02d", i+1), Size: 44, Weight: 800, Color: Tint(accentAt(i), 0.55)},
			&Line{X1: x, Y1: top + 66, X2: x + cellW - 20, Y2: top + 66, Stroke: Tint(RoleBorder, 0.9), StrokeWidth: 1.5},
		)
		ty := top + 84.0
		if it.name != "" {
			nodes = append(nodes, &Text{X: x, Y: ty, W: cellW - 20, H: 52, Content: it.name, Size: size + 2, Weight: 700, Color: Solid(RoleTitle)})
			ty += estTextHeight(it.name, size+2, cellW-20) + 8
		}
		nodes = append(nodes, &Text{X: x, Y: ty, W: cellW - 20, H: top + cellH - ty, Content: it.desc, Size: size, Color: Solid(RoleText)})
	}
	return nodes
}

// buildTeam renders member cards with an initial avatar. The name is the
// short prefix of each line, the rest the role.
func buildTeam(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	lines := in.items(in.lines, 6)
	if len(lines) == 0 {
		return nodes
	}
	w := contentWidth(in.hasImage)
	cols, rows := gridFor(len(lines))
	gap := 24.0
	cellW := (w - gap*float64(cols-1)) / float64(atLeast1(cols))
	cellH := (canvasH - pad - y - gap*float64(rows-1)) / float64(atLeast1(rows))
	for i, l := range lines {
		it := splitGridItem(l)
		name, role := it.name, it.desc
		if name == "" {
			name, role = role, ""
			if f := strings.Fields(name); len(f) > 2 {
				name, role = strings.Join(f[:2], " "), strings.Join(f[2:], " ")
			}
		}
		col, row := i%cols, i/cols
		x := pad + float64(col)*(cellW+gap)
		top := y + float64(row)*(cellH+gap)
		avatarR := clamp(cellH*0.18, 22, 40)
		cx := x + cellW/2
		cy := top + 20 + avatarR
		initial := ""
		if r := []rune(name); len(r) > 0 {
			initial = strings.ToUpper(string(r[0]))
		}
		nodes = append(nodes,
			&Rect{X: x, Y: top, W: cellW, H: cellH, Radius: 12, Fill: Tint(RoleSurface, 0.7), Stroke: Solid(RoleBorder), StrokeWidth: 1},
			&Circle{CX: cx, CY: cy, R: avatarR, Fill: Tint(accentAt(i), 0.18), Stroke: Solid(accentAt(i)), StrokeWidth: 2},
			&Text{X: cx - avatarR, Y: cy - avatarR*0.62, W: avatarR * 2, H: avatarR * 2, Content: initial, Size: avatarR * 0.9, Weight: 700, Align: "center", Color: Solid(accentAt(i)), LineHeight: 1.4},
			&Text{X: x + 14, Y: cy + avatarR + 14, W: cellW - 28, H: 48, Content: name, Size: 17, Weight: 700, Align: "center", Color: Solid(RoleTitle)},
		)
		if role != "" {
			nodes = append(nodes, &Text{
				X: x + 14, Y: cy + avatarR + 44, W: cellW - 28, H: clampDim(top + cellH - cy - avatarR - 54),
				Content: role, Size: 14, Align: "center", Color: Solid(RoleMuted),
			})
		}
	}
	return nodes
}

// buildArchitecture stacks labelled layers top to bottom with connector
// lines, widest layer at the base.
func buildArchitecture(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	lines := in.items(in.lines, 5)
	if len(lines) == 0 {
		return nodes
	}
	w := contentWidth(in.hasImage)
	n := len(lines)
	gap := 26.0
	layerH := clamp((canvasH-pad-y-gap*float64(n-1))/float64(n), 56, 110)
	totalH := layerH*float64(n) + gap*float64(n-1)
	top := y + (canvasH-pad-y-totalH)/2
	for i, l := range lines {
		it := splitGridItem(l)
		// narrow at the top, widening toward the base layer
		lw := w * (0.6 + 0.4*float64(i)/float64(atLeast1(n-1)))
		if n == 1 {
			lw = w
		}
		x := pad + (w-lw)/2
		ly := top + float64(i)*(layerH+gap)
		nodes = append(nodes,
			&Rect{X: x, Y: ly, W: lw, H: layerH, Radius: 10, Fill: Tint(accentAt(i), 0.12), Stroke: Solid(accentAt(i)), StrokeWidth: 1.5},
		)
		label := it.name
		desc := it.desc
		if label == "" {
			label = desc
			desc = ""
		}
		if desc == "" {
			nodes = append(nodes, &Text{X: x + 24, Y: ly + (layerH-17*1.4)/2, W: lw - 48, H: layerH, Content: label, Size: 17, Weight: 700, Align: "center", Color: Solid(RoleTitle)})
		} else {
			nodes = append(nodes,
				&Text{X: x + 24, Y: ly + layerH/2 - 26, W: lw - 48, H: 28, Content: label, Size: 16, Weight: 700, Align: "center", Color: Solid(RoleTitle)},
				&Text{X: x + 24, Y: ly + layerH/2 + 4, W: lw - 48, H: layerH/2 - 10, Content: desc, Size: 13, Align: "center", Color: Solid(RoleMuted)},
			)
		}
		if i < n-1 {
			cx := pad + w/2
			nodes = append(nodes, &Line{
				X1: cx, Y1: ly + layerH + 3, X2: cx, Y2: ly + layerH + gap - 3,
				Stroke: Solid(RoleAccent), StrokeWidth: 2, Arrow: true,
			})
		}
	}
	return nodes
}
