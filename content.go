package deckgen

import (
	"github.com/deckgen/deckgen/md"
)

// buildContent stacks the body lines as accent-barred rows under the title.
// A body that parses as a table renders as a table instead.
func buildContent(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	if in.table != nil {
		return append(nodes, tableNodes(in.table, y, in.hasImage)...)
	}
	lines := in.items(in.lines, md.MaxLines)
	if len(lines) == 0 {
		return nodes
	}
	w := contentWidth(in.hasImage)
	avail := canvasH - pad - y
	rowGap := 18.0
	rowH := (avail - rowGap*float64(len(lines)-1)) / float64(atLeast1(len(lines)))
	size := 20.0
	if len(lines) >= 6 {
		size = 17
	}
	maxRowH := estTextHeight(lines[0], size, w-36) + 24
	for _, l := range lines {
		if h := estTextHeight(l, size, w-36) + 24; h > maxRowH {
			maxRowH = h
		}
	}
	if rowH > maxRowH {
		rowH = maxRowH
	}
	for i, l := range lines {
		top := y + float64(i)*(rowH+rowGap)
		nodes = append(nodes,
			&Rect{X: pad, Y: top + 4, W: 4, H: rowH - 8, Radius: 2, Fill: Solid(accentAt(i))},
			&Text{X: pad + 24, Y: top + (rowH-size*1.4)/2, W: w - 36, H: rowH, Content: l, Size: size, Color: Solid(RoleText)},
		)
	}
	return nodes
}

// tableNodes renders a parsed table: a bold header row on a surface band,
// then zebra-striped data rows, with the lead text above and takeaway and
// source below.
func tableNodes(t *md.Table, y float64, hasImage bool) []Node {
	var nodes []Node
	w := contentWidth(hasImage)

	if t.LeadText != "" {
		nodes = append(nodes, &Text{X: pad, Y: y, W: w, H: 60, Content: t.LeadText, Size: 18, Color: Solid(RoleMuted)})
		y += estTextHeight(t.LeadText, 18, w) + 20
	}

	cols := atLeast1(len(t.Headers))
	colW := w / float64(cols)
	headerH := 46.0
	nodes = append(nodes, &Rect{X: pad, Y: y, W: w, H: headerH, Radius: 8, Fill: Tint(RoleSurface, 0.9)})
	for c, h := range t.Headers {
		nodes = append(nodes, &Text{
			X: pad + float64(c)*colW + 16, Y: y + 12, W: colW - 32, H: headerH,
			Content: h, Size: 16, Weight: 700, Color: Solid(RoleTitle),
		})
	}
	y += headerH + 6

	bottom := canvasH - pad - 70
	rowH := 44.0
	if n := len(t.Rows); n > 0 {
		if fit := (bottom - y) / float64(n); fit < rowH {
			rowH = clamp(fit, 30, rowH)
		}
	}
	for ri, row := range t.Rows {
		if y+rowH > bottom {
			break
		}
		if ri%2 == 1 {
			nodes = append(nodes, &Rect{X: pad, Y: y, W: w, H: rowH, Radius: 6, Fill: Tint(RoleSurface, 0.45)})
		}
		for c, cell := range row {
			nodes = append(nodes, &Text{
				X: pad + float64(c)*colW + 16, Y: y + (rowH-15*1.4)/2, W: colW - 32, H: rowH,
				Content: cell, Size: 15, Color: Solid(RoleText),
			})
		}
		y += rowH + 2
	}

	if t.Takeaway != "" {
		y += 16
		nodes = append(nodes,
			&Rect{X: pad, Y: y + 4, W: 4, H: 34, Radius: 2, Fill: Solid(RoleAccent)},
			&Text{X: pad + 20, Y: y + 8, W: w - 20, H: 46, Content: t.Takeaway, Size: 17, Weight: 600, Color: Solid(RoleText)},
		)
		y += 48
	}
	if t.Source != "" {
		nodes = append(nodes, &Text{
			X: pad, Y: canvasH - pad + 14, W: w, H: 24,
			Content: t.Source, Size: 12, Color: Solid(RoleMuted),
		})
	}
	return nodes
}
