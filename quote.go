package deckgen

import "strings"

// buildQuote centers the body as a large italic pull quote with a decorative
// opening quote glyph. An em-dash suffix becomes the attribution line; the
// title, when present, renders small above the glyph.
func buildQuote(in *composeInput) []Node {
	quote := strings.Join(in.lines, " ")
	attribution := ""
	if idx := strings.LastIndex(quote, " — "); idx > 0 {
		attribution = strings.TrimSpace(quote[idx+len(" — "):])
		quote = strings.TrimSpace(quote[:idx])
	}
	quote = strings.Trim(quote, `"“”`)

	w := contentWidth(in.hasImage)
	cx := pad
	size := 34.0
	switch n := len([]rune(quote)); {
	case n > 220:
		size = 24
	case n > 140:
		size = 28
	}
	qh := estTextHeight(quote, size, w)
	top := (canvasH - qh) / 2
	if top < 200 {
		top = 200
	}

	var nodes []Node
	if in.title != "" {
		nodes = append(nodes, &Text{
			X: pad, Y: pad, W: w, H: 60,
			Content: in.title, Size: 20, Weight: 600, Align: "center", Color: Solid(RoleMuted),
		})
	}
	nodes = append(nodes,
		&Text{X: cx, Y: top - 110, W: w, H: 130, Content: "“", Size: 130, Weight: 700, Align: "center", Color: Tint(RoleEmphasis, 0.3), LineHeight: 1},
		&Text{X: cx, Y: top, W: w, H: qh + size, Content: quote, Size: size, Italic: true, Align: "center", Color: Solid(RoleTitle), LineHeight: 1.5},
	)
	y := top + qh + 36
	nodes = append(nodes, &Rect{X: (usableWidth(in.hasImage) - 60) / 2, Y: y, W: 60, H: 4, Radius: 2, Fill: Solid(RoleAccent)})
	if attribution != "" {
		nodes = append(nodes, &Text{
			X: cx, Y: y + 24, W: w, H: 40,
			Content: "— " + attribution, Size: 18, Weight: 600, Align: "center", Color: Solid(RoleMuted),
		})
	}
	return nodes
}
