package deckgen

import (
	"github.com/deckgen/deckgen/md"
)

// buildMarketSize draws up to three concentric circles right of center,
// largest figure outermost, with a legend column on the left for the
// figures and any remaining prose.
func buildMarketSize(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	set := md.ExtractMetrics(in.lines)

	var figures []md.Metric
	if set.Hero != nil {
		figures = append(figures, *set.Hero)
	}
	figures = append(figures, set.Secondary...)
	if len(figures) > 3 {
		figures = figures[:3]
	}

	w := contentWidth(in.hasImage)
	legendW := w * 0.42

	// legend column
	ly := y + 16
	for i, f := range figures {
		nodes = append(nodes,
			&Circle{CX: pad + 10, CY: ly + 18, R: 8, Fill: Tint(accentAt(i), 0.8)},
			&Text{X: pad + 34, Y: ly, W: legendW - 34, H: 44, Content: f.Value, Size: 26, Weight: 800, Color: Solid(accentAt(i)), LineHeight: 1.3},
		)
		ly += 42
		if f.Label != "" {
			h := estTextHeight(f.Label, 15, legendW-34)
			nodes = append(nodes, &Text{X: pad + 34, Y: ly, W: legendW - 34, H: h + 15, Content: f.Label, Size: 15, Color: Solid(RoleMuted)})
			ly += h + 20
		} else {
			ly += 12
		}
	}
	for _, l := range set.Support {
		if ly > canvasH-pad-30 {
			break
		}
		h := estTextHeight(l, 15, legendW)
		nodes = append(nodes, &Text{X: pad, Y: ly, W: legendW, H: h + 15, Content: l, Size: 15, Color: Solid(RoleText)})
		ly += h + 10
	}

	// concentric circles, outermost first so inner rings draw on top
	cx := pad + legendW + (w-legendW)/2
	cy := y + (canvasH-pad-y)/2
	maxR := clamp((canvasH-pad-y)/2-10, 80, 250)
	n := len(figures)
	if n == 0 {
		n = 3
	}
	// rings share a bottom tangent so each label sits in the exposed band
	// at the top of its ring
	for i := 0; i < n; i++ {
		r := maxR * (1 - 0.3*float64(i))
		ringCY := cy + (maxR - r)
		nodes = append(nodes, &Circle{
			CX: cx, CY: ringCY, R: r,
			Fill:   Tint(accentAt(i), 0.1),
			Stroke: Solid(accentAt(i)), StrokeWidth: 2,
		})
		if i < len(figures) {
			nodes = append(nodes, &Text{
				X: cx - r, Y: ringCY - r + 12, W: 2 * r, H: 34,
				Content: figures[i].Value, Size: 17, Weight: 700, Align: "center", Color: Solid(accentAt(i)),
			})
		}
	}
	return nodes
}
