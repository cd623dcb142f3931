package deckgen

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/deckgen/deckgen/md"
)

var wholePctRe = regexp.MustCompile(`^\d{1,3}%$`)

// heroFontSize steps the hero figure down as the value string grows.
func heroFontSize(value string) float64 {
	switch n := len([]rune(value)); {
	case n <= 4:
		return 80
	case n <= 7:
		return 56
	case n <= 12:
		return 38
	default:
		return 28
	}
}

// buildMetrics renders an extracted hero figure with a progress ring when
// the value is a whole percentage, secondary figures as columns with mini
// bars, and leftover prose as support lines. A tabular body renders as a
// table instead.
func buildMetrics(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	if in.table != nil {
		return append(nodes, tableNodes(in.table, y, in.hasImage)...)
	}
	set := md.ExtractMetrics(in.lines)
	w := contentWidth(in.hasImage)

	if set.Hero != nil {
		size := heroFontSize(set.Hero.Value)
		pct, isPct := wholePct(set.Hero.Value)
		if isPct && size >= 56 {
			// progress ring to the left of the figure
			ringR := 64.0
			cy := y + ringR + 20
			nodes = append(nodes,
				&Ring{CX: pad + ringR, CY: cy, R: ringR, StrokeWidth: 12, Track: Tint(RoleMetric, 0.15), Stroke: Solid(RoleMetric), Fraction: float64(pct) / 100},
				&Text{X: pad + 2*ringR + 36, Y: cy - size*0.7, W: w - 2*ringR - 36, H: size * 1.4, Content: set.Hero.Value, Size: size, Weight: 800, Color: Solid(RoleMetric), LineHeight: 1.2},
			)
			if set.Hero.Label != "" {
				nodes = append(nodes, &Text{X: pad + 2*ringR + 36, Y: cy + size*0.55, W: w - 2*ringR - 36, H: 56, Content: set.Hero.Label, Size: 19, Color: Solid(RoleMuted)})
			}
			y = cy + ringR + 44
		} else {
			// decorative concentric circles behind the hero figure
			ccx := pad + w - 130
			ccy := y + 70
			for i, r := range []float64{120, 84, 52} {
				nodes = append(nodes, &Circle{CX: ccx, CY: ccy, R: r, Stroke: Tint(RoleMetric, 0.16-0.04*float64(i)), StrokeWidth: 2})
			}
			nodes = append(nodes, &Text{X: pad, Y: y, W: w, H: size * 1.4, Content: set.Hero.Value, Size: size, Weight: 800, Color: Solid(RoleMetric), LineHeight: 1.2})
			y += size*1.4 + 8
			if set.Hero.Label != "" {
				h := estTextHeight(set.Hero.Label, 19, w)
				nodes = append(nodes, &Text{X: pad, Y: y, W: w, H: h + 19, Content: set.Hero.Label, Size: 19, Color: Solid(RoleMuted)})
				y += h + 30
			} else {
				y += 22
			}
		}
	}

	secondary := set.Secondary
	if len(secondary) > 3 {
		secondary = secondary[:3]
	}
	if len(secondary) > 0 {
		gap := 28.0
		colW := (w - gap*float64(len(secondary)-1)) / float64(len(secondary))
		colH := 120.0
		for i, m := range secondary {
			x := pad + float64(i)*(colW+gap)
			frac := 0.66
			if pct, ok := wholePct(m.Value); ok {
				frac = float64(pct) / 100
			}
			nodes = append(nodes,
				&Text{X: x, Y: y, W: colW, H: 48, Content: m.Value, Size: 30, Weight: 700, Color: Solid(accentAt(i))},
				&Rect{X: x, Y: y + 52, W: colW, H: 6, Radius: 3, Fill: Tint(accentAt(i), 0.15)},
				&Rect{X: x, Y: y + 52, W: clampDim(colW * clamp(frac, 0.05, 1)), H: 6, Radius: 3, Fill: Solid(accentAt(i))},
			)
			if m.Label != "" {
				nodes = append(nodes, &Text{X: x, Y: y + 70, W: colW, H: colH - 70, Content: m.Label, Size: 14, Color: Solid(RoleMuted)})
			}
		}
		y += colH + 20
	}

	for _, l := range set.Support {
		if y > canvasH-pad-30 {
			break
		}
		h := estTextHeight(l, 16, w)
		nodes = append(nodes, &Text{X: pad, Y: y, W: w, H: h + 16, Content: l, Size: 16, Color: Solid(RoleText)})
		y += h + 10
	}
	return nodes
}

// wholePct parses values like "87%" in [0,100].
func wholePct(v string) (int, bool) {
	if !wholePctRe.MatchString(v) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, "%"))
	if err != nil || n > 100 {
		return 0, false
	}
	return n, true
}
