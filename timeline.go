package deckgen

import (
	"regexp"
	"strings"

	"github.com/deckgen/deckgen/md"
)

var yearRe = regexp.MustCompile(`^((?:Q[1-4]\s+)?(?:19|20)\d{2})\b[:\s-]*`)

// timelineItem is one milestone: a short marker plus its description.
type timelineItem struct {
	marker string
	desc   string
}

// splitMilestone peels a short colon prefix or a leading year off a line.
func splitMilestone(l string, i int) timelineItem {
	if idx := strings.Index(l, ":"); idx > 0 && idx <= 24 {
		return timelineItem{
			marker: strings.TrimSpace(l[:idx]),
			desc:   strings.TrimSpace(l[idx+1:]),
		}
	}
	if m := yearRe.FindStringSubmatch(l); m != nil {
		return timelineItem{
			marker: m[1],
			desc:   strings.TrimSpace(l[len(m[0]):]),
		}
	}
	return timelineItem{marker: ordinal(i), desc: l}
}

func ordinal(i int) string {
	return [...]string{"01", "02", "03", "04", "05", "06", "07", "08"}[i%8]
}

// buildTimeline lays milestones along a horizontal axis. Variant 1 zigzags
// descriptions above and below the axis and needs at least three items;
// thinner content falls back to the even layout.
func buildTimeline(in *composeInput) []Node {
	nodes, y := titleBlock(in.title, in.hasImage, in.mood)
	lines := in.items(md.SplitProseToItems(in.lines, 3), 5)
	if len(lines) == 0 {
		return nodes
	}
	items := make([]timelineItem, len(lines))
	for i, l := range lines {
		items[i] = splitMilestone(l, i)
	}

	variant := in.variant
	if variant == 1 && len(items) < 3 {
		variant = 0
	}

	w := contentWidth(in.hasImage)
	n := float64(len(items))
	step := w / n
	axisY := y + (canvasH-pad-y)/2
	if variant == 0 {
		axisY = y + (canvasH-pad-y)*0.42
	}

	nodes = append(nodes, &Line{
		X1: pad, Y1: axisY, X2: pad + w, Y2: axisY,
		Stroke: Tint(RoleBorder, 0.9), StrokeWidth: 2,
	})
	for i, it := range items {
		cx := pad + step*(float64(i)+0.5)
		colX := cx - step/2 + 10
		colW := step - 20
		nodes = append(nodes,
			&Circle{CX: cx, CY: axisY, R: 9, Fill: Solid(accentAt(i))},
			&Circle{CX: cx, CY: axisY, R: 15, Stroke: Tint(accentAt(i), 0.35), StrokeWidth: 2},
		)
		above := variant == 1 && i%2 == 1
		markerY := axisY + 34.0
		descY := markerY + 32
		if above {
			descH := estTextHeight(it.desc, 15, colW)
			descY = axisY - 34 - descH - 28
			markerY = descY - 34
			if markerY < y {
				markerY = y
				descY = y + 32
			}
		}
		nodes = append(nodes,
			&Text{X: colX, Y: markerY, W: colW, H: 30, Content: it.marker, Size: 17, Weight: 700, Align: "center", Color: Solid(accentAt(i))},
			&Text{X: colX, Y: descY, W: colW, H: axisHalf(axisY, above, y), Content: it.desc, Size: 15, Align: "center", Color: Solid(RoleText)},
		)
	}
	return nodes
}

// axisHalf bounds a milestone description to its side of the axis.
func axisHalf(axisY float64, above bool, top float64) float64 {
	if above {
		return clampDim(axisY - top - 70)
	}
	return clampDim(canvasH - pad - axisY - 70)
}
