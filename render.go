package deckgen

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
)

// renderer resolves paints and serializes a scene to an HTML+SVG fragment.
// Role resolution happens exactly once, after mood and contrast decisions,
// so no pass rewrites markup produced by an earlier one.
type renderer struct {
	pal     Palette
	bg      string
	moodHex string // "" when neutral or when the mood color fails the check
	marker  int    // arrow marker id sequence
}

// moodUnified lists roles that collapse to the single mood color when the
// mood wins the luminance check, unifying accents across the whole slide.
func moodUnified(role ColorRole) bool {
	switch role {
	case RoleAccent, RolePrimary, RoleSecondary, RoleSuccess, RoleWarning, RoleError,
		RoleTitle, RoleEmphasis, RoleMetric:
		return true
	}
	return false
}

// resolveHex maps a paint to its base hex color, ignoring alpha.
func (r *renderer) resolveHex(p Paint) string {
	if p.Hex != "" {
		return normalizeHex(p.Hex)
	}
	if r.moodHex != "" && moodUnified(p.Role) {
		return r.moodHex
	}
	return normalizeHex(r.pal.color(p.Role))
}

// fill resolves a paint for shape fills and strokes. Tints render as rgba.
func (r *renderer) fill(p Paint) string {
	if p.isZero() {
		return "none"
	}
	base := r.resolveHex(p)
	alpha := p.Alpha
	if p.Role == RoleMuted && alpha == 0 {
		alpha = 0.7
	}
	if alpha > 0 && alpha < 1 {
		return rgba(base, alpha)
	}
	return base
}

// textColor resolves a paint for text. Tints are pre-blended against the
// background so every text color in the output is a literal hex, and any
// color within 30 luminance of the background is repaired to the palette
// text color.
func (r *renderer) textColor(p Paint) string {
	if p.isZero() {
		p = Solid(RoleText)
	}
	base := r.resolveHex(p)
	alpha := p.Alpha
	if p.Role == RoleMuted && alpha == 0 {
		alpha = 0.7
	}
	if alpha > 0 && alpha < 1 {
		base = blendHex(base, r.bg, alpha)
	}
	if lumDiff(base, r.bg) < 30 {
		base = normalizeHex(r.pal.color(RoleText))
	}
	return base
}

// renderScene serializes a scene for one slide. imageURL, when set, appends
// the right-side image panel just before the closing wrapper tag.
func renderScene(s *Scene, pal Palette, mood Mood, imageURL string) string {
	r := &renderer{pal: pal}
	r.bg = normalizeHex(pal.color(RoleBackground))
	if !s.Background.isZero() {
		r.bg = r.resolveHex(s.Background)
	}
	r.moodHex = moodColor(mood, pal)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="dg-slide" style="position:relative;width:1280px;height:720px;overflow:hidden;background:%s;font-family:'Segoe UI','Helvetica Neue',Arial,sans-serif">`,
		r.bg)
	b.WriteString(`<style>.dg-slide,.dg-slide *{margin:0;padding:0;box-sizing:border-box}</style>`)

	var flat []Node
	s.walk(func(n Node) { flat = append(flat, n) })

	var run []Node
	flush := func() {
		if len(run) > 0 {
			r.writeSVGRun(&b, run)
			run = run[:0]
		}
	}
	for _, n := range flat {
		switch v := n.(type) {
		case *Circle, *Ring, *Line:
			run = append(run, n)
		case *Rect:
			flush()
			r.writeRect(&b, v)
		case *Text:
			flush()
			r.writeText(&b, v)
		}
	}
	flush()

	if imageURL != "" {
		r.writeImagePanel(&b, imageURL)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (r *renderer) writeRect(b *strings.Builder, n *Rect) {
	x := clamp(n.X, 0, canvasW)
	y := clamp(n.Y, 0, canvasH)
	w := clamp(clampDim(n.W), 0, canvasW-x)
	h := clamp(clampDim(n.H), 0, canvasH-y)
	fmt.Fprintf(b, `<div style="position:absolute;left:%spx;top:%spx;width:%spx;height:%spx`,
		px(x), px(y), px(w), px(h))
	if !n.Fill.isZero() {
		fmt.Fprintf(b, ";background:%s", r.fill(n.Fill))
	}
	if n.Radius > 0 {
		fmt.Fprintf(b, ";border-radius:%spx", px(n.Radius))
	}
	if !n.Stroke.isZero() && n.StrokeWidth > 0 {
		fmt.Fprintf(b, ";border:%spx solid %s", px(n.StrokeWidth), r.fill(n.Stroke))
	}
	b.WriteString(`"></div>`)
}

func (r *renderer) writeText(b *strings.Builder, n *Text) {
	x := clamp(n.X, 0, canvasW)
	y := clamp(n.Y, 0, canvasH)
	w := clamp(clampDim(n.W), 0, canvasW-x)
	fmt.Fprintf(b, `<div style="position:absolute;left:%spx;top:%spx;width:%spx`,
		px(x), px(y), px(w))
	if n.H > 0 {
		h := clamp(n.H, 0, canvasH-y)
		fmt.Fprintf(b, ";max-height:%spx;overflow:hidden", px(h))
	}
	size := n.Size
	if size <= 0 {
		size = 16
	}
	fmt.Fprintf(b, ";font-size:%spx", px(size))
	if n.Weight != 0 && n.Weight != 400 {
		fmt.Fprintf(b, ";font-weight:%d", n.Weight)
	}
	if n.Italic {
		b.WriteString(";font-style:italic")
	}
	if n.Align != "" {
		fmt.Fprintf(b, ";text-align:%s", n.Align)
	}
	lh := n.LineHeight
	if lh <= 0 {
		lh = 1.4
	}
	fmt.Fprintf(b, ";line-height:%s;color:%s", trimFloat(lh), r.textColor(n.Color))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(n.Content))
	b.WriteString(`</div>`)
}

// writeSVGRun emits one absolutely positioned SVG layer for a contiguous
// run of vector nodes, with one arrow marker def per distinct stroke color.
func (r *renderer) writeSVGRun(b *strings.Builder, run []Node) {
	b.WriteString(`<svg width="1280" height="720" viewBox="0 0 1280 720" style="position:absolute;left:0;top:0;pointer-events:none">`)

	markers := map[string]string{}
	var defs strings.Builder
	for _, n := range run {
		line, ok := n.(*Line)
		if !ok || !line.Arrow {
			continue
		}
		c := r.fill(line.Stroke)
		if _, ok := markers[c]; ok {
			continue
		}
		id := fmt.Sprintf("dgm%d", r.marker)
		r.marker++
		markers[c] = id
		fmt.Fprintf(&defs,
			`<marker id="%s" markerWidth="8" markerHeight="8" refX="7" refY="4" orient="auto"><path d="M0,0 L8,4 L0,8 z" fill="%s"/></marker>`,
			id, c)
	}
	if defs.Len() > 0 {
		b.WriteString("<defs>")
		b.WriteString(defs.String())
		b.WriteString("</defs>")
	}

	for _, n := range run {
		switch v := n.(type) {
		case *Circle:
			fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s"`,
				px(v.CX), px(v.CY), px(clampDim(v.R)), r.fill(v.Fill))
			if !v.Stroke.isZero() && v.StrokeWidth > 0 {
				fmt.Fprintf(b, ` stroke="%s" stroke-width="%s"`, r.fill(v.Stroke), px(v.StrokeWidth))
			}
			b.WriteString(`/>`)
		case *Ring:
			radius := clampDim(v.R)
			circ := 2 * math.Pi * radius
			frac := clamp(v.Fraction, 0, 1)
			fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`,
				px(v.CX), px(v.CY), px(radius), r.fill(v.Track), px(v.StrokeWidth))
			fmt.Fprintf(b,
				`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-dasharray="%s" stroke-dashoffset="%s" transform="rotate(-90 %s %s)"/>`,
				px(v.CX), px(v.CY), px(radius), r.fill(v.Stroke), px(v.StrokeWidth),
				px(circ), px(circ*(1-frac)), px(v.CX), px(v.CY))
		case *Line:
			fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"`,
				px(v.X1), px(v.Y1), px(v.X2), px(v.Y2), r.fill(v.Stroke), px(v.StrokeWidth))
			if v.Dash != "" {
				fmt.Fprintf(b, ` stroke-dasharray="%s"`, v.Dash)
			}
			if v.Arrow {
				fmt.Fprintf(b, ` marker-end="url(#%s)"`, markers[r.fill(v.Stroke)])
			}
			b.WriteString(`/>`)
		}
	}
	b.WriteString(`</svg>`)
}

// writeImagePanel appends the right-aligned 30%-width image panel with a
// left-edge gradient fading into the slide background.
func (r *renderer) writeImagePanel(b *strings.Builder, imageURL string) {
	u := html.EscapeString(imageURL)
	fmt.Fprintf(b,
		`<div style="position:absolute;top:0;right:0;width:384px;height:720px;background-image:url('%s');background-size:cover;background-position:center"></div>`,
		u)
	fmt.Fprintf(b,
		`<div style="position:absolute;top:0;right:0;width:384px;height:720px;background:linear-gradient(to right,%s 0%%,%s 45%%)"></div>`,
		r.bg, rgba(r.bg, 0))
}

// px formats a pixel value with at most two decimals and no trailing zeros.
func px(f float64) string {
	f = math.Round(f*100) / 100
	if f == 0 {
		f = 0 // normalize -0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func trimFloat(f float64) string {
	f = math.Round(f*1000) / 1000
	return strconv.FormatFloat(f, 'f', -1, 64)
}
