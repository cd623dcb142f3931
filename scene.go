package deckgen

// The scene graph is the engine's only output unit before serialization.
// Primitives carry semantic color roles instead of literal colors; a single
// resolve pass in render.go maps roles to palette (or mood) colors after
// mood and contrast decisions are final, so no stage ever rewrites markup
// produced by an earlier one.

// ColorRole names the semantic slot a paint resolves from.
type ColorRole int

const (
	RoleNone ColorRole = iota
	RolePrimary
	RoleSecondary
	RoleAccent
	RoleBackground
	RoleText
	RoleSurface
	RoleBorder
	RoleSuccess
	RoleWarning
	RoleError
	// derived roles remapped by mood when the mood color passes the
	// luminance check against the background
	RoleTitle
	RoleEmphasis
	RoleMetric
	// text at reduced prominence; resolves to the text color at 0.7 alpha
	RoleMuted
)

// Paint is either a role reference or a literal hex color, with an optional
// alpha. The zero Paint renders as "none".
type Paint struct {
	Role  ColorRole
	Hex   string
	Alpha float64 // 0 means opaque
}

// Solid paints with a role at full opacity.
func Solid(role ColorRole) Paint { return Paint{Role: role} }

// Tint paints with a role at the given alpha.
func Tint(role ColorRole, alpha float64) Paint { return Paint{Role: role, Alpha: alpha} }

// HexPaint paints with a literal color.
func HexPaint(hex string) Paint { return Paint{Hex: hex} }

func (p Paint) isZero() bool { return p.Role == RoleNone && p.Hex == "" }

// Node is a geometry primitive positioned absolutely on the 1280x720
// canvas.
type Node interface {
	isNode()
}

// Rect is an absolutely positioned rectangle, rendered as a div.
type Rect struct {
	X, Y, W, H  float64
	Radius      float64
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
}

// Text is an overflow-safe text block rendered as a div. When H > 0 the
// block gets max-height and overflow:hidden so truncation is silent.
type Text struct {
	X, Y, W, H float64
	Content    string
	Size       float64
	Weight     int // CSS font-weight; 0 means 400
	Italic     bool
	Align      string // "", "center", "right"
	Color      Paint
	LineHeight float64 // 0 means 1.4
}

// Circle is an SVG circle; set Stroke with zero Fill for a plain ring.
type Circle struct {
	CX, CY, R   float64
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
}

// Ring is an SVG progress ring: a full track plus an arc covering Fraction
// of the circumference via stroke-dasharray/-dashoffset.
type Ring struct {
	CX, CY, R   float64
	StrokeWidth float64
	Track       Paint
	Stroke      Paint
	Fraction    float64 // clamped to [0,1]
}

// Line is an SVG line, optionally terminated by an arrow marker.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         Paint
	StrokeWidth    float64
	Dash           string
	Arrow          bool
}

// Group renders its children in order.
type Group struct {
	Nodes []Node
}

func (*Rect) isNode()   {}
func (*Text) isNode()   {}
func (*Circle) isNode() {}
func (*Ring) isNode()   {}
func (*Line) isNode()   {}
func (*Group) isNode()  {}

// Scene is one slide's primitive tree plus its background paint.
type Scene struct {
	Background Paint
	Nodes      []Node
}

func newScene(nodes ...Node) *Scene {
	return &Scene{Background: Solid(RoleBackground), Nodes: nodes}
}

func (s *Scene) add(nodes ...Node) {
	s.Nodes = append(s.Nodes, nodes...)
}

// walk visits every non-group node in document order.
func (s *Scene) walk(fn func(Node)) {
	var visit func(nodes []Node)
	visit = func(nodes []Node) {
		for _, n := range nodes {
			if g, ok := n.(*Group); ok {
				visit(g.Nodes)
				continue
			}
			fn(n)
		}
	}
	visit(s.Nodes)
}
