package deckgen

type Slides []*Slide

// Slide is the input unit of the composition engine: semi-structured
// content plus a slide type that selects a geometry builder.
type Slide struct {
	Title    string    `json:"title"`
	Body     string    `json:"body,omitempty"`
	Type     SlideType `json:"type"`
	ImageURL string    `json:"image_url,omitempty"`
}

// SlideType selects one of the composition families. TypePlain (and any
// unknown type) bypasses the engine entirely; the caller owns that routing.
type SlideType string

const (
	TypePlain        SlideType = "plain"
	TypeContent      SlideType = "content"
	TypeQuote        SlideType = "quote"
	TypeCTA          SlideType = "cta"
	TypeTimeline     SlideType = "timeline"
	TypeProcess      SlideType = "process"
	TypeFeatureGrid  SlideType = "feature_grid"
	TypeProblem      SlideType = "problem"
	TypeSolution     SlideType = "solution"
	TypeComparison   SlideType = "comparison"
	TypeMetrics      SlideType = "metrics"
	TypeMarketSize   SlideType = "market_size"
	TypeTeam         SlideType = "team"
	TypeArchitecture SlideType = "architecture"
)

// variantCounts maps slide types to the number of alternative layouts the
// deterministic variant selector may pick from. feature_grid keeps a count
// of 3 for hash stability; its third variant renders as the default grid.
var variantCounts = map[SlideType]int{
	TypeTimeline:    2,
	TypeProcess:     3,
	TypeFeatureGrid: 3,
	TypeProblem:     2,
	TypeSolution:    2,
}

// composableTypes is the set of slide types that route through the engine;
// everything else is the caller's plain-markdown fallback.
var composableTypes = map[SlideType]bool{
	TypeContent:      true,
	TypeQuote:        true,
	TypeCTA:          true,
	TypeTimeline:     true,
	TypeProcess:      true,
	TypeFeatureGrid:  true,
	TypeProblem:      true,
	TypeSolution:     true,
	TypeComparison:   true,
	TypeMetrics:      true,
	TypeMarketSize:   true,
	TypeTeam:         true,
	TypeArchitecture: true,
}

// Composable reports whether t routes through the composition engine.
func Composable(t SlideType) bool {
	return composableTypes[t]
}

// VariantCount returns how many layout variants exist for t (at least 1).
func VariantCount(t SlideType) int {
	if n, ok := variantCounts[t]; ok {
		return n
	}
	return 1
}

func (s *Slide) hasImage() bool {
	return s != nil && s.ImageURL != ""
}
