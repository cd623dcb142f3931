// Package deckgen composes semi-structured slide content into pixel-precise
// HTML+SVG fragments on a fixed 1280x720 canvas. Composition is a pure
// transform: the same slide and palette always produce the same markup.
package deckgen

import (
	"github.com/deckgen/deckgen/md"
)

// composeInput bundles everything a geometry builder needs: the cleaned
// title, the normalized body lines, a parsed table when one exists, the
// detected mood, and the deterministic variant index.
type composeInput struct {
	slide    *Slide
	title    string
	lines    []string
	table    *md.Table
	mood     Mood
	variant  int
	countCap int
	hasImage bool
}

// items applies the title count cap and an absolute maximum to a derived
// item list.
func (in *composeInput) items(lines []string, maxItems int) []string {
	if in.countCap > 0 && len(lines) > in.countCap {
		lines = lines[:in.countCap]
	}
	if maxItems > 0 && len(lines) > maxItems {
		lines = lines[:maxItems]
	}
	return lines
}

// Compose renders one slide to an HTML+SVG fragment. Slide types outside
// the composable set return "" so the caller can route them through its
// plain-markdown fallback. Compose never fails: degenerate input degrades
// to emptier geometry, not to an error.
func Compose(s *Slide, pal Palette) string {
	if s == nil || !Composable(s.Type) {
		return ""
	}
	in := &composeInput{
		slide:    s,
		title:    md.CleanInline(s.Title),
		lines:    md.Normalize(s.Body),
		mood:     detectMood(s.Title, s.Body),
		variant:  layoutVariant(s.Title, s.Body, VariantCount(s.Type)),
		hasImage: s.hasImage(),
	}
	in.countCap = md.TitleCountCap(in.title)
	switch s.Type {
	case TypeComparison, TypeContent, TypeMetrics, TypeProblem, TypeSolution:
		in.table = md.ParseTable(s.Body)
	}

	scene := newScene()
	scene.add(moodDecoration(in.mood, in.hasImage)...)
	scene.add(buildNodes(in)...)
	return renderScene(scene, pal, in.mood, s.ImageURL)
}

func buildNodes(in *composeInput) []Node {
	switch in.slide.Type {
	case TypeQuote:
		return buildQuote(in)
	case TypeCTA:
		return buildCTA(in)
	case TypeTimeline:
		return buildTimeline(in)
	case TypeProcess:
		return buildProcess(in)
	case TypeFeatureGrid:
		return buildFeatureGrid(in)
	case TypeProblem:
		return buildProblem(in)
	case TypeSolution:
		return buildSolution(in)
	case TypeComparison:
		return buildComparison(in)
	case TypeMetrics:
		return buildMetrics(in)
	case TypeMarketSize:
		return buildMarketSize(in)
	case TypeTeam:
		return buildTeam(in)
	case TypeArchitecture:
		return buildArchitecture(in)
	default:
		return buildContent(in)
	}
}
