package deckgen

import (
	"regexp"
	"strings"
	"testing"
)

var allComposable = []SlideType{
	TypeContent, TypeQuote, TypeCTA, TypeTimeline, TypeProcess,
	TypeFeatureGrid, TypeProblem, TypeSolution, TypeComparison,
	TypeMetrics, TypeMarketSize, TypeTeam, TypeArchitecture,
}

func TestComposeDeterministic(t *testing.T) {
	for _, typ := range allComposable {
		s := &Slide{
			Title: "Quarterly Review",
			Body:  "First point here\nSecond point follows\nThird point closes",
			Type:  typ,
		}
		a := Compose(s, DefaultPalette)
		b := Compose(s, DefaultPalette)
		if a != b {
			t.Errorf("Compose not deterministic for type %s", typ)
		}
		if a == "" {
			t.Errorf("Compose returned empty output for type %s", typ)
		}
	}
}

func TestComposeNonComposable(t *testing.T) {
	for _, typ := range []SlideType{TypePlain, SlideType("unknown"), SlideType("")} {
		s := &Slide{Title: "t", Body: "b", Type: typ}
		if got := Compose(s, DefaultPalette); got != "" {
			t.Errorf("Compose(%q) should bypass, got output", typ)
		}
	}
	if got := Compose(nil, DefaultPalette); got != "" {
		t.Error("Compose(nil) should return empty")
	}
}

func TestComposeCanvasFrame(t *testing.T) {
	for _, typ := range allComposable {
		s := &Slide{Title: "Title", Body: "one\ntwo\nthree", Type: typ}
		out := Compose(s, DefaultPalette)
		if !strings.HasPrefix(out, `<div class="dg-slide"`) {
			t.Errorf("type %s: output missing slide wrapper", typ)
		}
		if !strings.Contains(out, "width:1280px;height:720px") {
			t.Errorf("type %s: output missing canvas dimensions", typ)
		}
	}
}

var textColorRe = regexp.MustCompile(`color:(#[0-9a-f]{6})`)

func TestComposeTextContrast(t *testing.T) {
	palettes := map[string]Palette{
		"default": DefaultPalette,
		"dark": {
			Primary:    "#7aa2f7",
			Secondary:  "#bb9af7",
			Accent:     "#7dcfff",
			Background: "#1a1b26",
			Text:       "#c0caf5",
			Surface:    "#24283b",
			Border:     "#3b4261",
			Success:    "#9ece6a",
			Warning:    "#e0af68",
			Error:      "#f7768e",
		},
	}
	bodies := []string{
		"First point here\nSecond point follows\nThird point closes",
		"87%\ncustomer retention\n12 new markets",
		"2019: Founded\n2020: Seed round\n2021: Series A",
	}
	for name, pal := range palettes {
		bg := normalizeHex(pal.Background)
		for _, typ := range allComposable {
			for _, body := range bodies {
				s := &Slide{Title: "Revenue growth accelerating", Body: body, Type: typ}
				out := Compose(s, pal)
				for _, m := range textColorRe.FindAllStringSubmatch(out, -1) {
					if lumDiff(m[1], bg) < 30 {
						t.Errorf("palette %s type %s: text color %s too close to background %s",
							name, typ, m[1], bg)
					}
				}
			}
		}
	}
}

func TestComposeTimelineMarkers(t *testing.T) {
	s := &Slide{
		Title: "Company history",
		Body:  "2019: Founded in a garage\n2020: Seed round closed\n2021: Series A closed",
		Type:  TypeTimeline,
	}
	out := Compose(s, DefaultPalette)
	for _, year := range []string{"2019", "2020", "2021"} {
		if !strings.Contains(out, year) {
			t.Errorf("timeline output missing marker %s", year)
		}
	}
	if !strings.Contains(out, "<line") {
		t.Error("timeline output missing the axis line")
	}
}

func TestComposeMetricsRing(t *testing.T) {
	s := &Slide{
		Title: "Retention",
		Body:  "87%\ncustomer retention",
		Type:  TypeMetrics,
	}
	out := Compose(s, DefaultPalette)
	if !strings.Contains(out, "stroke-dasharray") {
		t.Error("whole-percentage hero should render a progress ring")
	}
	if !strings.Contains(out, "87%") {
		t.Error("hero value missing from output")
	}
}

func TestComposeQuoteAttribution(t *testing.T) {
	s := &Slide{
		Title: "",
		Body:  "Simplicity is the ultimate sophistication — Leonardo da Vinci",
		Type:  TypeQuote,
	}
	out := Compose(s, DefaultPalette)
	if !strings.Contains(out, "font-style:italic") {
		t.Error("quote body should render italic")
	}
	if !strings.Contains(out, "— Leonardo da Vinci") {
		t.Error("attribution should render with its dash prefix")
	}
	if !strings.Contains(out, "Simplicity is the ultimate sophistication") {
		t.Error("quote text missing from output")
	}
}

func TestComposeTitleCountCap(t *testing.T) {
	s := &Slide{
		Title: "Three pillars",
		Body:  "Alpha: first\nBeta: second\nGamma: third\nDelta: fourth\nEpsilon: fifth",
		Type:  TypeFeatureGrid,
	}
	out := Compose(s, DefaultPalette)
	for _, want := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected item %s in output", want)
		}
	}
	for _, drop := range []string{"Delta", "Epsilon"} {
		if strings.Contains(out, drop) {
			t.Errorf("item %s should have been capped by the title count", drop)
		}
	}
}

func TestComposeComparisonGroups(t *testing.T) {
	s := &Slide{
		Title: "Plans",
		Body:  "Starter\nFor individuals getting started.\nPro\nFor teams that ship weekly.\nEnterprise\nFor orgs with compliance needs.",
		Type:  TypeComparison,
	}
	out := Compose(s, DefaultPalette)
	for _, want := range []string{"Starter", "Pro", "Enterprise"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected group %s in output", want)
		}
	}
	if strings.Contains(out, ">VS<") {
		t.Error("three detected groups should not fall back to the versus layout")
	}
}

func TestComposeComparisonVersus(t *testing.T) {
	s := &Slide{
		Title: "Before and after",
		Body:  "Manual deploys took hours\nAutomated deploys take minutes",
		Type:  TypeComparison,
	}
	out := Compose(s, DefaultPalette)
	if !strings.Contains(out, ">VS<") {
		t.Error("two-sided content should render the versus badge")
	}
}

func TestComposeComparisonVersusSeparator(t *testing.T) {
	s := &Slide{
		Title: "Head to head",
		Body:  "Alpha\nFast\nCheap\nvs\nBeta\nSlow\nExpensive",
		Type:  TypeComparison,
	}
	out := Compose(s, DefaultPalette)
	if strings.Contains(out, ">vs<") {
		t.Error("the vs separator line must not render as content")
	}
	if !strings.Contains(out, ">VS<") {
		t.Error("expected the versus badge")
	}
	for _, want := range []string{"Alpha", "Fast", "Cheap", "Beta", "Slow", "Expensive"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output", want)
		}
	}
	// the sides split on the separator, not at the midpoint
	if strings.Index(out, "Alpha") > strings.Index(out, "Beta") {
		t.Error("Alpha should render on the left panel, before Beta")
	}
}

func TestComposeProblemTable(t *testing.T) {
	s := &Slide{
		Title: "Where it hurts",
		Body:  "| Issue | Impact |\n|---|---|\n| Slow builds | 40 min waits |\n| Flaky tests | Re-runs |",
		Type:  TypeProblem,
	}
	out := Compose(s, DefaultPalette)
	if strings.Contains(out, "Issue — Impact") {
		t.Error("tabular body should render as a table, not joined pseudo-rows")
	}
	for _, want := range []string{"Issue", "Impact", "Slow builds", "Flaky tests"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table cell %s in output", want)
		}
	}
}

func TestComposeMetricsDecorativeCircles(t *testing.T) {
	s := &Slide{
		Title: "Big number",
		Body:  "$4.2B\nin processed volume",
		Type:  TypeMetrics,
	}
	out := Compose(s, DefaultPalette)
	if strings.Contains(out, "stroke-dasharray") {
		t.Error("a non-percentage hero should not render a progress ring")
	}
	if strings.Count(out, "<circle") < 3 {
		t.Error("expected decorative concentric circles behind the hero")
	}
}

func TestComposeImageSlide(t *testing.T) {
	s := &Slide{
		Title:    "With image",
		Body:     "one\ntwo",
		Type:     TypeContent,
		ImageURL: "https://example.com/x.png",
	}
	out := Compose(s, DefaultPalette)
	if !strings.Contains(out, "background-image:url('https://example.com/x.png')") {
		t.Error("image slide should render the right-side panel")
	}
}

func TestComposeEmptyBody(t *testing.T) {
	for _, typ := range allComposable {
		s := &Slide{Title: "Only a title", Body: "", Type: typ}
		out := Compose(s, DefaultPalette)
		if out == "" {
			t.Errorf("type %s: empty body should still render the frame", typ)
		}
		if !strings.Contains(out, "Only a title") {
			t.Errorf("type %s: title missing from output", typ)
		}
	}
}

func TestComposeDegenerateInput(t *testing.T) {
	inputs := []*Slide{
		{Title: "", Body: "", Type: TypeContent},
		{Title: strings.Repeat("x", 500), Body: strings.Repeat("y\n", 200), Type: TypeProcess},
		{Title: "emoji 🚀 title", Body: "emoji 🎯 body", Type: TypeFeatureGrid},
	}
	for _, s := range inputs {
		out := Compose(s, DefaultPalette)
		if !strings.HasPrefix(out, `<div class="dg-slide"`) {
			t.Errorf("degenerate input should still produce a framed slide")
		}
	}
}

func FuzzCompose(f *testing.F) {
	f.Add("Quarterly Review", "one\ntwo\nthree", 0)
	f.Add("", "", 3)
	f.Add("Three pillars", "87%\nretention", 9)
	f.Fuzz(func(t *testing.T, title, body string, typeIdx int) {
		if typeIdx < 0 {
			typeIdx = -typeIdx
		}
		typ := allComposable[typeIdx%len(allComposable)]
		s := &Slide{Title: title, Body: body, Type: typ}
		a := Compose(s, DefaultPalette)
		b := Compose(s, DefaultPalette)
		if a != b {
			t.Fatalf("Compose not deterministic for type %s", typ)
		}
		if !strings.HasPrefix(a, `<div class="dg-slide"`) {
			t.Fatalf("Compose output missing wrapper for type %s", typ)
		}
	})
}
