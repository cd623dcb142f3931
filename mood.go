package deckgen

import (
	"regexp"
	"strings"
)

// Mood is a derived content classification used to pick a unifying
// decorative treatment. It is never persisted.
type Mood string

const (
	MoodGrowth   Mood = "growth"
	MoodRisk     Mood = "risk"
	MoodTech     Mood = "tech"
	MoodPeople   Mood = "people"
	MoodStrategy Mood = "strategy"
	MoodNeutral  Mood = "neutral"
)

// moodKeywords are evaluated in priority order; ties favor the earlier set.
var moodKeywords = []struct {
	mood Mood
	re   *regexp.Regexp
}{
	{MoodGrowth, regexp.MustCompile(`\b(growth|grow|grew|increase|revenue|profit|scale|scaling|expand|expansion|accelerate|accelerating|momentum|surge|soar|double|triple|gain)\b`)},
	{MoodRisk, regexp.MustCompile(`\b(risk|risks|threat|challenge|challenges|problem|problems|decline|loss|losses|churn|fail|failure|failing|vulnerability|vulnerable|crisis|warning|danger|obstacle|downturn)\b`)},
	{MoodTech, regexp.MustCompile(`\b(ai|ml|machine learning|platform|api|apis|cloud|data|software|infrastructure|automation|algorithm|algorithms|digital|technology|tech|integration|architecture)\b`)},
	{MoodPeople, regexp.MustCompile(`\b(team|teams|people|culture|talent|hiring|customer|customers|community|user|users|employee|employees|leadership|partner|partners|partnership|collaborate|collaboration)\b`)},
	{MoodStrategy, regexp.MustCompile(`\b(strategy|strategic|roadmap|vision|mission|plan|plans|milestone|milestones|objective|objectives|goal|goals|priority|priorities|initiative|initiatives|focus)\b`)},
}

// detectMood classifies title+body by keyword frequency. The strictly
// highest match count wins; zero matches across all sets means neutral.
func detectMood(title, body string) Mood {
	if len(body) > 500 {
		body = body[:500]
	}
	text := strings.ToLower(title + " " + body)

	best := MoodNeutral
	bestCount := 0
	for _, kw := range moodKeywords {
		n := len(kw.re.FindAllString(text, -1))
		if n > bestCount {
			best = kw.mood
			bestCount = n
		}
	}
	return best
}

// moodRole maps a mood to the palette role whose color unifies the slide's
// accents when the mood wins the contrast check.
func moodRole(m Mood) ColorRole {
	switch m {
	case MoodGrowth:
		return RoleSuccess
	case MoodRisk:
		return RoleError
	case MoodTech:
		return RoleAccent
	case MoodPeople:
		return RoleSecondary
	case MoodStrategy:
		return RolePrimary
	}
	return RoleNone
}

// moodColor returns the unifying color for m, or "" when the mood is
// neutral or the candidate lacks the required luminance distance (>=40)
// from the slide background.
func moodColor(m Mood, pal Palette) string {
	role := moodRole(m)
	if role == RoleNone {
		return ""
	}
	c := pal.color(role)
	if lumDiff(c, pal.color(RoleBackground)) < 40 {
		return ""
	}
	return c
}

// moodDecoration returns the decorative background shapes for a mood. The
// shapes sit under the slide content and use low-alpha accent paints so the
// paint resolver keeps them on-mood.
func moodDecoration(m Mood, hasImage bool) []Node {
	right := usableWidth(hasImage)
	switch m {
	case MoodGrowth:
		// ascending bars, bottom right of the content column
		var nodes []Node
		for i := 0; i < 4; i++ {
			h := 60.0 + float64(i)*45
			nodes = append(nodes, &Rect{
				X: right - 210 + float64(i)*48, Y: canvasH - 40 - h,
				W: 32, H: h, Radius: 4,
				Fill: Tint(RoleEmphasis, 0.08),
			})
		}
		return nodes
	case MoodRisk:
		return []Node{
			&Circle{CX: right - 110, CY: 130, R: 150, Stroke: Tint(RoleEmphasis, 0.1), StrokeWidth: 2},
			&Circle{CX: right - 110, CY: 130, R: 95, Stroke: Tint(RoleEmphasis, 0.08), StrokeWidth: 2},
			&Rect{X: 0, Y: 0, W: right, H: 6, Fill: Tint(RoleEmphasis, 0.15)},
		}
	case MoodTech:
		var nodes []Node
		for row := 0; row < 3; row++ {
			for col := 0; col < 4; col++ {
				nodes = append(nodes, &Circle{
					CX: right - 190 + float64(col)*44, CY: 70 + float64(row)*44, R: 4,
					Fill: Tint(RoleEmphasis, 0.12),
				})
			}
		}
		nodes = append(nodes, &Line{
			X1: right - 190, Y1: 158, X2: right - 58, Y2: 70,
			Stroke: Tint(RoleEmphasis, 0.08), StrokeWidth: 2,
		})
		return nodes
	case MoodPeople:
		return []Node{
			&Circle{CX: right - 150, CY: canvasH - 110, R: 110, Fill: Tint(RoleEmphasis, 0.06)},
			&Circle{CX: right - 70, CY: canvasH - 150, R: 80, Fill: Tint(RoleEmphasis, 0.08)},
		}
	case MoodStrategy:
		return []Node{
			&Circle{CX: right - 120, CY: canvasH - 130, R: 130, Stroke: Tint(RoleEmphasis, 0.08), StrokeWidth: 2},
			&Line{X1: right - 250, Y1: canvasH - 130, X2: right + 10, Y2: canvasH - 130, Stroke: Tint(RoleEmphasis, 0.06), StrokeWidth: 2},
			&Line{X1: right - 120, Y1: canvasH - 260, X2: right - 120, Y2: canvasH, Stroke: Tint(RoleEmphasis, 0.06), StrokeWidth: 2},
		}
	}
	return nil
}
