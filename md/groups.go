package md

import (
	"strings"
	"unicode"
)

// Group is one column of a multi-way comparison.
type Group struct {
	Name  string
	Items []string
}

const maxGroups = 4

// DetectGroups tries, in order: explicit "vs" separator lines, alternating
// header/content lines, and uniform one-line groups. The first heuristic
// that yields at least three groups wins; at most four are returned.
func DetectGroups(lines []string) []Group {
	if len(lines) < 3 {
		return nil
	}
	if g := vsGroups(lines); len(g) >= 3 {
		return capGroups(g)
	}
	if g := headerGroups(lines); len(g) >= 3 {
		return capGroups(g)
	}
	if g := uniformGroups(lines); len(g) >= 3 {
		return capGroups(g)
	}
	return nil
}

func capGroups(g []Group) []Group {
	if len(g) > maxGroups {
		return g[:maxGroups]
	}
	return g
}

func isVsLine(l string) bool {
	s := strings.ToLower(strings.TrimSpace(l))
	return s == "vs" || s == "vs."
}

// vsGroups splits on literal "vs"/"vs." separator lines. At least two
// separators are required so the split yields three or more groups.
func vsGroups(lines []string) []Group {
	seps := 0
	for _, l := range lines {
		if isVsLine(l) {
			seps++
		}
	}
	if seps < 2 {
		return nil
	}
	var groups []Group
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			g := Group{Name: cur[0]}
			if len(cur) > 1 {
				g.Items = cur[1:]
			}
			groups = append(groups, g)
			cur = nil
		}
	}
	for _, l := range lines {
		if isVsLine(l) {
			flush()
			continue
		}
		cur = append(cur, l)
	}
	flush()
	if len(groups) < 3 {
		return nil
	}
	return groups
}

// isHeaderLine reports a short, capitalized, punctuation-free line that
// plausibly names a group.
func isHeaderLine(l string) bool {
	r := []rune(l)
	if len(r) == 0 || len(r) >= 35 {
		return false
	}
	if !unicode.IsUpper(r[0]) {
		return false
	}
	return !strings.ContainsAny(l, ".,!?:;")
}

// headerGroups detects alternating header lines followed by content lines.
func headerGroups(lines []string) []Group {
	if !isHeaderLine(lines[0]) {
		return nil
	}
	var groups []Group
	for _, l := range lines {
		if isHeaderLine(l) {
			groups = append(groups, Group{Name: l})
			continue
		}
		if len(groups) == 0 {
			return nil
		}
		groups[len(groups)-1].Items = append(groups[len(groups)-1].Items, l)
	}
	if len(groups) < 3 {
		return nil
	}
	for _, g := range groups {
		if len(g.Items) == 0 {
			return nil
		}
	}
	return groups
}

// uniformGroups treats 3-5 lines of roughly uniform length (0.3x-2.5x of
// the mean) as one-line groups, parsing a name from a leading capitalized
// phrase or a colon prefix.
func uniformGroups(lines []string) []Group {
	n := len(lines)
	if n < 3 || n > 5 {
		return nil
	}
	total := 0
	for _, l := range lines {
		total += len(l)
	}
	mean := float64(total) / float64(n)
	if mean == 0 {
		return nil
	}
	for _, l := range lines {
		ratio := float64(len(l)) / mean
		if ratio < 0.3 || ratio > 2.5 {
			return nil
		}
	}
	groups := make([]Group, 0, n)
	for _, l := range lines {
		groups = append(groups, splitLineGroup(l))
	}
	return groups
}

func splitLineGroup(l string) Group {
	if idx := strings.Index(l, ":"); idx > 0 && idx < 40 {
		return Group{
			Name:  strings.TrimSpace(l[:idx]),
			Items: []string{strings.TrimSpace(l[idx+1:])},
		}
	}
	words := strings.Fields(l)
	taken := 0
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 || !unicode.IsUpper(r[0]) || taken >= 3 {
			break
		}
		taken++
	}
	if taken >= 1 && taken < len(words) {
		return Group{
			Name:  strings.Join(words[:taken], " "),
			Items: []string{strings.Join(words[taken:], " ")},
		}
	}
	return Group{Name: l, Items: []string{l}}
}
