package md

import (
	"regexp"
	"strings"
)

// Metric is one extracted figure with its one-line label.
type Metric struct {
	Value string
	Label string
}

// MetricSet is the metrics layout input: at most one hero figure, up to a
// few secondary figures, and whatever prose is left as supporting lines.
type MetricSet struct {
	Hero      *Metric
	Secondary []Metric
	Support   []string
}

var (
	// a line that IS a figure: starts with a currency symbol or digit, or
	// ends in a percent sign
	bareValueRe = regexp.MustCompile(`^([$€£¥]|\d).*$`)
	endsPctRe   = regexp.MustCompile(`%$`)

	// a leading figure with an optional qualifier, followed by label prose,
	// e.g. "Over 40% reduction in onboarding time"
	leadNumRe = regexp.MustCompile(`^((?i:over|up to|nearly|about|approximately)\s+)?([$€£¥]?\d[\d,.]*\s?(?:%|[KMBTkmbt]\b|million|billion|trillion|x)?)\s+(.+)$`)
)

func isBareValue(l string) bool {
	if len([]rune(l)) > 14 {
		return false
	}
	return bareValueRe.MatchString(l) || endsPctRe.MatchString(l)
}

// ExtractMetrics pulls figures out of normalized lines. A standalone value
// on the first line becomes the hero and consumes the next line as its
// label; otherwise the first line with a leading figure and qualifier is
// promoted. Remaining numeric lines become secondary metrics, the rest
// support prose.
func ExtractMetrics(lines []string) MetricSet {
	var set MetricSet
	used := make([]bool, len(lines))

	if len(lines) > 0 && isBareValue(lines[0]) {
		h := Metric{Value: lines[0]}
		used[0] = true
		if len(lines) > 1 {
			h.Label = lines[1]
			used[1] = true
		}
		set.Hero = &h
	} else {
		for i, l := range lines {
			m := leadNumRe.FindStringSubmatch(l)
			if m == nil {
				continue
			}
			val := m[2]
			if m[1] != "" {
				val = strings.TrimSpace(m[1]) + " " + val
			}
			set.Hero = &Metric{Value: val, Label: strings.TrimSpace(m[3])}
			used[i] = true
			break
		}
	}

	for i, l := range lines {
		if used[i] {
			continue
		}
		if m := leadNumRe.FindStringSubmatch(l); m != nil {
			set.Secondary = append(set.Secondary, Metric{
				Value: m[2],
				Label: strings.TrimSpace(m[3]),
			})
			continue
		}
		if isBareValue(l) {
			set.Secondary = append(set.Secondary, Metric{Value: l})
			continue
		}
		set.Support = append(set.Support, l)
	}
	return set
}
