package md

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "bullets stripped",
			in:   "- First\n* Second\n→ Third\n► Fourth",
			want: []string{"First", "Second", "Third", "Fourth"},
		},
		{
			name: "headings and rules dropped",
			in:   "## Section\n---\nKeep this",
			want: []string{"Keep this"},
		},
		{
			name: "table rows joined with em-dashes",
			in:   "| Region | Growth |\n|---|---|\n| NA | 12% |",
			want: []string{"Region — Growth", "NA — 12%"},
		},
		{
			name: "sources dropped",
			in:   "A real line\nSources: Gartner 2024\nsource: internal",
			want: []string{"A real line"},
		},
		{
			name: "inline markdown cleaned",
			in:   "**Bold** text with [link](https://example.com)",
			want: []string{"Bold text with link"},
		},
		{
			name: "inline html stripped",
			in:   "<span>html</span> tag",
			want: []string{"html tag"},
		},
		{
			name: "blank lines skipped",
			in:   "one\n\n\ntwo",
			want: []string{"one", "two"},
		},
		{
			name: "capped at eight lines",
			in:   "1\n2\n3\n4\n5\n6\n7\n8\n9\n10",
			want: []string{"1", "2", "3", "4", "5", "6", "7", "8"},
		},
		{
			name: "empty body",
			in:   "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestCleanInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold** and *italic*", "bold and italic"},
		{"# Heading text", "Heading text"},
		{"[label](https://example.com)", "label"},
		{"<https://example.com>", "https://example.com"},
		{"`code` span", "code span"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CleanInline(tt.in); got != tt.want {
				t.Errorf("CleanInline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitProseToItems(t *testing.T) {
	long := "The platform handles ingest at scale. It also keeps latency predictable under sustained multi-tenant load."
	tests := []struct {
		name     string
		lines    []string
		minItems int
		want     []string
	}{
		{
			name:     "enough items already",
			lines:    []string{"a", "b", "c"},
			minItems: 3,
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "short lines never split",
			lines:    []string{"a", "b"},
			minItems: 3,
			want:     []string{"a", "b"},
		},
		{
			name:     "long line splits on sentences",
			lines:    []string{long},
			minItems: 3,
			want: []string{
				"The platform handles ingest at scale.",
				"It also keeps latency predictable under sustained multi-tenant load.",
			},
		},
		{
			name:     "short line kept alongside split",
			lines:    []string{"Context first", long},
			minItems: 3,
			want: []string{
				"Context first",
				"The platform handles ingest at scale.",
				"It also keeps latency predictable under sustained multi-tenant load.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitProseToItems(tt.lines, tt.minItems)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestTitleCountCap(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"Three Pillars of Growth", 3},
		{"Top 5 Risks", 5},
		{"four steps, one goal", 4},
		{"Eight reasons to switch", 8},
		{"Overview", 0},
		{"12 months in review", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := TitleCountCap(tt.title); got != tt.want {
				t.Errorf("TitleCountCap(%q) = %d, want %d", tt.title, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	in := []byte(`---
title: My Deck
theme: midnight
---
# First Slide
<!-- {"type": "metrics"} -->
87%
retention

---
# Second Slide
![chart](https://example.com/img.png)
Body line
`)
	deck, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if deck.Frontmatter == nil {
		t.Fatal("expected frontmatter")
	}
	if deck.Frontmatter.Title != "My Deck" || deck.Frontmatter.Theme != "midnight" {
		t.Errorf("unexpected frontmatter: %+v", deck.Frontmatter)
	}
	want := []*Page{
		{Title: "First Slide", Body: "87%\nretention", Type: "metrics"},
		{Title: "Second Slide", Body: "Body line", ImageURL: "https://example.com/img.png"},
	}
	if diff := cmp.Diff(want, deck.Pages); diff != "" {
		t.Error(diff)
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	deck, err := Parse([]byte("# Only Slide\nhello"))
	if err != nil {
		t.Fatal(err)
	}
	if deck.Frontmatter != nil {
		t.Errorf("expected no frontmatter, got %+v", deck.Frontmatter)
	}
	if len(deck.Pages) != 1 || deck.Pages[0].Title != "Only Slide" || deck.Pages[0].Body != "hello" {
		t.Errorf("unexpected pages: %+v", deck.Pages)
	}
}

func FuzzNormalize(f *testing.F) {
	f.Add("# Title\n\n- A\n- B\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\nSources: x")
	f.Add("")
	f.Add(strings.Repeat("line\n", 40))
	f.Fuzz(func(t *testing.T, in string) {
		got := Normalize(in)
		if len(got) > MaxLines {
			t.Errorf("Normalize produced %d lines, max %d", len(got), MaxLines)
		}
		for _, l := range got {
			if strings.TrimSpace(l) == "" {
				t.Error("Normalize produced a blank line")
			}
		}
	})
}
