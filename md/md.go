// Package md turns loosely structured markdown slide content into the
// typed intermediate values the composition engine consumes: cleaned line
// lists, tables, comparison groups, and hero metrics. It also parses whole
// deck files (pages separated by ---) for the CLI.
package md

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"github.com/k1LoW/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MaxLines is the hard cap on normalized body lines. It is an output-size
// contract, not a hint.
const MaxLines = 8

var (
	bulletRe   = regexp.MustCompile(`^[-•*→►▸➜]\s+`)
	ruleRe     = regexp.MustCompile(`^-{3,}$`)
	headingRe  = regexp.MustCompile(`^#{1,6}\s`)
	sourcesRe  = regexp.MustCompile(`(?i)^sources?:`)
	htmlTagRe  = regexp.MustCompile(`<[^>]*>`)
	tableSepRe = regexp.MustCompile(`^\|?[\s:|-]+\|?$`)
)

// Normalize turns a slide body into a cleaned, capped line list: markdown
// and bullet glyphs stripped, table separators and source attributions
// dropped, pipe rows rejoined with em-dashes so downstream heuristics can
// treat them as plain text when no table is detected.
func Normalize(body string) []string {
	var out []string
	for _, raw := range strings.Split(body, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || ruleRe.MatchString(line) {
			continue
		}
		if strings.HasPrefix(line, "|") {
			if tableSepRe.MatchString(line) && strings.Contains(line, "-") {
				continue
			}
			line = joinCells(line)
		}
		if headingRe.MatchString(line) {
			continue
		}
		line = bulletRe.ReplaceAllString(line, "")
		line = CleanInline(line)
		line = htmlTagRe.ReplaceAllString(line, "")
		line = strings.TrimSpace(line)
		if line == "" || sourcesRe.MatchString(line) {
			continue
		}
		out = append(out, line)
		if len(out) == MaxLines {
			break
		}
	}
	return out
}

// joinCells strips the pipes from a table row and rejoins the cells with an
// em-dash separator.
func joinCells(line string) string {
	var cells []string
	for _, c := range strings.Split(strings.Trim(line, "|"), "|") {
		c = strings.TrimSpace(c)
		if c != "" {
			cells = append(cells, c)
		}
	}
	return strings.Join(cells, " — ")
}

// CleanInline strips markdown emphasis, heading markers, links, and inline
// HTML from a single line by walking the goldmark AST and keeping only the
// text content.
func CleanInline(s string) string {
	if s == "" {
		return ""
	}
	src := []byte(s)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			b.Write(v.URL(src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// SplitProseToItems manufactures discrete items for layouts that need a
// minimum cardinality. Lines longer than 80 characters are split on
// sentence boundaries, but only when the natural count is insufficient; the
// result never drops below the original count.
func SplitProseToItems(lines []string, minItems int) []string {
	if len(lines) >= minItems {
		return lines
	}
	long := false
	for _, l := range lines {
		if len(l) > 80 {
			long = true
			break
		}
	}
	if !long {
		return lines
	}
	var out []string
	for _, l := range lines {
		if len(l) > 80 {
			out = append(out, splitSentences(l)...)
		} else {
			out = append(out, l)
		}
	}
	if len(out) < len(lines) {
		return lines
	}
	return out
}

func splitSentences(s string) []string {
	var out []string
	for _, p := range strings.SplitAfter(s, ". ") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var numberWords = map[string]int{
	"two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8,
}

// TitleCountCap scans a title for a spelled-out number word (two..eight) or
// a digit in [2,8]. Item lists are truncated to that count so a title like
// "Three Pillars of Growth" never renders a fourth card. Returns 0 when the
// title implies no cap.
func TitleCountCap(title string) int {
	for _, w := range strings.Fields(strings.ToLower(title)) {
		w = strings.Trim(w, ".,:;!?()\"'")
		if n, ok := numberWords[w]; ok {
			return n
		}
		if len(w) == 1 && w[0] >= '2' && w[0] <= '8' {
			return int(w[0] - '0')
		}
	}
	return 0
}

// Deck is a parsed deck file: optional frontmatter plus one page per
// ---separated section.
type Deck struct {
	Frontmatter *Frontmatter
	Pages       []*Page
}

// Page is one slide's authored content before composition.
type Page struct {
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	Type     string `json:"type,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// pageConfig is the per-page HTML comment config, e.g.
// <!-- {"type": "timeline"} -->.
type pageConfig struct {
	Type  string `json:"type,omitempty"`
	Image string `json:"image,omitempty"`
}

// ParseFile parses a deck markdown file.
func ParseFile(f string) (_ *Deck, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

// Parse splits a deck source on --- page separators and parses each page.
func Parse(b []byte) (_ *Deck, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	fm, rest := splitFrontmatter(b)
	deck := &Deck{Frontmatter: fm}
	sections := strings.Split("\n"+string(rest), "\n---\n")
	for _, sec := range sections {
		sec = strings.TrimSpace(sec)
		if sec == "" {
			continue
		}
		page, err := parsePage(sec)
		if err != nil {
			return nil, err
		}
		deck.Pages = append(deck.Pages, page)
	}
	return deck, nil
}

var (
	commentRe = regexp.MustCompile(`^<!--(.*)-->$`)
	imageRe   = regexp.MustCompile(`^!\[[^\]]*\]\(([^)\s]+)[^)]*\)$`)
)

// parsePage extracts the title (first # heading), per-page comment config,
// and the first standalone image; the remainder is the body.
func parsePage(sec string) (*Page, error) {
	page := &Page{}
	var body []string
	for _, raw := range strings.Split(sec, "\n") {
		line := strings.TrimSpace(raw)
		if page.Title == "" && strings.HasPrefix(line, "# ") {
			page.Title = CleanInline(line)
			continue
		}
		if m := commentRe.FindStringSubmatch(line); m != nil {
			cfg := &pageConfig{}
			if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), cfg); err == nil {
				if cfg.Type != "" {
					page.Type = cfg.Type
				}
				if cfg.Image != "" {
					page.ImageURL = cfg.Image
				}
			}
			continue
		}
		if m := imageRe.FindStringSubmatch(line); m != nil {
			if page.ImageURL == "" {
				page.ImageURL = m[1]
			}
			continue
		}
		body = append(body, raw)
	}
	page.Body = strings.TrimSpace(strings.Join(body, "\n"))
	return page, nil
}
