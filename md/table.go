package md

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Table is a parsed tabular block: headers, data rows padded/truncated to
// the header width, plus the prose around the table.
type Table struct {
	Headers  []string
	Rows     [][]string
	LeadText string
	Takeaway string
	Source   string
}

// ParseTable detects a pipe-delimited markdown table in the body via
// goldmark's table extension, or falls back to an em-dash pseudo-table when
// no literal pipes survive. Returns nil when the body holds no table.
func ParseTable(body string) *Table {
	if t := parsePipeTable(body); t != nil {
		return t
	}
	return parsePseudoTable(body)
}

func parsePipeTable(body string) *Table {
	src := []byte(body)
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := gm.Parser().Parse(text.NewReader(src))

	table := &Table{}
	found := false
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch v := child.(type) {
		case *east.Table:
			if found {
				continue
			}
			found = true
			for row := v.FirstChild(); row != nil; row = row.NextSibling() {
				cells := rowCells(row, src)
				if _, isHeader := row.(*east.TableHeader); isHeader && table.Headers == nil {
					table.Headers = cells
					continue
				}
				table.Rows = append(table.Rows, cells)
			}
		case *ast.Heading:
			if found && v.Level == 3 && table.Takeaway == "" {
				table.Takeaway = CleanInline(string(v.Lines().Value(src)))
			}
		case *ast.Paragraph:
			txt := CleanInline(string(v.Lines().Value(src)))
			switch {
			case sourcesRe.MatchString(txt):
				table.Source = strings.TrimSpace(sourcesRe.ReplaceAllString(txt, ""))
			case !found && table.LeadText == "":
				table.LeadText = txt
			}
		}
	}
	if !found || len(table.Headers) == 0 || len(table.Rows) == 0 {
		return nil
	}
	table.square()
	return table
}

func rowCells(row ast.Node, src []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*east.TableCell); ok {
			cells = append(cells, nodeText(cell, src))
		}
	}
	return cells
}

func nodeText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
		case *ast.String:
			b.Write(v.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

// parsePseudoTable detects at least three normalized lines carrying two or
// more em-dash separators (the Normalizer's pipe conversion) and treats the
// first as the header row.
func parsePseudoTable(body string) *Table {
	lines := Normalize(body)
	var tabular []string
	var lead []string
	for _, l := range lines {
		if strings.Count(l, " — ") >= 2 {
			tabular = append(tabular, l)
		} else if len(tabular) == 0 {
			lead = append(lead, l)
		}
	}
	if len(tabular) < 3 {
		return nil
	}
	table := &Table{Headers: splitEmDash(tabular[0])}
	for _, l := range tabular[1:] {
		table.Rows = append(table.Rows, splitEmDash(l))
	}
	if len(lead) > 0 {
		table.LeadText = lead[0]
	}
	table.square()
	return table
}

func splitEmDash(l string) []string {
	var cells []string
	for _, c := range strings.Split(l, " — ") {
		cells = append(cells, strings.TrimSpace(c))
	}
	return cells
}

// square pads ragged rows with empty cells and truncates excess cells so
// every row matches the header column count.
func (t *Table) square() {
	n := len(t.Headers)
	if n == 0 {
		return
	}
	for i, row := range t.Rows {
		for len(row) < n {
			row = append(row, "")
		}
		t.Rows[i] = row[:n]
	}
}
