package md

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTablePipe(t *testing.T) {
	body := `Market comparison below.

| Region | Growth |
| --- | --- |
| NA | 12% |
| EU | 8% |

### NA leads all regions

Source: internal data`

	got := ParseTable(body)
	if got == nil {
		t.Fatal("expected a table")
	}
	want := &Table{
		Headers:  []string{"Region", "Growth"},
		Rows:     [][]string{{"NA", "12%"}, {"EU", "8%"}},
		LeadText: "Market comparison below.",
		Takeaway: "NA leads all regions",
		Source:   "internal data",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestParseTablePseudo(t *testing.T) {
	body := `Plans at a glance
Tier — Price — Seats
Starter — $9 — 1
Pro — $29 — 10
Enterprise — $99 — 100`

	got := ParseTable(body)
	if got == nil {
		t.Fatal("expected a pseudo table")
	}
	want := &Table{
		Headers:  []string{"Tier", "Price", "Seats"},
		Rows:     [][]string{{"Starter", "$9", "1"}, {"Pro", "$29", "10"}, {"Enterprise", "$99", "100"}},
		LeadText: "Plans at a glance",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestParseTableNone(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"plain prose", "Just a paragraph.\nAnother line."},
		{"too few pseudo rows", "A — B — C\n1 — 2 — 3"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseTable(tt.body); got != nil {
				t.Errorf("expected nil, got %+v", got)
			}
		})
	}
}

func TestTableSquare(t *testing.T) {
	tbl := &Table{
		Headers: []string{"A", "B", "C"},
		Rows:    [][]string{{"1"}, {"1", "2", "3", "4"}},
	}
	tbl.square()
	want := [][]string{{"1", "", ""}, {"1", "2", "3"}}
	if diff := cmp.Diff(want, tbl.Rows); diff != "" {
		t.Error(diff)
	}
}
