package deckgen

import (
	"math"
	"strings"
	"testing"
)

func TestTitleFontSize(t *testing.T) {
	tests := []struct {
		chars int
		want  float64
	}{
		{10, 44},
		{30, 44},
		{31, 38},
		{50, 38},
		{51, 32},
		{70, 32},
		{71, 28},
		{90, 28},
		{91, 24},
	}
	for _, tt := range tests {
		title := strings.Repeat("x", tt.chars)
		if got := titleFontSize(title); got != tt.want {
			t.Errorf("titleFontSize(%d chars) = %v, want %v", tt.chars, got, tt.want)
		}
	}
}

func TestGridFor(t *testing.T) {
	tests := []struct {
		n, cols, rows int
	}{
		{0, 1, 1},
		{1, 1, 1},
		{3, 3, 1},
		{4, 4, 1},
		{5, 3, 2},
		{6, 3, 2},
		{7, 4, 2},
	}
	for _, tt := range tests {
		cols, rows := gridFor(tt.n)
		if cols != tt.cols || rows != tt.rows {
			t.Errorf("gridFor(%d) = (%d,%d), want (%d,%d)", tt.n, cols, rows, tt.cols, tt.rows)
		}
	}
}

func TestUsableWidth(t *testing.T) {
	if got := usableWidth(false); got != 1280 {
		t.Errorf("usableWidth(false) = %v", got)
	}
	if got := usableWidth(true); got != 870 {
		t.Errorf("usableWidth(true) = %v", got)
	}
}

func TestClampDim(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
		{-5, 0},
		{12.5, 12.5},
	}
	for _, tt := range tests {
		if got := clampDim(tt.in); got != tt.want {
			t.Errorf("clampDim(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTitleBlock(t *testing.T) {
	nodes, y := titleBlock("Quarterly Review", false, MoodNeutral)
	if len(nodes) != 2 {
		t.Fatalf("expected title text plus accent bar, got %d nodes", len(nodes))
	}
	if y <= pad {
		t.Errorf("content start %v should be below the padding", y)
	}

	moodNodes, _ := titleBlock("Quarterly Review", false, MoodGrowth)
	if len(moodNodes) != 3 {
		t.Errorf("expected split bar for non-neutral mood, got %d nodes", len(moodNodes))
	}

	none, y2 := titleBlock("", false, MoodNeutral)
	if none != nil || y2 != pad {
		t.Errorf("empty title should yield no nodes and start at the padding")
	}
}
