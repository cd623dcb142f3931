package deckgen

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestDeckRender(t *testing.T) {
	slides := Slides{
		{Title: "Opening", Body: "welcome everyone", Type: TypeContent},
		{Title: "Raw markdown", Body: "- just\n- bullets", Type: TypePlain},
		{Title: "Numbers", Body: "87%\nretention", Type: TypeMetrics},
	}
	d, err := New(slides, WithTitle("My Deck"))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := d.Render(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("document should start with a doctype")
	}
	if !strings.Contains(out, "<title>My Deck</title>") {
		t.Error("document title missing")
	}
	if got := strings.Count(out, "<section>"); got != len(slides) {
		t.Errorf("expected %d sections, got %d", len(slides), got)
	}
	if !strings.Contains(out, "<li>just</li>") {
		t.Error("plain slide should render markdown directly")
	}
	if !strings.Contains(out, "stroke-dasharray") {
		t.Error("metrics slide should have been composed")
	}
}

func TestDeckRenderCancelled(t *testing.T) {
	d, err := New(Slides{{Title: "a", Type: TypeContent}})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	if err := d.Render(ctx, &buf); err == nil {
		t.Error("expected a context error")
	}
}

func TestRenderPlain(t *testing.T) {
	s := &Slide{Title: "Notes", Body: "**bold** and a [link](https://example.com)", Type: TypePlain}
	out, err := RenderPlain(s, DefaultPalette)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Error("plain rendering should keep markdown semantics")
	}
	if !strings.Contains(out, "width:1280px;height:720px") {
		t.Error("plain slides share the fixed canvas")
	}
	if !strings.Contains(out, "Notes") {
		t.Error("plain slide title missing")
	}
}
