package deckgen

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"log/slog"
	"strings"

	"github.com/k1LoW/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Deck renders a whole presentation: a slide list, a palette, and the
// options controlling image handling and logging.
type Deck struct {
	slides      Slides
	palette     Palette
	title       string
	embedImages bool
	logger      *slog.Logger
}

type Option func(*Deck) error

// WithPalette sets the deck's color palette.
func WithPalette(pal Palette) Option {
	return func(d *Deck) error {
		d.palette = pal
		return nil
	}
}

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(d *Deck) error {
		d.title = title
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deck) error {
		d.logger = logger
		return nil
	}
}

// WithEmbedImages preloads slide images and inlines them as data: URIs so
// the rendered document is self-contained.
func WithEmbedImages(embed bool) Option {
	return func(d *Deck) error {
		d.embedImages = embed
		return nil
	}
}

// New creates a deck renderer for the given slides.
func New(slides Slides, opts ...Option) (_ *Deck, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	d := &Deck{
		slides:  slides,
		palette: DefaultPalette,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Render composes every slide and assembles the standalone HTML document.
func (d *Deck) Render(ctx context.Context, w io.Writer) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if d.embedImages {
		if err := PreloadImages(ctx, d.logger, d.slides); err != nil {
			return err
		}
	}
	fragments := make([]string, 0, len(d.slides))
	for i, s := range d.slides {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		slide := s
		if d.embedImages && s.hasImage() {
			if img, ok := fetchedImages.lookup(s.ImageURL); ok {
				cp := *s
				cp.ImageURL = img.DataURI()
				slide = &cp
			}
		}
		var frag string
		if Composable(slide.Type) {
			frag = Compose(slide, d.palette)
			d.logger.Info("rendered slide", slog.Int("index", i), slog.String("type", string(slide.Type)))
		} else {
			frag, err = RenderPlain(slide, d.palette)
			if err != nil {
				return err
			}
			d.logger.Info("skipped slide", slog.Int("index", i), slog.String("type", string(slide.Type)))
		}
		fragments = append(fragments, frag)
	}
	return writeDocument(w, d.title, fragments)
}

// RenderPlain is the bypass for non-composable slides: the title plus the
// body converted straight from markdown, framed on the same canvas.
func RenderPlain(s *Slide, pal Palette) (_ string, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := gm.Convert([]byte(s.Body), &body); err != nil {
		return "", err
	}
	bg := normalizeHex(pal.color(RoleBackground))
	text := normalizeHex(pal.color(RoleText))
	var b strings.Builder
	fmt.Fprintf(&b,
		`<div class="dg-slide" style="position:relative;width:1280px;height:720px;overflow:hidden;background:%s;color:%s;padding:53px;font-family:'Segoe UI','Helvetica Neue',Arial,sans-serif">`,
		bg, text)
	if s.Title != "" {
		fmt.Fprintf(&b, `<h1 style="font-size:40px;margin-bottom:24px">%s</h1>`, html.EscapeString(s.Title))
	}
	fmt.Fprintf(&b, `<div style="font-size:18px;line-height:1.6">%s</div>`, body.String())
	b.WriteString(`</div>`)
	return b.String(), nil
}

// writeDocument wraps slide fragments in a minimal standalone HTML page,
// one slide per section.
func writeDocument(w io.Writer, title string, fragments []string) error {
	if title == "" {
		title = "deck"
	}
	if _, err := fmt.Fprintf(w,
		"<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>body{margin:0;background:#222}section{margin:24px auto;width:1280px;box-shadow:0 2px 16px rgba(0,0,0,0.4)}</style>\n</head>\n<body>\n",
		html.EscapeString(title)); err != nil {
		return err
	}
	for _, frag := range fragments {
		if _, err := fmt.Fprintf(w, "<section>\n%s\n</section>\n", frag); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}
