package deckgen

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func clearCache() {
	fetchedImages.reset()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// 1x1 transparent PNG
var tinyPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestFetchImage(t *testing.T) {
	clearCache()
	defer clearCache()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(tinyPNG)
	}))
	defer server.Close()

	ctx := context.Background()
	img, err := FetchImage(ctx, discardLogger(), server.URL+"/x.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.MIMEType() != "image/png" {
		t.Errorf("unexpected mime type: %s", img.MIMEType())
	}
	if !strings.HasPrefix(img.DataURI(), "data:image/png;base64,") {
		t.Errorf("unexpected data URI prefix: %s", img.DataURI()[:40])
	}

	// second fetch must come from the cache
	if _, err := FetchImage(ctx, discardLogger(), server.URL+"/x.png"); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 1 {
		t.Errorf("expected one upstream hit, got %d", hits.Load())
	}
}

func TestFetchImageRejectsNonImage(t *testing.T) {
	clearCache()
	defer clearCache()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>not an image</html>"))
	}))
	defer server.Close()

	if _, err := FetchImage(context.Background(), discardLogger(), server.URL); err == nil {
		t.Error("expected an error for non-image content")
	}
}

func TestImageCache(t *testing.T) {
	clearCache()
	defer clearCache()

	const key = "test_key.png"
	i := &Image{b: tinyPNG, mimeType: "image/png", url: key}
	fetchedImages.store(key, i)

	cached, ok := fetchedImages.lookup(key)
	if !ok {
		t.Fatal("stored image not found in cache")
	}
	if cached.URL() != key {
		t.Errorf("unexpected cached URL: %s", cached.URL())
	}
	if _, ok := fetchedImages.lookup("missing"); ok {
		t.Error("lookup should miss for unknown keys")
	}
	fetchedImages.store("nil", nil)
	if _, ok := fetchedImages.lookup("nil"); ok {
		t.Error("nil images should not be stored")
	}
}

func TestPreloadImages(t *testing.T) {
	clearCache()
	defer clearCache()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "missing.png") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(tinyPNG)
	}))
	defer server.Close()

	slides := Slides{
		{Title: "a", Type: TypeContent, ImageURL: server.URL + "/a.png"},
		{Title: "b", Type: TypeContent},
		{Title: "c", Type: TypeContent, ImageURL: server.URL + "/missing.png"},
	}
	if err := PreloadImages(context.Background(), discardLogger(), slides); err != nil {
		t.Fatal(err)
	}
	if _, ok := fetchedImages.lookup(server.URL + "/a.png"); !ok {
		t.Error("expected the first image to be cached")
	}
	if slides[2].ImageURL != "" {
		t.Error("unfetchable image should downgrade the slide to imageless")
	}
}
