package deckgen

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/k1LoW/errors"
)

var _ retryablehttp.LeveledLogger = (*slog.Logger)(nil)

// Image is a fetched slide image ready for embedding.
type Image struct {
	b        []byte
	mimeType string
	url      string
}

// MIMEType returns the detected content type.
func (i *Image) MIMEType() string {
	return i.mimeType
}

// DataURI encodes the image as a data: URI for self-contained documents.
func (i *Image) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", i.mimeType, base64.StdEncoding.EncodeToString(i.b))
}

// URL returns the source URL the image was fetched from.
func (i *Image) URL() string {
	return i.url
}

const maxImageBytes = 20 << 20

// FetchImage downloads an image over HTTP with retries. Results are cached
// by URL so repeated renders of the same deck fetch each image once.
func FetchImage(ctx context.Context, logger *slog.Logger, url string) (_ *Image, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if i, ok := fetchedImages.lookup(url); ok {
		return i, nil
	}
	client := retryablehttp.NewClient()
	client.RetryMax = 4
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 10 * time.Second
	client.Logger = logger

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image %s: %s", url, res.Status)
	}
	b, err := io.ReadAll(io.LimitReader(res.Body, maxImageBytes+1))
	if err != nil {
		return nil, err
	}
	if len(b) > maxImageBytes {
		return nil, fmt.Errorf("image %s exceeds size limit", url)
	}
	mimeType := res.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(b)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%s is not an image: %s", url, mimeType)
	}
	i := &Image{b: b, mimeType: mimeType, url: url}
	fetchedImages.store(url, i)
	return i, nil
}
