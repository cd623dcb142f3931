package deckgen

import (
	"sync"
)

// fetchedImages memoizes downloaded images for the lifetime of the process
// so preloading and document assembly fetch each remote image at most once.
var fetchedImages imageCache

// imageCache is a concurrency-safe image store keyed by source URL.
type imageCache struct {
	byURL sync.Map
}

func (c *imageCache) lookup(url string) (*Image, bool) {
	v, ok := c.byURL.Load(url)
	if !ok {
		return nil, false
	}
	img, ok := v.(*Image)
	return img, ok
}

// store ignores nil images so a failed fetch never shadows a later retry.
func (c *imageCache) store(url string, img *Image) {
	if img == nil {
		return
	}
	c.byURL.Store(url, img)
}

func (c *imageCache) reset() {
	c.byURL.Clear()
}
