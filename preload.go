package deckgen

import (
	"context"
	"log/slog"

	"github.com/k1LoW/errors"
	"golang.org/x/sync/errgroup"
)

const preloadWorkers = 8

// PreloadImages fetches every slide image into the cache in parallel before
// composition starts, so rendering itself stays a pure in-memory transform.
// Slides whose image cannot be fetched are downgraded to imageless rather
// than failing the whole deck.
func PreloadImages(ctx context.Context, logger *slog.Logger, slides Slides) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(preloadWorkers)
	for _, s := range slides {
		if !s.hasImage() {
			continue
		}
		eg.Go(func() error {
			if _, err := FetchImage(ctx, logger, s.ImageURL); err != nil {
				logger.Warn("failed to preload image, dropping it",
					slog.String("url", s.ImageURL), slog.String("error", err.Error()))
				s.ImageURL = ""
			}
			return nil
		})
	}
	return eg.Wait()
}
