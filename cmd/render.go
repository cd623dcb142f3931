package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/browser"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/deckgen/deckgen"
	"github.com/deckgen/deckgen/config"
	"github.com/deckgen/deckgen/logger/dot"
	"github.com/deckgen/deckgen/md"
	"github.com/deckgen/deckgen/theme"
)

var (
	themeName   string
	title       string
	out         string
	embedImages bool
	watch       bool
	openAfter   bool
	verbose     bool
)

var renderCmd = &cobra.Command{
	Use:   "render [DECK_FILE]",
	Short: "render deck written in markdown to an HTML slide document",
	Long:  `render deck written in markdown to an HTML slide document.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		f := args[0]
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		logger, err := newLogger()
		if err != nil {
			return err
		}
		outFile := out
		if outFile == "" {
			outFile = strings.TrimSuffix(f, filepath.Ext(f)) + ".html"
		}
		if err := renderFile(ctx, logger, cfg, f, outFile); err != nil {
			return err
		}
		fmt.Println()
		cmd.PrintErrf("Rendered %s\n", outFile)

		if openAfter {
			if err := browser.OpenFile(outFile); err != nil {
				return err
			}
		}
		if watch {
			return watchAndRender(ctx, logger, cfg, f, outFile)
		}
		return nil
	},
}

// newLogger builds the progress logger: the dot stream on stdout, fanned
// out to a text log on stderr when --verbose is set.
func newLogger() (*slog.Logger, error) {
	base := slog.NewTextHandler(os.Stdout, nil)
	dotHandler, err := dot.New(base)
	if err != nil {
		return nil, err
	}
	if !verbose {
		return slog.New(dotHandler), nil
	}
	return slog.New(slogmulti.Fanout(
		dotHandler,
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)), nil
}

func renderFile(ctx context.Context, logger *slog.Logger, cfg *config.Config, f, outFile string) error {
	deckFile, err := md.ParseFile(f)
	if err != nil {
		return err
	}
	slides, docTitle, themeRef, err := slidesFromDeck(deckFile, cfg)
	if err != nil {
		return err
	}
	if themeName != "" {
		themeRef = themeName
	}
	pal, err := theme.Resolve(themeRef)
	if err != nil {
		return err
	}
	if title != "" {
		docTitle = title
	}
	embed := embedImages
	if !embed && cfg.EmbedImages != nil {
		embed = *cfg.EmbedImages
	}
	d, err := deckgen.New(slides,
		deckgen.WithPalette(pal),
		deckgen.WithTitle(docTitle),
		deckgen.WithLogger(logger),
		deckgen.WithEmbedImages(embed),
	)
	if err != nil {
		return err
	}
	o, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer o.Close()
	if err := d.Render(ctx, o); err != nil {
		return err
	}
	logger.Info("render completed", slog.Int("slides", len(slides)))
	return nil
}

// slidesFromDeck converts parsed pages to slides, filling in missing slide
// types from the config's default conditions.
func slidesFromDeck(deckFile *md.Deck, cfg *config.Config) (deckgen.Slides, string, string, error) {
	var slides deckgen.Slides
	for i, p := range deckFile.Pages {
		decision, err := cfg.Apply(config.PageVars{
			Title: p.Title,
			Body:  p.Body,
			Type:  p.Type,
			Index: i,
		})
		if err != nil {
			return nil, "", "", err
		}
		if decision.Skip {
			continue
		}
		t := deckgen.SlideType(decision.Type)
		if t == "" {
			t = deckgen.TypeContent
		}
		slides = append(slides, &deckgen.Slide{
			Title:    p.Title,
			Body:     p.Body,
			Type:     t,
			ImageURL: p.ImageURL,
		})
	}
	docTitle := ""
	themeRef := cfg.Theme
	if fm := deckFile.Frontmatter; fm != nil {
		docTitle = fm.Title
		if fm.Theme != "" {
			themeRef = fm.Theme
		}
	}
	return slides, docTitle, themeRef, nil
}

// watchAndRender re-renders the deck whenever the source file changes.
// Editors replace files on save, so Rename and Remove re-arm the watch.
func watchAndRender(ctx context.Context, logger *slog.Logger, cfg *config.Config, f, outFile string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(f)); err != nil {
		return err
	}
	abs, err := filepath.Abs(f)
	if err != nil {
		return err
	}
	var debounce *time.Timer
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			p, err := filepath.Abs(event.Name)
			if err != nil || p != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, func() {
				if err := renderFile(ctx, logger, cfg, f, outFile); err != nil {
					logger.Error("failed to render", slog.String("error", err.Error()))
					return
				}
				fmt.Println()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("failed to watch", slog.String("error", err.Error()))
		}
	}
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&themeName, "theme", "", "", "theme name or theme file path")
	renderCmd.Flags().StringVarP(&title, "title", "t", "", "title of the document")
	renderCmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	renderCmd.Flags().BoolVarP(&embedImages, "embed-images", "", false, "inline fetched images as data URIs")
	renderCmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-render on file changes")
	renderCmd.Flags().BoolVarP(&openAfter, "open", "", false, "open the rendered document in the browser")
	renderCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}
