package md

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/errors"
)

// Frontmatter is the optional YAML header of a deck file.
type Frontmatter struct {
	Title string `yaml:"title,omitempty"`
	Theme string `yaml:"theme,omitempty"`
	ID    string `yaml:"deckId,omitempty"`
}

const fmSep = "---\n"

// splitFrontmatter peels a leading YAML frontmatter block off a deck source.
// A header that fails to parse as YAML is treated as body content.
func splitFrontmatter(b []byte) (*Frontmatter, []byte) {
	if !bytes.HasPrefix(b, []byte(fmSep)) {
		return nil, b
	}
	parts := bytes.SplitN(b, []byte(fmSep), 3)
	if len(parts) != 3 {
		return nil, b
	}
	fm := &Frontmatter{}
	if err := yaml.Unmarshal(parts[1], fm); err != nil {
		return nil, b
	}
	return fm, parts[2]
}

// ApplyFrontmatter updates or creates a deck file's frontmatter, preserving
// any fields it does not manage and the body content.
func ApplyFrontmatter(mdFile, title, theme, deckID string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	var content []byte
	if c, err := os.ReadFile(mdFile); err == nil {
		content = c
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var frontmatter = make(map[string]any)
	var body = content
	if bytes.HasPrefix(content, []byte(fmSep)) {
		parts := bytes.SplitN(content, []byte(fmSep), 3)
		if len(parts) == 3 {
			var fm = make(map[string]any)
			if err := yaml.Unmarshal(parts[1], &fm); err == nil {
				frontmatter = fm
				body = parts[2]
			}
		}
	}

	if title != "" {
		frontmatter["title"] = title
	}
	if theme != "" {
		frontmatter["theme"] = theme
	}
	if deckID != "" {
		frontmatter["deckId"] = deckID
	}

	fmYAML, err := yaml.Marshal(frontmatter)
	if err != nil {
		return fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	fmYAML = bytes.TrimSpace(fmYAML)

	var out bytes.Buffer
	out.WriteString(fmSep)
	out.Write(fmYAML)
	out.WriteString("\n")
	out.WriteString(fmSep)
	out.Write(body)

	dir := filepath.Dir(mdFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(mdFile, out.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
