// Package discovery builds a deck from a directory of slide files.
package discovery

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"heroslider/internal/config"
	"heroslider/internal/domain"
	"heroslider/internal/eventbus"
)

// maxDepth bounds how far below the root slide files are looked for
const maxDepth = 2

// ErrNoSlides is returned when a scan finds nothing to show
var ErrNoSlides = errors.New("no slide files found")

// slideExts are the file extensions read as slides
var slideExts = map[string]bool{
	".md":  true,
	".txt": true,
}

// Scanner finds slide files under a directory
type Scanner struct {
	bus eventbus.EventBus
}

// New creates a scanner; bus may be nil
func New(bus eventbus.EventBus) *Scanner {
	return &Scanner{bus: bus}
}

// Scan walks root in lexical order and turns every slide file into a
// slide. Files that cannot be read are reported and skipped.
func (s *Scanner) Scan(ctx context.Context, root string) ([]config.Slide, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to scan %s: not a directory", root)
	}

	var slides []config.Slide
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping path")
			return nil
		}

		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			rel, _ := filepath.Rel(root, path)
			if rel != "." && strings.Count(rel, string(filepath.Separator)) >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if !slideExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		slide, err := readSlide(path)
		if err != nil {
			s.publish(domain.ErrorEvent{
				Message: fmt.Sprintf("Failed to read slide %s", path),
				Err:     err,
			})
			return nil
		}
		if slide.Title == "" && slide.Body == "" {
			return nil
		}
		slides = append(slides, slide)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(domain.DeckScannedEvent{Root: root, Slides: len(slides)})
	if len(slides) == 0 {
		return nil, fmt.Errorf("%s: %w", root, ErrNoSlides)
	}
	return slides, nil
}

func (s *Scanner) publish(e domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// readSlide reads one file. A leading "# " line is the title, an
// "accent:" line right after it sets the accent colour, and the rest is
// the body. Without a heading the file name is the title. Empty files
// yield the zero slide.
func readSlide(path string) (config.Slide, error) {
	f, err := os.Open(path)
	if err != nil {
		return config.Slide{}, err
	}
	defer f.Close()

	var slide config.Slide
	var body []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t")
		trimmed := strings.TrimSpace(line)
		switch {
		case len(body) == 0 && trimmed == "":
		case len(body) == 0 && slide.Title == "" && slide.Accent == "" && strings.HasPrefix(trimmed, "# "):
			slide.Title = strings.TrimSpace(trimmed[2:])
		case len(body) == 0 && slide.Accent == "" && strings.HasPrefix(trimmed, "accent:"):
			slide.Accent = strings.TrimSpace(strings.TrimPrefix(trimmed, "accent:"))
		default:
			body = append(body, line)
		}
	}
	if err := sc.Err(); err != nil {
		return config.Slide{}, err
	}

	if slide.Title == "" && slide.Accent == "" && len(body) == 0 {
		return config.Slide{}, nil
	}
	if slide.Title == "" {
		slide.Title = titleFromName(path)
	}
	slide.Body = strings.TrimSpace(strings.Join(body, "\n"))
	return slide, nil
}

// titleFromName turns "02-getting_started.md" into "getting started"
func titleFromName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if trimmed := strings.TrimLeft(strings.TrimLeft(name, "0123456789"), "-_ ."); trimmed != "" {
		name = trimmed
	}
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}
