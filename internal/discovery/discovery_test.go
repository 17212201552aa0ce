package discovery

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroslider/internal/config"
	"heroslider/internal/eventbus"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}
	return root
}

func TestScanReadsSlidesInOrder(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"02-second.md":           "# Second\n\nbody two\n",
		"01-first.md":            "# First\naccent: 205\n\nline one\nline two\n",
		"03-getting_started.txt": "no heading here\n",
		"notes.pdf":              "ignored",
		".hidden.md":             "# Hidden",
		"empty.md":               "",
	})

	slides, err := New(nil).Scan(context.Background(), root)
	require.NoError(t, err)

	assert.Equal(t, []config.Slide{
		{Title: "First", Accent: "205", Body: "line one\nline two"},
		{Title: "Second", Body: "body two"},
		{Title: "getting started", Body: "no heading here"},
	}, slides)
}

func TestScanDepthAndHiddenDirs(t *testing.T) {
	root := writeFiles(t, map[string]string{
		"a.md":           "# A",
		"part/b.md":      "# B",
		"part/deep/c.md": "# C",
		".git/d.md":      "# D",
	})

	slides, err := New(nil).Scan(context.Background(), root)
	require.NoError(t, err)

	titles := make([]string, 0, len(slides))
	for _, s := range slides {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"A", "B"}, titles)
}

func TestScanErrors(t *testing.T) {
	_, err := New(nil).Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "slide.md")
	require.NoError(t, os.WriteFile(file, []byte("# x"), 0644))
	_, err = New(nil).Scan(context.Background(), file)
	assert.ErrorContains(t, err, "not a directory")

	_, err = New(nil).Scan(context.Background(), writeFiles(t, map[string]string{"readme.pdf": "x"}))
	assert.ErrorIs(t, err, ErrNoSlides)
}

func TestScanHonoursCancellation(t *testing.T) {
	root := writeFiles(t, map[string]string{"a.md": "# A"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Scan(ctx, root)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanPublishesResult(t *testing.T) {
	bus := eventbus.New()
	var mu sync.Mutex
	var got []eventbus.DeckScannedEvent
	bus.Subscribe(eventbus.EventDeckScanned, func(e eventbus.DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(eventbus.DeckScannedEvent))
	})

	root := writeFiles(t, map[string]string{"a.md": "# A", "b.md": "# B"})
	_, err := New(bus).Scan(context.Background(), root)
	require.NoError(t, err)
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []eventbus.DeckScannedEvent{{Root: root, Slides: 2}}, got)
}
