package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heroslider/internal/deck"
	"heroslider/internal/domain"
	"heroslider/internal/slider"
)

func TestParseTranslateX(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"translateX(0px)", 0, true},
		{"translateX(-640px)", -640, true},
		{"translateX(12.5px)", 12.5, true},
		{"translateX(10%)", 0, false},
		{"scale(2)", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseTranslateX(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParsePercent(t *testing.T) {
	got, ok := ParsePercent("25%")
	assert.True(t, ok)
	assert.Equal(t, 0.25, got)

	got, ok = ParsePercent("150%")
	assert.True(t, ok)
	assert.Equal(t, 1.0, got)

	_, ok = ParsePercent("25px")
	assert.False(t, ok)
}

func TestCutStrip(t *testing.T) {
	line := "aaaa" + "bbbb" + "cccc"

	assert.Equal(t, "aaaa", cutStrip(line, 0, 4))
	assert.Equal(t, "abbb", cutStrip(line, 3, 4))
	assert.Equal(t, "  aa", cutStrip(line, -2, 4))
	assert.Equal(t, "cc  ", cutStrip(line, 10, 4))
}

func TestSliderRows(t *testing.T) {
	assert.Equal(t, 21, SliderRows(24))
	assert.Equal(t, 3, SliderRows(2))
}

func renderState(t *testing.T, snap slider.Snapshot) ViewState {
	t.Helper()
	d := domain.Deck{Slides: []domain.Slide{
		{Title: "One", Body: "first"},
		{Title: "Two", Body: "second"},
	}}
	root := deck.Build(d, true)
	geo := deck.Geometry{Width: 320, Height: float64(SliderRows(12)) * 16, Cell: 8, Row: 16}
	deck.Layout(root, geo)
	root.RefNode(deck.RefContainer).SetStyle("transform", "translateX(-320px)")
	root.RefNodes(deck.RefDot)[1].ToggleClass("active", true)
	root.RefNode(deck.RefNext).SetAttr("disabled", "")
	root.RefNode(deck.RefProgress).SetStyle("width", "100%")

	return ViewState{
		Width:     40,
		Height:    12,
		Root:      root,
		Geometry:  geo,
		Snapshot:  snap,
		Focused:   true,
		HelpModel: help.New(),
	}
}

func TestRenderPaintsTree(t *testing.T) {
	r := NewRenderer()
	state := renderState(t, slider.Snapshot{Index: 1, Count: 2, AutoPlay: true})

	out := r.Render(state)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 12)

	plain := ansi.Strip(out)
	assert.Contains(t, lines[0], "hero slider")
	assert.Contains(t, ansi.Strip(lines[0]), "2/2")
	assert.Contains(t, plain, "▶ playing")
	assert.Contains(t, plain, "Two", "the track is cut at the transform")
	assert.NotContains(t, plain, "One")
	assert.Contains(t, plain, "●")
	assert.Contains(t, plain, "○")
	for _, line := range lines[:len(lines)-2] {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestRenderIndicators(t *testing.T) {
	r := NewRenderer()

	out := ansi.Strip(r.Render(renderState(t, slider.Snapshot{Count: 2, AutoPlay: true, Paused: true})))
	assert.Contains(t, out, "paused")

	out = ansi.Strip(r.Render(renderState(t, slider.Snapshot{Count: 2})))
	assert.Contains(t, out, "autoplay off")

	out = ansi.Strip(r.Render(renderState(t, slider.Snapshot{Count: 2, AutoPlay: true, Dragging: true, DragOffset: -42})))
	assert.Contains(t, out, "⇔ -42px")
}

func TestRenderStatusFallsBackToHistory(t *testing.T) {
	r := NewRenderer()
	state := renderState(t, slider.Snapshot{Count: 2})
	state.History = []string{"slide 1 → 2 (button)"}

	assert.Contains(t, ansi.Strip(r.Render(state)), "slide 1 → 2 (button)")

	state.StatusMessage = "error: boom"
	state.Focused = false
	out := ansi.Strip(r.Render(state))
	assert.Contains(t, out, "unfocused error: boom")
}

func TestRenderWithoutLayout(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "Loading...", r.Render(ViewState{}))
}

func TestPopupOverlayKeepsHeight(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	main := strings.Repeat(strings.Repeat("x", 30)+"\n", 9) + strings.Repeat("x", 30)

	out := pr.RenderPopupOverlay(main, "hi", 10, 30)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, ansi.Strip(out), "hi")
	assert.Equal(t, strings.Repeat("x", 30), ansi.Strip(lines[0]))
}
