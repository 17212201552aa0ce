package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"heroslider/internal/dom"
	"heroslider/internal/ui/input/types"
)

type fakeContext struct {
	index, count     int
	paused, autoPlay bool
}

func (c fakeContext) CurrentIndex() int { return c.index }
func (c fakeContext) SlideCount() int   { return c.count }
func (c fakeContext) Paused() bool      { return c.paused }
func (c fakeContext) AutoPlay() bool    { return c.autoPlay }

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNormalModeActions(t *testing.T) {
	ctx := fakeContext{count: 4, autoPlay: true}
	tests := []struct {
		key  string
		want []types.Action
	}{
		{"right", []types.Action{types.NavigateAction{Key: dom.KeyArrowRight}}},
		{"h", []types.Action{types.NavigateAction{Key: dom.KeyArrowLeft}}},
		{"g", []types.Action{types.NavigateAction{Key: dom.KeyHome}}},
		{"G", []types.Action{types.NavigateAction{Key: dom.KeyEnd}}},
		{"3", []types.Action{types.GoToAction{Index: 2}}},
		{" ", []types.Action{types.TogglePauseAction{}}},
		{"o", []types.Action{types.OpenSlideAction{}}},
		{"i", []types.Action{types.ToggleInfoAction{}}},
		{"H", []types.Action{types.OpenHelpPagerAction{}}},
		{"q", []types.Action{types.QuitAction{}}},
		{"ctrl+c", []types.Action{types.QuitAction{Force: true}}},
		{"x", nil},
	}
	for _, tt := range tests {
		h := New(types.DefaultKeyMap)
		assert.Equal(t, tt.want, h.HandleKey(key(tt.key), ctx), "key %q", tt.key)
	}
}

func TestNormalModeRespectsContext(t *testing.T) {
	h := New(types.DefaultKeyMap)

	assert.Nil(t, h.HandleKey(key(" "), fakeContext{count: 4}), "no pause toggle without autoplay")
	assert.Nil(t, h.HandleKey(key("o"), fakeContext{autoPlay: true}), "nothing to open in an empty deck")
}

func TestHelpModeRoundTrip(t *testing.T) {
	h := New(types.DefaultKeyMap)
	ctx := fakeContext{count: 4}

	actions := h.HandleKey(key("?"), ctx)
	assert.Equal(t, []types.Action{types.ToggleHelpAction{}}, actions)
	assert.Equal(t, types.ModeHelp, h.CurrentMode())

	// Everything else is swallowed
	assert.Nil(t, h.HandleKey(key("right"), ctx))
	assert.Equal(t, []types.Action{types.OpenHelpPagerAction{}}, h.HandleKey(key("H"), ctx))

	actions = h.HandleKey(key("q"), ctx)
	assert.Equal(t, []types.Action{types.ToggleHelpAction{}}, actions, "q closes help rather than quitting")
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}

func TestHelpModeForceQuit(t *testing.T) {
	h := New(types.DefaultKeyMap)
	ctx := fakeContext{}
	h.HandleKey(key("?"), ctx)

	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, h.HandleKey(key("ctrl+c"), ctx))
	h.Reset()
	assert.Equal(t, types.ModeNormal, h.CurrentMode())
}
