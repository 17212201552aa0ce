package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"heroslider/internal/ui/input/types"
)

// HelpMode shows the full key help over the slider. Only closing keys are
// handled; everything else is swallowed.
type HelpMode struct {
	keys types.KeyMap
}

func NewHelpMode(keys types.KeyMap) *HelpMode {
	return &HelpMode{keys: keys}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.ToggleHelpAction{}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.OpenHelpPagerAction{}}, true
	}
	return nil, true
}
