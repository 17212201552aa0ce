package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"heroslider/internal/dom"
	"heroslider/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Previous):
		return []types.Action{types.NavigateAction{Key: dom.KeyArrowLeft}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Key: dom.KeyArrowRight}}, true

	case key.Matches(msg, m.keys.First):
		return []types.Action{types.NavigateAction{Key: dom.KeyHome}}, true

	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.NavigateAction{Key: dom.KeyEnd}}, true

	case key.Matches(msg, m.keys.Jump):
		// Digits are 1-based; the slider ignores indices past the last slide
		index := int(msg.String()[0] - '1')
		return []types.Action{types.GoToAction{Index: index}}, true

	case key.Matches(msg, m.keys.Pause):
		if !ctx.AutoPlay() {
			return nil, false
		}
		return []types.Action{types.TogglePauseAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.SlideCount() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenSlideAction{}}, true

	case key.Matches(msg, m.keys.Info):
		return []types.Action{types.ToggleInfoAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.OpenHelpPagerAction{}}, true
	}

	return nil, false
}
