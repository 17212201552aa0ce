package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"heroslider/internal/dom"
	"heroslider/internal/slider"
	"heroslider/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(state *state.AppState, s *slider.Slider) *Executor {
	return &Executor{
		ctx: &CommandContext{
			State:  state,
			Slider: s,
		},
	}
}

// SetRoot points key commands at a rebuilt tree
func (e *Executor) SetRoot(root *dom.Node) {
	e.ctx.Root = root
}

// ExecuteKey creates and executes a key command
func (e *Executor) ExecuteKey(key string) tea.Cmd {
	return NewKeyCommand(e.ctx, key).Execute()
}

// ExecuteGoTo creates and executes a go-to command
func (e *Executor) ExecuteGoTo(index int) tea.Cmd {
	return NewGoToCommand(e.ctx, index).Execute()
}

// ExecuteTogglePause creates and executes a toggle pause command
func (e *Executor) ExecuteTogglePause() tea.Cmd {
	return NewTogglePauseCommand(e.ctx).Execute()
}
