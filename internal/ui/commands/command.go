package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"heroslider/internal/dom"
	"heroslider/internal/slider"
	"heroslider/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	State  *state.AppState
	Slider *slider.Slider
	Root   *dom.Node
}

// KeyCommand delivers a key press to the slider element, the way a focused
// browser element receives keydown
type KeyCommand struct {
	ctx *CommandContext
	key string
}

// NewKeyCommand creates a new key command
func NewKeyCommand(ctx *CommandContext, key string) *KeyCommand {
	return &KeyCommand{ctx: ctx, key: key}
}

// Execute dispatches the keydown event
func (c *KeyCommand) Execute() tea.Cmd {
	if c.ctx.Root != nil {
		c.ctx.Root.Dispatch(&dom.Event{Kind: dom.KeyDown, Key: c.key})
	}
	return nil
}

// GoToCommand jumps to a slide
type GoToCommand struct {
	ctx   *CommandContext
	index int
}

// NewGoToCommand creates a new go-to command
func NewGoToCommand(ctx *CommandContext, index int) *GoToCommand {
	return &GoToCommand{ctx: ctx, index: index}
}

// Execute performs the jump
func (c *GoToCommand) Execute() tea.Cmd {
	c.ctx.Slider.GoTo(c.index)
	return nil
}

// TogglePauseCommand pauses a playing slider or plays a paused one
type TogglePauseCommand struct {
	ctx *CommandContext
}

// NewTogglePauseCommand creates a new toggle command
func NewTogglePauseCommand(ctx *CommandContext) *TogglePauseCommand {
	return &TogglePauseCommand{ctx: ctx}
}

// Execute toggles autoplay
func (c *TogglePauseCommand) Execute() tea.Cmd {
	if c.ctx.Slider.Snapshot().Paused {
		c.ctx.Slider.Play()
	} else {
		c.ctx.Slider.Pause()
	}
	return nil
}
