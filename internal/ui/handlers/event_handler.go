package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"heroslider/internal/eventbus"
	"heroslider/internal/ui/state"
)

// statusTTL is how long a status message stays on screen
const statusTTL = 3 * time.Second

// ClearStatusMsg clears the status line if it still shows the message it was
// scheduled for
type ClearStatusMsg struct {
	Message string
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SlideChangedEvent:
		h.state.Record(fmt.Sprintf("slide %d → %d (%s)", e.From+1, e.To+1, e.Cause))
		return nil

	case eventbus.AutoplayPausedEvent:
		return h.setStatus(fmt.Sprintf("autoplay paused (%s)", e.Reason))

	case eventbus.AutoplayResumedEvent:
		return h.setStatus(fmt.Sprintf("autoplay resumed (%s)", e.Reason))

	case eventbus.SliderAttachedEvent:
		h.state.Record(fmt.Sprintf("attached %d slides", e.Slides))
		return nil

	case eventbus.ConfigSavedEvent:
		return h.setStatus("config saved to " + e.Path)

	case eventbus.ErrorEvent:
		return h.setStatus("error: " + e.Message)
	}
	return nil
}

// HandleClear applies a ClearStatusMsg
func (h *EventHandler) HandleClear(msg ClearStatusMsg) {
	if h.state.StatusMessage == msg.Message {
		h.state.StatusMessage = ""
	}
}

func (h *EventHandler) setStatus(msg string) tea.Cmd {
	h.state.StatusMessage = msg
	h.state.Record(msg)
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return ClearStatusMsg{Message: msg}
	})
}
