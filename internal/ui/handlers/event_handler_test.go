package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"heroslider/internal/domain"
	"heroslider/internal/eventbus"
	"heroslider/internal/ui/state"
)

func TestHandleEventRecordsTransitions(t *testing.T) {
	st := state.NewAppState(domain.Deck{})
	h := NewEventHandler(st)

	cmd := h.HandleEvent(eventbus.SlideChangedEvent{From: 3, To: 0, Count: 4, Cause: domain.CauseAutoplay})
	assert.Nil(t, cmd)
	assert.Equal(t, []string{"slide 4 → 1 (autoplay)"}, st.History)
	assert.Empty(t, st.StatusMessage)
}

func TestHandleEventSetsStatus(t *testing.T) {
	tests := []struct {
		event eventbus.DomainEvent
		want  string
	}{
		{eventbus.AutoplayPausedEvent{Reason: domain.ReasonHover}, "autoplay paused (hover)"},
		{eventbus.AutoplayResumedEvent{Reason: domain.ReasonVisibility}, "autoplay resumed (visibility)"},
		{eventbus.ConfigSavedEvent{Path: "/tmp/c.toml"}, "config saved to /tmp/c.toml"},
		{eventbus.ErrorEvent{Message: "pager: boom", Err: errors.New("boom")}, "error: pager: boom"},
	}
	for _, tt := range tests {
		st := state.NewAppState(domain.Deck{})
		h := NewEventHandler(st)

		cmd := h.HandleEvent(tt.event)
		assert.NotNil(t, cmd, "status messages expire")
		assert.Equal(t, tt.want, st.StatusMessage)
	}
}

func TestHandleClearOnlyClearsMatchingMessage(t *testing.T) {
	st := state.NewAppState(domain.Deck{})
	h := NewEventHandler(st)

	h.HandleEvent(eventbus.AutoplayPausedEvent{Reason: domain.ReasonManual})
	h.HandleEvent(eventbus.AutoplayResumedEvent{Reason: domain.ReasonManual})

	h.HandleClear(ClearStatusMsg{Message: "autoplay paused (manual)"})
	assert.Equal(t, "autoplay resumed (manual)", st.StatusMessage)

	h.HandleClear(ClearStatusMsg{Message: "autoplay resumed (manual)"})
	assert.Empty(t, st.StatusMessage)
}

func TestHistoryIsBounded(t *testing.T) {
	st := state.NewAppState(domain.Deck{})
	h := NewEventHandler(st)

	for i := 0; i < 80; i++ {
		h.HandleEvent(eventbus.SlideChangedEvent{From: i, To: i + 1, Count: 100, Cause: domain.CauseAPI})
	}
	assert.Len(t, st.History, 50)
	assert.Equal(t, "slide 80 → 81 (api)", st.History[49])
}
