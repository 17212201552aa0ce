package state

import (
	"heroslider/internal/domain"
	"heroslider/internal/slider"
)

// AppState contains all the application state outside the slider itself
type AppState struct {
	// Slider data
	Deck     domain.Deck
	Snapshot slider.Snapshot

	// UI state
	Width         int
	Height        int
	ShowHelp      bool
	ShowInfo      bool
	InPager       bool
	Focused       bool
	StatusMessage string // status bar message

	// Recent slider activity, newest last
	History []string
}

// historyLimit bounds History
const historyLimit = 50

// NewAppState creates a new application state
func NewAppState(deck domain.Deck) *AppState {
	return &AppState{
		Deck:    deck,
		Focused: true,
	}
}

// CurrentSlide returns the slide under the committed index
func (s *AppState) CurrentSlide() (domain.Slide, bool) {
	if s.Snapshot.Count == 0 {
		return domain.Slide{}, false
	}
	return s.Deck.At(s.Snapshot.Index)
}

// Record appends a line to the activity history
func (s *AppState) Record(line string) {
	s.History = append(s.History, line)
	if len(s.History) > historyLimit {
		s.History = s.History[len(s.History)-historyLimit:]
	}
}
