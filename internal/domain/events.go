package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged    EventType = "SlideChanged"
	EventAutoplayPaused  EventType = "AutoplayPaused"
	EventAutoplayResumed EventType = "AutoplayResumed"
	EventSliderAttached  EventType = "SliderAttached"
	EventSliderDetached  EventType = "SliderDetached"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventDeckScanned     EventType = "DeckScanned"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// Cause names the input that triggered a committed transition
type Cause string

const (
	CauseAPI      Cause = "api"
	CauseButton   Cause = "button"
	CauseDot      Cause = "dot"
	CauseKeyboard Cause = "keyboard"
	CauseSwipe    Cause = "swipe"
	CauseAutoplay Cause = "autoplay"
)

// PauseReason names what paused or resumed autoplay
type PauseReason string

const (
	ReasonHover      PauseReason = "hover"
	ReasonVisibility PauseReason = "visibility"
	ReasonManual     PauseReason = "manual"
)

// SlideChangedEvent is emitted after every committed transition
type SlideChangedEvent struct {
	From  int
	To    int
	Count int
	Cause Cause
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// AutoplayPausedEvent is emitted when the autoplay gate closes
type AutoplayPausedEvent struct {
	Reason PauseReason
}

func (e AutoplayPausedEvent) Type() EventType { return EventAutoplayPaused }

// AutoplayResumedEvent is emitted when the autoplay gate opens again
type AutoplayResumedEvent struct {
	Reason PauseReason
}

func (e AutoplayResumedEvent) Type() EventType { return EventAutoplayResumed }

// SliderAttachedEvent is emitted once a slider has bound its references
type SliderAttachedEvent struct {
	Slides   int
	AutoPlay bool
}

func (e SliderAttachedEvent) Type() EventType { return EventSliderAttached }

// SliderDetachedEvent is emitted after teardown
type SliderDetachedEvent struct{}

func (e SliderDetachedEvent) Type() EventType { return EventSliderDetached }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Slides int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// DeckScannedEvent is emitted when a slide directory has been read
type DeckScannedEvent struct {
	Root   string
	Slides int
}

func (e DeckScannedEvent) Type() EventType { return EventDeckScanned }
