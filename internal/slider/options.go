package slider

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"heroslider/internal/clock"
	"heroslider/internal/eventbus"
)

// PausePolicy decides how independent pause sources combine
type PausePolicy int

const (
	// LastEventWins treats every pause/resume trigger as a plain flag write:
	// leaving the slider with the pointer resumes autoplay even while the
	// page is still hidden.
	LastEventWins PausePolicy = iota
	// Counted keeps autoplay paused while any pause source is still active.
	Counted
)

func (p PausePolicy) String() string {
	switch p {
	case LastEventWins:
		return "last-event"
	case Counted:
		return "counted"
	default:
		return fmt.Sprintf("PausePolicy(%d)", int(p))
	}
}

// ParsePausePolicy maps the configuration spelling to a policy
func ParsePausePolicy(s string) (PausePolicy, error) {
	switch s {
	case "", "last-event":
		return LastEventWins, nil
	case "counted":
		return Counted, nil
	default:
		return LastEventWins, fmt.Errorf("unknown pause policy %q", s)
	}
}

// Options configures a Slider
type Options struct {
	// Interval is the autoplay period.
	Interval time.Duration
	// DragThreshold is the horizontal displacement in pixels a gesture must
	// exceed before it counts as a drag rather than a tap.
	DragThreshold float64
	// CommitRatio is the fraction of the slide width a released drag must
	// cross to change slides.
	CommitRatio float64
	// InitialIndex is clamped into range when the slider attaches.
	InitialIndex int
	PausePolicy  PausePolicy

	// Clock arms the autoplay timer. Without one autoplay never starts.
	Clock  clock.Clock
	Bus    eventbus.EventBus
	Logger *zerolog.Logger
}

// Defaults for Options
const (
	DefaultInterval      = 5000 * time.Millisecond
	DefaultDragThreshold = 10
	DefaultCommitRatio   = 0.3
)

// DefaultOptions returns options with the standard timings and no clock
func DefaultOptions() Options {
	return Options{
		Interval:      DefaultInterval,
		DragThreshold: DefaultDragThreshold,
		CommitRatio:   DefaultCommitRatio,
		PausePolicy:   LastEventWins,
	}
}

func (o Options) withDefaults() Options {
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.DragThreshold < 0 {
		o.DragThreshold = DefaultDragThreshold
	}
	if o.CommitRatio <= 0 || o.CommitRatio >= 1 {
		o.CommitRatio = DefaultCommitRatio
	}
	return o
}
