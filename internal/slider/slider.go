// Package slider implements the hero slider: a slide state machine, the
// input router that feeds it, and the autoplay scheduler. A Slider is not
// safe for concurrent use; every call, listener and timer firing must run on
// the goroutine that owns the element tree.
package slider

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"heroslider/internal/deck"
	"heroslider/internal/dom"
	"heroslider/internal/domain"
	"heroslider/internal/eventbus"
)

var (
	// ErrNilHost is returned when attaching to a nil host
	ErrNilHost = errors.New("slider: nil host")
	// ErrAttached is returned when attaching a slider that is already attached
	ErrAttached = errors.New("slider: already attached")
)

// Slider is one carousel instance
type Slider struct {
	opts Options
	log  zerolog.Logger
	bus  eventbus.EventBus

	ctx      context.Context
	cancel   context.CancelFunc
	attached bool

	host  dom.Host
	doc   dom.Document
	refs  refs
	state state
	auto  *scheduler
}

// Snapshot is a read-only view of a slider's state
type Snapshot struct {
	Index       int
	Count       int
	Paused      bool
	Dragging    bool
	Interacting bool
	DragOffset  float64
	AutoPlay    bool
	Armed       bool
	Attached    bool
}

// New creates a detached slider
func New(opts Options) *Slider {
	opts = opts.withDefaults()

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Slider{
		opts: opts,
		log:  logger.With().Str("component", "slider").Logger(),
		bus:  opts.Bus,
	}
}

// Attach binds the slider to host, registers every listener and starts
// autoplay unless the host opts out with data-autoplay="false". doc is
// optional and supplies visibility and resize events.
//
// The slider detaches itself on the first timer firing after ctx is done.
func (s *Slider) Attach(ctx context.Context, host dom.Host, doc dom.Document) error {
	if host == nil {
		return ErrNilHost
	}
	if s.attached {
		return ErrAttached
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.host = host
	s.doc = doc
	s.refs = resolveRefs(host)
	s.state = newState(len(s.refs.slides), s.opts.InitialIndex)

	autoPlay := true
	if v, ok := host.Attr(deck.AutoplayAttr); ok && v == "false" {
		autoPlay = false
	}
	s.auto = newScheduler(s.opts.Clock, s.opts.Interval, autoPlay, s.opts.PausePolicy, s.onTick)
	s.attached = true

	s.listen(s.ctx)
	s.render(0)
	s.auto.start()

	s.log.Debug().
		Int("slides", s.state.count).
		Int("index", s.state.current).
		Bool("autoplay", s.auto.enabled).
		Str("policy", s.opts.PausePolicy.String()).
		Msg("attached")
	s.publish(eventbus.SliderAttachedEvent{Slides: s.state.count, AutoPlay: s.auto.enabled})
	return nil
}

// Detach stops the timer and releases every listener. It is idempotent; a
// detached slider may be attached again from scratch.
func (s *Slider) Detach() {
	if !s.attached {
		return
	}
	s.cancel()
	s.auto.stop()
	s.state.drag = nil
	s.attached = false

	s.log.Debug().Msg("detached")
	s.publish(eventbus.SliderDetachedEvent{})
}

// Next advances one slide, wrapping at the end
func (s *Slider) Next() {
	if s.attached {
		s.step(1, domain.CauseAPI)
	}
}

// Previous goes back one slide, wrapping at the start
func (s *Slider) Previous() {
	if s.attached {
		s.step(-1, domain.CauseAPI)
	}
}

// GoTo jumps to slide i. Out-of-range indices are ignored.
func (s *Slider) GoTo(i int) {
	if s.attached {
		s.jump(i, domain.CauseAPI)
	}
}

// Pause stops autoplay from advancing until Play
func (s *Slider) Pause() {
	if s.attached {
		s.pause(domain.ReasonManual)
	}
}

// Play lifts every pause, including hover and visibility
func (s *Slider) Play() {
	if !s.attached {
		return
	}
	if s.auto.resumeAll() {
		s.log.Debug().Str("reason", string(domain.ReasonManual)).Msg("autoplay resumed")
		s.publish(eventbus.AutoplayResumedEvent{Reason: domain.ReasonManual})
	}
}

// Snapshot returns the current state
func (s *Slider) Snapshot() Snapshot {
	snap := Snapshot{
		Index:    s.state.current,
		Count:    s.state.count,
		Attached: s.attached,
	}
	if s.auto != nil {
		snap.Paused = s.auto.paused
		snap.AutoPlay = s.auto.enabled
		snap.Armed = s.auto.armed()
	}
	if d := s.state.drag; d != nil {
		snap.Dragging = d.dragging
		snap.Interacting = d.interacting
		snap.DragOffset = s.dragOffset()
	}
	return snap
}

// step is a committed advance: mutate, render, then reset autoplay
func (s *Slider) step(n int, cause domain.Cause) {
	from := s.state.current
	if !s.state.advance(n) {
		return
	}
	s.commit(from, cause)
}

// jump is a committed jumpTo
func (s *Slider) jump(i int, cause domain.Cause) {
	from := s.state.current
	if !s.state.jumpTo(i) {
		s.log.Debug().Int("index", i).Int("count", s.state.count).Msg("jump out of range ignored")
		return
	}
	s.commit(from, cause)
}

func (s *Slider) commit(from int, cause domain.Cause) {
	s.render(0)
	s.auto.reset()

	to := s.state.current
	s.log.Debug().Int("from", from).Int("to", to).Str("cause", string(cause)).Msg("slide changed")
	s.publish(eventbus.SlideChangedEvent{From: from, To: to, Count: s.state.count, Cause: cause})
}

func (s *Slider) pause(reason domain.PauseReason) {
	if s.auto.pause(reason) {
		s.log.Debug().Str("reason", string(reason)).Msg("autoplay paused")
		s.publish(eventbus.AutoplayPausedEvent{Reason: reason})
	}
}

func (s *Slider) resume(reason domain.PauseReason) {
	if s.auto.resume(reason) {
		s.log.Debug().Str("reason", string(reason)).Msg("autoplay resumed")
		s.publish(eventbus.AutoplayResumedEvent{Reason: reason})
	}
}

// onTick is the autoplay firing
func (s *Slider) onTick() {
	if !s.attached {
		return
	}
	if s.ctx.Err() != nil {
		s.Detach()
		return
	}
	if s.auto.paused {
		s.log.Debug().Msg("autoplay firing skipped: paused")
		return
	}
	if d := s.state.drag; d != nil && d.interacting {
		s.log.Debug().Msg("autoplay firing skipped: interacting")
		return
	}
	s.step(1, domain.CauseAutoplay)
}

func (s *Slider) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}
