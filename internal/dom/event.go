package dom

import (
	"context"
	"sync"
)

// EventKind names a DOM event
type EventKind string

const (
	Click            EventKind = "click"
	KeyDown          EventKind = "keydown"
	TouchStart       EventKind = "touchstart"
	TouchMove        EventKind = "touchmove"
	TouchEnd         EventKind = "touchend"
	MouseDown        EventKind = "mousedown"
	MouseMove        EventKind = "mousemove"
	MouseUp          EventKind = "mouseup"
	MouseEnter       EventKind = "mouseenter"
	MouseLeave       EventKind = "mouseleave"
	VisibilityChange EventKind = "visibilitychange"
	Resize           EventKind = "resize"
)

// Bubbles reports whether events of this kind propagate to ancestors
func (k EventKind) Bubbles() bool {
	switch k {
	case MouseEnter, MouseLeave, VisibilityChange, Resize:
		return false
	default:
		return true
	}
}

// Key names delivered with KeyDown events
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// Point is a pointer position in layout pixels
type Point struct {
	X float64
	Y float64
}

// Event is a dispatched DOM event
type Event struct {
	Kind EventKind
	Key  string

	// Points holds the active pointers. Mouse events carry one point; touch
	// events carry the touches still on the surface, so a lifted finger
	// yields an empty slice.
	Points []Point

	Target        *Node
	CurrentTarget *Node

	defaultPrevented bool
	stopped          bool
}

// Primary returns the first pointer of the event
func (e *Event) Primary() (Point, bool) {
	if len(e.Points) == 0 {
		return Point{}, false
	}
	return e.Points[0], true
}

// PreventDefault suppresses the host's default action for the event
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching further ancestors
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles a dispatched event
type Listener func(*Event)

// EventTarget accepts listeners scoped to a context. A listener is removed
// once its context is done and is never invoked after that.
type EventTarget interface {
	AddEventListener(ctx context.Context, kind EventKind, fn Listener)
}

type registration struct {
	ctx context.Context
	fn  Listener
}

// listeners is the registry embedded by every event target
type listeners struct {
	mu     sync.Mutex
	byKind map[EventKind][]*registration
}

func (l *listeners) add(ctx context.Context, kind EventKind, fn Listener) {
	if fn == nil || ctx.Err() != nil {
		return
	}

	reg := &registration{ctx: ctx, fn: fn}

	l.mu.Lock()
	if l.byKind == nil {
		l.byKind = make(map[EventKind][]*registration)
	}
	l.byKind[kind] = append(l.byKind[kind], reg)
	l.mu.Unlock()

	context.AfterFunc(ctx, func() {
		l.remove(kind, reg)
	})
}

func (l *listeners) remove(kind EventKind, reg *registration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	regs := l.byKind[kind]
	for i, r := range regs {
		if r == reg {
			l.byKind[kind] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// count returns the number of live listeners for kind
func (l *listeners) count(kind EventKind) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, r := range l.byKind[kind] {
		if r.ctx.Err() == nil {
			n++
		}
	}
	return n
}

func (l *listeners) fire(e *Event) {
	l.mu.Lock()
	regs := make([]*registration, len(l.byKind[e.Kind]))
	copy(regs, l.byKind[e.Kind])
	l.mu.Unlock()

	for _, r := range regs {
		// AfterFunc runs asynchronously; the context check closes the gap
		if r.ctx.Err() != nil {
			continue
		}
		r.fn(e)
	}
}
