// Package clock abstracts repeating timers so the slider's autoplay can be
// driven by a terminal program's tick messages, a real-time event loop, or a
// test.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a handle to an armed repeating timer
type Timer interface {
	// Stop cancels the timer; later firings never run. Stop is idempotent.
	Stop()
}

// Clock arms repeating timers. Implementations must run fn on the same
// goroutine that drives the rest of the component.
type Clock interface {
	Every(d time.Duration, fn func()) Timer
}

// Manual is a Clock advanced explicitly. Firings run synchronously inside
// Advance, in due-time order.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock   *Manual
	period  time.Duration
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
}

// NewManual creates a manual clock at time zero
func NewManual() *Manual {
	return &Manual{}
}

// Every arms a repeating timer first due one period from now
func (m *Manual) Every(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &manualTimer{clock: m, period: d, due: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the elapsed manual time
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Armed returns the number of live timers
func (m *Manual) Armed() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every timer that falls due.
// Timers armed or stopped by a firing take effect immediately.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.due
		next.due += next.period
		fn := next.fn
		m.mu.Unlock()

		fn()
	}
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	m.timers = live

	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].due != m.timers[j].due {
			return m.timers[i].due < m.timers[j].due
		}
		return m.timers[i].seq < m.timers[j].seq
	})
	if len(m.timers) == 0 || m.timers[0].due > limit {
		return nil
	}
	return m.timers[0]
}

func (t *manualTimer) Stop() {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	t.stopped = true
}
