package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"heroslider/internal/clock"
)

// teaClock arms slider timers as Bubble Tea ticks so every firing is
// delivered through Update, serialized with input. Timers armed during an
// update are picked up by arm once the update returns.
type teaClock struct {
	nextID  int
	timers  map[int]*teaTimer
	pending []*teaTimer
}

type teaTimer struct {
	clock   *teaClock
	id      int
	period  time.Duration
	fn      func()
	stopped bool
}

func newTeaClock() *teaClock {
	return &teaClock{timers: make(map[int]*teaTimer)}
}

// Every implements clock.Clock
func (c *teaClock) Every(d time.Duration, fn func()) clock.Timer {
	c.nextID++
	t := &teaTimer{clock: c, id: c.nextID, period: d, fn: fn}
	c.timers[t.id] = t
	c.pending = append(c.pending, t)
	return t
}

func (t *teaTimer) Stop() {
	t.stopped = true
	delete(t.clock.timers, t.id)
}

// arm returns the first tick of every timer armed since the last call
func (c *teaClock) arm() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range c.pending {
		if !t.stopped {
			cmds = append(cmds, t.tick())
		}
	}
	c.pending = nil
	return tea.Batch(cmds...)
}

// fire runs the timer behind msg and schedules its next tick. Ticks of
// stopped timers are dropped.
func (c *teaClock) fire(msg timerMsg) tea.Cmd {
	t, ok := c.timers[msg.id]
	if !ok {
		return nil
	}
	t.fn()
	if t.stopped {
		return nil
	}
	return t.tick()
}

// live returns the number of armed timers
func (c *teaClock) live() int {
	return len(c.timers)
}

func (t *teaTimer) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.period, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}
