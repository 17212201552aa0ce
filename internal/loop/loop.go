// Package loop provides a single-goroutine event loop. Every task posted to a
// Loop runs on the goroutine inside Run, one at a time, so components that are
// not safe for concurrent use can be driven from timers and other goroutines.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"heroslider/internal/clock"
)

// ErrStopped is returned when posting to a loop that has finished running
var ErrStopped = errors.New("loop stopped")

// Loop serialises tasks onto one goroutine
type Loop struct {
	tasks    chan func()
	done     chan struct{}
	doneOnce sync.Once
	running  atomic.Bool
}

// New creates a loop with a task queue of the given depth
func New(queue int) *Loop {
	if queue < 1 {
		queue = 1
	}
	return &Loop{
		tasks: make(chan func(), queue),
		done:  make(chan struct{}),
	}
}

// Run executes posted tasks until ctx is done. It returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("loop already running")
	}
	defer l.doneOnce.Do(func() { close(l.done) })

	for {
		select {
		case fn := <-l.tasks:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Done is closed once Run has returned
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues fn, blocking while the queue is full
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}

	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Do runs fn on the loop and waits for it to finish
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Clock returns a real-time clock whose firings run on the loop
func (l *Loop) Clock() clock.Clock {
	return loopClock{loop: l}
}

type loopClock struct {
	loop *Loop
}

func (c loopClock) Every(d time.Duration, fn func()) clock.Timer {
	t := &tickerTimer{stop: make(chan struct{})}
	ticker := time.NewTicker(d)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				err := c.loop.Post(func() {
					// Stop runs on the loop too, so this check is race free
					// with respect to the component
					if !t.stopped.Load() {
						fn()
					}
				})
				if err != nil {
					return
				}
			case <-t.stop:
				return
			case <-c.loop.done:
				return
			}
		}
	}()

	return t
}

type tickerTimer struct {
	stopped  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

func (t *tickerTimer) Stop() {
	t.stopped.Store(true)
	t.stopOnce.Do(func() { close(t.stop) })
}
