package slider

import (
	"time"

	"heroslider/internal/clock"
	"heroslider/internal/domain"
)

// scheduler owns the autoplay timer. Pausing gates the effect of a firing;
// the timer itself keeps running.
type scheduler struct {
	clock    clock.Clock
	interval time.Duration
	enabled  bool
	policy   PausePolicy
	fire     func()

	timer   clock.Timer
	paused  bool
	reasons map[domain.PauseReason]bool
}

func newScheduler(c clock.Clock, interval time.Duration, enabled bool, policy PausePolicy, fire func()) *scheduler {
	return &scheduler{
		clock:    c,
		interval: interval,
		enabled:  enabled && c != nil,
		policy:   policy,
		fire:     fire,
		reasons:  make(map[domain.PauseReason]bool),
	}
}

// start re-arms the timer. It does nothing when autoplay is disabled.
func (a *scheduler) start() {
	if !a.enabled {
		return
	}
	a.stop()
	a.timer = a.clock.Every(a.interval, a.fire)
}

func (a *scheduler) stop() {
	if a.timer == nil {
		return
	}
	a.timer.Stop()
	a.timer = nil
}

// reset pushes the next firing a full period out
func (a *scheduler) reset() {
	a.start()
}

func (a *scheduler) armed() bool {
	return a.timer != nil
}

// pause records reason and reports whether the gate closed
func (a *scheduler) pause(reason domain.PauseReason) bool {
	a.reasons[reason] = true
	was := a.paused
	a.paused = true
	return !was
}

// resume clears reason and reports whether the gate opened. Under Counted
// the gate stays closed while another reason is still recorded.
func (a *scheduler) resume(reason domain.PauseReason) bool {
	if a.policy == Counted {
		delete(a.reasons, reason)
		if len(a.reasons) > 0 {
			return false
		}
	} else {
		clear(a.reasons)
	}
	was := a.paused
	a.paused = false
	return was
}

// resumeAll clears every reason regardless of policy
func (a *scheduler) resumeAll() bool {
	clear(a.reasons)
	was := a.paused
	a.paused = false
	return was
}
