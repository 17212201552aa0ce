package slider

// state is the slide state machine. Position is the whole state; count is
// fixed for the lifetime of one attachment.
type state struct {
	current int
	count   int
	drag    *dragState
}

func newState(count, initial int) state {
	s := state{count: count}
	if count > 0 {
		s.current = clamp(initial, 0, count-1)
	}
	return s
}

// advance moves by step with wraparound. It reports false when there are
// no slides.
func (s *state) advance(step int) bool {
	if s.count == 0 {
		return false
	}
	s.current = ((s.current+step)%s.count + s.count) % s.count
	return true
}

// jumpTo moves to i when it is in range; out-of-range indices are ignored
// rather than clamped.
func (s *state) jumpTo(i int) bool {
	if i < 0 || i >= s.count {
		return false
	}
	s.current = i
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
