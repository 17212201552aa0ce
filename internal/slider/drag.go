package slider

import (
	"math"

	"heroslider/internal/dom"
	"heroslider/internal/domain"
)

// dragState tracks one touch or mouse gesture on the container
type dragState struct {
	// startX is where the gesture began.
	startX float64
	// currentX is the last reported pointer position.
	currentX float64
	// dragging is set once the displacement exceeded the drag threshold.
	dragging bool
	// interacting is set for the whole lifetime of the gesture.
	interacting bool
}

func (d *dragState) delta() float64 {
	return d.currentX - d.startX
}

// dragStart begins a gesture. A gesture already in flight is replaced so the
// most recent one controls the offset.
func (s *Slider) dragStart(e *dom.Event) {
	p, ok := e.Primary()
	if !ok {
		return
	}
	if prev := s.state.drag; prev != nil {
		s.log.Debug().Float64("delta", prev.delta()).Msg("drag replaced by new gesture")
		if prev.dragging {
			s.renderTransform(0)
		}
	}
	s.state.drag = &dragState{startX: p.X, currentX: p.X, interacting: true}
}

// dragMove tracks the pointer and moves the track once the gesture is a drag
func (s *Slider) dragMove(e *dom.Event) {
	d := s.state.drag
	if d == nil {
		return
	}
	p, ok := e.Primary()
	if !ok {
		return
	}
	d.currentX = p.X

	delta := d.delta()
	if math.Abs(delta) > s.opts.DragThreshold {
		d.dragging = true
		s.renderTransform(delta)
	}
}

// dragEnd commits or abandons the gesture and discards the drag state
func (s *Slider) dragEnd() {
	d := s.state.drag
	if d == nil {
		return
	}
	s.state.drag = nil

	if !d.dragging {
		return
	}

	delta := d.delta()
	if math.Abs(delta) > s.opts.DragThreshold && math.Abs(delta) > s.opts.CommitRatio*s.refs.slideWidth() {
		step := 1
		if delta > 0 {
			step = -1
		}
		s.step(step, domain.CauseSwipe)
		return
	}

	// Snap back to the committed position
	s.render(0)
}

func (s *Slider) dragOffset() float64 {
	if d := s.state.drag; d != nil && d.dragging {
		return d.delta()
	}
	return 0
}
