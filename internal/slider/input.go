package slider

import (
	"context"

	"heroslider/internal/dom"
	"heroslider/internal/domain"
)

// listen registers every input channel under ctx. Cancelling ctx releases
// all of them at once.
func (s *Slider) listen(ctx context.Context) {
	if s.refs.prev != nil {
		s.refs.prev.AddEventListener(ctx, dom.Click, func(*dom.Event) {
			s.step(-1, domain.CauseButton)
		})
	}
	if s.refs.next != nil {
		s.refs.next.AddEventListener(ctx, dom.Click, func(*dom.Event) {
			s.step(1, domain.CauseButton)
		})
	}

	for i, dot := range s.refs.dots {
		dot.AddEventListener(ctx, dom.Click, func(*dom.Event) {
			s.jump(i, domain.CauseDot)
		})
	}

	s.host.AddEventListener(ctx, dom.KeyDown, s.onKey)

	if c := s.refs.container; c != nil {
		c.AddEventListener(ctx, dom.TouchStart, s.dragStart)
		c.AddEventListener(ctx, dom.TouchMove, s.dragMove)
		c.AddEventListener(ctx, dom.TouchEnd, func(*dom.Event) { s.dragEnd() })
		c.AddEventListener(ctx, dom.MouseDown, s.dragStart)
		c.AddEventListener(ctx, dom.MouseMove, s.dragMove)
		c.AddEventListener(ctx, dom.MouseUp, func(*dom.Event) { s.dragEnd() })
		c.AddEventListener(ctx, dom.MouseLeave, func(*dom.Event) { s.dragEnd() })
	}

	s.host.AddEventListener(ctx, dom.MouseEnter, func(*dom.Event) {
		s.pause(domain.ReasonHover)
	})
	s.host.AddEventListener(ctx, dom.MouseLeave, func(*dom.Event) {
		s.resume(domain.ReasonHover)
	})

	if s.doc != nil {
		s.doc.AddEventListener(ctx, dom.VisibilityChange, func(*dom.Event) {
			if s.doc.Hidden() {
				s.pause(domain.ReasonVisibility)
			} else {
				s.resume(domain.ReasonVisibility)
			}
		})
		s.doc.AddEventListener(ctx, dom.Resize, func(*dom.Event) {
			s.render(s.dragOffset())
		})
	}
}

func (s *Slider) onKey(e *dom.Event) {
	switch e.Key {
	case dom.KeyArrowLeft:
		s.step(-1, domain.CauseKeyboard)
	case dom.KeyArrowRight:
		s.step(1, domain.CauseKeyboard)
	case dom.KeyHome:
		s.jump(0, domain.CauseKeyboard)
	case dom.KeyEnd:
		s.jump(s.state.count-1, domain.CauseKeyboard)
	default:
		return
	}
	e.PreventDefault()
}
