package slider

import (
	"strconv"

	"heroslider/internal/deck"
	"heroslider/internal/dom"
)

// refs are the bound references, resolved once per attachment. Any of them
// may be missing; every write through an absent reference is a no-op.
type refs struct {
	container dom.Element
	slides    []dom.Element
	dots      []dom.Element
	prev      dom.Element
	next      dom.Element
	progress  dom.Element
}

func resolveRefs(h dom.Host) refs {
	return refs{
		container: h.Ref(deck.RefContainer),
		slides:    h.RefAll(deck.RefSlide),
		dots:      h.RefAll(deck.RefDot),
		prev:      h.Ref(deck.RefPrev),
		next:      h.Ref(deck.RefNext),
		progress:  h.Ref(deck.RefProgress),
	}
}

func (r refs) slideWidth() float64 {
	if r.container == nil {
		return 0
	}
	return r.container.Width()
}

// render is the full render pass for the current index. dragOffset shifts
// the transform only.
func (s *Slider) render(dragOffset float64) {
	s.renderTransform(dragOffset)

	cur := s.state.current
	for i, slide := range s.refs.slides {
		active := i == cur
		slide.SetAttr("aria-hidden", strconv.FormatBool(!active))
		setFlag(slide, "inert", !active)
	}

	for i, dot := range s.refs.dots {
		active := i == cur
		dot.SetAttr("aria-current", strconv.FormatBool(active))
		dot.ToggleClass("active", active)
	}

	if s.refs.prev != nil {
		setFlag(s.refs.prev, "disabled", cur == 0)
	}
	if s.refs.next != nil {
		setFlag(s.refs.next, "disabled", cur == s.state.count-1)
	}

	if s.refs.progress != nil && s.state.count > 0 {
		pct := float64(cur+1) / float64(s.state.count) * 100
		s.refs.progress.SetStyle("width", formatPx(pct)+"%")
	}
}

// renderTransform moves the track without touching anything that would
// commit the position; used while a drag is in flight.
func (s *Slider) renderTransform(dragOffset float64) {
	if s.refs.container == nil {
		return
	}
	offset := -float64(s.state.current)*s.refs.slideWidth() + dragOffset
	s.refs.container.SetStyle("transform", TranslateX(offset))
}

// TranslateX formats a horizontal transform in pixels
func TranslateX(px float64) string {
	return "translateX(" + formatPx(px) + "px)"
}

func formatPx(v float64) string {
	if v == 0 {
		// Normalises negative zero
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func setFlag(el dom.Element, name string, on bool) {
	if on {
		el.SetAttr(name, "")
	} else {
		el.RemoveAttr(name)
	}
}
