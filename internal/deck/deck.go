// Package deck builds the slider's element tree from a set of slides and lays
// it out for a viewport. The tree carries the data-ref bindings the slider
// resolves when it attaches.
package deck

import (
	"fmt"
	"math"
	"strconv"

	"heroslider/internal/dom"
	"heroslider/internal/domain"
)

// Reference names bound in the tree
const (
	RefContainer = "container"
	RefSlide     = "slide"
	RefDot       = "dot"
	RefPrev      = "prev"
	RefNext      = "next"
	RefProgress  = "progress"
)

// AutoplayAttr is the host attribute that opts out of autoplay when "false"
const AutoplayAttr = "data-autoplay"

// IndexAttr records a slide's or dot's position
const IndexAttr = "data-index"

// Build creates the component tree for d
func Build(d domain.Deck, autoPlay bool) *dom.Node {
	n := d.Len()

	root := el("section", "hero-slider")
	root.SetAttr(AutoplayAttr, strconv.FormatBool(autoPlay))
	root.SetAttr("tabindex", "0")
	root.SetAttr("role", "region")
	root.SetAttr("aria-roledescription", "carousel")

	track := el("div", "hero-slider__track")
	track.SetAttr(dom.RefAttr, RefContainer)
	for i, s := range d.Slides {
		slide := el("article", "hero-slider__slide")
		slide.SetAttr(dom.RefAttr, RefSlide)
		slide.SetAttr(IndexAttr, strconv.Itoa(i))
		slide.SetAttr("aria-roledescription", "slide")
		slide.SetAttr("aria-label", fmt.Sprintf("%d of %d", i+1, n))
		if s.Accent != "" {
			slide.SetAttr("data-accent", s.Accent)
		}

		title := el("h2", "hero-slider__title")
		title.Text = s.Title
		body := el("p", "hero-slider__body")
		body.Text = s.Body
		track.Append(slide.Append(title, body))
	}

	prev := el("button", "hero-slider__prev")
	prev.SetAttr(dom.RefAttr, RefPrev)
	prev.SetAttr("aria-label", "Previous slide")
	prev.Text = "‹"

	next := el("button", "hero-slider__next")
	next.SetAttr(dom.RefAttr, RefNext)
	next.SetAttr("aria-label", "Next slide")
	next.Text = "›"

	dots := el("nav", "hero-slider__dots")
	for i := 0; i < n; i++ {
		dot := el("button", "hero-slider__dot")
		dot.SetAttr(dom.RefAttr, RefDot)
		dot.SetAttr(IndexAttr, strconv.Itoa(i))
		dot.SetAttr("aria-label", fmt.Sprintf("Go to slide %d", i+1))
		dots.Append(dot)
	}

	bar := el("div", "hero-slider__progress")
	bar.SetAttr(dom.RefAttr, RefProgress)

	root.Append(
		el("div", "hero-slider__viewport").Append(track),
		el("div", "hero-slider__controls").Append(prev, dots, next),
		el("div", "hero-slider__progress-track").Append(bar),
	)
	return root
}

func el(tag, class string) *dom.Node {
	n := dom.NewElement(tag)
	n.ToggleClass(class, true)
	return n
}

// Geometry describes the viewport the tree is laid out into, in pixels.
// Cell and Row are the size of one character cell.
type Geometry struct {
	Width  float64
	Height float64
	Cell   float64
	Row    float64
}

// ButtonCells is the width of the previous/next buttons in cells
const ButtonCells = 3

// DotCells is the width reserved for each dot in cells
const DotCells = 2

// Layout assigns boxes to the tree built by Build. The track keeps the
// viewport's width so the slider measures one slide per viewport.
func Layout(root *dom.Node, g Geometry) {
	if g.Cell <= 0 {
		g.Cell = 1
	}
	if g.Row <= 0 {
		g.Row = 1
	}
	trackH := math.Max(g.Row, g.Height-2*g.Row)

	root.Box = dom.Rect{W: g.Width, H: trackH + 2*g.Row}

	kids := root.Children()
	if len(kids) != 3 {
		return
	}
	viewport, controls, progressTrack := kids[0], kids[1], kids[2]

	viewport.Box = dom.Rect{W: g.Width, H: trackH}
	if track := root.RefNode(RefContainer); track != nil {
		track.Box = viewport.Box
		for i, slide := range track.Children() {
			x := float64(i) * g.Width
			slide.Box = dom.Rect{X: x, W: g.Width, H: trackH}
			parts := slide.Children()
			if len(parts) == 2 {
				parts[0].Box = dom.Rect{X: x, W: g.Width, H: g.Row}
				parts[1].Box = dom.Rect{X: x, Y: g.Row, W: g.Width, H: math.Max(0, trackH-g.Row)}
			}
		}
	}

	y := trackH
	controls.Box = dom.Rect{Y: y, W: g.Width, H: g.Row}
	btn := ButtonCells * g.Cell
	if prev := root.RefNode(RefPrev); prev != nil {
		prev.Box = dom.Rect{Y: y, W: btn, H: g.Row}
	}
	if next := root.RefNode(RefNext); next != nil {
		next.Box = dom.Rect{X: math.Max(0, g.Width-btn), Y: y, W: btn, H: g.Row}
	}

	dots := root.RefNodes(RefDot)
	if len(dots) > 0 {
		cols := math.Floor(g.Width / g.Cell)
		start := math.Max(0, math.Floor((cols-float64(DotCells*len(dots)))/2)) * g.Cell
		dots[0].Parent().Box = dom.Rect{X: start, Y: y, W: float64(DotCells*len(dots)) * g.Cell, H: g.Row}
		for i, dot := range dots {
			dot.Box = dom.Rect{X: start + float64(DotCells*i)*g.Cell, Y: y, W: DotCells * g.Cell, H: g.Row}
		}
	}

	y += g.Row
	progressTrack.Box = dom.Rect{Y: y, W: g.Width, H: g.Row}
	if bar := root.RefNode(RefProgress); bar != nil {
		bar.Box = progressTrack.Box
	}
}
