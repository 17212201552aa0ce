package domain

// Slide is one content panel of the carousel
type Slide struct {
	Title  string
	Body   string
	Accent string // lipgloss colour used for the slide's title bar
}

// Deck is the ordered, fixed set of slides shown by one slider
type Deck struct {
	Slides []Slide
}

// Len returns the number of slides in the deck
func (d Deck) Len() int {
	return len(d.Slides)
}

// At returns the slide at index i and whether it exists
func (d Deck) At(i int) (Slide, bool) {
	if i < 0 || i >= len(d.Slides) {
		return Slide{}, false
	}
	return d.Slides[i], true
}
