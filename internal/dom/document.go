package dom

import "context"

// Document is the environment-level event source: page visibility and
// viewport resizes
type Document interface {
	EventTarget
	Hidden() bool
}

// Page is the in-memory document holding a tree
type Page struct {
	Root *Node

	hidden bool
	listeners
}

// NewPage creates a visible page around root
func NewPage(root *Node) *Page {
	return &Page{Root: root}
}

// AddEventListener registers fn for kind until ctx is done
func (p *Page) AddEventListener(ctx context.Context, kind EventKind, fn Listener) {
	p.add(ctx, kind, fn)
}

// ListenerCount returns the number of live listeners for kind on the page
func (p *Page) ListenerCount(kind EventKind) int {
	return p.count(kind)
}

// Hidden reports whether the page is currently hidden
func (p *Page) Hidden() bool {
	return p.hidden
}

// SetHidden changes visibility and fires visibilitychange when it flips
func (p *Page) SetHidden(hidden bool) {
	if p.hidden == hidden {
		return
	}
	p.hidden = hidden
	p.fire(&Event{Kind: VisibilityChange})
}

// NotifyResize fires resize after the tree has been laid out again
func (p *Page) NotifyResize() {
	p.fire(&Event{Kind: Resize})
}
