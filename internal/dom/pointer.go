package dom

// Pointer turns raw pointer positions into DOM mouse events the way a
// browser does: enter/leave as the hovered chain changes, down/move/up on the
// node under the pointer, and click when press and release hit the same
// enabled node.
type Pointer struct {
	root    *Node
	hovered []*Node
	pressed *Node
	down    bool
}

// NewPointer creates a pointer over the tree rooted at root
func NewPointer(root *Node) *Pointer {
	return &Pointer{root: root}
}

// Down reports whether the primary button is held
func (p *Pointer) Down() bool {
	return p.down
}

// Hovered returns the chain of nodes under the pointer, root first
func (p *Pointer) Hovered() []*Node {
	return p.hovered
}

// Move reports a pointer position
func (p *Pointer) Move(pt Point) {
	target := p.track(pt)
	if target != nil {
		target.Dispatch(&Event{Kind: MouseMove, Points: []Point{pt}})
	}
}

// Press reports the primary button going down at pt
func (p *Pointer) Press(pt Point) {
	target := p.track(pt)
	p.down = true
	p.pressed = target
	if target != nil {
		target.Dispatch(&Event{Kind: MouseDown, Points: []Point{pt}})
	}
}

// Release reports the primary button going up at pt
func (p *Pointer) Release(pt Point) {
	target := p.track(pt)
	pressed := p.pressed
	p.down = false
	p.pressed = nil
	if target == nil {
		return
	}
	target.Dispatch(&Event{Kind: MouseUp, Points: []Point{pt}})
	// Disabled controls swallow clicks
	if pressed == target && !target.HasAttr("disabled") {
		target.Dispatch(&Event{Kind: Click, Points: []Point{pt}})
	}
}

// Leave reports the pointer leaving the viewport entirely
func (p *Pointer) Leave() {
	p.setHovered(nil)
}

// Reset forgets the hovered chain and pressed state without firing events,
// used after the tree has been rebuilt
func (p *Pointer) Reset(root *Node) {
	p.root = root
	p.hovered = nil
	p.pressed = nil
	p.down = false
}

func (p *Pointer) track(pt Point) *Node {
	var target *Node
	if p.root != nil {
		target = p.root.HitTest(pt)
	}
	var chain []*Node
	if target != nil {
		chain = target.Path()
	}
	p.setHovered(chain)
	return target
}

// setHovered fires mouseleave deepest-first on nodes no longer hovered, then
// mouseenter outermost-first on newly hovered nodes
func (p *Pointer) setHovered(chain []*Node) {
	common := 0
	for common < len(p.hovered) && common < len(chain) && p.hovered[common] == chain[common] {
		common++
	}

	old := p.hovered
	p.hovered = chain

	for i := len(old) - 1; i >= common; i-- {
		old[i].Dispatch(&Event{Kind: MouseLeave})
	}
	for i := common; i < len(chain); i++ {
		chain[i].Dispatch(&Event{Kind: MouseEnter})
	}
}
