package dom

import (
	"context"
	"sort"
)

// RefAttr is the attribute that binds an element to a named reference
const RefAttr = "data-ref"

// Element is the view of a node that components write visual state into
type Element interface {
	EventTarget
	Width() float64
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)
	ToggleClass(name string, on bool)
	SetStyle(prop, value string)
}

// Host is the element a component is mounted on. Ref and RefAll resolve
// named references among its descendants; Ref returns nil and RefAll an
// empty slice when nothing is bound to the name.
type Host interface {
	Element
	Ref(name string) Element
	RefAll(name string) []Element
}

// Rect is a layout box in pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the box
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Node is an element in the in-memory document tree
type Node struct {
	Tag  string
	Text string
	Box  Rect

	parent   *Node
	children []*Node
	attrs    map[string]string
	classes  []string
	style    map[string]string

	listeners
}

// NewElement creates a detached element
func NewElement(tag string) *Node {
	return &Node{
		Tag:   tag,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
}

// Append adds children and returns the receiver for chaining
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Children returns the node's children in document order
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the parent node, nil for a root
func (n *Node) Parent() *Node {
	return n.parent
}

// Width returns the rendered width of the node
func (n *Node) Width() float64 {
	return n.Box.W
}

// Attr returns an attribute value and whether it is present
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttr sets an attribute
func (n *Node) SetAttr(name, value string) {
	n.attrs[name] = value
}

// RemoveAttr removes an attribute; removing an absent attribute is a no-op
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// HasAttr reports whether an attribute is present
func (n *Node) HasAttr(name string) bool {
	_, ok := n.attrs[name]
	return ok
}

// AttrNames returns attribute names sorted
func (n *Node) AttrNames() []string {
	names := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ToggleClass adds or removes a class
func (n *Node) ToggleClass(name string, on bool) {
	for i, c := range n.classes {
		if c == name {
			if !on {
				n.classes = append(n.classes[:i:i], n.classes[i+1:]...)
			}
			return
		}
	}
	if on {
		n.classes = append(n.classes, name)
	}
}

// HasClass reports whether the node carries a class
func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns the node's classes in insertion order
func (n *Node) Classes() []string {
	return n.classes
}

// SetStyle sets an inline style property; an empty value removes it
func (n *Node) SetStyle(prop, value string) {
	if value == "" {
		delete(n.style, prop)
		return
	}
	n.style[prop] = value
}

// Style returns an inline style property
func (n *Node) Style(prop string) string {
	return n.style[prop]
}

// StyleProps returns inline style property names sorted
func (n *Node) StyleProps() []string {
	props := make([]string, 0, len(n.style))
	for k := range n.style {
		props = append(props, k)
	}
	sort.Strings(props)
	return props
}

// AddEventListener registers fn for kind until ctx is done
func (n *Node) AddEventListener(ctx context.Context, kind EventKind, fn Listener) {
	n.add(ctx, kind, fn)
}

// ListenerCount returns the number of live listeners for kind on this node
func (n *Node) ListenerCount(kind EventKind) int {
	return n.count(kind)
}

// Walk visits the subtree in document order until fn returns false
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Ref returns the first descendant bound to name, or nil
func (n *Node) Ref(name string) Element {
	if found := n.RefNode(name); found != nil {
		return found
	}
	return nil
}

// RefNode is Ref returning the concrete node
func (n *Node) RefNode(name string) *Node {
	var found *Node
	for _, c := range n.children {
		c.Walk(func(d *Node) bool {
			if v, ok := d.attrs[RefAttr]; ok && v == name {
				found = d
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// RefAll returns every descendant bound to name in document order
func (n *Node) RefAll(name string) []Element {
	nodes := n.RefNodes(name)
	out := make([]Element, len(nodes))
	for i, d := range nodes {
		out[i] = d
	}
	return out
}

// RefNodes is RefAll returning concrete nodes
func (n *Node) RefNodes(name string) []*Node {
	var out []*Node
	for _, c := range n.children {
		c.Walk(func(d *Node) bool {
			if v, ok := d.attrs[RefAttr]; ok && v == name {
				out = append(out, d)
			}
			return true
		})
	}
	return out
}

// HitTest returns the deepest node whose box contains p, or nil
func (n *Node) HitTest(p Point) *Node {
	if !n.Box.Contains(p) {
		return nil
	}
	// Later siblings paint over earlier ones
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := n.children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	return n
}

// Path returns the chain from the root down to n
func (n *Node) Path() []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Dispatch delivers e to n and, for bubbling kinds, to its ancestors
func (n *Node) Dispatch(e *Event) {
	e.Target = n
	for cur := n; cur != nil; cur = cur.parent {
		e.CurrentTarget = cur
		cur.fire(e)
		if e.stopped || !e.Kind.Bubbles() {
			break
		}
	}
	e.CurrentTarget = nil
}
