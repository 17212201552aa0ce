package dom

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

type journal struct {
	entries []string
}

func (j *journal) watch(n *Node, name string, kinds ...EventKind) {
	for _, k := range kinds {
		n.AddEventListener(context.Background(), k, func(e *Event) {
			if e.CurrentTarget == n {
				j.entries = append(j.entries, fmt.Sprintf("%s:%s", name, k))
			}
		})
	}
}

func TestPointerEnterLeave(t *testing.T) {
	root, track, _, next := tree()
	j := &journal{}
	j.watch(root, "root", MouseEnter, MouseLeave)
	j.watch(track, "track", MouseEnter, MouseLeave)
	j.watch(next, "next", MouseEnter, MouseLeave)

	p := NewPointer(root)

	p.Move(Point{X: 10, Y: 10})
	assert.Equal(t, []string{"root:mouseenter", "track:mouseenter"}, j.entries)

	j.entries = nil
	p.Move(Point{X: 85, Y: 65})
	assert.Equal(t, []string{"track:mouseleave", "next:mouseenter"}, j.entries)

	j.entries = nil
	p.Move(Point{X: 500, Y: 500})
	assert.Equal(t, []string{"next:mouseleave", "root:mouseleave"}, j.entries)
	assert.Empty(t, p.Hovered())
}

func TestPointerClickRequiresSameTarget(t *testing.T) {
	root, track, _, next := tree()
	clicks := map[string]int{}
	next.AddEventListener(context.Background(), Click, func(*Event) { clicks["next"]++ })
	track.AddEventListener(context.Background(), Click, func(*Event) { clicks["track"]++ })

	p := NewPointer(root)
	p.Press(Point{X: 85, Y: 65})
	assert.True(t, p.Down())
	p.Release(Point{X: 86, Y: 66})
	assert.False(t, p.Down())

	p.Press(Point{X: 10, Y: 10})
	p.Release(Point{X: 85, Y: 65})

	assert.Equal(t, 1, clicks["next"])
	assert.Equal(t, 0, clicks["track"])
}

func TestPointerDisabledTargetSwallowsClick(t *testing.T) {
	root, _, _, next := tree()
	clicks, ups := 0, 0
	next.AddEventListener(context.Background(), Click, func(*Event) { clicks++ })
	next.AddEventListener(context.Background(), MouseUp, func(*Event) { ups++ })
	next.SetAttr("disabled", "")

	p := NewPointer(root)
	p.Press(Point{X: 85, Y: 65})
	p.Release(Point{X: 85, Y: 65})
	assert.Equal(t, 0, clicks)
	assert.Equal(t, 1, ups)

	next.RemoveAttr("disabled")
	p.Press(Point{X: 85, Y: 65})
	p.Release(Point{X: 85, Y: 65})
	assert.Equal(t, 1, clicks)
}

func TestPointerDragEventsBubbleToContainer(t *testing.T) {
	root, track, _, _ := tree()
	var xs []float64
	for _, k := range []EventKind{MouseDown, MouseMove, MouseUp} {
		track.AddEventListener(context.Background(), k, func(e *Event) {
			pt, _ := e.Primary()
			xs = append(xs, pt.X)
		})
	}

	p := NewPointer(root)
	p.Press(Point{X: 50, Y: 10})
	p.Move(Point{X: 40, Y: 10})
	p.Release(Point{X: 30, Y: 10})

	assert.Equal(t, []float64{50, 40, 30}, xs)
}

func TestPointerLeaveAndReset(t *testing.T) {
	root, track, _, _ := tree()
	left := 0
	track.AddEventListener(context.Background(), MouseLeave, func(*Event) { left++ })

	p := NewPointer(root)
	p.Move(Point{X: 10, Y: 10})
	p.Leave()
	assert.Equal(t, 1, left)

	p.Move(Point{X: 10, Y: 10})
	p.Reset(root)
	assert.Empty(t, p.Hovered())
	assert.Equal(t, 1, left)
}
