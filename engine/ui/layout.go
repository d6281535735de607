package ui

import (
	"fmt"

	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
)

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vstack"
	}
	return "hstack"
}

type child struct {
	container bool
	index     int // widget id or container index
}

type container struct {
	axis     Axis
	x, y     float32
	padding  float32
	gap      float32
	children []child
	parent   int // -1 for roots
	bounds   Rect
}

// ContainerRef names a container inside its LayoutManager.
type ContainerRef struct {
	index int
}

// LayoutManager arranges widgets into nested horizontal and vertical
// stacks. Containers form a forest: a container has at most one parent.
type LayoutManager struct {
	containers []container
	dirty      bool
}

func NewLayoutManager() *LayoutManager { return &LayoutManager{} }

func (l *LayoutManager) stack(axis Axis) *StackBuilder {
	l.containers = append(l.containers, container{axis: axis, parent: -1})
	l.dirty = true
	return &StackBuilder{l: l, index: len(l.containers) - 1}
}

func (l *LayoutManager) HStack() *StackBuilder { return l.stack(Horizontal) }
func (l *LayoutManager) VStack() *StackBuilder { return l.stack(Vertical) }

// Edit reopens an existing container for changes.
func (l *LayoutManager) Edit(ref ContainerRef) *StackBuilder {
	l.at(ref.index)
	return &StackBuilder{l: l, index: ref.index}
}

func (l *LayoutManager) Len() int { return len(l.containers) }

func (l *LayoutManager) at(i int) *container {
	if i < 0 || i >= len(l.containers) {
		panic(fmt.Sprintf("ui: no container %d", i))
	}
	return &l.containers[i]
}

func (l *LayoutManager) TakeDirty() bool {
	d := l.dirty
	l.dirty = false
	return d
}

// ComputeAll places every root container at its position and everything
// below it.
func (l *LayoutManager) ComputeAll(m *Manager) {
	isChild := make([]bool, len(l.containers))
	for _, c := range l.containers {
		for _, ch := range c.children {
			if ch.container {
				isChild[ch.index] = true
			}
		}
	}

	roots := 0
	for i := range l.containers {
		if isChild[i] {
			continue
		}
		c := &l.containers[i]
		l.walk(i, c.x, c.y, m, true)
		roots++
	}
	core.Logger().Debug("ui: layout computed", "containers", len(l.containers), "roots", roots)
}

// Measure returns the size ref would occupy. Nothing is moved.
func (l *LayoutManager) Measure(ref ContainerRef, m *Manager) (w, h float32) {
	l.at(ref.index)
	return l.walk(ref.index, 0, 0, m, false)
}

// Bounds is the box ref was given by the last ComputeAll.
func (l *LayoutManager) Bounds(ref ContainerRef) Rect {
	return l.at(ref.index).bounds
}

// walk lays out container idx with its top-left at (x, y) and returns
// its size. With place false it only measures.
func (l *LayoutManager) walk(idx int, x, y float32, m *Manager, place bool) (w, h float32) {
	c := &l.containers[idx]
	cursor := c.padding
	var cross float32
	n := 0

	for _, ch := range c.children {
		cx, cy := x+c.padding, y+cursor
		if c.axis == Horizontal {
			cx, cy = x+cursor, y+c.padding
		}

		var cw, chh float32
		if ch.container {
			cw, chh = l.walk(ch.index, cx, cy, m, place)
		} else {
			wd, ok := m.widget(ch.index)
			if !ok {
				continue
			}
			b := wd.Bounds()
			cw, chh = b.W, b.H
			if place && (b.X != cx || b.Y != cy) {
				b.X, b.Y = cx, cy
				wd.SetBounds(b)
			}
		}

		main, off := chh, cw
		if c.axis == Horizontal {
			main, off = cw, chh
		}
		cursor += main + c.gap
		cross = max(cross, off)
		n++
	}

	mainSize := 2 * c.padding
	if n > 0 {
		mainSize = cursor - c.gap + c.padding
	}
	crossSize := cross + 2*c.padding

	w, h = crossSize, mainSize
	if c.axis == Horizontal {
		w, h = mainSize, crossSize
	}
	if place {
		c.bounds = Rect{X: x, Y: y, W: w, H: h}
	}
	return w, h
}

var debugPalette = [...]colors.Color{
	{0.2, 0.5, 1.0, 1},
	{1.0, 0.35, 0.35, 1},
	{0.2, 1.0, 0.5, 1},
	{1.0, 0.8, 0.2, 1},
	{0.8, 0.2, 1.0, 1},
	{0.2, 0.9, 1.0, 1},
}

// DebugDraw outlines every laid-out container.
func (l *LayoutManager) DebugDraw(d Drawer) {
	for i, c := range l.containers {
		b := c.bounds
		if b.W <= 0 || b.H <= 0 {
			continue
		}
		col := debugPalette[i%len(debugPalette)]
		d.Rect(b.X, b.Y, b.W, b.H, col.WithAlpha(0.15), col.WithAlpha(0.7), 1.5)
	}
}

// StackBuilder configures one container. Every setter marks the layout
// dirty.
type StackBuilder struct {
	l     *LayoutManager
	index int
}

func (b *StackBuilder) c() *container {
	b.l.dirty = true
	return &b.l.containers[b.index]
}

func (b *StackBuilder) Position(x, y float32) *StackBuilder {
	c := b.c()
	c.x, c.y = x, y
	return b
}

func (b *StackBuilder) Padding(p float32) *StackBuilder { b.c().padding = p; return b }
func (b *StackBuilder) Gap(g float32) *StackBuilder     { b.c().gap = g; return b }

// Add appends a widget. The widget may be removed later; it is then
// skipped.
func (b *StackBuilder) Add(h WidgetRef) *StackBuilder {
	c := b.c()
	c.children = append(c.children, child{index: h.widgetID()})
	return b
}

// AddContainer nests ref. Panics if that would break the forest: ref is
// this container, already has a parent, or is an ancestor of it.
func (b *StackBuilder) AddContainer(ref ContainerRef) *StackBuilder {
	l := b.l
	sub := l.at(ref.index)
	if ref.index == b.index {
		panic(fmt.Sprintf("ui: container %d cannot contain itself", b.index))
	}
	if sub.parent >= 0 {
		panic(fmt.Sprintf("ui: container %d already belongs to container %d", ref.index, sub.parent))
	}
	for p := l.containers[b.index].parent; p >= 0; p = l.containers[p].parent {
		if p == ref.index {
			panic(fmt.Sprintf("ui: adding container %d to %d would create a cycle", ref.index, b.index))
		}
	}

	sub.parent = b.index
	c := b.c()
	c.children = append(c.children, child{container: true, index: ref.index})
	return b
}

func (b *StackBuilder) Ref() ContainerRef { return ContainerRef{index: b.index} }
