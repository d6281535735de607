package ui

import (
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
)

// Widget is anything the Manager can own.
type Widget interface {
	ID() int
	Bounds() Rect
	SetBounds(Rect)
	Update(mouse *core.MouseState)
	Render(d Drawer)
}

// KeyReceiver widgets get the key snapshot after the mouse pass.
type KeyReceiver interface {
	UpdateKeys(keys *core.KeyState) bool
}

// AutoSizer widgets size themselves from their content. ResolveSize
// reports whether the bounds changed.
type AutoSizer interface {
	ResolveSize(m text.Measurer) bool
}

type visibility interface {
	Visible() bool
}

// identity is implemented by widgets embedding Common. The manager hands
// them their id and its dirty flag.
type identity interface {
	attach(id int, dirty *bool)
}

// resetter clears one-cycle pulses and transient pointer state. Hidden
// widgets are reset every cycle instead of updated.
type resetter interface {
	reset()
}

// Handle is a typed reference to a widget owned by a Manager.
type Handle[T Widget] struct {
	id int
}

func (h Handle[T]) ID() int       { return h.id }
func (h Handle[T]) widgetID() int { return h.id }

// WidgetRef is any Handle, regardless of its widget type.
type WidgetRef interface {
	widgetID() int
}

// ------ Helper ------

// Common carries identity, bounds and visibility, with chained setters
// returning the owning widget. Once the widget is owned by a Manager every
// setter marks the manager dirty, whichever accessor reached the widget.
type Common[T any] struct {
	owner  T
	id     int
	bounds Rect
	hidden bool
	dirty  *bool
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner}
}

func (c *Common[T]) ID() int       { return c.id }
func (c *Common[T]) Bounds() Rect  { return c.bounds }
func (c *Common[T]) Visible() bool { return !c.hidden }

func (c *Common[T]) attach(id int, dirty *bool) {
	c.id = id
	c.dirty = dirty
}

// touch marks the owning manager dirty and returns the widget for
// chaining.
func (c *Common[T]) touch() T {
	if c.dirty != nil {
		*c.dirty = true
	}
	return c.owner
}

func (c *Common[T]) SetBounds(r Rect) {
	if r != c.bounds {
		c.bounds = r
		c.touch()
	}
}

func (c *Common[T]) Position(x, y float32) T {
	c.bounds.X, c.bounds.Y = x, y
	return c.touch()
}

func (c *Common[T]) Size(w, h float32) T {
	c.bounds.W, c.bounds.H = w, h
	return c.touch()
}

func (c *Common[T]) Show() T   { c.hidden = false; return c.touch() }
func (c *Common[T]) Hide() T   { c.hidden = true; return c.touch() }
func (c *Common[T]) Toggle() T { c.hidden = !c.hidden; return c.touch() }

func isVisible(w Widget) bool {
	if v, ok := w.(visibility); ok {
		return v.Visible()
	}
	return true
}
