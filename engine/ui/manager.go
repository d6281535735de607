package ui

import (
	"fmt"

	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
)

// Manager owns every widget, hands out typed handles and tracks whether
// anything changed since the last frame.
type Manager struct {
	widgets map[int]Widget
	order   []int
	nextID  int
	dirty   bool
}

// NewManager starts dirty so the first frame always lays out.
func NewManager() *Manager {
	return &Manager{
		widgets: make(map[int]Widget),
		dirty:   true,
	}
}

func add[T Widget](m *Manager, w T) Handle[T] {
	id := m.nextID
	m.nextID++
	if a, ok := any(w).(identity); ok {
		a.attach(id, &m.dirty)
	}
	m.widgets[id] = w
	m.order = append(m.order, id)
	m.dirty = true
	core.Logger().Debug("ui: widget created", "id", id, "kind", fmt.Sprintf("%T", w))
	return Handle[T]{id: id}
}

func (m *Manager) Button(label string) Handle[*Button] { return add(m, NewButton(label)) }
func (m *Manager) Slider() Handle[*Slider]             { return add(m, NewSlider()) }
func (m *Manager) TextInput() Handle[*TextInput]       { return add(m, NewTextInput()) }
func (m *Manager) Label(s string) Handle[*Label]       { return add(m, NewLabel(s)) }

// Add stores a custom widget.
func Add[T Widget](m *Manager, w T) Handle[T] { return add(m, w) }

func lookup[T Widget](m *Manager, id int) T {
	w, ok := m.widgets[id]
	if !ok {
		panic(fmt.Sprintf("ui: no widget with id %d", id))
	}
	t, ok := w.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("ui: widget %d is %T, not %T", id, w, zero))
	}
	return t
}

// Get returns the widget behind h for reading. Panics if h is stale or
// names a widget of another type. Setters called on the result still
// mark the manager dirty.
func Get[T Widget](m *Manager, h Handle[T]) T { return lookup[T](m, h.id) }

// Mut returns the widget behind h for writing and marks the manager dirty.
func Mut[T Widget](m *Manager, h Handle[T]) T {
	w := lookup[T](m, h.id)
	m.dirty = true
	return w
}

// Remove drops a widget. Its id is never reused.
func (m *Manager) Remove(id int) {
	if _, ok := m.widgets[id]; !ok {
		return
	}
	delete(m.widgets, id)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.dirty = true
}

// widget is the untyped lookup used by the layout pass.
func (m *Manager) widget(id int) (Widget, bool) {
	w, ok := m.widgets[id]
	return w, ok
}

// UpdateAll runs every visible widget's Update and reports whether the
// frame needs a redraw: a hover flipped or a mouse button changed.
func (m *Manager) UpdateAll(mouse *core.MouseState) bool {
	px, py := mouse.Prev()
	changed := mouse.AnyEdge()
	for _, id := range m.order {
		w := m.widgets[id]
		if !isVisible(w) {
			if r, ok := w.(resetter); ok {
				r.reset()
			}
			continue
		}
		before := w.Bounds().Contains(px, py)
		w.Update(mouse)
		after := w.Bounds().Contains(mouse.X, mouse.Y)
		if before != after {
			changed = true
		}
	}
	return changed
}

// UpdateKeys hands the key snapshot to every visible KeyReceiver.
func (m *Manager) UpdateKeys(keys *core.KeyState) bool {
	changed := false
	for _, id := range m.order {
		w := m.widgets[id]
		if !isVisible(w) {
			continue
		}
		if kr, ok := w.(KeyReceiver); ok && kr.UpdateKeys(keys) {
			changed = true
		}
	}
	return changed
}

// ResolveSizes lets visible auto-sized widgets fit their content. Hidden
// widgets keep their last resolved size.
func (m *Manager) ResolveSizes(meas text.Measurer) bool {
	changed := false
	for _, id := range m.order {
		w := m.widgets[id]
		if !isVisible(w) {
			continue
		}
		if as, ok := w.(AutoSizer); ok && as.ResolveSize(meas) {
			changed = true
		}
	}
	if changed {
		m.dirty = true
	}
	return changed
}

// TakeDirty returns the dirty flag and clears it.
func (m *Manager) TakeDirty() bool {
	d := m.dirty
	m.dirty = false
	return d
}

func (m *Manager) MarkDirty() { m.dirty = true }

// RenderAll draws visible widgets in creation order, later on top.
func (m *Manager) RenderAll(d Drawer) {
	for _, id := range m.order {
		w := m.widgets[id]
		if isVisible(w) {
			w.Render(d)
		}
	}
}

func (m *Manager) Len() int { return len(m.order) }

// Each visits widgets in creation order.
func (m *Manager) Each(fn func(Widget)) {
	for _, id := range m.order {
		fn(m.widgets[id])
	}
}
