package ui

import (
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/profiler"
	"github.com/hubastard/maleo/engine/text"
)

// State bundles the widget and layout managers with the fonts they
// measure against. One per window.
type State struct {
	Widgets     *Manager
	Layout      *LayoutManager
	Fonts       *text.Fonts
	DebugLayout bool

	width, height float32
}

func NewState(fonts *text.Fonts) *State {
	return &State{
		Widgets: NewManager(),
		Layout:  NewLayoutManager(),
		Fonts:   fonts,
	}
}

// Update runs one input cycle: widget passes, then fn, then size
// resolution and layout if anything changed. It reports whether the
// frame must be redrawn.
func (s *State) Update(in *core.Input, fn func(*State)) bool {
	defer profiler.Start("ui.Update")()

	changed := s.Widgets.UpdateAll(&in.Mouse)
	if s.Widgets.UpdateKeys(&in.Keys) {
		changed = true
	}
	if fn != nil {
		fn(s)
	}

	// take both flags; || would skip the second
	wd := s.Widgets.TakeDirty()
	ld := s.Layout.TakeDirty()
	needs := changed || wd || ld
	if !needs {
		return false
	}

	end := profiler.Start("ui.Layout")
	s.Widgets.ResolveSizes(s.Fonts)
	s.Layout.ComputeAll(s.Widgets)
	end()
	s.Widgets.TakeDirty()
	return true
}

func (s *State) Render(d Drawer) {
	defer profiler.Start("ui.Render")()

	s.Widgets.RenderAll(d)
	if s.DebugLayout {
		s.Layout.DebugDraw(d)
	}
}

// Resize records the window size and forces a re-layout.
func (s *State) Resize(w, h float32) {
	s.width, s.height = w, h
	s.Widgets.MarkDirty()
}

func (s *State) Size() (w, h float32) { return s.width, s.height }
