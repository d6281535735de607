package ui

import (
	"testing"

	"github.com/hubastard/maleo/engine/core"
)

func TestStateUpdateLaysOutWhenNeeded(t *testing.T) {
	f, font := monoFonts()
	s := NewState(f)

	btn := s.Widgets.Button("go")
	Mut(s.Widgets, btn).Font(font).AutoSize()
	label := s.Widgets.Label("hi")
	Mut(s.Widgets, label).Font(font)
	s.Layout.HStack().Position(10, 20).Gap(4).Add(btn).Add(label)

	in := core.NewInput()
	if !s.Update(in, nil) {
		t.Fatal("first update must lay out")
	}

	b := Get(s.Widgets, btn).Bounds()
	if b != (Rect{X: 10, Y: 20, W: 40, H: 40}) {
		t.Errorf("button bounds = %+v", b)
	}
	if l := Get(s.Widgets, label).Bounds(); l != (Rect{X: 54, Y: 20, W: 16, H: 16}) {
		t.Errorf("label bounds = %+v", l)
	}

	in.BeginFrame()
	if s.Update(in, nil) {
		t.Error("idle update should not need a redraw")
	}
}

func TestStateCallbackMutationTriggersLayout(t *testing.T) {
	f, font := monoFonts()
	s := NewState(f)
	btn := s.Widgets.Button("go")
	Mut(s.Widgets, btn).Font(font).AutoSize()
	lbl := s.Widgets.Label("x")
	Mut(s.Widgets, lbl).Font(font)
	s.Layout.HStack().Add(btn).Add(lbl)

	in := core.NewInput()
	s.Update(in, nil)

	in.BeginFrame()
	needs := s.Update(in, func(s *State) {
		Mut(s.Widgets, btn).Text("longer")
	})
	if !needs {
		t.Fatal("Mut in the callback should trigger layout")
	}
	if b := Get(s.Widgets, btn).Bounds(); b.W != 48+2*DefaultPadding {
		t.Errorf("button not resized: %+v", b)
	}
	if l := Get(s.Widgets, lbl).Bounds(); l.X != 48+2*DefaultPadding {
		t.Errorf("label not moved: %+v", l)
	}
}

func TestStateClickFlow(t *testing.T) {
	f, font := monoFonts()
	s := NewState(f)
	btn := s.Widgets.Button("ok")
	Mut(s.Widgets, btn).Font(font).Size(40, 20)
	s.Layout.VStack().Position(0, 0).Add(btn)

	in := core.NewInput()
	s.Update(in, nil)

	clicks := 0
	onFrame := func(s *State) {
		if Get(s.Widgets, btn).JustClicked() {
			clicks++
		}
	}
	events := []core.Event{
		core.EventMouseMove{X: 10, Y: 10},
		core.EventMouseButton{Button: core.MouseLeft, Down: true},
		core.EventMouseButton{Button: core.MouseLeft, Down: false},
		core.EventMouseMove{X: 12, Y: 10},
	}
	for _, ev := range events {
		in.BeginFrame()
		in.Handle(ev)
		s.Update(in, onFrame)
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestStateResizeAndRender(t *testing.T) {
	f, font := monoFonts()
	s := NewState(f)
	h := s.Widgets.Button("x")
	Mut(s.Widgets, h).Font(font).Size(10, 10)
	s.Layout.HStack().Add(h)

	in := core.NewInput()
	s.Update(in, nil)

	s.Resize(800, 600)
	in.BeginFrame()
	if !s.Update(in, nil) {
		t.Error("resize should force a re-layout")
	}
	if w, hh := s.Size(); w != 800 || hh != 600 {
		t.Errorf("size = %vx%v", w, hh)
	}

	sc := NewScene(f)
	s.Render(sc)
	plain := sc.Len()

	s.DebugLayout = true
	sc.Reset()
	s.Render(sc)
	if sc.Len() != plain+1 {
		t.Errorf("debug overlay should add one rect: %d vs %d", sc.Len(), plain)
	}
}
