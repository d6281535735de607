package core

import (
	"image"
	"testing"
)

type recordApp struct {
	events  []Event
	renders int
	redraw  bool
}

func (a *recordApp) OnStart(e *Engine) {}
func (a *recordApp) OnEvent(e *Engine, ev Event) {
	a.events = append(a.events, ev)
	if a.redraw {
		e.RequestRedraw()
	}
}
func (a *recordApp) OnRender(e *Engine)   { a.renders++ }
func (a *recordApp) OnShutdown(e *Engine) {}

type recordLayer struct {
	name    string
	consume bool
	log     *[]string
}

func (l *recordLayer) OnAttach(e *Engine) {}
func (l *recordLayer) OnDetach(e *Engine) {}
func (l *recordLayer) OnEvent(e *Engine, ev Event) bool {
	*l.log = append(*l.log, "event:"+l.name)
	return l.consume
}
func (l *recordLayer) OnRender(e *Engine) { *l.log = append(*l.log, "render:"+l.name) }

type nullRenderer struct{ clears int }

func (r *nullRenderer) Init() error              { return nil }
func (r *nullRenderer) Resize(w, h int)          {}
func (r *nullRenderer) Clear(_, _, _, _ float32) { r.clears++ }
func (r *nullRenderer) Present(*image.RGBA)      {}
func (r *nullRenderer) Shutdown()                {}

func TestDispatchOrder(t *testing.T) {
	var log []string
	rend := &nullRenderer{}
	e := NewEngine(nil, rend, DefaultConfig())
	e.PushLayer(&recordLayer{name: "bottom", log: &log})
	e.PushLayer(&recordLayer{name: "top", log: &log})

	app := &recordApp{redraw: true}
	e.Dispatch(app, EventMouseMove{X: 1, Y: 1})

	want := []string{"event:top", "event:bottom", "render:bottom", "render:top"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if app.renders != 1 || rend.clears != 1 {
		t.Errorf("renders=%d clears=%d, want 1/1", app.renders, rend.clears)
	}
}

func TestDispatchConsumedEvent(t *testing.T) {
	var log []string
	e := NewEngine(nil, nil, DefaultConfig())
	e.Layers.Push(&recordLayer{name: "bottom", log: &log})
	e.Layers.Push(&recordLayer{name: "top", consume: true, log: &log})

	app := &recordApp{}
	e.Dispatch(app, EventKey{Key: KeyF1, Down: true})

	if len(app.events) != 0 {
		t.Error("consumed event should not reach the app")
	}
	if len(log) != 1 || log[0] != "event:top" {
		t.Errorf("log = %v", log)
	}
	if app.renders != 0 {
		t.Error("no redraw was requested")
	}
}

func TestDispatchResetsInputPerEvent(t *testing.T) {
	e := NewEngine(nil, nil, DefaultConfig())
	app := &recordApp{}

	e.Dispatch(app, EventMouseButton{Button: MouseLeft, Down: true})
	if !e.Input.Mouse.Left().JustPressed {
		t.Fatal("press should pulse during its own cycle")
	}
	e.Dispatch(app, EventMouseMove{X: 5, Y: 5})
	if e.Input.Mouse.Left().JustPressed {
		t.Error("pulse leaked into the next event")
	}
	if !e.Input.Mouse.Left().Down {
		t.Error("level lost")
	}
}

func TestDispatchCloseRequested(t *testing.T) {
	e := NewEngine(nil, nil, DefaultConfig())
	e.Dispatch(&recordApp{}, EventCloseRequested{})
	if !e.Closing() {
		t.Error("close event should mark the engine closing")
	}
}
