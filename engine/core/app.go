package core

import (
	"image"
	"time"
)

// App defines the application hooks. The engine is event driven: nothing
// runs between platform events.
type App interface {
	OnStart(e *Engine)           // called once after window/renderer init
	OnEvent(e *Engine, ev Event) // input/window events not consumed by a layer
	OnRender(e *Engine)          // after layers rendered, before present
	OnShutdown(e *Engine)        // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Input    Input
	Layers   LayerStack
	Config   Config

	start   time.Time
	redraw  bool
	closing bool
}

func NewEngine(win Window, rend Renderer, cfg Config) *Engine {
	return &Engine{Window: win, Renderer: rend, Config: cfg, start: time.Now()}
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// RequestRedraw schedules a render pass at the end of the current event.
func (e *Engine) RequestRedraw() { e.redraw = true }

func (e *Engine) RequestClose() {
	e.closing = true
	if e.Window != nil {
		e.Window.RequestClose()
	}
}

func (e *Engine) Closing() bool { return e.closing }

// Window abstraction.
type Window interface {
	PollEvents()
	WaitEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	Size() (int, int)
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer presents finished frames. Drawing happens elsewhere.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	Present(frame *image.RGBA)
	Shutdown()
}

// Event model.
type Event interface{ isEvent() }

type EventCloseRequested struct{}

func (EventCloseRequested) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventKey struct {
	Key  Key
	Down bool
	Mods Mod
}

func (EventKey) isEvent() {}

// EventChar carries committed text (one rune per event on most platforms).
type EventChar struct{ Text string }

func (EventChar) isEvent() {}

type EventMouseMove struct{ X, Y float64 }

func (EventMouseMove) isEvent() {}

type EventMouseButton struct {
	Button MouseButton
	Down   bool
	Mods   Mod
}

func (EventMouseButton) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyF1
	KeyP
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)
