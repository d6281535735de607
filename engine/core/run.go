package core

import (
	"runtime"

	"github.com/hubastard/maleo/engine/profiler"
)

// Run wires the platform window + renderer and executes the event loop.
// Every event runs to completion (input, layers, app, optional render)
// before the next one is taken from the platform queue.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	w, h := win.FramebufferSize()
	rend.Resize(w, h)

	eng := NewEngine(win, rend, cfg)
	win.SetEventCallback(func(ev Event) {
		if _, ok := ev.(EventResize); ok {
			fw, fh := win.FramebufferSize()
			if fw >= 1 && fh >= 1 {
				rend.Resize(fw, fh)
			}
		}
		eng.Dispatch(app, ev)
	})

	app.OnStart(eng)
	Logger().Info("engine started", "title", cfg.Window.Title, "width", cfg.Window.Width, "height", cfg.Window.Height)

	// First frame, before any input arrives.
	eng.RequestRedraw()
	eng.flush(app)

	for !win.ShouldClose() && !eng.closing {
		win.WaitEvents()
	}

	app.OnShutdown(eng)
	Logger().Info("engine exit", "uptime", eng.Uptime())
	return nil
}

// Dispatch runs one input cycle for ev: reset per-cycle input state, fold
// the event in, offer it to layers top-down, then to the app, and finally
// render if anything asked for it.
func (e *Engine) Dispatch(app App, ev Event) {
	defer profiler.Start("Engine.Dispatch")()

	e.Input.BeginFrame()
	e.Input.Handle(ev)

	if _, ok := ev.(EventCloseRequested); ok {
		e.RequestClose()
	}

	handled := false
	e.Layers.ForEachReverse(func(l Layer) bool {
		handled = l.OnEvent(e, ev)
		return handled
	})
	if !handled {
		app.OnEvent(e, ev)
	}

	e.flush(app)
}

func (e *Engine) flush(app App) {
	if !e.redraw {
		return
	}
	e.redraw = false
	defer profiler.Start("Engine.Render")()

	clr := e.Config.Window.ClearColor
	if e.Renderer != nil {
		e.Renderer.Clear(clr[0], clr[1], clr[2], clr[3])
	}
	e.Layers.ForEach(func(l Layer) { l.OnRender(e) })
	app.OnRender(e)

	if e.Window != nil {
		e.Window.SwapBuffers()
	}
}
