package main

import (
	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/gfx/raster"
	"github.com/hubastard/maleo/engine/profiler"
	"github.com/hubastard/maleo/engine/ui"
)

// ------- Widget demo layer -------
type LayerUI struct {
	state  *ui.State
	canvas *raster.Canvas
	demo   *demo
	clear  colors.Color
}

func (l *LayerUI) OnAttach(e *core.Engine) {
	l.clear = colors.Color(e.Config.Window.ClearColor)
	l.state.Resize(float32(l.canvas.Width()), float32(l.canvas.Height()))
	l.state.Update(&e.Input, nil)
}

func (l *LayerUI) OnDetach(e *core.Engine) {}

func (l *LayerUI) OnEvent(e *core.Engine, ev core.Event) bool {
	if r, ok := ev.(core.EventResize); ok {
		if err := l.canvas.Resize(r.W, r.H); err != nil {
			core.Logger().Warn("canvas resize", "err", err)
		}
		l.state.Resize(float32(r.W), float32(r.H))
	}
	if l.state.Update(&e.Input, l.demo.update) {
		e.RequestRedraw()
	}
	return false
}

func (l *LayerUI) OnRender(e *core.Engine) {
	defer profiler.Start("LayerUI.OnRender")()

	l.canvas.Begin(l.clear)
	l.state.Render(l.canvas)
}
