package main

import (
	"fmt"

	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/gfx/raster"
	"github.com/hubastard/maleo/engine/profiler"
	"github.com/hubastard/maleo/engine/text"
	"github.com/hubastard/maleo/engine/ui"
)

// ------- Debug overlay layer -------
//
// F1 toggles the overlay and the layout boxes, Ctrl+P writes a profile,
// Escape quits.
type LayerDebug struct {
	state   *ui.State
	canvas  *raster.Canvas
	font    text.FontID
	visible bool
	frames  int
}

func (l *LayerDebug) OnAttach(e *core.Engine) {
	l.visible = e.Config.Debug.Layout
	l.state.DebugLayout = l.visible
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	switch {
	case k.Key == core.KeyEscape:
		e.RequestClose()
		return true
	case k.Key == core.KeyF1:
		l.visible = !l.visible
		l.state.DebugLayout = l.visible
		e.RequestRedraw()
		return true
	case k.Key == core.KeyP && k.Mods&core.ModCtrl != 0:
		l.dump()
		return true
	}
	return false
}

func (l *LayerDebug) dump() {
	if !profiler.Enabled {
		core.Logger().Warn("profiler disabled, build with -tags profile")
		return
	}
	path, err := profiler.Dump("")
	if err != nil {
		core.Logger().Error("profile dump", "err", err)
		return
	}
	core.Logger().Info("profile written", "path", path)
}

func (l *LayerDebug) lines() []string {
	st := l.canvas.Stats()
	mem := profiler.ReadMemStats()
	return []string{
		fmt.Sprintf("Frame: %d", l.frames),
		fmt.Sprintf("Widgets: %d  Containers: %d", l.state.Widgets.Len(), l.state.Layout.Len()),
		fmt.Sprintf("Draws: %d (rect %d, rrect %d, circle %d, text %d)",
			st.Total(), st.Rects, st.RoundedRects, st.Circles, st.TextRuns),
		fmt.Sprintf("Measure misses: %d", l.state.Fonts.Misses()),
		fmt.Sprintf("Memory: %.3f MB, %d allocs", float32(mem.Alloc)/(1<<20), mem.Mallocs),
		fmt.Sprintf("Goroutines: %d  CPUs: %d", mem.Goroutines, mem.CPUs),
	}
}

func (l *LayerDebug) OnRender(e *core.Engine) {
	l.frames++
	if !l.visible {
		return
	}
	defer profiler.Start("LayerDebug.OnRender")()

	// stats are read before the overlay adds its own draws
	lines := l.lines()

	const pad = 8
	lineH := l.state.Fonts.LineHeight(l.font)
	var w float32
	for _, s := range lines {
		lw, _ := l.canvas.Measure(s, l.font)
		w = max(w, lw)
	}
	h := lineH * float32(len(lines))
	x := float32(l.canvas.Width()) - w - 2*pad - 12
	y := float32(12)

	l.canvas.RoundedRect(x, y, w+2*pad, h+2*pad, 6, colors.Black.WithAlpha(0.6), colors.Transparent, 0)
	for i, s := range lines {
		col := colors.White
		if i == 0 {
			col = colors.Yellow
		}
		l.canvas.Text(s, l.font, x+pad, y+pad+float32(i)*lineH, col)
	}
}
