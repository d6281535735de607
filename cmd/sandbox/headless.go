package main

import (
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/gfx/raster"
)

// demoScript types into the name field, drags the volume slider and
// presses reset. Coordinates follow the demo layout at (40, 40).
func demoScript() []core.Event {
	evs := []core.Event{
		core.EventMouseMove{X: 60, Y: 108},
		core.EventMouseButton{Button: core.MouseLeft, Down: true},
		core.EventMouseButton{Button: core.MouseLeft, Down: false},
	}
	for _, r := range "gopher" {
		evs = append(evs, core.EventChar{Text: string(r)})
	}
	evs = append(evs,
		core.EventKey{Key: core.KeyEnter, Down: true},
		core.EventKey{Key: core.KeyEnter, Down: false},
		core.EventMouseMove{X: 250, Y: 100},
		core.EventMouseButton{Button: core.MouseLeft, Down: true},
		core.EventMouseMove{X: 320, Y: 100},
		core.EventMouseButton{Button: core.MouseLeft, Down: false},
	)
	return evs
}

// runHeadless drives app through script without a window and writes the
// last frame to path on shutdown.
func runHeadless(app core.App, cfg core.Config, path string, script []core.Event) (*core.Engine, error) {
	pres := raster.NewPNGPresenter(path)
	if err := pres.Init(); err != nil {
		return nil, err
	}
	pres.Resize(cfg.Window.Width, cfg.Window.Height)

	eng := core.NewEngine(nil, pres, cfg)
	app.OnStart(eng)
	core.Logger().Info("headless run", "events", len(script), "out", path)

	eng.Dispatch(app, core.EventResize{W: cfg.Window.Width, H: cfg.Window.Height})
	for _, ev := range script {
		eng.Dispatch(app, ev)
	}

	app.OnShutdown(eng)
	pres.Shutdown()
	return eng, nil
}
