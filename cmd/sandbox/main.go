package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hubastard/maleo/engine/core"
	glbackend "github.com/hubastard/maleo/engine/gfx/gl"
	"github.com/hubastard/maleo/engine/gfx/raster"
	"github.com/hubastard/maleo/engine/platform"
	"github.com/hubastard/maleo/engine/profiler"
	"github.com/hubastard/maleo/engine/text"
	"github.com/hubastard/maleo/engine/ui"
)

type App struct {
	fonts  *text.Fonts
	font   text.FontID
	canvas *raster.Canvas
	state  *ui.State
	layer  *LayerUI
	debug  *LayerDebug
}

func newApp(cfg core.Config) (*App, error) {
	fonts := text.NewFonts()
	var font text.FontID
	if cfg.Font.Path != "" {
		id, err := fonts.AddFile(cfg.Font.Path, cfg.Font.Size)
		if err != nil {
			return nil, err
		}
		font = id
	} else {
		font = fonts.AddDefault(cfg.Font.Size)
	}
	return &App{
		fonts:  fonts,
		font:   font,
		canvas: raster.New(cfg.Window.Width, cfg.Window.Height, fonts),
		state:  ui.NewState(fonts),
	}, nil
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)

	d := buildDemo(a.state, a.font, e.Config.Font.Padding)

	a.layer = &LayerUI{state: a.state, canvas: a.canvas, demo: d}
	e.PushLayer(a.layer)

	a.debug = &LayerDebug{state: a.state, canvas: a.canvas, font: a.font}
	e.PushLayer(a.debug)
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnRender(e *core.Engine) {
	if e.Renderer != nil {
		e.Renderer.Present(a.canvas.RGBA())
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	if err := a.canvas.Close(); err != nil {
		core.Logger().Warn("close canvas", "err", err)
	}
	if err := a.fonts.Close(); err != nil {
		core.Logger().Warn("close fonts", "err", err)
	}
}

func main() {
	configPath := flag.String("config", "maleo.yaml", "YAML config file (optional)")
	headless := flag.String("headless", "", "render a scripted session to this PNG instead of opening a window")
	flag.Parse()

	if err := run(*configPath, *headless); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}

func run(configPath, headless string) error {
	cfg, err := core.LoadConfig(configPath)
	if err != nil {
		return err
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: core.ParseLevel(cfg.Log.Level),
	})))

	app, err := newApp(cfg)
	if err != nil {
		return err
	}

	if headless != "" {
		_, err := runHeadless(app, cfg, headless, demoScript())
		return err
	}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}
	return core.Run(app, cfg, newWindow, newRenderer)
}
