package raster

import (
	"image"

	"github.com/hubastard/maleo/engine/assets"
	"github.com/hubastard/maleo/engine/core"
)

// PNGPresenter is a core.Renderer without a window: it keeps the last
// presented frame and writes it to Path on Shutdown.
type PNGPresenter struct {
	Path   string
	frames int
	last   *image.RGBA
	w, h   int
}

func NewPNGPresenter(path string) *PNGPresenter { return &PNGPresenter{Path: path} }

func (p *PNGPresenter) Init() error              { return nil }
func (p *PNGPresenter) Resize(w, h int)          { p.w, p.h = w, h }
func (p *PNGPresenter) Clear(_, _, _, _ float32) {}

func (p *PNGPresenter) Present(img *image.RGBA) {
	p.last = img
	p.frames++
}

func (p *PNGPresenter) Frames() int       { return p.frames }
func (p *PNGPresenter) Last() *image.RGBA { return p.last }

func (p *PNGPresenter) Shutdown() {
	if p.last == nil || p.Path == "" {
		return
	}
	if err := assets.SavePNG(p.Path, p.last); err != nil {
		core.Logger().Error("headless: write frame", "path", p.Path, "err", err)
		return
	}
	core.Logger().Info("headless: frame written", "path", p.Path, "frames", p.frames)
}
