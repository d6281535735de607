package raster

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
)

// Statistics captures the primitives drawn since the last Begin.
type Statistics struct {
	Rects        int
	Circles      int
	RoundedRects int
	TextRuns     int
}

// Total reports every primitive submitted this frame.
func (s Statistics) Total() int { return s.Rects + s.Circles + s.RoundedRects + s.TextRuns }

// Canvas draws widgets into a CPU pixel buffer. It satisfies ui.Drawer.
type Canvas struct {
	ctx   *gg.Context
	fonts *text.Fonts
	stats Statistics

	// cell fonts have no face; they draw with Go Mono at the line height
	cellSrc   *ggtext.FontSource
	cellFaces map[text.FontID]ggtext.Face
}

func New(w, h int, fonts *text.Fonts) *Canvas {
	return &Canvas{
		ctx:       gg.NewContext(max(w, 1), max(h, 1)),
		fonts:     fonts,
		cellFaces: make(map[text.FontID]ggtext.Face),
	}
}

func (c *Canvas) Width() int  { return c.ctx.Width() }
func (c *Canvas) Height() int { return c.ctx.Height() }

// Resize reallocates the pixel buffer. Zero sizes (minimised window) are
// ignored.
func (c *Canvas) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if err := c.ctx.Resize(w, h); err != nil {
		return fmt.Errorf("resize canvas: %w", err)
	}
	return nil
}

// Begin clears to col and resets the frame statistics.
func (c *Canvas) Begin(col colors.Color) {
	c.stats = Statistics{}
	c.ctx.ClearWithColor(toRGBA(col))
}

func (c *Canvas) Stats() Statistics { return c.stats }

func (c *Canvas) Measure(s string, font text.FontID) (float32, float32) {
	return c.fonts.Measure(s, font)
}

func (c *Canvas) Rect(x, y, w, h float32, fill, outline colors.Color, outlineWidth float32) {
	c.stats.Rects++
	c.ctx.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.paint(fill, outline, outlineWidth)
}

func (c *Canvas) Circle(cx, cy, r float32, fill, outline colors.Color, outlineWidth float32) {
	c.stats.Circles++
	c.ctx.DrawCircle(float64(cx), float64(cy), float64(r))
	c.paint(fill, outline, outlineWidth)
}

func (c *Canvas) RoundedRect(x, y, w, h, r float32, fill, outline colors.Color, outlineWidth float32) {
	c.stats.RoundedRects++
	r = min(r, w/2, h/2)
	c.ctx.DrawRoundedRectangle(float64(x), float64(y), float64(w), float64(h), float64(r))
	c.paint(fill, outline, outlineWidth)
}

// paint fills and then strokes the current path.
func (c *Canvas) paint(fill, outline colors.Color, outlineWidth float32) {
	stroke := outline.Visible() && outlineWidth > 0
	if !fill.Visible() && !stroke {
		c.ctx.ClearPath()
		return
	}

	if fill.Visible() {
		c.setColor(fill)
		var err error
		if stroke {
			err = c.ctx.FillPreserve()
		} else {
			err = c.ctx.Fill()
		}
		if err != nil {
			core.Logger().Warn("raster: fill failed", "err", err)
		}
	}
	if stroke {
		c.setColor(outline)
		c.ctx.SetLineWidth(float64(outlineWidth))
		if err := c.ctx.Stroke(); err != nil {
			core.Logger().Warn("raster: stroke failed", "err", err)
		}
	}
}

// Text draws s with the top of its first line at y.
func (c *Canvas) Text(s string, font text.FontID, x, y float32, col colors.Color) {
	if s == "" || !col.Visible() {
		return
	}
	c.stats.TextRuns++

	face := c.face(font)
	lineH := c.fonts.LineHeight(font)
	baseline := y + c.fonts.Ascent(font)

	c.ctx.SetFont(face)
	c.setColor(col)
	for i, line := range strings.Split(s, "\n") {
		c.ctx.DrawString(line, float64(x), float64(baseline+float32(i)*lineH))
	}
}

func (c *Canvas) face(font text.FontID) ggtext.Face {
	if f := c.fonts.Face(font); f != nil {
		return f
	}
	if f, ok := c.cellFaces[font]; ok {
		return f
	}
	if c.cellSrc == nil {
		src, err := ggtext.NewFontSource(gomono.TTF)
		if err != nil {
			panic(err)
		}
		c.cellSrc = src
	}
	f := c.cellSrc.Face(float64(c.fonts.LineHeight(font) * 0.8))
	c.cellFaces[font] = f
	return f
}

func (c *Canvas) setColor(col colors.Color) {
	c.ctx.SetRGBA(float64(col[0]), float64(col[1]), float64(col[2]), float64(col[3]))
}

// RGBA returns a copy of the current frame.
func (c *Canvas) RGBA() *image.RGBA {
	_ = c.ctx.FlushGPU()
	return c.ctx.ResizeTarget().ToImage()
}

// At samples one pixel of the current frame.
func (c *Canvas) At(x, y int) colors.Color {
	p := c.ctx.ResizeTarget().GetPixel(x, y)
	return colors.Color{float32(p.R), float32(p.G), float32(p.B), float32(p.A)}
}

func (c *Canvas) SavePNG(path string) error {
	if err := c.ctx.SavePNG(path); err != nil {
		return fmt.Errorf("save frame %q: %w", path, err)
	}
	return nil
}

func (c *Canvas) Close() error {
	err := c.ctx.Close()
	if c.cellSrc != nil {
		if cerr := c.cellSrc.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func toRGBA(col colors.Color) gg.RGBA {
	return gg.RGBA2(float64(col[0]), float64(col[1]), float64(col[2]), float64(col[3]))
}
