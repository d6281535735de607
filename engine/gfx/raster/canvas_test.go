package raster

import (
	"path/filepath"
	"testing"

	"github.com/hubastard/maleo/engine/assets"
	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
	"github.com/hubastard/maleo/engine/ui"
)

var (
	_ ui.Drawer     = (*Canvas)(nil)
	_ core.Renderer = (*PNGPresenter)(nil)
)

func near(c, want colors.Color) bool {
	for i := range c {
		if d := c[i] - want[i]; d > 0.02 || d < -0.02 {
			return false
		}
	}
	return true
}

func TestCanvasShapes(t *testing.T) {
	fonts := text.NewFonts()
	c := New(64, 64, fonts)
	defer c.Close()

	c.Begin(colors.Black)
	if got := c.At(1, 1); !near(got, colors.Black) {
		t.Fatalf("clear: %v", got)
	}

	c.Rect(10, 10, 20, 20, colors.Red, colors.Transparent, 0)
	if got := c.At(20, 20); !near(got, colors.Red) {
		t.Errorf("rect centre = %v", got)
	}
	if got := c.At(40, 40); !near(got, colors.Black) {
		t.Errorf("outside rect = %v", got)
	}

	c.Circle(48, 48, 6, colors.Green, colors.Transparent, 0)
	if got := c.At(48, 48); !near(got, colors.Green) {
		t.Errorf("circle centre = %v", got)
	}

	c.RoundedRect(2, 40, 20, 20, 4, colors.Transparent, colors.Transparent, 0)

	s := c.Stats()
	if s.Rects != 1 || s.Circles != 1 || s.RoundedRects != 1 || s.Total() != 3 {
		t.Errorf("stats = %+v", s)
	}

	c.Begin(colors.Black)
	if c.Stats().Total() != 0 {
		t.Error("Begin should reset stats")
	}
}

func TestCanvasText(t *testing.T) {
	fonts := text.NewFonts()
	defer fonts.Close()
	font := fonts.AddDefault(20)

	c := New(120, 40, fonts)
	defer c.Close()
	c.Begin(colors.Black)
	c.Text("Hello", font, 4, 4, colors.White)

	lit := 0
	img := c.RGBA()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 128 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("text drew no pixels")
	}
	if c.Stats().TextRuns != 1 {
		t.Errorf("text runs = %d", c.Stats().TextRuns)
	}

	c.Text("", font, 0, 0, colors.White)
	c.Text("x", font, 0, 0, colors.Transparent)
	if c.Stats().TextRuns != 1 {
		t.Error("empty or invisible text should be skipped")
	}
}

func TestCanvasCellFontText(t *testing.T) {
	fonts := text.NewFonts()
	mono := fonts.AddMono(8, 16)
	c := New(80, 20, fonts)
	defer c.Close()

	c.Begin(colors.Black)
	c.Text("ok", mono, 0, 0, colors.White)
	if w, h := c.Measure("ok", mono); w != 16 || h != 16 {
		t.Errorf("Measure = %vx%v", w, h)
	}
}

func TestCanvasResize(t *testing.T) {
	c := New(10, 10, text.NewFonts())
	defer c.Close()
	if err := c.Resize(30, 20); err != nil {
		t.Fatal(err)
	}
	if c.Width() != 30 || c.Height() != 20 {
		t.Errorf("size = %dx%d", c.Width(), c.Height())
	}
	if err := c.Resize(0, 0); err != nil || c.Width() != 30 {
		t.Error("zero size should be ignored")
	}
	if b := c.RGBA().Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Errorf("frame bounds = %v", b)
	}
}

func TestRenderStateIntoCanvas(t *testing.T) {
	fonts := text.NewFonts()
	defer fonts.Close()
	font := fonts.AddDefault(14)

	st := ui.NewState(fonts)
	h := st.Widgets.Button("go")
	ui.Mut(st.Widgets, h).Font(font).Color(colors.Blue).Size(40, 24)
	st.Layout.HStack().Position(8, 8).Add(h)
	st.Update(core.NewInput(), nil)

	c := New(64, 48, fonts)
	defer c.Close()
	c.Begin(colors.Black)
	st.Render(c)

	if got := c.At(10, 10); !near(got, colors.Blue) {
		t.Errorf("button corner = %v", got)
	}
	if c.Stats().Rects != 1 || c.Stats().TextRuns != 1 {
		t.Errorf("stats = %+v", c.Stats())
	}
}

func TestPNGPresenter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	p := NewPNGPresenter(path)

	c := New(16, 8, text.NewFonts())
	defer c.Close()
	c.Begin(colors.Red)
	p.Present(c.RGBA())
	p.Shutdown()

	if p.Frames() != 1 {
		t.Errorf("frames = %d", p.Frames())
	}
	img, err := assets.LoadPNG(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("bounds = %v", b)
	}
	if r, _, _, _ := img.At(3, 3).RGBA(); r < 0xf000 {
		t.Errorf("pixel red = %x", r)
	}
}
