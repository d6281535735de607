package ui

import (
	"testing"

	"github.com/hubastard/maleo/engine/colors"
)

func TestLabelSizesToText(t *testing.T) {
	fonts, font := monoFonts()
	m := NewManager()
	h := m.Label("status")
	Mut(m, h).Font(font).Position(3, 4)

	if !m.ResolveSizes(fonts) {
		t.Fatal("first resolve should change bounds")
	}
	if b := Get(m, h).Bounds(); b != (Rect{X: 3, Y: 4, W: 48, H: 16}) {
		t.Errorf("bounds = %+v", b)
	}
	if m.ResolveSizes(fonts) {
		t.Error("unchanged text should not resize")
	}

	Mut(m, h).Text("ok")
	m.ResolveSizes(fonts)
	if w := Get(m, h).Bounds().W; w != 16 {
		t.Errorf("width = %v, want 16", w)
	}
}

func TestLabelRender(t *testing.T) {
	fonts, font := monoFonts()
	l := NewLabel("hi").Font(font).Color(colors.Yellow).Position(5, 6)

	s := NewScene(fonts)
	l.Render(s)
	if s.Len() != 1 {
		t.Fatalf("commands = %d", s.Len())
	}
	c := s.Commands[0]
	if c.Kind != CmdText || c.Text != "hi" || c.X != 5 || c.Y != 6 || c.Fill != colors.Yellow {
		t.Errorf("command = %+v", c)
	}
}

func TestLabelWithoutFontPanics(t *testing.T) {
	mustPanic(t, "no font", func() { NewLabel("x").Render(NewScene(nil)) })
}
