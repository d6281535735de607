package ui

import (
	"fmt"

	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
)

const DefaultPadding = 12

type Button struct {
	Common[*Button]
	text       string
	font       text.FontID
	hasFont    bool
	color      colors.Color
	hoverColor colors.Color
	pressColor colors.Color
	textColor  colors.Color
	radius     float32
	padding    float32
	autoSize   bool
	sized      fontText // content the bounds were last fitted to

	hovered       bool
	pressed       bool
	justHovered   bool
	justUnhovered bool
	justPressed   bool
	justClicked   bool
	rightClicked  bool
}

type fontText struct {
	font text.FontID
	text string
	ok   bool
}

func NewButton(label string) *Button {
	b := &Button{
		text:      label,
		textColor: colors.White,
		padding:   DefaultPadding,
	}
	b.Common = NewCommon(b)
	return b
}

func (b *Button) Text(s string) *Button             { b.text = s; return b.touch() }
func (b *Button) Font(id text.FontID) *Button       { b.font, b.hasFont = id, true; return b.touch() }
func (b *Button) Color(c colors.Color) *Button      { b.color = c; return b.touch() }
func (b *Button) HoverColor(c colors.Color) *Button { b.hoverColor = c; return b.touch() }
func (b *Button) PressColor(c colors.Color) *Button { b.pressColor = c; return b.touch() }
func (b *Button) TextColor(c colors.Color) *Button  { b.textColor = c; return b.touch() }
func (b *Button) Radius(r float32) *Button          { b.radius = r; return b.touch() }
func (b *Button) Padding(p float32) *Button         { b.padding = p; b.sized.ok = false; return b.touch() }

// Size fixes the bounds size and turns auto-size off.
func (b *Button) Size(w, h float32) *Button {
	b.autoSize = false
	return b.Common.Size(w, h)
}

// AutoSize fits the bounds to the label plus padding on every side.
func (b *Button) AutoSize() *Button {
	b.autoSize = true
	b.sized.ok = false
	return b.touch()
}

func (b *Button) Caption() string     { return b.text }
func (b *Button) Hovered() bool       { return b.hovered }
func (b *Button) Pressed() bool       { return b.pressed }
func (b *Button) JustHovered() bool   { return b.justHovered }
func (b *Button) JustUnhovered() bool { return b.justUnhovered }
func (b *Button) JustPressed() bool   { return b.justPressed }
func (b *Button) JustClicked() bool   { return b.justClicked }
func (b *Button) RightClicked() bool  { return b.rightClicked }

func (b *Button) reset() {
	b.hovered, b.pressed = false, false
	b.justHovered, b.justUnhovered = false, false
	b.justPressed, b.justClicked, b.rightClicked = false, false, false
}

func (b *Button) Update(mouse *core.MouseState) {
	over := b.bounds.Contains(mouse.X, mouse.Y)
	left := mouse.Left()

	b.justHovered = over && !b.hovered
	b.justUnhovered = !over && b.hovered
	b.hovered = over
	b.justPressed = over && left.JustPressed
	b.justClicked = over && left.JustReleased && b.pressed
	b.rightClicked = over && mouse.Right().JustReleased

	if b.justPressed {
		b.pressed = true
	} else if left.JustReleased {
		b.pressed = false
	}
}

func (b *Button) mustFont() text.FontID {
	if !b.hasFont {
		panic(fmt.Sprintf("ui: button %d (%q) has no font, call Font before rendering", b.id, b.text))
	}
	return b.font
}

func (b *Button) ResolveSize(m text.Measurer) bool {
	if !b.autoSize {
		return false
	}
	key := fontText{font: b.mustFont(), text: b.text, ok: true}
	if b.sized == key {
		return false
	}
	b.sized = key

	tw, th := m.Measure(b.text, key.font)
	w, h := tw+2*b.padding, th+2*b.padding
	if w == b.bounds.W && h == b.bounds.H {
		return false
	}
	b.bounds.W, b.bounds.H = w, h
	return true
}

func (b *Button) fill() colors.Color {
	switch {
	case b.pressed:
		return b.pressColor.Or(b.color.Darken(0.7))
	case b.hovered:
		return b.hoverColor.Or(b.color.Lighten(1.2))
	}
	return b.color
}

func (b *Button) Render(d Drawer) {
	font := b.mustFont()
	r := b.bounds
	if b.radius > 0 {
		d.RoundedRect(r.X, r.Y, r.W, r.H, b.radius, b.fill(), colors.Transparent, 0)
	} else {
		d.Rect(r.X, r.Y, r.W, r.H, b.fill(), colors.Transparent, 0)
	}

	tw, th := d.Measure(b.text, font)
	d.Text(b.text, font, r.X+(r.W-tw)/2, r.Y+(r.H-th)/2, b.textColor)
}
