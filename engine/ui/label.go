package ui

import (
	"fmt"

	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
)

// Label is static text sized to its content.
type Label struct {
	Common[*Label]
	text    string
	font    text.FontID
	hasFont bool
	color   colors.Color
	sized   fontText
}

func NewLabel(s string) *Label {
	l := &Label{text: s, color: colors.White}
	l.Common = NewCommon(l)
	return l
}

func (l *Label) Text(s string) *Label        { l.text = s; return l.touch() }
func (l *Label) Font(id text.FontID) *Label  { l.font, l.hasFont = id, true; return l.touch() }
func (l *Label) Color(c colors.Color) *Label { l.color = c; return l.touch() }
func (l *Label) Caption() string             { return l.text }

func (l *Label) Update(*core.MouseState) {}

func (l *Label) mustFont() text.FontID {
	if !l.hasFont {
		panic(fmt.Sprintf("ui: label %d (%q) has no font", l.id, l.text))
	}
	return l.font
}

func (l *Label) ResolveSize(m text.Measurer) bool {
	key := fontText{font: l.mustFont(), text: l.text, ok: true}
	if l.sized == key {
		return false
	}
	l.sized = key
	w, h := m.Measure(l.text, key.font)
	if w == l.bounds.W && h == l.bounds.H {
		return false
	}
	l.bounds.W, l.bounds.H = w, h
	return true
}

func (l *Label) Render(d Drawer) {
	d.Text(l.text, l.mustFont(), l.bounds.X, l.bounds.Y, l.color)
}
