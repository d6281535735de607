package ui

import (
	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
)

// Slider picks a value in [min, max] by dragging along its width.
type Slider struct {
	Common[*Slider]
	min, max   float32
	value      float32
	step       float32
	trackColor colors.Color
	fillColor  colors.Color
	knobColor  colors.Color

	hovered       bool
	knobHovered   bool
	dragging      bool
	justHovered   bool
	justUnhovered bool
	justChanged   bool
}

func NewSlider() *Slider {
	s := &Slider{
		max:        1,
		trackColor: colors.Panel.Lighten(1.6),
		fillColor:  colors.Accent,
		knobColor:  colors.White,
	}
	s.Common = NewCommon(s)
	return s
}

// Range sets the bounds and re-clamps the value.
func (s *Slider) Range(lo, hi float32) *Slider {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.min, s.max = lo, hi
	s.value = s.clamp(s.value)
	return s.touch()
}

func (s *Slider) Value(v float32) *Slider           { s.value = s.clamp(v); return s.touch() }
func (s *Slider) Step(v float32) *Slider            { s.step = v; return s.touch() }
func (s *Slider) TrackColor(c colors.Color) *Slider { s.trackColor = c; return s.touch() }
func (s *Slider) FillColor(c colors.Color) *Slider  { s.fillColor = c; return s.touch() }
func (s *Slider) KnobColor(c colors.Color) *Slider  { s.knobColor = c; return s.touch() }
func (s *Slider) Current() float32                  { return s.value }
func (s *Slider) Min() float32                      { return s.min }
func (s *Slider) Max() float32                      { return s.max }
func (s *Slider) Hovered() bool                     { return s.hovered }
func (s *Slider) Dragging() bool                    { return s.dragging }
func (s *Slider) JustHovered() bool                 { return s.justHovered }
func (s *Slider) JustUnhovered() bool               { return s.justUnhovered }
func (s *Slider) JustChanged() bool                 { return s.justChanged }

func (s *Slider) reset() {
	s.hovered, s.knobHovered, s.dragging = false, false, false
	s.justHovered, s.justUnhovered, s.justChanged = false, false, false
}

func (s *Slider) clamp(v float32) float32 { return clampf(v, s.min, s.max) }

// Fraction is the value mapped to [0, 1].
func (s *Slider) Fraction() float32 {
	if s.max == s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

func (s *Slider) stepSize() float32 {
	if s.step > 0 {
		return s.step
	}
	return (s.max - s.min) / 100
}

func (s *Slider) knob() (cx, cy, r float32) {
	r = s.bounds.H / 2
	cx = s.bounds.X + r + s.Fraction()*max(s.bounds.W-2*r, 0)
	cy = s.bounds.Y + r
	return cx, cy, r
}

func (s *Slider) valueAt(x float32) float32 {
	r := s.bounds.H / 2
	span := s.bounds.W - 2*r
	if span <= 0 {
		return s.min
	}
	f := clampf((x-s.bounds.X-r)/span, 0, 1)
	return s.min + f*(s.max-s.min)
}

func (s *Slider) set(v float32) {
	v = s.clamp(v)
	if v != s.value {
		s.value = v
		s.justChanged = true
	}
}

func (s *Slider) Update(mouse *core.MouseState) {
	over := s.bounds.Contains(mouse.X, mouse.Y)
	left := mouse.Left()

	s.justHovered = over && !s.hovered
	s.justUnhovered = !over && s.hovered
	s.hovered = over
	s.justChanged = false

	if over && left.JustPressed {
		s.dragging = true
	}
	if s.dragging && (left.JustPressed || mouse.Moved()) {
		s.set(s.valueAt(mouse.X))
	}
	if left.JustReleased {
		s.dragging = false
	}
	if over && mouse.ScrollY != 0 {
		s.set(s.value + mouse.ScrollY*s.stepSize())
	}

	cx, cy, r := s.knob()
	s.knobHovered = PointInCircle(mouse.X, mouse.Y, cx, cy, r)
}

func (s *Slider) Render(d Drawer) {
	b := s.bounds
	radius := b.H / 2
	d.RoundedRect(b.X, b.Y, b.W, b.H, radius, s.trackColor, colors.Transparent, 0)

	cx, cy, r := s.knob()
	if fw := cx - b.X; fw > 0 {
		d.RoundedRect(b.X, b.Y, fw, b.H, min(radius, fw/2), s.fillColor, colors.Transparent, 0)
	}

	knob := s.knobColor
	if s.knobHovered || s.dragging {
		knob = knob.Darken(0.85)
	}
	d.Circle(cx, cy, r, knob, s.fillColor.Darken(0.7), 1.5)
}
