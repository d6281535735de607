package ui

import (
	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/text"
)

// Drawer is what widgets render into. Coordinates are screen pixels,
// Text is positioned by the top-left of its first line.
type Drawer interface {
	text.Measurer

	Rect(x, y, w, h float32, fill, outline colors.Color, outlineWidth float32)
	Circle(cx, cy, r float32, fill, outline colors.Color, outlineWidth float32)
	RoundedRect(x, y, w, h, r float32, fill, outline colors.Color, outlineWidth float32)
	Text(s string, font text.FontID, x, y float32, col colors.Color)
}

type CommandKind uint8

const (
	CmdRect CommandKind = iota
	CmdCircle
	CmdRoundedRect
	CmdText
)

func (k CommandKind) String() string {
	switch k {
	case CmdRect:
		return "rect"
	case CmdCircle:
		return "circle"
	case CmdRoundedRect:
		return "rounded-rect"
	case CmdText:
		return "text"
	}
	return "unknown"
}

// Command is one recorded draw call. Circle uses X,Y as the centre and R
// as the radius.
type Command struct {
	Kind         CommandKind
	X, Y, W, H   float32
	R            float32
	Fill         colors.Color
	Outline      colors.Color
	OutlineWidth float32
	Text         string
	Font         text.FontID
}

// Scene records draw calls so a frame can be inspected or replayed.
type Scene struct {
	Commands []Command
	measurer text.Measurer
}

// NewScene records into a fresh command list. m answers Measure calls.
func NewScene(m text.Measurer) *Scene {
	return &Scene{measurer: m}
}

func (s *Scene) Measure(str string, font text.FontID) (float32, float32) {
	return s.measurer.Measure(str, font)
}

func (s *Scene) Rect(x, y, w, h float32, fill, outline colors.Color, outlineWidth float32) {
	s.Commands = append(s.Commands, Command{Kind: CmdRect, X: x, Y: y, W: w, H: h,
		Fill: fill, Outline: outline, OutlineWidth: outlineWidth})
}

func (s *Scene) Circle(cx, cy, r float32, fill, outline colors.Color, outlineWidth float32) {
	s.Commands = append(s.Commands, Command{Kind: CmdCircle, X: cx, Y: cy, R: r,
		Fill: fill, Outline: outline, OutlineWidth: outlineWidth})
}

func (s *Scene) RoundedRect(x, y, w, h, r float32, fill, outline colors.Color, outlineWidth float32) {
	s.Commands = append(s.Commands, Command{Kind: CmdRoundedRect, X: x, Y: y, W: w, H: h, R: r,
		Fill: fill, Outline: outline, OutlineWidth: outlineWidth})
}

func (s *Scene) Text(str string, font text.FontID, x, y float32, col colors.Color) {
	s.Commands = append(s.Commands, Command{Kind: CmdText, X: x, Y: y, Text: str, Font: font, Fill: col})
}

func (s *Scene) Reset() { s.Commands = s.Commands[:0] }

func (s *Scene) Len() int { return len(s.Commands) }

// Replay issues the recorded commands to d in order.
func (s *Scene) Replay(d Drawer) {
	for _, c := range s.Commands {
		switch c.Kind {
		case CmdRect:
			d.Rect(c.X, c.Y, c.W, c.H, c.Fill, c.Outline, c.OutlineWidth)
		case CmdCircle:
			d.Circle(c.X, c.Y, c.R, c.Fill, c.Outline, c.OutlineWidth)
		case CmdRoundedRect:
			d.RoundedRect(c.X, c.Y, c.W, c.H, c.R, c.Fill, c.Outline, c.OutlineWidth)
		case CmdText:
			d.Text(c.Text, c.Font, c.X, c.Y, c.Fill)
		}
	}
}
