package text

import (
	"strings"

	ggtext "github.com/gogpu/gg/text"
	"github.com/mattn/go-runewidth"
)

// Measurer answers "how big is this text in this font". Implementations
// must be side-effect free from the caller's point of view: measuring the
// same text twice returns the same result.
type Measurer interface {
	Measure(s string, font FontID) (w, h float32)
}

type metrics interface {
	lineWidth(s string) float32
	lineHeight() float32
	ascent() float32
}

// faceMetrics measures with a shaped font face.
type faceMetrics struct{ face ggtext.Face }

func (m faceMetrics) lineWidth(s string) float32 { return float32(m.face.Advance(s)) }
func (m faceMetrics) lineHeight() float32        { return float32(m.face.Metrics().LineHeight()) }
func (m faceMetrics) ascent() float32            { return float32(m.face.Metrics().Ascent) }

// cellMetrics measures on a fixed grid: every rune is one or two cells wide
// (East Asian wide runes take two). Deterministic, no font file needed.
type cellMetrics struct {
	cellW, lineH float32
}

func (m cellMetrics) lineWidth(s string) float32 {
	return float32(runewidth.StringWidth(s)) * m.cellW
}
func (m cellMetrics) lineHeight() float32 { return m.lineH }
func (m cellMetrics) ascent() float32     { return m.lineH * 0.8 }

// measureLines returns the widest line and the stacked line height.
// Empty text still occupies one line.
func measureLines(m metrics, s string) [2]float32 {
	lineH := m.lineHeight()
	if s == "" {
		return [2]float32{0, lineH}
	}

	var width float32
	lines := 0
	for line := range strings.SplitSeq(s, "\n") {
		if w := m.lineWidth(line); w > width {
			width = w
		}
		lines++
	}
	return [2]float32{width, lineH * float32(lines)}
}
