package colors

type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{}

	// UI defaults
	Teal   = Color{0.27, 0.51, 0.50, 1}
	Accent = Color{0.18, 0.48, 0.92, 1}
	Panel  = Color{0.14, 0.15, 0.17, 1}
	Muted  = Color{0.55, 0.57, 0.60, 1}
)

func RGB(r, g, b float32) Color { return Color{r, g, b, 1} }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) IsZero() bool { return c == Color{} }

// Visible reports whether drawing c would change any pixel.
func (c Color) Visible() bool { return c[3] > 0 }

// Darken scales the RGB channels by factor, alpha untouched.
func (c Color) Darken(factor float32) Color {
	return Color{c[0] * factor, c[1] * factor, c[2] * factor, c[3]}
}

// Lighten scales the RGB channels by factor, clamped to 1.
func (c Color) Lighten(factor float32) Color {
	return Color{
		min(c[0]*factor, 1),
		min(c[1]*factor, 1),
		min(c[2]*factor, 1),
		c[3],
	}
}

// Or returns c, or fallback when c is the zero color.
func (c Color) Or(fallback Color) Color {
	if c.IsZero() {
		return fallback
	}
	return c
}
