package ui

// Rect is an axis-aligned box in screen pixels, origin top-left, Y down.
type Rect struct {
	X, Y, W, H float32
}

// Contains is inclusive on all four edges.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

func (r Rect) Inset(d float32) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Union returns the smallest rect covering both. A zero rect is ignored.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ContainsRounded hit-tests a rounded rect. The radius is clamped to half
// the smaller side.
func (r Rect) ContainsRounded(x, y, radius float32) bool {
	if !r.Contains(x, y) {
		return false
	}
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 {
		return true
	}

	// only the four corner squares need the circle test
	cx := clampf(x, r.X+radius, r.Right()-radius)
	cy := clampf(y, r.Y+radius, r.Bottom()-radius)
	return PointInCircle(x, y, cx, cy, radius)
}

func PointInCircle(px, py, cx, cy, r float32) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
