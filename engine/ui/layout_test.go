package ui

import "testing"

// sized creates a fixed-size button and returns its handle.
func sized(m *Manager, w, h float32) Handle[*Button] {
	hd := m.Button("")
	Mut(m, hd).Size(w, h)
	return hd
}

func TestNestedLayout(t *testing.T) {
	m := NewManager()
	l := NewLayoutManager()

	a1 := sized(m, 180, 32)
	a2 := sized(m, 180, 32)
	b1 := sized(m, 180, 18)

	colA := l.VStack().Gap(10).Add(a1).Add(a2).Ref()
	colB := l.VStack().Add(b1).Ref()
	root := l.HStack().Position(40, 40).Gap(16).AddContainer(colA).AddContainer(colB).Ref()

	l.ComputeAll(m)

	if b := Get(m, a1).Bounds(); b.X != 40 || b.Y != 40 {
		t.Errorf("a1 at (%v, %v), want (40, 40)", b.X, b.Y)
	}
	if b := Get(m, a2).Bounds(); b.X != 40 || b.Y != 82 {
		t.Errorf("a2 at (%v, %v), want (40, 82)", b.X, b.Y)
	}
	if w, h := l.Measure(colA, m); w != 180 || h != 74 {
		t.Errorf("A = %vx%v, want 180x74", w, h)
	}
	if b := l.Bounds(colB); b.X != 236 || b.Y != 40 {
		t.Errorf("B at (%v, %v), want (236, 40)", b.X, b.Y)
	}
	if b := Get(m, b1).Bounds(); b.X != 236 {
		t.Errorf("b1 x = %v, want 236", b.X)
	}
	if b := l.Bounds(root); b != (Rect{X: 40, Y: 40, W: 376, H: 74}) {
		t.Errorf("root bounds = %+v", b)
	}
}

func TestContainerSizeLaw(t *testing.T) {
	tests := []struct {
		name   string
		axis   Axis
		sizes  [][2]float32
		gap, p float32
		wantW  float32
		wantH  float32
	}{
		{"empty", Horizontal, nil, 7, 3, 6, 6},
		{"empty no padding", Vertical, nil, 7, 0, 0, 0},
		{"single", Horizontal, [][2]float32{{10, 5}}, 4, 2, 14, 9},
		{"row", Horizontal, [][2]float32{{10, 5}, {20, 8}, {30, 6}}, 5, 2, 74, 12},
		{"column", Vertical, [][2]float32{{10, 5}, {20, 8}, {30, 6}}, 5, 2, 34, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			l := NewLayoutManager()
			b := l.HStack()
			if tt.axis == Vertical {
				b = l.VStack()
			}
			b.Gap(tt.gap).Padding(tt.p)
			for _, s := range tt.sizes {
				b.Add(sized(m, s[0], s[1]))
			}
			w, h := l.Measure(b.Ref(), m)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("size = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestPaddingOffsetsChildren(t *testing.T) {
	m := NewManager()
	l := NewLayoutManager()
	a := sized(m, 10, 10)
	c := sized(m, 10, 10)
	l.VStack().Position(5, 5).Padding(4).Gap(2).Add(a).Add(c)
	l.ComputeAll(m)

	if b := Get(m, a).Bounds(); b.X != 9 || b.Y != 9 {
		t.Errorf("a at (%v, %v)", b.X, b.Y)
	}
	if b := Get(m, c).Bounds(); b.X != 9 || b.Y != 21 {
		t.Errorf("c at (%v, %v)", b.X, b.Y)
	}
}

func TestComputeAllIdempotent(t *testing.T) {
	m := NewManager()
	l := NewLayoutManager()
	a := sized(m, 30, 10)
	c := sized(m, 20, 40)
	inner := l.VStack().Padding(3).Add(c).Ref()
	l.HStack().Position(7, 9).Gap(4).Add(a).AddContainer(inner)

	l.ComputeAll(m)
	first := []Rect{Get(m, a).Bounds(), Get(m, c).Bounds()}
	l.ComputeAll(m)
	second := []Rect{Get(m, a).Bounds(), Get(m, c).Bounds()}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("widget %d moved: %+v -> %+v", i, first[i], second[i])
		}
	}
}

func TestMeasureDoesNotMove(t *testing.T) {
	m := NewManager()
	l := NewLayoutManager()
	a := sized(m, 30, 10)
	Mut(m, a).Position(99, 99)
	ref := l.HStack().Position(1, 1).Add(a).Ref()

	l.Measure(ref, m)
	if b := Get(m, a).Bounds(); b.X != 99 || b.Y != 99 {
		t.Errorf("Measure moved the widget to (%v, %v)", b.X, b.Y)
	}
}

func TestMissingWidgetSkipped(t *testing.T) {
	m := NewManager()
	l := NewLayoutManager()
	a := sized(m, 10, 10)
	gone := sized(m, 50, 50)
	c := sized(m, 10, 10)
	ref := l.HStack().Gap(5).Add(a).Add(gone).Add(c).Ref()

	m.Remove(gone.ID())
	if w, h := l.Measure(ref, m); w != 25 || h != 10 {
		t.Errorf("size = %vx%v, want 25x10", w, h)
	}
	l.ComputeAll(m)
	if b := Get(m, c).Bounds(); b.X != 15 {
		t.Errorf("c x = %v, want 15", b.X)
	}
}

func TestHiddenWidgetKeepsSlot(t *testing.T) {
	m := NewManager()
	l := NewLayoutManager()
	a := sized(m, 10, 10)
	c := sized(m, 10, 10)
	Mut(m, a).Hide()
	l.HStack().Add(a).Add(c)
	l.ComputeAll(m)
	if b := Get(m, c).Bounds(); b.X != 10 {
		t.Errorf("c x = %v, want 10", b.X)
	}
}

func TestForestViolationsPanic(t *testing.T) {
	l := NewLayoutManager()
	a := l.VStack()
	mustPanic(t, "itself", func() { a.AddContainer(a.Ref()) })

	child := l.HStack().Ref()
	a.AddContainer(child)
	other := l.HStack()
	mustPanic(t, "already belongs", func() { other.AddContainer(child) })

	mustPanic(t, "cycle", func() { l.Edit(child).AddContainer(a.Ref()) })

	mustPanic(t, "no container", func() { l.Edit(ContainerRef{index: 42}) })
}

func TestLayoutDirty(t *testing.T) {
	l := NewLayoutManager()
	if l.TakeDirty() {
		t.Error("empty layout should not be dirty")
	}
	ref := l.HStack().Ref()
	if !l.TakeDirty() {
		t.Error("new container should mark dirty")
	}
	l.Edit(ref).Gap(3)
	if !l.TakeDirty() {
		t.Error("edit should mark dirty")
	}
	if l.TakeDirty() {
		t.Error("flag should clear once taken")
	}
}

func TestDebugDraw(t *testing.T) {
	f, _ := monoFonts()
	m := NewManager()
	l := NewLayoutManager()
	inner := l.VStack().Add(sized(m, 10, 10)).Ref()
	l.HStack().Position(2, 2).AddContainer(inner)
	l.HStack() // never has content

	s := NewScene(f)
	l.DebugDraw(s)
	if s.Len() != 0 {
		t.Error("nothing laid out yet")
	}

	l.ComputeAll(m)
	l.DebugDraw(s)
	if s.Len() != 2 {
		t.Fatalf("debug rects = %d, want 2", s.Len())
	}
	for _, c := range s.Commands {
		if c.Fill[3] != 0.15 || c.Outline[3] != 0.7 || c.OutlineWidth != 1.5 {
			t.Errorf("debug style = %+v", c)
		}
	}
	if s.Commands[0].Fill == s.Commands[1].Fill {
		t.Error("containers should cycle colors")
	}
}
