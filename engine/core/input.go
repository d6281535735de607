package core

// ButtonState is one mouse button channel: a level plus one-cycle edges.
type ButtonState struct {
	Down         bool
	JustPressed  bool
	JustReleased bool
}

// MouseState is the pointer snapshot for one input cycle.
// The previous position is always (X-DX, Y-DY).
type MouseState struct {
	X, Y             float32
	DX, DY           float32
	ScrollX, ScrollY float32
	Buttons          [mouseButtonCount]ButtonState
}

// BeginFrame clears deltas and pulses. Level state survives.
func (m *MouseState) BeginFrame() {
	m.DX, m.DY = 0, 0
	m.ScrollX, m.ScrollY = 0, 0
	for i := range m.Buttons {
		m.Buttons[i].JustPressed = false
		m.Buttons[i].JustReleased = false
	}
}

func (m *MouseState) MoveTo(x, y float32) {
	m.DX += x - m.X
	m.DY += y - m.Y
	m.X, m.Y = x, y
}

func (m *MouseState) Press(b MouseButton) {
	s := &m.Buttons[b]
	if !s.Down {
		s.Down = true
		s.JustPressed = true
	}
}

func (m *MouseState) Release(b MouseButton) {
	s := &m.Buttons[b]
	if s.Down {
		s.Down = false
		s.JustReleased = true
	}
}

func (m *MouseState) Scroll(dx, dy float32) {
	m.ScrollX += dx
	m.ScrollY += dy
}

func (m *MouseState) Prev() (float32, float32) { return m.X - m.DX, m.Y - m.DY }
func (m *MouseState) Moved() bool              { return m.DX != 0 || m.DY != 0 }

func (m *MouseState) Left() ButtonState   { return m.Buttons[MouseLeft] }
func (m *MouseState) Right() ButtonState  { return m.Buttons[MouseRight] }
func (m *MouseState) Middle() ButtonState { return m.Buttons[MouseMiddle] }

// AnyEdge reports whether any button was pressed or released this cycle.
func (m *MouseState) AnyEdge() bool {
	for _, b := range m.Buttons {
		if b.JustPressed || b.JustReleased {
			return true
		}
	}
	return false
}

// KeyState is the keyboard snapshot for one input cycle.
type KeyState struct {
	down         map[Key]bool
	justPressed  map[Key]bool
	justReleased map[Key]bool
	Mods         Mod
	Text         string // text committed this cycle
}

func (k *KeyState) init() {
	if k.down == nil {
		k.down = map[Key]bool{}
		k.justPressed = map[Key]bool{}
		k.justReleased = map[Key]bool{}
	}
}

func (k *KeyState) BeginFrame() {
	clear(k.justPressed)
	clear(k.justReleased)
	k.Text = ""
}

// Set records a key transition. A repeat (down while already down) pulses
// JustPressed again so held editing keys keep working.
func (k *KeyState) Set(key Key, down bool) {
	k.init()
	if down {
		k.justPressed[key] = true
	} else if k.down[key] {
		k.justReleased[key] = true
	}
	k.down[key] = down
}

func (k *KeyState) Commit(s string) { k.Text += s }

func (k *KeyState) IsDown(key Key) bool       { return k.down[key] }
func (k *KeyState) JustPressed(key Key) bool  { return k.justPressed[key] }
func (k *KeyState) JustReleased(key Key) bool { return k.justReleased[key] }

// Input folds platform events into the mouse and key snapshots.
type Input struct {
	Mouse MouseState
	Keys  KeyState
}

func NewInput() *Input { return &Input{} }

// BeginFrame starts a new input cycle.
func (in *Input) BeginFrame() {
	in.Mouse.BeginFrame()
	in.Keys.BeginFrame()
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.Keys.Mods = e.Mods
		in.Keys.Set(e.Key, e.Down)
	case EventChar:
		in.Keys.Commit(e.Text)
	case EventMouseMove:
		in.Mouse.MoveTo(float32(e.X), float32(e.Y))
	case EventMouseButton:
		if e.Down {
			in.Mouse.Press(e.Button)
		} else {
			in.Mouse.Release(e.Button)
		}
	case EventScroll:
		in.Mouse.Scroll(float32(e.Xoff), float32(e.Yoff))
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.Keys.IsDown(k) }
func (in *Input) MousePos() (float32, float32) {
	return in.Mouse.X, in.Mouse.Y
}
