package ui

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
)

const textInputInset = 8

// TextInput is a single-line editable field. Clicking it focuses it,
// clicking elsewhere blurs it.
type TextInput struct {
	Common[*TextInput]
	value       []rune
	cursor      int // rune index
	placeholder string
	maxLen      int
	font        text.FontID
	hasFont     bool

	bgColor          colors.Color
	textColor        colors.Color
	placeholderColor colors.Color
	outlineColor     colors.Color
	focusColor       colors.Color

	hovered       bool
	focused       bool
	justFocused   bool
	justBlurred   bool
	justChanged   bool
	justSubmitted bool
}

func NewTextInput() *TextInput {
	t := &TextInput{
		bgColor:          colors.Panel,
		textColor:        colors.White,
		placeholderColor: colors.Muted,
		outlineColor:     colors.Muted.WithAlpha(0.4),
		focusColor:       colors.Accent,
	}
	t.Common = NewCommon(t)
	return t
}

func (t *TextInput) Placeholder(s string) *TextInput            { t.placeholder = s; return t.touch() }
func (t *TextInput) Font(id text.FontID) *TextInput             { t.font, t.hasFont = id, true; return t.touch() }
func (t *TextInput) BgColor(c colors.Color) *TextInput          { t.bgColor = c; return t.touch() }
func (t *TextInput) TextColor(c colors.Color) *TextInput        { t.textColor = c; return t.touch() }
func (t *TextInput) PlaceholderColor(c colors.Color) *TextInput { t.placeholderColor = c; return t.touch() }
func (t *TextInput) FocusColor(c colors.Color) *TextInput       { t.focusColor = c; return t.touch() }

// Value replaces the contents and moves the cursor to the end.
func (t *TextInput) Value(s string) *TextInput {
	t.value = []rune(s)
	t.truncate()
	t.cursor = len(t.value)
	return t.touch()
}

// MaxLen limits the contents to n runes. Zero means unlimited.
func (t *TextInput) MaxLen(n int) *TextInput {
	t.maxLen = max(n, 0)
	t.truncate()
	t.cursor = min(t.cursor, len(t.value))
	return t.touch()
}

// Focus gives the field keyboard focus without a click.
func (t *TextInput) Focus() *TextInput {
	if !t.focused {
		t.focused = true
		t.cursor = len(t.value)
	}
	return t.touch()
}

func (t *TextInput) Blur() *TextInput { t.focused = false; return t.touch() }

func (t *TextInput) Current() string     { return string(t.value) }
func (t *TextInput) Cursor() int         { return t.cursor }
func (t *TextInput) Focused() bool       { return t.focused }
func (t *TextInput) Hovered() bool       { return t.hovered }
func (t *TextInput) JustFocused() bool   { return t.justFocused }
func (t *TextInput) JustBlurred() bool   { return t.justBlurred }
func (t *TextInput) JustChanged() bool   { return t.justChanged }
func (t *TextInput) JustSubmitted() bool { return t.justSubmitted }

func (t *TextInput) reset() {
	t.hovered, t.focused = false, false
	t.justFocused, t.justBlurred = false, false
	t.justChanged, t.justSubmitted = false, false
}

func (t *TextInput) truncate() {
	if t.maxLen > 0 && len(t.value) > t.maxLen {
		t.value = t.value[:t.maxLen]
	}
}

func (t *TextInput) Update(mouse *core.MouseState) {
	over := t.bounds.Contains(mouse.X, mouse.Y)
	t.hovered = over
	t.justFocused, t.justBlurred = false, false

	if !mouse.Left().JustPressed {
		return
	}
	switch {
	case over && !t.focused:
		t.focused = true
		t.cursor = len(t.value)
		t.justFocused = true
	case !over && t.focused:
		t.focused = false
		t.justBlurred = true
	}
}

// UpdateKeys edits the value while focused. It reports whether anything
// visible changed.
func (t *TextInput) UpdateKeys(keys *core.KeyState) bool {
	t.justChanged, t.justSubmitted = false, false
	if !t.focused {
		return false
	}

	before := string(t.value)
	cursor := t.cursor

	for _, r := range keys.Text {
		if !unicode.IsPrint(r) {
			continue
		}
		if t.maxLen > 0 && len(t.value) >= t.maxLen {
			break
		}
		t.value = slices.Insert(t.value, t.cursor, r)
		t.cursor++
	}

	switch {
	case keys.JustPressed(core.KeyBackspace):
		if t.cursor > 0 {
			t.value = slices.Delete(t.value, t.cursor-1, t.cursor)
			t.cursor--
		}
	case keys.JustPressed(core.KeyDelete):
		if t.cursor < len(t.value) {
			t.value = slices.Delete(t.value, t.cursor, t.cursor+1)
		}
	case keys.JustPressed(core.KeyLeft):
		t.cursor = max(t.cursor-1, 0)
	case keys.JustPressed(core.KeyRight):
		t.cursor = min(t.cursor+1, len(t.value))
	case keys.JustPressed(core.KeyHome):
		t.cursor = 0
	case keys.JustPressed(core.KeyEnd):
		t.cursor = len(t.value)
	case keys.JustPressed(core.KeyEnter):
		t.justSubmitted = true
	case keys.JustPressed(core.KeyEscape):
		t.focused = false
		t.justBlurred = true
	}

	t.justChanged = string(t.value) != before
	return t.justChanged || t.justSubmitted || t.justBlurred || t.cursor != cursor
}

func (t *TextInput) mustFont() text.FontID {
	if !t.hasFont {
		panic(fmt.Sprintf("ui: text input %d has no font, call Font before rendering", t.id))
	}
	return t.font
}

func (t *TextInput) Render(d Drawer) {
	font := t.mustFont()
	b := t.bounds

	outline, width := t.outlineColor, float32(1)
	if t.focused {
		outline, width = t.focusColor, 1.5
	}
	d.Rect(b.X, b.Y, b.W, b.H, t.bgColor, outline, width)

	_, lineH := d.Measure("", font)
	x := b.X + textInputInset
	y := b.Y + (b.H-lineH)/2

	if len(t.value) == 0 {
		if t.placeholder != "" {
			d.Text(t.placeholder, font, x, y, t.placeholderColor)
		}
	} else {
		d.Text(string(t.value), font, x, y, t.textColor)
	}

	if t.focused {
		pw, _ := d.Measure(string(t.value[:t.cursor]), font)
		d.Rect(x+pw, y, 1.5, lineH, t.textColor, colors.Transparent, 0)
	}
}
