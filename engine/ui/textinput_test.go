package ui

import (
	"testing"

	"github.com/hubastard/maleo/engine/core"
)

func focusedInput(t *testing.T) (*TextInput, *core.MouseState) {
	t.Helper()
	ti := NewTextInput().Position(0, 0).Size(100, 30)
	var mouse core.MouseState
	cycle(&mouse, moveTo(10, 10))
	ti.Update(&mouse)
	cycle(&mouse, press(core.MouseLeft))
	ti.Update(&mouse)
	if !ti.Focused() || !ti.JustFocused() {
		t.Fatal("press inside should focus")
	}
	return ti, &mouse
}

func typeKeys(ti *TextInput, text string, keys ...core.Key) bool {
	var ks core.KeyState
	ks.BeginFrame()
	ks.Commit(text)
	for _, k := range keys {
		ks.Set(k, true)
	}
	return ti.UpdateKeys(&ks)
}

func TestTextInputFocusBlur(t *testing.T) {
	ti, mouse := focusedInput(t)

	cycle(mouse, nil)
	ti.Update(mouse)
	if ti.JustFocused() {
		t.Error("JustFocused must not latch")
	}

	cycle(mouse, release(core.MouseLeft))
	ti.Update(mouse)
	cycle(mouse, moveTo(300, 300))
	ti.Update(mouse)
	cycle(mouse, press(core.MouseLeft))
	ti.Update(mouse)
	if ti.Focused() || !ti.JustBlurred() {
		t.Error("press outside should blur")
	}
}

func TestTextInputUnfocusedIgnoresKeys(t *testing.T) {
	ti := NewTextInput()
	if typeKeys(ti, "abc") || ti.Current() != "" {
		t.Error("unfocused input must ignore typing")
	}
}

func TestTextInputEditing(t *testing.T) {
	ti, _ := focusedInput(t)

	if !typeKeys(ti, "helo") || !ti.JustChanged() {
		t.Fatal("typing should change the value")
	}
	typeKeys(ti, "", core.KeyLeft)
	typeKeys(ti, "l")
	if ti.Current() != "hello" || ti.Cursor() != 4 {
		t.Fatalf("value %q cursor %d", ti.Current(), ti.Cursor())
	}

	typeKeys(ti, "", core.KeyEnd)
	typeKeys(ti, "", core.KeyBackspace)
	if ti.Current() != "hell" {
		t.Errorf("backspace: %q", ti.Current())
	}

	typeKeys(ti, "", core.KeyHome)
	typeKeys(ti, "", core.KeyDelete)
	if ti.Current() != "ell" || ti.Cursor() != 0 {
		t.Errorf("delete at home: %q cursor %d", ti.Current(), ti.Cursor())
	}

	if typeKeys(ti, "", core.KeyLeft) {
		t.Error("cursor already at 0, nothing changed")
	}

	typeKeys(ti, "\x01\t")
	if ti.Current() != "ell" {
		t.Errorf("control runes inserted: %q", ti.Current())
	}
}

func TestTextInputMaxLen(t *testing.T) {
	ti, _ := focusedInput(t)
	ti.MaxLen(3)
	typeKeys(ti, "héllo")
	if ti.Current() != "hél" {
		t.Errorf("value = %q, want 3 runes", ti.Current())
	}
	ti.Value("abcdef")
	if ti.Current() != "abc" || ti.Cursor() != 3 {
		t.Errorf("Value should truncate: %q", ti.Current())
	}
}

func TestTextInputSubmitAndEscape(t *testing.T) {
	ti, _ := focusedInput(t)
	typeKeys(ti, "go")

	if !typeKeys(ti, "", core.KeyEnter) || !ti.JustSubmitted() {
		t.Error("enter should submit")
	}
	if ti.JustChanged() {
		t.Error("submit does not change the value")
	}

	typeKeys(ti, "", core.KeyEscape)
	if ti.Focused() || !ti.JustBlurred() {
		t.Error("escape should blur")
	}
	if ti.Current() != "go" {
		t.Errorf("escape kept value %q", ti.Current())
	}
}

func TestTextInputRender(t *testing.T) {
	f, font := monoFonts()
	ti := NewTextInput().Font(font).Position(0, 0).Size(100, 30).Placeholder("search...")

	s := NewScene(f)
	ti.Render(s)
	if len(s.Commands) != 2 || s.Commands[1].Text != "search..." {
		t.Fatalf("unfocused empty input: %+v", s.Commands)
	}
	if s.Commands[1].Fill != ti.placeholderColor {
		t.Error("placeholder should use the placeholder colour")
	}
	// 16px line centred in 30px
	if s.Commands[1].X != textInputInset || s.Commands[1].Y != 7 {
		t.Errorf("text at (%v, %v)", s.Commands[1].X, s.Commands[1].Y)
	}

	ti.Value("abc").Focus()
	s.Reset()
	ti.Render(s)
	if len(s.Commands) != 3 {
		t.Fatalf("focused input should draw a caret: %+v", s.Commands)
	}
	if caret := s.Commands[2]; caret.X != textInputInset+24 || caret.H != 16 {
		t.Errorf("caret = %+v", caret)
	}
	if s.Commands[0].Outline != ti.focusColor {
		t.Error("focused outline should use the focus colour")
	}
}
