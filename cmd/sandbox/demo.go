package main

import (
	"fmt"

	"github.com/hubastard/maleo/engine/colors"
	"github.com/hubastard/maleo/engine/core"
	"github.com/hubastard/maleo/engine/text"
	"github.com/hubastard/maleo/engine/ui"
)

// demo holds the handles the update callback reads back.
type demo struct {
	searchInput ui.Handle[*ui.TextInput]
	searchBtn   ui.Handle[*ui.Button]

	nameInput    ui.Handle[*ui.TextInput]
	emailInput   ui.Handle[*ui.TextInput]
	volSlider    ui.Handle[*ui.Slider]
	brightSlider ui.Handle[*ui.Slider]

	okBtn     ui.Handle[*ui.Button]
	cancelBtn ui.Handle[*ui.Button]
	resetBtn  ui.Handle[*ui.Button]
	status    ui.Handle[*ui.Label]

	root ui.ContainerRef
}

const (
	defaultVolume     = 70
	defaultBrightness = 40
)

func tones(b *ui.Button, base, hover, press colors.Color) *ui.Button {
	return b.Color(base).HoverColor(hover).PressColor(press)
}

func buildDemo(s *ui.State, font text.FontID, padding float32) *demo {
	w := s.Widgets
	d := &demo{}

	d.searchInput = w.TextInput()
	ui.Mut(w, d.searchInput).Font(font).Size(260, 32).Placeholder("search...")

	d.searchBtn = w.Button("go")
	tones(ui.Mut(w, d.searchBtn).Font(font).Size(52, 32),
		colors.RGB(0.18, 0.48, 0.92), colors.RGB(0.25, 0.58, 1.0), colors.RGB(0.12, 0.35, 0.75))

	d.nameInput = w.TextInput()
	ui.Mut(w, d.nameInput).Font(font).Size(180, 32).Placeholder("name...")

	d.emailInput = w.TextInput()
	ui.Mut(w, d.emailInput).Font(font).Size(180, 32).Placeholder("email...")

	d.volSlider = w.Slider()
	ui.Mut(w, d.volSlider).Size(180, 18).Range(0, 100).Value(defaultVolume).
		FillColor(colors.RGB(0.18, 0.48, 0.92))

	d.brightSlider = w.Slider()
	ui.Mut(w, d.brightSlider).Size(180, 18).Range(0, 100).Value(defaultBrightness).
		FillColor(colors.RGB(0.85, 0.55, 0.1))

	d.okBtn = w.Button("ok")
	tones(ui.Mut(w, d.okBtn).Font(font).Size(88, 32),
		colors.RGB(0.12, 0.42, 0.22), colors.RGB(0.18, 0.58, 0.32), colors.RGB(0.08, 0.28, 0.15))

	d.cancelBtn = w.Button("cancel")
	tones(ui.Mut(w, d.cancelBtn).Font(font).Size(88, 32),
		colors.RGB(0.38, 0.12, 0.12), colors.RGB(0.52, 0.18, 0.18), colors.RGB(0.25, 0.08, 0.08))

	d.resetBtn = w.Button("reset")
	tones(ui.Mut(w, d.resetBtn).Font(font).Padding(padding).AutoSize().Radius(6),
		colors.RGB(0.22, 0.22, 0.22), colors.RGB(0.32, 0.32, 0.32), colors.RGB(0.14, 0.14, 0.14))

	d.status = w.Label("")
	ui.Mut(w, d.status).Font(font).Color(colors.Muted)

	l := s.Layout
	searchRow := l.HStack().Gap(8).Add(d.searchInput).Add(d.searchBtn).Ref()
	colA := l.VStack().Gap(10).Add(d.nameInput).Add(d.emailInput).Ref()
	colB := l.VStack().Gap(18).Add(d.volSlider).Add(d.brightSlider).Ref()
	columns := l.HStack().Gap(16).AddContainer(colA).AddContainer(colB).Ref()
	actionRow := l.HStack().Gap(8).Add(d.okBtn).Add(d.cancelBtn).Add(d.resetBtn).Ref()

	d.root = l.VStack().
		Position(40, 40).
		Gap(20).
		AddContainer(searchRow).
		AddContainer(columns).
		AddContainer(actionRow).
		Add(d.status).
		Ref()

	d.refreshStatus(s)
	return d
}

// update runs after the widget passes, once per input cycle.
func (d *demo) update(s *ui.State) {
	w := s.Widgets

	if ui.Get(w, d.okBtn).JustClicked() {
		ui.Mut(w, d.nameInput).Value("")
		ui.Mut(w, d.emailInput).Value("")
	}
	if ui.Get(w, d.cancelBtn).JustClicked() {
		ui.Mut(w, d.nameInput).Blur()
		ui.Mut(w, d.emailInput).Blur()
	}
	if ui.Get(w, d.resetBtn).JustClicked() {
		ui.Mut(w, d.volSlider).Value(defaultVolume)
		ui.Mut(w, d.brightSlider).Value(defaultBrightness)
	}

	search := ui.Get(w, d.searchInput)
	if ui.Get(w, d.searchBtn).JustClicked() || search.JustSubmitted() {
		core.Logger().Info("search", "query", search.Current())
	}

	d.refreshStatus(s)
}

// refreshStatus only touches the label when its text differs, so an idle
// cycle stays clean.
func (d *demo) refreshStatus(s *ui.State) {
	w := s.Widgets
	vol := ui.Get(w, d.volSlider).Current()
	bright := ui.Get(w, d.brightSlider).Current()
	msg := fmt.Sprintf("volume %.0f  brightness %.0f", vol, bright)
	if ui.Get(w, d.status).Caption() != msg {
		ui.Mut(w, d.status).Text(msg)
	}
}
