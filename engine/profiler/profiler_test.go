//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDumpCapturedScopes(t *testing.T) {
	Init(64)

	outer := Start("outer")
	Start("inner")()
	outer()
	Start("dangling")

	path, err := Dump(filepath.Join(t.TempDir(), "capture.json"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc ssFile
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}

	evs := doc.Profiles[0].Events
	if len(evs) != 6 {
		t.Fatalf("events = %d, want 6: %+v", len(evs), evs)
	}
	opens := 0
	for _, e := range evs {
		if e.Type == "O" {
			opens++
		}
	}
	if opens != 3 {
		t.Errorf("opens = %d, want 3", opens)
	}
	if last := evs[len(evs)-1]; last.Type != "C" || doc.Shared.Frames[last.Frame].Name != "dangling" {
		t.Errorf("dangling scope not closed last: %+v", last)
	}
}

func TestRingKeepsNewest(t *testing.T) {
	Init(4)
	for range 5 {
		Start("tick")()
	}
	evs := ring.snapshot()
	if len(evs) != 4 {
		t.Fatalf("snapshot = %d events, want 4", len(evs))
	}
	if !evs[0].Open {
		t.Error("oldest kept event should be an open")
	}
}
