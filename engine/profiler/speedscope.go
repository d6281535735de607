package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// event is one scope boundary.
type event struct {
	AtNS  int64
	Scope int
	Open  bool
}

// speedscope evented file format.
type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

var errNoEvents = errors.New("profiler: no events")

// buildSpeedscope converts events in write order into a balanced evented
// profile. Unmatched closes are dropped; scopes still open at the end are
// closed at the last timestamp.
func buildSpeedscope(evs []event, names []string) (ssFile, error) {
	if len(evs) == 0 {
		return ssFile{}, errNoEvents
	}

	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}

	base := evs[0].AtNS
	var endUS int64
	lastUS := int64(-1)
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 32)

	for _, e := range evs {
		atUS := max((e.AtNS-base)/1000, lastUS)
		if e.Open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.Scope})
			stack = append(stack, e.Scope)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.Scope {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.Scope})
		}
		lastUS = atUS
		endUS = max(endUS, atUS)
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}

	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "maleo",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   out,
		}},
		Exporter: "maleo-profiler",
		Name:     "maleo capture",
	}, nil
}

// writeJSON writes doc atomically through a temp file.
func writeJSON(path string, doc any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}
