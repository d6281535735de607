//go:build profile

package profiler

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const Enabled = true

// Init must be called once with the ring capacity (#scope boundaries).
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start opens a scope and returns the func that closes it.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := intern(name)
	start := time.Now().UnixNano()
	ring.push(event{AtNS: start, Scope: id, Open: true})
	return func() {
		end := max(time.Now().UnixNano(), start)
		ring.push(event{AtNS: end, Scope: id})
	}
}

// Dump writes the captured scopes as a speedscope file and returns its
// path. An empty path writes to the temp dir.
func Dump(path string) (string, error) {
	muNames.Lock()
	snapshot := append([]string(nil), names...)
	muNames.Unlock()

	doc, err := buildSpeedscope(ring.snapshot(), snapshot)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = filepath.Join(os.TempDir(), "maleo.speedscope.json")
	}
	if err := writeJSON(path, &doc); err != nil {
		return "", err
	}
	return path, nil
}

// ---------- event ring ----------

type eventRing struct {
	ready atomic.Bool
	cap   uint64
	write atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) init(capacity int) {
	r.cap = uint64(capacity)
	r.evs = make([]event, r.cap)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

// snapshot preserves write order.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

// ---------- scope names ----------

var (
	muNames sync.Mutex
	names   []string
	index   = map[string]int{}
)

func intern(name string) int {
	muNames.Lock()
	defer muNames.Unlock()
	if id, ok := index[name]; ok {
		return id
	}
	id := len(names)
	index[name] = id
	names = append(names, name)
	return id
}
