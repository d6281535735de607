package text

import (
	"fmt"
	"path/filepath"
	"sync"

	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontID indexes a font registered in Fonts.
type FontID int

const measureCacheSize = 4096

type entry struct {
	name string
	size float32
	face ggtext.Face // nil for cell fonts
	m    metrics
}

type measureKey struct {
	font FontID
	text string
}

// Fonts is the font registry. It owns the parsed font sources and
// memoizes Measure results per (font, text).
type Fonts struct {
	mu      sync.Mutex
	entries []entry
	sources map[string]*ggtext.FontSource
	cache   *ggtext.Cache[measureKey, [2]float32]
	misses  int
}

func NewFonts() *Fonts {
	return &Fonts{
		sources: make(map[string]*ggtext.FontSource),
		cache:   ggtext.NewCache[measureKey, [2]float32](measureCacheSize),
	}
}

// AddSource registers a face of src at size. The first font added is
// the default (id 0).
func (f *Fonts) AddSource(name string, src *ggtext.FontSource, size float32) FontID {
	if size <= 0 {
		panic(fmt.Sprintf("text: font %q size must be positive, got %v", name, size))
	}
	face := src.Face(float64(size))

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry{name: name, size: size, face: face, m: faceMetrics{face}})
	return FontID(len(f.entries) - 1)
}

// AddTTF parses TrueType/OpenType data. Sources are shared by name, so
// adding the same font at several sizes parses it once.
func (f *Fonts) AddTTF(name string, data []byte, size float32) (FontID, error) {
	f.mu.Lock()
	src, ok := f.sources[name]
	f.mu.Unlock()

	if !ok {
		var err error
		src, err = ggtext.NewFontSource(data)
		if err != nil {
			return 0, fmt.Errorf("load font %q: %w", name, err)
		}
		f.mu.Lock()
		f.sources[name] = src
		f.mu.Unlock()
	}
	return f.AddSource(name, src, size), nil
}

// AddFile loads a font file from disk.
func (f *Fonts) AddFile(path string, size float32) (FontID, error) {
	src, err := ggtext.NewFontSourceFromFile(path)
	if err != nil {
		return 0, fmt.Errorf("load font %q: %w", path, err)
	}
	name := filepath.Base(path)

	f.mu.Lock()
	if prev, ok := f.sources[name]; ok {
		f.mu.Unlock()
		_ = src.Close()
		return f.AddSource(name, prev, size), nil
	}
	f.sources[name] = src
	f.mu.Unlock()
	return f.AddSource(name, src, size), nil
}

// AddDefault registers the built-in Go Regular face.
func (f *Fonts) AddDefault(size float32) FontID {
	id, err := f.AddTTF("goregular", goregular.TTF, size)
	if err != nil {
		// embedded font; failure means a broken build
		panic(err)
	}
	return id
}

// AddMonoFace registers the built-in Go Mono face.
func (f *Fonts) AddMonoFace(size float32) FontID {
	id, err := f.AddTTF("gomono", gomono.TTF, size)
	if err != nil {
		panic(err)
	}
	return id
}

// AddMono registers a cell-grid font: each column is cellW wide and each
// line lineH tall. Measurements are exact, which makes it the font of
// choice for layout tests and headless runs.
func (f *Fonts) AddMono(cellW, lineH float32) FontID {
	if cellW <= 0 || lineH <= 0 {
		panic(fmt.Sprintf("text: mono cell must be positive, got %vx%v", cellW, lineH))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry{name: "mono", size: lineH, m: cellMetrics{cellW: cellW, lineH: lineH}})
	return FontID(len(f.entries) - 1)
}

func (f *Fonts) get(id FontID) entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id < 0 || int(id) >= len(f.entries) {
		panic(fmt.Sprintf("text: unknown font id %d", id))
	}
	return f.entries[id]
}

// Measure returns the bounding size of s: the widest line by the number
// of lines times the line height. Results are memoized.
func (f *Fonts) Measure(s string, id FontID) (w, h float32) {
	e := f.get(id)
	key := measureKey{font: id, text: s}
	if v, ok := f.cache.Get(key); ok {
		return v[0], v[1]
	}
	v := measureLines(e.m, s)
	f.cache.Set(key, v)

	f.mu.Lock()
	f.misses++
	f.mu.Unlock()
	return v[0], v[1]
}

// Face returns the shaped face for id, or nil for a cell font.
func (f *Fonts) Face(id FontID) ggtext.Face { return f.get(id).face }

func (f *Fonts) LineHeight(id FontID) float32 { return f.get(id).m.lineHeight() }

// Ascent is the distance from the top of a line to its baseline.
func (f *Fonts) Ascent(id FontID) float32 { return f.get(id).m.ascent() }

func (f *Fonts) Name(id FontID) string { return f.get(id).name }

func (f *Fonts) Size(id FontID) float32 { return f.get(id).size }

// Len is the number of registered fonts.
func (f *Fonts) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Misses reports how many Measure calls were computed rather than served
// from the cache.
func (f *Fonts) Misses() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.misses
}

// Close releases the font sources. Faces become unusable.
func (f *Fonts) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var first error
	for name, src := range f.sources {
		if err := src.Close(); err != nil && first == nil {
			first = fmt.Errorf("close font %q: %w", name, err)
		}
		delete(f.sources, name)
	}
	f.cache.Clear()
	return first
}
