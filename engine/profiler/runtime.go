package profiler

import "runtime"

// MemStats is the subset of runtime memory numbers the debug overlay shows.
type MemStats struct {
	Alloc      uint64
	Mallocs    uint64
	Goroutines int
	CPUs       int
}

func ReadMemStats() MemStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemStats{
		Alloc:      m.Alloc,
		Mallocs:    m.Mallocs,
		Goroutines: runtime.NumGoroutine(),
		CPUs:       runtime.NumCPU(),
	}
}
