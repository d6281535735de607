//go:build !profile

package profiler

// No-op versions when the "profile" build tag is not set.

const Enabled = false

func Init(capacity int) {}

func Start(name string) func() { return func() {} }

func Dump(path string) (string, error) { return "", nil }
