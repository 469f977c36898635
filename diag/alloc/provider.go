package alloc

// Provider supplies raw memory to allocator backends. It is the
// platform memory layer that backends dispatch to after their own
// bookkeeping.
type Provider interface {
	// Alloc returns a zeroed block of n bytes, or nil when the memory
	// cannot be provided.
	Alloc(n int) []byte

	// Resize returns b adjusted to n bytes, preserving the common
	// prefix. The result aliases b when the resize happened in place.
	// On failure it returns nil and leaves b untouched.
	Resize(b []byte, n int) []byte

	// Free releases a block obtained from Alloc or Resize.
	Free(b []byte)
}

// goProvider delegates to the Go runtime. Free is a no-op because
// reclamation is the collector's job.
type goProvider struct{}

func (goProvider) Alloc(n int) []byte { return make([]byte, n) }

func (goProvider) Resize(b []byte, n int) []byte {
	if n <= cap(b) {
		return b[:n]
	}
	nb := make([]byte, n)
	copy(nb, b)
	return nb
}

func (goProvider) Free([]byte) {}

// DefaultProvider is the runtime-backed provider used when a backend is
// constructed without an explicit one.
var DefaultProvider Provider = goProvider{}
