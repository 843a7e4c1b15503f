package provenance

import "sync/atomic"

// Registry hands out display colours for tokens. Assignment is first come
// first served over a monotonic counter, so colours depend only on the order
// in which tokens are first rendered, and each token keeps its colour for the
// life of the process.
//
// The registry is lock-free: concurrent first use of the same token races on
// a compare-and-swap and every goroutine converges on the winning colour.
type Registry struct {
	counter atomic.Uint32
	palette *Palette
}

// NewRegistry creates a registry backed by the given palette. A nil palette
// selects the built-in colour sequence.
func NewRegistry(palette *Palette) *Registry {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Registry{palette: palette}
}

var defaultRegistry = NewRegistry(nil)

// Default returns the process-wide registry used when callers do not inject
// their own.
func Default() *Registry {
	return defaultRegistry
}

// ColorIndex returns the token's colour slot, assigning the next free one on
// first use. Idempotent per token and safe under concurrent first use.
func (r *Registry) ColorIndex(loc *Location) int {
	if v := loc.slot.Load(); v != 0 {
		return int(v - 1)
	}

	// Claim the next counter value, then try to commit it. A losing claim is
	// simply discarded; the committed value wins for every caller.
	claimed := r.counter.Add(1)
	if loc.slot.CompareAndSwap(0, claimed) {
		return int(claimed - 1)
	}
	return int(loc.slot.Load() - 1)
}

// Style returns the ANSI style specification for the token, assigning a
// colour on first use.
func (r *Registry) Style(loc *Location) string {
	return r.palette.Style(r.ColorIndex(loc))
}
