package provenance

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Location identifies one template build site. Tokens are compared by
// identity: two Locations with identical fields are still distinct tokens
// when they were registered separately.
type Location struct {
	File   string
	Line   int
	Column int

	// Colour slot, 0 while unassigned. Written once via the registry's
	// claim/commit protocol and shared across goroutines after that.
	slot atomic.Uint32
}

// NewLocation registers a fresh token with explicit coordinates. Every call
// yields a distinct token, even for repeated coordinates.
func NewLocation(file string, line, column int) *Location {
	return &Location{File: file, Line: line, Column: column}
}

// String formats the token's coordinates for legends and error messages.
func (l *Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

var (
	sitesMu sync.Mutex
	sites   = map[string]*Location{}
)

// Here captures the caller's source position and returns the process-wide
// token for that call site. Repeated calls from the same site return the same
// token, so identity stays stable for the life of the process. skip counts
// stack frames exactly as in runtime.Caller: 0 is the caller of Here.
//
// Go exposes no column information at runtime, so interned tokens report
// column 1.
func Here(skip int) *Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		file, line = "unknown", 0
	}

	key := fmt.Sprintf("%s:%d", file, line)

	sitesMu.Lock()
	defer sitesMu.Unlock()

	if loc, ok := sites[key]; ok {
		return loc
	}
	loc := NewLocation(file, line, 1)
	sites[key] = loc
	return loc
}
