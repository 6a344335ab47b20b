// Package catalogue owns the stop/bus/distance graph that the rest of the
// engine queries: a name-indexed store with stable identities, an inverse
// stop→buses index, and a directed road-distance relation with the
// "missing reverse falls back to declared forward" contract.
//
// Mutations happen only during ingest; once the input document has been
// fully processed, every other subsystem (statistics, router, renderer)
// treats the Catalogue as a frozen, read-only view. Separate locks guard
// the stop table, the bus table, and the inverse index so that enumeration
// and lookups never block on each other during ingest.
package catalogue

import (
	"errors"
	"sync"

	"transitcatalogue/internal/geo"
)

// Sentinel errors for catalogue mutations.
var (
	// ErrEmptyName indicates a stop or bus name was the empty string.
	ErrEmptyName = errors.New("catalogue: name is empty")

	// ErrDuplicateStop indicates add_stop was called with an existing name.
	ErrDuplicateStop = errors.New("catalogue: duplicate stop")

	// ErrDuplicateBus indicates add_bus was called with an existing number.
	ErrDuplicateBus = errors.New("catalogue: duplicate bus")

	// ErrStopNotFound indicates a reference to a stop that does not exist.
	ErrStopNotFound = errors.New("catalogue: stop not found")

	// ErrBusNotFound indicates a reference to a bus that does not exist.
	ErrBusNotFound = errors.New("catalogue: bus not found")

	// ErrEmptyRoute indicates add_bus was called with no stops.
	ErrEmptyRoute = errors.New("catalogue: bus has no stops")
)

// Stop is a named geographic point with a directed, asymmetric table of
// road distances to neighbouring stops. Once inserted its identity (the
// pointer) never changes for the Catalogue's lifetime; only its distances
// table and the inverse index that references it may be updated.
type Stop struct {
	Name  string
	Coord geo.Coordinates

	// mu guards distances; ingest is single-threaded but the rest of the
	// engine may hold concurrent read views once the catalogue is frozen.
	mu        sync.RWMutex
	distances map[string]int // neighbour name -> metres, directed
}

// DistanceTo returns the directed distance set from this stop toward to,
// and whether an entry was recorded.
func (s *Stop) DistanceTo(to string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.distances[to]
	return d, ok
}

// Bus is a route: an ordered sequence of stops, a circular flag, and a
// terminal stop fixed at creation time (or re-fixed explicitly via
// SetTerminal during ingest). For a circular route Stops begins and ends
// at the same stop; for a non-circular route Stops holds the forward leg
// only.
type Bus struct {
	Number   string
	Stops    []*Stop
	Circular bool

	mu       sync.RWMutex
	terminal *Stop
}

// Terminal returns the bus's distinguished terminal stop.
func (b *Bus) Terminal() *Stop {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.terminal
}

// Materialized returns the stop sequence used for statistics and map
// rendering: the declared sequence for circular routes, and the declared
// sequence followed by its reverse (minus the duplicated pivot) for
// non-circular routes.
func (b *Bus) Materialized() []*Stop {
	if b.Circular {
		out := make([]*Stop, len(b.Stops))
		copy(out, b.Stops)
		return out
	}

	out := make([]*Stop, 0, 2*len(b.Stops)-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}

// UniqueStopCount returns the number of distinct stops in the declared
// (forward) sequence.
func (b *Bus) UniqueStopCount() int {
	seen := make(map[string]struct{}, len(b.Stops))
	for _, s := range b.Stops {
		seen[s.Name] = struct{}{}
	}
	return len(seen)
}

// StopCount returns the materialized-sequence stop count: len(Stops) for a
// circular route, 2*len(Stops)-1 for a non-circular one.
func (b *Bus) StopCount() int {
	if b.Circular {
		return len(b.Stops)
	}
	return 2*len(b.Stops) - 1
}

// Catalogue owns the append-only stop and bus collections and the
// secondary indices derived from them.
type Catalogue struct {
	stopMu sync.RWMutex
	stops  map[string]*Stop

	busMu sync.RWMutex
	buses map[string]*Bus

	// adjMu guards throughIdx, the inverse stop->buses index.
	adjMu     sync.RWMutex
	throughIdx map[string]map[string]struct{} // stop name -> set of bus numbers
}

// New returns an empty Catalogue ready for ingest.
func New() *Catalogue {
	return &Catalogue{
		stops:      make(map[string]*Stop),
		buses:      make(map[string]*Bus),
		throughIdx: make(map[string]map[string]struct{}),
	}
}
