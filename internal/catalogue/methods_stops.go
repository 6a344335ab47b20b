package catalogue

import (
	"sort"

	"transitcatalogue/internal/geo"
)

// AddStop inserts a new stop. Fails with ErrDuplicateStop if name already
// exists, ErrEmptyName if name is empty. The returned *Stop's identity is
// stable for the Catalogue's lifetime.
//
// Complexity: O(1) amortized.
func (c *Catalogue) AddStop(name string, coord geo.Coordinates) (*Stop, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	c.stopMu.Lock()
	defer c.stopMu.Unlock()

	if _, exists := c.stops[name]; exists {
		return nil, ErrDuplicateStop
	}

	s := &Stop{
		Name:      name,
		Coord:     coord,
		distances: make(map[string]int),
	}
	c.stops[name] = s

	return s, nil
}

// SetDistance records the directed road distance from->to in meters,
// overwriting any prior value for the same ordered pair. Both stops must
// already exist in the catalogue.
//
// Complexity: O(1).
func (c *Catalogue) SetDistance(from, to string, meters int) error {
	c.stopMu.RLock()
	fromStop, fromOK := c.stops[from]
	_, toOK := c.stops[to]
	c.stopMu.RUnlock()

	if !fromOK || !toOK {
		return ErrStopNotFound
	}

	fromStop.mu.Lock()
	fromStop.distances[to] = meters
	fromStop.mu.Unlock()

	return nil
}

// FindStop returns the stop with the given name, or (nil, false) if none
// exists.
//
// Complexity: O(1).
func (c *Catalogue) FindStop(name string) (*Stop, bool) {
	c.stopMu.RLock()
	defer c.stopMu.RUnlock()
	s, ok := c.stops[name]
	return s, ok
}

// StopsSorted returns every stop in lexicographic order by name.
//
// Complexity: O(N log N).
func (c *Catalogue) StopsSorted() []*Stop {
	c.stopMu.RLock()
	defer c.stopMu.RUnlock()

	names := make([]string, 0, len(c.stops))
	for name := range c.stops {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Stop, len(names))
	for i, name := range names {
		out[i] = c.stops[name]
	}
	return out
}

// RoadDistance returns the directed distance from->to. If the forward
// direction was never declared, it falls back to the reverse-direction
// distance. If neither direction is known, it returns 0 — "unknown,
// treated as zero for aggregation". Both the statistics engine and the
// router depend on this fallback.
//
// Complexity: O(1).
func (c *Catalogue) RoadDistance(from, to string) int {
	c.stopMu.RLock()
	fromStop, fromOK := c.stops[from]
	toStop, toOK := c.stops[to]
	c.stopMu.RUnlock()

	if fromOK {
		if d, ok := fromStop.DistanceTo(to); ok {
			return d
		}
	}
	if toOK {
		if d, ok := toStop.DistanceTo(from); ok {
			return d
		}
	}
	return 0
}
