package catalogue

import "sort"

// AddBus inserts a new bus. stopNames must resolve to existing stops;
// fails with ErrStopNotFound otherwise. Fails with ErrDuplicateBus if the
// number already exists, ErrEmptyRoute if stopNames is empty. Updates the
// inverse stop->buses index for every referenced stop. The terminal is
// fixed to the last stop of the given sequence (the circular pivot for a
// circular route, the forward-leg's final stop otherwise); the codec
// re-fixes it afterward via SetTerminal when restoring a blob.
//
// Complexity: O(len(stopNames)).
func (c *Catalogue) AddBus(number string, stopNames []string, circular bool) (*Bus, error) {
	if number == "" {
		return nil, ErrEmptyName
	}
	if len(stopNames) == 0 {
		return nil, ErrEmptyRoute
	}

	c.busMu.Lock()
	if _, exists := c.buses[number]; exists {
		c.busMu.Unlock()
		return nil, ErrDuplicateBus
	}
	c.busMu.Unlock()

	resolved := make([]*Stop, len(stopNames))
	c.stopMu.RLock()
	for i, name := range stopNames {
		s, ok := c.stops[name]
		if !ok {
			c.stopMu.RUnlock()
			return nil, ErrStopNotFound
		}
		resolved[i] = s
	}
	c.stopMu.RUnlock()

	bus := &Bus{
		Number:   number,
		Stops:    resolved,
		Circular: circular,
		terminal: resolved[len(resolved)-1],
	}

	c.busMu.Lock()
	if _, exists := c.buses[number]; exists {
		c.busMu.Unlock()
		return nil, ErrDuplicateBus
	}
	c.buses[number] = bus
	c.busMu.Unlock()

	c.adjMu.Lock()
	for _, s := range resolved {
		set, ok := c.throughIdx[s.Name]
		if !ok {
			set = make(map[string]struct{})
			c.throughIdx[s.Name] = set
		}
		set[number] = struct{}{}
	}
	c.adjMu.Unlock()

	return bus, nil
}

// SetTerminal fixes bus's terminal stop explicitly. It exists as a
// separate step (rather than folding into AddBus) so that the codec can
// restore a persisted terminal after re-adding a bus; AddBus's default
// (last stop of the declared sequence) already satisfies the invariant for
// every well-formed input, so this is ordinarily a no-op confirmation.
//
// Complexity: O(1).
func (c *Catalogue) SetTerminal(number, stopName string) error {
	c.busMu.RLock()
	bus, ok := c.buses[number]
	c.busMu.RUnlock()
	if !ok {
		return ErrBusNotFound
	}

	c.stopMu.RLock()
	stop, ok := c.stops[stopName]
	c.stopMu.RUnlock()
	if !ok {
		return ErrStopNotFound
	}

	bus.mu.Lock()
	bus.terminal = stop
	bus.mu.Unlock()

	return nil
}

// FindBus returns the bus with the given number, or (nil, false).
//
// Complexity: O(1).
func (c *Catalogue) FindBus(number string) (*Bus, bool) {
	c.busMu.RLock()
	defer c.busMu.RUnlock()
	b, ok := c.buses[number]
	return b, ok
}

// BusesSorted returns every bus in lexicographic order by number.
//
// Complexity: O(N log N).
func (c *Catalogue) BusesSorted() []*Bus {
	c.busMu.RLock()
	defer c.busMu.RUnlock()

	numbers := make([]string, 0, len(c.buses))
	for n := range c.buses {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)

	out := make([]*Bus, len(numbers))
	for i, n := range numbers {
		out[i] = c.buses[n]
	}
	return out
}

// BusesThrough returns the sorted set of bus numbers serving stop, and
// whether the stop exists at all (an existing-but-unserved stop returns
// an empty, non-nil slice and true).
//
// Complexity: O(K log K) where K is the number of buses through the stop.
func (c *Catalogue) BusesThrough(stopName string) ([]string, bool) {
	c.stopMu.RLock()
	_, stopExists := c.stops[stopName]
	c.stopMu.RUnlock()
	if !stopExists {
		return nil, false
	}

	c.adjMu.RLock()
	set := c.throughIdx[stopName]
	out := make([]string, 0, len(set))
	for number := range set {
		out = append(out, number)
	}
	c.adjMu.RUnlock()

	sort.Strings(out)
	return out, true
}
