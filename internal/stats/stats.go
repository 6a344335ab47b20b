// Package stats derives per-route aggregates (stop counts, road length,
// curvature) from a frozen catalogue.
package stats

import (
	"math"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/geo"
)

// Result is the per-bus aggregate returned by Compute.
type Result struct {
	StopCount       int
	UniqueStopCount int
	RouteLengthM    int
	Curvature       float64
}

// Compute derives {stop_count, unique_stops, route_length_meters,
// curvature} for the named bus. The boolean return is false if no such
// bus exists; callers must report "not found" rather than treat a zero
// Result as real data.
//
// route_length_meters sums RoadDistance over consecutive pairs of the
// materialized sequence, so asymmetric declarations are honoured exactly
// in each direction (forward for circular, forward-then-reversed for
// non-circular). curvature is road length divided by great-circle length
// over that same sequence; if the great-circle length is zero (every
// consecutive pair of materialized stops shares coordinates), curvature is
// reported as +Inf rather than dividing by zero.
//
// Complexity: O(len(materialized sequence)).
func Compute(cat *catalogue.Catalogue, busNumber string) (Result, bool) {
	bus, ok := cat.FindBus(busNumber)
	if !ok {
		return Result{}, false
	}

	sequence := bus.Materialized()

	var roadLength int
	var geoLength float64
	for i := 0; i+1 < len(sequence); i++ {
		a, b := sequence[i], sequence[i+1]
		roadLength += cat.RoadDistance(a.Name, b.Name)
		geoLength += geo.Distance(a.Coord, b.Coord)
	}

	var curvature float64
	if geoLength == 0 {
		curvature = math.Inf(1)
	} else {
		curvature = float64(roadLength) / geoLength
	}

	return Result{
		StopCount:       bus.StopCount(),
		UniqueStopCount: bus.UniqueStopCount(),
		RouteLengthM:    roadLength,
		Curvature:       curvature,
	}, true
}
