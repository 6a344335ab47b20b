// Package ingest populates a catalogue from the input document's
// base_requests in the three passes the specification requires: every
// stop must exist before any distance or bus references it.
package ingest

import (
	"fmt"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/docmodel"
	"transitcatalogue/internal/geo"
)

// Run populates cat from baseRequests: stops, then distances, then buses.
// It stops at the first error — ingest failures are fatal, never
// per-request "not found" results.
func Run(cat *catalogue.Catalogue, baseRequests []docmodel.BaseRequest) error {
	for _, req := range baseRequests {
		if req.Type != docmodel.TypeStop {
			continue
		}
		coord := geo.Coordinates{Lat: req.Latitude, Lon: req.Longitude}
		if _, err := cat.AddStop(req.Name, coord); err != nil {
			return fmt.Errorf("ingest: stop %q: %w", req.Name, err)
		}
	}

	for _, req := range baseRequests {
		if req.Type != docmodel.TypeStop {
			continue
		}
		for neighbor, meters := range req.RoadDistances {
			if err := cat.SetDistance(req.Name, neighbor, meters); err != nil {
				return fmt.Errorf("ingest: distance %s->%s: %w", req.Name, neighbor, err)
			}
		}
	}

	for _, req := range baseRequests {
		if req.Type != docmodel.TypeBus {
			continue
		}
		if _, err := cat.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return fmt.Errorf("ingest: bus %q: %w", req.Name, err)
		}
	}

	return nil
}
