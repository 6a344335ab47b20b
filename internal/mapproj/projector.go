// Package mapproj implements the equirectangular min/max projection that
// maps geographic coordinates onto a bounded 2-D canvas while preserving
// aspect ratio.
package mapproj

import (
	"math"

	"transitcatalogue/internal/geo"
)

// zoomEpsilon is the tolerance below which a min/max span is treated as
// zero (a degenerate, single-meridian or single-parallel point set).
const zoomEpsilon = 1e-6

// Point is a projected 2-D canvas coordinate.
type Point struct {
	X float64
	Y float64
}

// Projector maps geo.Coordinates onto an (W, H, Padding) canvas.
type Projector struct {
	minLon  float64
	maxLat  float64
	zoom    float64
	padding float64
}

// New computes a Projector for the given coordinate set and canvas
// geometry. An empty coordinate set yields the identity mapping (min_lon,
// max_lat, zoom all zero).
//
// Complexity: O(len(coords)).
func New(coords []geo.Coordinates, width, height, padding float64) Projector {
	if len(coords) == 0 {
		return Projector{padding: padding}
	}

	minLon, maxLon := coords[0].Lon, coords[0].Lon
	minLat, maxLat := coords[0].Lat, coords[0].Lat
	for _, c := range coords[1:] {
		minLon = math.Min(minLon, c.Lon)
		maxLon = math.Max(maxLon, c.Lon)
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
	}

	widthZoom, widthOK := zoomFactor(width, padding, maxLon-minLon)
	heightZoom, heightOK := zoomFactor(height, padding, maxLat-minLat)

	var zoom float64
	switch {
	case widthOK && heightOK:
		zoom = math.Min(widthZoom, heightZoom)
	case widthOK:
		zoom = widthZoom
	case heightOK:
		zoom = heightZoom
	default:
		zoom = 0
	}

	return Projector{minLon: minLon, maxLat: maxLat, zoom: zoom, padding: padding}
}

// zoomFactor computes (dimension - 2*padding) / span, reporting false when
// span is within zoomEpsilon of zero (the factor is then undefined).
func zoomFactor(dimension, padding, span float64) (float64, bool) {
	if math.Abs(span) < zoomEpsilon {
		return 0, false
	}
	return (dimension - 2*padding) / span, true
}

// Project maps a geographic coordinate onto the canvas. Latitude is
// flipped so north renders at the top.
func (p Projector) Project(c geo.Coordinates) Point {
	return Point{
		X: (c.Lon-p.minLon)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
