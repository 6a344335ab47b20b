package mapproj

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transitcatalogue/internal/geo"
)

func TestNew_Empty(t *testing.T) {
	p := New(nil, 600, 400, 50)
	pt := p.Project(geo.Coordinates{Lat: 10, Lon: 20})
	assert.Equal(t, Point{X: 50, Y: 50}, pt)
}

func TestNew_SinglePoint_ZoomUndefinedBothAxes(t *testing.T) {
	coords := []geo.Coordinates{{Lat: 10, Lon: 20}}
	p := New(coords, 600, 400, 50)
	pt := p.Project(coords[0])
	assert.Equal(t, Point{X: 50, Y: 50}, pt)
}

func TestNew_AspectPreservingZoom(t *testing.T) {
	coords := []geo.Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 10, Lon: 20},
	}
	p := New(coords, 600, 400, 50)

	// width_zoom = (600-100)/20 = 25 ; height_zoom = (400-100)/10 = 30
	// zoom = min(25, 30) = 25
	assert.InDelta(t, 25, p.zoom, 1e-9)

	origin := p.Project(geo.Coordinates{Lat: 0, Lon: 0})
	assert.InDelta(t, 50, origin.X, 1e-9)
	assert.InDelta(t, 300, origin.Y, 1e-9) // (maxLat(10)-0)*25+50

	far := p.Project(geo.Coordinates{Lat: 10, Lon: 20})
	assert.InDelta(t, 550, far.X, 1e-9)
	assert.InDelta(t, 50, far.Y, 1e-9)
}

func TestNew_DegenerateLongitudeUsesHeightZoomOnly(t *testing.T) {
	coords := []geo.Coordinates{
		{Lat: 0, Lon: 5},
		{Lat: 10, Lon: 5},
	}
	p := New(coords, 600, 400, 50)
	// width span is 0 -> width_zoom undefined; zoom falls back to height_zoom = 30.
	assert.InDelta(t, 30, p.zoom, 1e-9)
}
