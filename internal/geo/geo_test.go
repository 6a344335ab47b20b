package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePoint(t *testing.T) {
	p := Coordinates{Lat: 55.6, Lon: 37.6}
	require.Equal(t, float64(0), Distance(p, p))
}

func TestDistance_KnownPair(t *testing.T) {
	// Moscow-ish pair roughly 11.1 km apart (1 degree of latitude ~111 km,
	// here 0.1 degree).
	a := Coordinates{Lat: 55.6, Lon: 37.6}
	b := Coordinates{Lat: 55.7, Lon: 37.6}

	d := Distance(a, b)
	assert.InDelta(t, 11119, d, 50)
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinates{Lat: 0, Lon: 0}
	b := Coordinates{Lat: 10, Lon: 20}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_Antipodal(t *testing.T) {
	a := Coordinates{Lat: 0, Lon: 0}
	b := Coordinates{Lat: 0, Lon: 180}

	d := Distance(a, b)
	assert.InDelta(t, math.Pi*earthRadiusMeters, d, 1)
}
