package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/geo"
)

func TestCompute_NotFound(t *testing.T) {
	cat := catalogue.New()
	_, ok := Compute(cat, "ghost")
	assert.False(t, ok)
}

// Scenario 1 from the specification: circular route, symmetric distances.
func TestCompute_CircularSymmetric(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 55.6, Lon: 37.6})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 55.7, Lon: 37.6})
	require.NoError(t, err)
	_, err = cat.AddStop("C", geo.Coordinates{Lat: 55.7, Lon: 37.7})
	require.NoError(t, err)

	require.NoError(t, cat.SetDistance("A", "B", 1000))
	require.NoError(t, cat.SetDistance("B", "A", 1000))
	require.NoError(t, cat.SetDistance("B", "C", 2000))
	require.NoError(t, cat.SetDistance("C", "B", 2000))
	require.NoError(t, cat.SetDistance("C", "A", 3000))
	require.NoError(t, cat.SetDistance("A", "C", 3000))

	_, err = cat.AddBus("1", []string{"A", "B", "C", "A"}, true)
	require.NoError(t, err)

	res, ok := Compute(cat, "1")
	require.True(t, ok)
	assert.Equal(t, 4, res.StopCount)
	assert.Equal(t, 3, res.UniqueStopCount)
	assert.Equal(t, 6000, res.RouteLengthM)
	greatCircle := geo.Distance(geo.Coordinates{Lat: 55.6, Lon: 37.6}, geo.Coordinates{Lat: 55.7, Lon: 37.6}) +
		geo.Distance(geo.Coordinates{Lat: 55.7, Lon: 37.6}, geo.Coordinates{Lat: 55.7, Lon: 37.7}) +
		geo.Distance(geo.Coordinates{Lat: 55.7, Lon: 37.7}, geo.Coordinates{Lat: 55.6, Lon: 37.6})
	assert.InDelta(t, 6000/greatCircle, res.Curvature, 1e-9)
}

// Scenario 2: non-circular route, asymmetric distances.
func TestCompute_NonCircularAsymmetric(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("X", geo.Coordinates{Lat: 0, Lon: 0})
	require.NoError(t, err)
	_, err = cat.AddStop("Y", geo.Coordinates{Lat: 0, Lon: 1})
	require.NoError(t, err)

	require.NoError(t, cat.SetDistance("X", "Y", 1000))
	require.NoError(t, cat.SetDistance("Y", "X", 1500))

	_, err = cat.AddBus("2", []string{"X", "Y"}, false)
	require.NoError(t, err)

	res, ok := Compute(cat, "2")
	require.True(t, ok)
	assert.Equal(t, 3, res.StopCount)
	assert.Equal(t, 2, res.UniqueStopCount)
	assert.Equal(t, 2500, res.RouteLengthM)
}

func TestCompute_ZeroGeoLengthCurvatureIsInf(t *testing.T) {
	cat := catalogue.New()
	coord := geo.Coordinates{Lat: 10, Lon: 20}
	_, err := cat.AddStop("A", coord)
	require.NoError(t, err)
	_, err = cat.AddStop("B", coord)
	require.NoError(t, err)

	require.NoError(t, cat.SetDistance("A", "B", 100))

	_, err = cat.AddBus("3", []string{"A", "B"}, false)
	require.NoError(t, err)

	res, ok := Compute(cat, "3")
	require.True(t, ok)
	assert.True(t, math.IsInf(res.Curvature, 1))
}
