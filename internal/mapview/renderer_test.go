package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/geo"
	"transitcatalogue/internal/svg"
)

func buildSample(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 0, Lon: 0})
	require.NoError(t, err)
	_, err = cat.AddStop("B", geo.Coordinates{Lat: 1, Lon: 1})
	require.NoError(t, err)
	require.NoError(t, cat.SetDistance("A", "B", 100))
	_, err = cat.AddBus("1", []string{"A", "B"}, false)
	require.NoError(t, err)
	return cat
}

func sampleSettings() Settings {
	return Settings{
		Width: 600, Height: 400, Padding: 50,
		LineWidth: 14, StopRadius: 5,
		BusLabelFontSize: 20, BusLabelOffset: Offset{X: 7, Y: 15},
		StopLabelFontSize: 20, StopLabelOffset: Offset{X: 7, Y: -3},
		UnderlayerColor: svg.RGBA(255, 255, 255, 0.85),
		UnderlayerWidth: 3,
		ColorPalette:    []svg.Color{svg.Named("green"), svg.RGB(255, 160, 0)},
	}
}

func TestRender_Deterministic(t *testing.T) {
	cat := buildSample(t)
	settings := sampleSettings()

	out1 := Render(cat, settings)
	out2 := Render(cat, settings)
	assert.Equal(t, out1, out2)
	assert.Contains(t, out1, "<svg")
	assert.Contains(t, out1, "</svg>")
}

func TestRender_SkipsUnservedStops(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("Z", geo.Coordinates{Lat: 5, Lon: 5})
	require.NoError(t, err)

	out := Render(cat, sampleSettings())
	assert.NotContains(t, out, "circle")
}

func TestRender_PaletteCyclesAcrossBuses(t *testing.T) {
	cat := buildSample(t)
	_, err := cat.AddStop("C", geo.Coordinates{Lat: 2, Lon: 2})
	require.NoError(t, err)
	require.NoError(t, cat.SetDistance("B", "C", 50))
	_, err = cat.AddBus("2", []string{"B", "C"}, false)
	require.NoError(t, err)

	out := Render(cat, sampleSettings())
	assert.Contains(t, out, `stroke="green"`)
	assert.Contains(t, out, `stroke="rgb(255,160,0)"`)
}
