package docmodel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	json "github.com/goccy/go-json"

	"transitcatalogue/internal/svg"
)

func TestDecodeInput_BaseRequests(t *testing.T) {
	const input = `{
		"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.6, "road_distances": {"B": 1000}},
			{"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
		],
		"serialization_settings": {"file": "base.db"}
	}`

	doc, err := DecodeInput(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, doc.BaseRequests, 2)

	assert.Equal(t, TypeStop, doc.BaseRequests[0].Type)
	assert.Equal(t, "A", doc.BaseRequests[0].Name)
	assert.Equal(t, 1000, doc.BaseRequests[0].RoadDistances["B"])

	assert.Equal(t, TypeBus, doc.BaseRequests[1].Type)
	assert.Equal(t, []string{"A", "B"}, doc.BaseRequests[1].Stops)
	assert.False(t, doc.BaseRequests[1].IsRoundtrip)

	assert.Equal(t, "base.db", doc.SerializationSettings.File)
}

func TestDecodeInput_RenderSettingsColors(t *testing.T) {
	const input = `{
		"render_settings": {
			"width": 600, "height": 400, "padding": 50,
			"line_width": 14, "stop_radius": 5,
			"bus_label_font_size": 20, "bus_label_offset": [7, 15],
			"stop_label_font_size": 18, "stop_label_offset": [7, -3],
			"underlayer_color": [255, 255, 255, 0.85],
			"underlayer_width": 3,
			"color_palette": ["green", [255, 160, 0], "red"]
		}
	}`

	doc, err := DecodeInput(strings.NewReader(input))
	require.NoError(t, err)

	rs := doc.RenderSettings
	assert.Equal(t, 600.0, rs.Width)
	assert.Equal(t, Offset{X: 7, Y: 15}, rs.BusLabelOffset)
	assert.Equal(t, "rgba(255,255,255,0.85)", rs.UnderlayerColor.String())
	require.Len(t, rs.ColorPalette, 3)
	assert.Equal(t, "green", rs.ColorPalette[0].String())
	assert.Equal(t, "rgb(255,160,0)", rs.ColorPalette[1].String())
	assert.Equal(t, "red", rs.ColorPalette[2].String())
}

func TestDecodeInput_StatAndRoutingSettings(t *testing.T) {
	const input = `{
		"stat_requests": [
			{"id": 1, "type": "Bus", "name": "1"},
			{"id": 2, "type": "Route", "from": "A", "to": "C"}
		],
		"routing_settings": {"bus_wait_time": 6, "bus_velocity": 40}
	}`

	doc, err := DecodeInput(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, doc.StatRequests, 2)
	assert.Equal(t, 1, doc.StatRequests[0].ID)
	assert.Equal(t, QueryBus, doc.StatRequests[0].Type)
	assert.Equal(t, "A", doc.StatRequests[1].From)
	assert.Equal(t, "C", doc.StatRequests[1].To)
	assert.Equal(t, 6, doc.RoutingSettings.BusWaitTime)
	assert.Equal(t, 40.0, doc.RoutingSettings.BusVelocity)
}

func encodeOne(t *testing.T, r Response) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, EncodeOutput(&buf, []Response{r}))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	return out[0]
}

func TestResponse_BusSuccess(t *testing.T) {
	got := encodeOne(t, NewBusResponse(1, 1.23, 6000, 4, 3))
	assert.Equal(t, float64(1), got["request_id"])
	assert.InDelta(t, 1.23, got["curvature"], 1e-9)
	assert.InDelta(t, 6000, got["route_length"], 1e-9)
	assert.NotContains(t, got, "error_message")
	assert.NotContains(t, got, "buses")
}

func TestResponse_BusNotFound(t *testing.T) {
	got := encodeOne(t, NewBusNotFound(4))
	assert.Equal(t, "not found", got["error_message"])
	assert.NotContains(t, got, "curvature")
}

func TestResponse_StopEmptyBusesIsLiteralArray(t *testing.T) {
	got := encodeOne(t, NewStopResponse(3, nil))
	buses, ok := got["buses"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, buses)
}

func TestResponse_MapSuccess(t *testing.T) {
	got := encodeOne(t, NewMapResponse(5, "<svg></svg>"))
	assert.Equal(t, "<svg></svg>", got["map"])
}

func TestResponse_RouteSuccess(t *testing.T) {
	got := encodeOne(t, NewRouteResponse(2, 6.9, []RouteItem{
		{Type: "Wait", StopName: "A", Time: 6},
		{Type: "Bus", Bus: "", SpanCount: 1, Time: 0.9},
	}))
	assert.InDelta(t, 6.9, got["total_time"], 1e-9)
	items, ok := got["items"].([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestColor_RoundTrip(t *testing.T) {
	for _, c := range []svg.Color{svg.Named("black"), svg.RGB(1, 2, 3), svg.RGBA(1, 2, 3, 0.5)} {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var got svg.Color
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, c.String(), got.String())
	}
}
