// Package docmodel is the typed Go representation of the engine's input
// and output documents, decoded and encoded with goccy/go-json (the JSON
// library used in the reference corpus's Valhalla HTTP client) in place of
// encoding/json.
package docmodel

import (
	"io"

	json "github.com/goccy/go-json"

	"transitcatalogue/internal/mapview"
	"transitcatalogue/internal/router"
	"transitcatalogue/internal/svg"
)

// Base item type tags.
const (
	TypeStop = "Stop"
	TypeBus  = "Bus"
)

// Query item type tags.
const (
	QueryBus   = "Bus"
	QueryStop  = "Stop"
	QueryMap   = "Map"
	QueryRoute = "Route"
)

// BaseRequest is one element of base_requests: a tagged union over Stop and
// Bus declarations, dispatched on Type.
type BaseRequest struct {
	Type string `json:"type"`

	Name string `json:"name"`

	// Stop fields.
	Latitude      float64        `json:"latitude"`
	Longitude     float64        `json:"longitude"`
	RoadDistances map[string]int `json:"road_distances"`

	// Bus fields.
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

// StatRequest is one element of stat_requests: a tagged query over Bus,
// Stop, Map or Route, preserving its id as the response's request_id.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`

	Name string `json:"name"` // Bus, Stop

	From string `json:"from"` // Route
	To   string `json:"to"`   // Route
}

// Offset is a label's (dx, dy) text offset, decoded from a 2-element JSON
// array.
type Offset struct {
	X, Y float64
}

// UnmarshalJSON decodes a 2-element [dx, dy] array.
func (o *Offset) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	o.X, o.Y = pair[0], pair[1]
	return nil
}

// MarshalJSON encodes as a 2-element [dx, dy] array.
func (o Offset) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{o.X, o.Y})
}

// RenderSettings is the render_settings object, verbatim from the input
// document.
type RenderSettings struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`

	LineWidth  float64 `json:"line_width"`
	StopRadius float64 `json:"stop_radius"`

	BusLabelFontSize int    `json:"bus_label_font_size"`
	BusLabelOffset   Offset `json:"bus_label_offset"`

	StopLabelFontSize int    `json:"stop_label_font_size"`
	StopLabelOffset   Offset `json:"stop_label_offset"`

	UnderlayerColor svg.Color `json:"underlayer_color"`
	UnderlayerWidth float64   `json:"underlayer_width"`

	ColorPalette []svg.Color `json:"color_palette"`
}

// ToMapviewSettings converts the document's render_settings into the
// renderer's native Settings type.
func (r RenderSettings) ToMapviewSettings() mapview.Settings {
	return mapview.Settings{
		Width:             r.Width,
		Height:            r.Height,
		Padding:           r.Padding,
		LineWidth:         r.LineWidth,
		StopRadius:        r.StopRadius,
		BusLabelFontSize:  r.BusLabelFontSize,
		BusLabelOffset:    mapview.Offset{X: r.BusLabelOffset.X, Y: r.BusLabelOffset.Y},
		StopLabelFontSize: r.StopLabelFontSize,
		StopLabelOffset:   mapview.Offset{X: r.StopLabelOffset.X, Y: r.StopLabelOffset.Y},
		UnderlayerColor:   r.UnderlayerColor,
		UnderlayerWidth:   r.UnderlayerWidth,
		ColorPalette:      r.ColorPalette,
	}
}

// RoutingSettings is the routing_settings object.
type RoutingSettings struct {
	BusWaitTime int     `json:"bus_wait_time"`
	BusVelocity float64 `json:"bus_velocity"`
}

// ToRouterSettings converts the document's routing_settings into the
// router's native Settings type.
func (r RoutingSettings) ToRouterSettings() router.Settings {
	return router.Settings{BusWaitTimeMin: r.BusWaitTime, BusVelocityKMH: r.BusVelocity}
}

// SerializationSettings is the serialization_settings object, present in
// both modes.
type SerializationSettings struct {
	File string `json:"file"`
}

// InputDocument is the top-level input document for both make_base and
// process_requests; only the keys relevant to the active mode are
// populated by the caller.
type InputDocument struct {
	BaseRequests          []BaseRequest         `json:"base_requests"`
	StatRequests          []StatRequest         `json:"stat_requests"`
	RenderSettings        RenderSettings        `json:"render_settings"`
	RoutingSettings       RoutingSettings       `json:"routing_settings"`
	SerializationSettings SerializationSettings `json:"serialization_settings"`
}

// DecodeInput decodes an InputDocument from r.
func DecodeInput(r io.Reader) (InputDocument, error) {
	var doc InputDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return InputDocument{}, err
	}
	return doc, nil
}

// RouteItem is one leg of a Route response: either {type:"Wait",
// stop_name, time} or {type:"Bus", bus, span_count, time}.
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// responseKind tags which of the four query shapes a Response holds, so
// MarshalJSON emits only the fields that belong to it — an existing stop
// with zero buses must encode as "buses": [], never as an omitted key or a
// stray "route_length": 0 borrowed from the Bus shape.
type responseKind int

const (
	kindBus responseKind = iota
	kindStop
	kindMap
	kindRoute
)

// Response is one element of the output document: a tagged union over the
// four query kinds plus the "not found" error form, constructed via the
// New*Response / New*NotFound functions below.
type Response struct {
	requestID int
	kind      responseKind
	notFound  bool

	curvature       float64
	routeLength     int
	stopCount       int
	uniqueStopCount int

	buses []string

	svgMap string

	totalTime float64
	items     []RouteItem
}

// NewBusResponse builds a Bus query's success response.
func NewBusResponse(id int, curvature float64, routeLength, stopCount, uniqueStopCount int) Response {
	return Response{requestID: id, kind: kindBus, curvature: curvature, routeLength: routeLength, stopCount: stopCount, uniqueStopCount: uniqueStopCount}
}

// NewBusNotFound builds a Bus query's "not found" response.
func NewBusNotFound(id int) Response { return Response{requestID: id, kind: kindBus, notFound: true} }

// NewStopResponse builds a Stop query's success response. buses must be
// non-nil (possibly empty) so it encodes as "[]" rather than "null".
func NewStopResponse(id int, buses []string) Response {
	if buses == nil {
		buses = []string{}
	}
	return Response{requestID: id, kind: kindStop, buses: buses}
}

// NewStopNotFound builds a Stop query's "not found" response.
func NewStopNotFound(id int) Response {
	return Response{requestID: id, kind: kindStop, notFound: true}
}

// NewMapResponse builds a Map query's response; Map queries never fail.
func NewMapResponse(id int, svgDoc string) Response {
	return Response{requestID: id, kind: kindMap, svgMap: svgDoc}
}

// NewRouteResponse builds a Route query's success response.
func NewRouteResponse(id int, totalTime float64, items []RouteItem) Response {
	return Response{requestID: id, kind: kindRoute, totalTime: totalTime, items: items}
}

// NewRouteNotFound builds a Route query's "not found" response.
func NewRouteNotFound(id int) Response {
	return Response{requestID: id, kind: kindRoute, notFound: true}
}

// MarshalJSON renders only the fields belonging to the response's kind and
// outcome.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.notFound {
		return json.Marshal(struct {
			RequestID    int    `json:"request_id"`
			ErrorMessage string `json:"error_message"`
		}{r.requestID, "not found"})
	}

	switch r.kind {
	case kindBus:
		return json.Marshal(struct {
			RequestID       int     `json:"request_id"`
			Curvature       float64 `json:"curvature"`
			RouteLength     int     `json:"route_length"`
			StopCount       int     `json:"stop_count"`
			UniqueStopCount int     `json:"unique_stop_count"`
		}{r.requestID, r.curvature, r.routeLength, r.stopCount, r.uniqueStopCount})
	case kindStop:
		return json.Marshal(struct {
			RequestID int      `json:"request_id"`
			Buses     []string `json:"buses"`
		}{r.requestID, r.buses})
	case kindMap:
		return json.Marshal(struct {
			RequestID int    `json:"request_id"`
			Map       string `json:"map"`
		}{r.requestID, r.svgMap})
	case kindRoute:
		return json.Marshal(struct {
			RequestID int         `json:"request_id"`
			TotalTime float64     `json:"total_time"`
			Items     []RouteItem `json:"items"`
		}{r.requestID, r.totalTime, r.items})
	default:
		return json.Marshal(struct {
			RequestID int `json:"request_id"`
		}{r.requestID})
	}
}

// EncodeOutput encodes responses to w as a single JSON array.
func EncodeOutput(w io.Writer, responses []Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(responses)
}
