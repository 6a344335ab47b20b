// Package dispatch routes each stat_requests item to the subsystem that
// answers it — statistics engine, catalogue, renderer, or router — and
// projects the result into a response document item.
package dispatch

import (
	"fmt"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/docmodel"
	"transitcatalogue/internal/mapview"
	"transitcatalogue/internal/router"
	"transitcatalogue/internal/stats"
)

// ErrUnknownQueryType indicates a stat_requests item whose type is none of
// Bus, Stop, Map, Route — a malformed input document, fatal per the
// specification's error classes.
var ErrUnknownQueryType = fmt.Errorf("dispatch: unknown query type")

// Dispatch answers a single query item against cat, rt and renderSettings.
// It never returns an error for a query-level "not found" — that is
// reported in the Response itself — only for a query whose type the
// dispatcher does not recognize at all.
func Dispatch(cat *catalogue.Catalogue, rt *router.Router, renderSettings mapview.Settings, req docmodel.StatRequest) (docmodel.Response, error) {
	switch req.Type {
	case docmodel.QueryBus:
		return dispatchBus(cat, req), nil
	case docmodel.QueryStop:
		return dispatchStop(cat, req), nil
	case docmodel.QueryMap:
		return dispatchMap(cat, renderSettings, req), nil
	case docmodel.QueryRoute:
		return dispatchRoute(rt, req), nil
	default:
		return docmodel.Response{}, fmt.Errorf("%w: %q (request_id=%d)", ErrUnknownQueryType, req.Type, req.ID)
	}
}

func dispatchBus(cat *catalogue.Catalogue, req docmodel.StatRequest) docmodel.Response {
	result, ok := stats.Compute(cat, req.Name)
	if !ok {
		return docmodel.NewBusNotFound(req.ID)
	}
	return docmodel.NewBusResponse(req.ID, result.Curvature, result.RouteLengthM, result.StopCount, result.UniqueStopCount)
}

func dispatchStop(cat *catalogue.Catalogue, req docmodel.StatRequest) docmodel.Response {
	buses, ok := cat.BusesThrough(req.Name)
	if !ok {
		return docmodel.NewStopNotFound(req.ID)
	}
	return docmodel.NewStopResponse(req.ID, buses)
}

func dispatchMap(cat *catalogue.Catalogue, renderSettings mapview.Settings, req docmodel.StatRequest) docmodel.Response {
	return docmodel.NewMapResponse(req.ID, mapview.Render(cat, renderSettings))
}

func dispatchRoute(rt *router.Router, req docmodel.StatRequest) docmodel.Response {
	itinerary, ok := rt.BuildItinerary(req.From, req.To)
	if !ok {
		return docmodel.NewRouteNotFound(req.ID)
	}

	items := make([]docmodel.RouteItem, len(itinerary.Items))
	for i, it := range itinerary.Items {
		switch it.Type {
		case router.ItemWait:
			items[i] = docmodel.RouteItem{Type: "Wait", StopName: it.StopName, Time: it.Time}
		case router.ItemBus:
			items[i] = docmodel.RouteItem{Type: "Bus", Bus: it.Bus, SpanCount: it.Span, Time: it.Time}
		}
	}
	return docmodel.NewRouteResponse(req.ID, itinerary.TotalTime, items)
}
