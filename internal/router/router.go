package router

import (
	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/graphalgo"
)

// ItemWait and ItemBus are the two itinerary item kinds.
const (
	ItemWait = "Wait"
	ItemBus  = "Bus"
)

// Item is one leg of an itinerary: either a Wait at a stop (span 0, no
// Bus/Span) or a ride aboard a bus across Span stop hops.
type Item struct {
	Type     string
	StopName string
	Bus      string
	Span     int
	Time     float64 // minutes
}

// Itinerary is a full fastest-path answer: total time in minutes and the
// ordered legs that sum to it.
type Itinerary struct {
	TotalTime float64
	Items     []Item
}

// Router lowers a frozen catalogue into a doubled stop-vertex graph (§3:
// each stop maps to an idle vertex 2k and a boarded twin 2k+1, joined by a
// boarding edge of weight bus_wait_time) and answers fastest-itinerary
// queries over it via a Dijkstra-style solver built once the graph is
// final.
type Router struct {
	graph      *graphalgo.Graph[float64]
	stopVertex map[string]graphalgo.VertexID // stop name -> idle vertex id
	solver     *graphalgo.Solver[float64]
}

// Build constructs a Router from a frozen catalogue and router settings.
//
// Complexity: O(S + sum over buses of len(stops)^2), matching the
// specification's pairwise travel-edge construction.
func Build(cat *catalogue.Catalogue, settings Settings) *Router {
	stops := cat.StopsSorted()
	n := len(stops)

	graph := graphalgo.New[float64](2 * n)
	stopVertex := make(map[string]graphalgo.VertexID, n)

	for k, s := range stops {
		idle := graphalgo.VertexID(2 * k)
		boarded := idle + 1
		stopVertex[s.Name] = idle
		// Boarding edge: the wait at this stop. Span 0 marks it as a
		// non-travel edge for itinerary projection.
		_, _ = graph.AddEdge(idle, boarded, float64(settings.BusWaitTimeMin), s.Name, 0)
	}

	for _, bus := range cat.BusesSorted() {
		addBusEdges(graph, cat, stopVertex, bus, settings.metersPerMinute())
	}

	return &Router{
		graph:      graph,
		stopVertex: stopVertex,
		solver:     graphalgo.NewSolver(graph),
	}
}

// FromParts reconstructs a Router directly from a previously materialized
// graph and stop-vertex map, as produced by the serialization codec. This
// is the round-trip counterpart to Build: it never re-derives edges from
// a catalogue.
func FromParts(graph *graphalgo.Graph[float64], stopVertex map[string]graphalgo.VertexID) *Router {
	return &Router{
		graph:      graph,
		stopVertex: stopVertex,
		solver:     graphalgo.NewSolver(graph),
	}
}

// Graph returns the router's materialized graph, for serialization.
func (r *Router) Graph() *graphalgo.Graph[float64] { return r.graph }

// StopVertex returns the stop name -> idle vertex id map, for
// serialization.
func (r *Router) StopVertex() map[string]graphalgo.VertexID { return r.stopVertex }

// addBusEdges adds every travel edge for bus: forward pairs (i<j) over the
// declared stop sequence, plus — for non-circular buses — the symmetric
// reverse-direction pairs computed from explicit reverse-direction road
// distances (the specification's resolution of the non-circular edge
// generation open question, honouring asymmetric declarations exactly).
func addBusEdges(graph *graphalgo.Graph[float64], cat *catalogue.Catalogue, stopVertex map[string]graphalgo.VertexID, bus *catalogue.Bus, metersPerMinute float64) {
	stops := bus.Stops
	n := len(stops)
	if n < 2 {
		return
	}

	forward := make([]int, n)
	for i := 0; i+1 < n; i++ {
		forward[i+1] = forward[i] + cat.RoadDistance(stops[i].Name, stops[i+1].Name)
	}

	var backward []int
	if !bus.Circular {
		backward = make([]int, n)
		for i := 0; i+1 < n; i++ {
			backward[i+1] = backward[i] + cat.RoadDistance(stops[i+1].Name, stops[i].Name)
		}
	}

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			weight := float64(forward[j]-forward[i]) / metersPerMinute
			from := stopVertex[stops[i].Name] + 1 // boarded(i)
			to := stopVertex[stops[j].Name]       // idle(j)
			_, _ = graph.AddEdge(from, to, weight, bus.Number, j-i)

			if !bus.Circular {
				revWeight := float64(backward[j]-backward[i]) / metersPerMinute
				revFrom := stopVertex[stops[j].Name] + 1 // boarded(j)
				revTo := stopVertex[stops[i].Name]       // idle(i)
				_, _ = graph.AddEdge(revFrom, revTo, revWeight, bus.Number, j-i)
			}
		}
	}
}

// BuildItinerary resolves from/to by name and returns the fastest
// itinerary between them. Returns (nil, false) if either stop is unknown
// or no path exists. from == to returns an empty itinerary with total
// time zero without invoking the solver.
func (r *Router) BuildItinerary(from, to string) (*Itinerary, bool) {
	idleFrom, ok := r.stopVertex[from]
	if !ok {
		return nil, false
	}
	idleTo, ok := r.stopVertex[to]
	if !ok {
		return nil, false
	}

	if from == to {
		return &Itinerary{TotalTime: 0}, true
	}

	route, ok := r.solver.BuildRoute(idleFrom, idleTo)
	if !ok {
		return nil, false
	}

	items := make([]Item, 0, len(route.EdgeIDs))
	var total float64
	for _, eid := range route.EdgeIDs {
		e := r.graph.Edge(eid)
		if e.Span == 0 {
			items = append(items, Item{Type: ItemWait, StopName: e.Label, Time: e.Weight})
		} else {
			items = append(items, Item{Type: ItemBus, Bus: e.Label, Span: e.Span, Time: e.Weight})
		}
		total += e.Weight
	}

	return &Itinerary{TotalTime: total, Items: items}, true
}
