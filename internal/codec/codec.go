// Package codec serializes a frozen catalogue, its render and router
// settings, and the router's materialized graph into a single binary blob,
// and reconstructs all four from it. It is built on the standard library's
// encoding/gob: no protobuf-style generator or hand-rolled binary
// serialization library appears anywhere in the reference corpus, and gob
// is Go's native answer to schema-free serialization of program structs.
package codec

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"

	"transitcatalogue/internal/catalogue"
	"transitcatalogue/internal/geo"
	"transitcatalogue/internal/graphalgo"
	"transitcatalogue/internal/mapview"
	"transitcatalogue/internal/router"
)

// ErrCorruptBlob wraps any failure to rebuild the catalogue or graph from a
// decoded blob, such as a blob that references a stop or bus it never
// declared — a corrupt or foreign blob.
var (
	ErrCorruptBlob = errors.New("codec: corrupt blob")
)

// stopRecord mirrors catalogue.Stop as gob-encodable fields: the directed
// distance table is split into parallel name/meter slices since gob
// handles maps fine but the specification names this shape explicitly.
type stopRecord struct {
	Name           string
	Lat, Lon       float64
	NeighborNames  []string
	NeighborMeters []int
}

// busRecord mirrors catalogue.Bus.
type busRecord struct {
	Number    string
	StopNames []string
	Circular  bool
	Terminal  string
}

// edgeRecord mirrors graphalgo.Edge[float64].
type edgeRecord struct {
	From, To int
	Weight   float64
	Label    string
	Span     int
}

// blob is the complete wire format: every field the specification lists as
// part of the single binary blob (§4.7), gob-encoded as one value.
type blob struct {
	Stops []stopRecord
	Buses []busRecord

	RenderSettings mapview.Settings
	RouterSettings router.Settings

	VertexCount int
	Edges       []edgeRecord
	Incidence   [][]int // per-vertex outgoing edge ids, id order

	StopVertex map[string]int
}

func init() {
	gob.Register(mapview.Settings{})
}

// Serialize encodes cat, renderSettings, routerSettings and rt's graph into
// a single binary blob.
func Serialize(cat *catalogue.Catalogue, renderSettings mapview.Settings, routerSettings router.Settings, rt *router.Router) ([]byte, error) {
	b := blob{
		RenderSettings: renderSettings,
		RouterSettings: routerSettings,
	}

	for _, s := range cat.StopsSorted() {
		rec := stopRecord{Name: s.Name, Lat: s.Coord.Lat, Lon: s.Coord.Lon}
		for _, other := range cat.StopsSorted() {
			if d, ok := s.DistanceTo(other.Name); ok {
				rec.NeighborNames = append(rec.NeighborNames, other.Name)
				rec.NeighborMeters = append(rec.NeighborMeters, d)
			}
		}
		b.Stops = append(b.Stops, rec)
	}

	for _, bus := range cat.BusesSorted() {
		rec := busRecord{Number: bus.Number, Circular: bus.Circular}
		for _, s := range bus.Stops {
			rec.StopNames = append(rec.StopNames, s.Name)
		}
		if t := bus.Terminal(); t != nil {
			rec.Terminal = t.Name
		}
		b.Buses = append(b.Buses, rec)
	}

	graph := rt.Graph()
	b.VertexCount = graph.VertexCount()
	for _, e := range graph.Edges() {
		b.Edges = append(b.Edges, edgeRecord{
			From:   int(e.From),
			To:     int(e.To),
			Weight: e.Weight,
			Label:  e.Label,
			Span:   e.Span,
		})
	}
	b.Incidence = make([][]int, graph.VertexCount())
	for v := 0; v < graph.VertexCount(); v++ {
		for _, eid := range graph.IncidentEdges(graphalgo.VertexID(v)) {
			b.Incidence[v] = append(b.Incidence[v], int(eid))
		}
	}

	b.StopVertex = make(map[string]int, len(rt.StopVertex()))
	for name, v := range rt.StopVertex() {
		b.StopVertex[name] = int(v)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(b); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize reconstructs a catalogue, render settings, router settings
// and router from a blob produced by Serialize. Closure: every subsystem
// built from the result answers queries identically to the originals.
func Deserialize(data []byte) (*catalogue.Catalogue, mapview.Settings, router.Settings, *router.Router, error) {
	var b blob
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&b); err != nil {
		return nil, mapview.Settings{}, router.Settings{}, nil, fmt.Errorf("codec: decode: %w", err)
	}

	cat := catalogue.New()
	for _, rec := range b.Stops {
		if _, err := cat.AddStop(rec.Name, geo.Coordinates{Lat: rec.Lat, Lon: rec.Lon}); err != nil {
			return nil, mapview.Settings{}, router.Settings{}, nil, fmt.Errorf("%w: stop %q: %v", ErrCorruptBlob, rec.Name, err)
		}
	}
	for _, rec := range b.Stops {
		for i, neighbor := range rec.NeighborNames {
			if err := cat.SetDistance(rec.Name, neighbor, rec.NeighborMeters[i]); err != nil {
				return nil, mapview.Settings{}, router.Settings{}, nil, fmt.Errorf("%w: distance %s->%s: %v", ErrCorruptBlob, rec.Name, neighbor, err)
			}
		}
	}
	for _, rec := range b.Buses {
		if _, err := cat.AddBus(rec.Number, rec.StopNames, rec.Circular); err != nil {
			return nil, mapview.Settings{}, router.Settings{}, nil, fmt.Errorf("%w: bus %q: %v", ErrCorruptBlob, rec.Number, err)
		}
		if rec.Terminal != "" {
			if err := cat.SetTerminal(rec.Number, rec.Terminal); err != nil {
				return nil, mapview.Settings{}, router.Settings{}, nil, fmt.Errorf("%w: terminal for %q: %v", ErrCorruptBlob, rec.Number, err)
			}
		}
	}

	graph := graphalgo.New[float64](b.VertexCount)
	for _, e := range b.Edges {
		if _, err := graph.AddEdge(graphalgo.VertexID(e.From), graphalgo.VertexID(e.To), e.Weight, e.Label, e.Span); err != nil {
			return nil, mapview.Settings{}, router.Settings{}, nil, fmt.Errorf("%w: edge %d->%d: %v", ErrCorruptBlob, e.From, e.To, err)
		}
	}

	stopVertex := make(map[string]graphalgo.VertexID, len(b.StopVertex))
	for name, v := range b.StopVertex {
		stopVertex[name] = graphalgo.VertexID(v)
	}

	rt := router.FromParts(graph, stopVertex)

	return cat, b.RenderSettings, b.RouterSettings, rt, nil
}
