// Package graphalgo implements a generic directed weighted graph over
// dense integer vertex ids, and a Dijkstra-style single-source
// shortest-path solver over it.
//
// It follows the teacher library's split of concerns (immutable graph
// type with O(1) edge append, a separate algorithm package operating on
// it via a lazy-decrease-key heap) but is parameterized over the weight
// type and keyed by dense integer vertex ids rather than string vertex
// ids, since the transport router's doubled stop-vertex scheme needs
// O(1) indexing into per-vertex incidence lists.
package graphalgo

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("graphalgo: vertex id out of range")

	// ErrNegativeWeight indicates an edge with a negative weight was
	// added; the solver requires non-negative weights.
	ErrNegativeWeight = errors.New("graphalgo: negative edge weight")
)

// Weight is the constraint satisfied by edge weight types: real numbers
// that support addition, a zero value, and a total order. float64 is the
// only instantiation this repository uses (fractional minutes), but the
// constraint is expressed generically per the specification.
type Weight interface {
	~float64
}

// VertexID is a dense integer vertex identifier in [0, VertexCount).
type VertexID int

// EdgeID is a dense integer edge identifier in insertion order, [0,
// EdgeCount).
type EdgeID int

// Edge is a directed, weighted arc with an opaque domain label (a bus
// number or a stop name) and a span count: the number of consecutive
// stop hops it represents. A span of zero marks a boarding/wait edge.
type Edge[W Weight] struct {
	ID     EdgeID
	From   VertexID
	To     VertexID
	Weight W
	Label  string
	Span   int
}

// Graph is a directed weighted graph over dense integer vertex ids. Edges
// are append-only; AddEdge returns the new edge's id. The zero value is
// not usable — construct with New.
type Graph[W Weight] struct {
	vertexCount int
	edges       []Edge[W]
	incidence   [][]EdgeID // per-vertex outgoing edge ids, append order
}

// New returns an empty Graph over dense vertex ids [0, vertexCount).
//
// Complexity: O(vertexCount).
func New[W Weight](vertexCount int) *Graph[W] {
	return &Graph[W]{
		vertexCount: vertexCount,
		incidence:   make([][]EdgeID, vertexCount),
	}
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph[W]) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of edges added so far.
func (g *Graph[W]) EdgeCount() int { return len(g.edges) }
