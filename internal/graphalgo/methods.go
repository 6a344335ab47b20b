package graphalgo

import "fmt"

// AddEdge appends a new directed edge from->to and returns its id. IDs are
// assigned in insertion order starting at 0, matching the codec's "edges
// in id order" contract and giving the solver a deterministic tie-break
// key.
//
// Complexity: O(1) amortized.
func (g *Graph[W]) AddEdge(from, to VertexID, weight W, label string, span int) (EdgeID, error) {
	if int(from) < 0 || int(from) >= g.vertexCount || int(to) < 0 || int(to) >= g.vertexCount {
		return 0, ErrVertexOutOfRange
	}
	if weight < 0 {
		return 0, fmt.Errorf("%w: edge %d->%d weight=%v", ErrNegativeWeight, from, to, weight)
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge[W]{ID: id, From: from, To: to, Weight: weight, Label: label, Span: span})
	g.incidence[from] = append(g.incidence[from], id)

	return id, nil
}

// Edge returns the edge with the given id.
func (g *Graph[W]) Edge(id EdgeID) Edge[W] {
	return g.edges[id]
}

// IncidentEdges returns the outgoing edge ids of v, in insertion order.
func (g *Graph[W]) IncidentEdges(v VertexID) []EdgeID {
	return g.incidence[v]
}

// Edges returns every edge, in id order. The returned slice must not be
// mutated by the caller.
func (g *Graph[W]) Edges() []Edge[W] {
	return g.edges
}
