package graphalgo

import "container/heap"

// Route is the result of a successful BuildRoute call: the total weight
// of the shortest path and the ordered edge ids that make it up.
type Route[W Weight] struct {
	TotalWeight W
	EdgeIDs     []EdgeID
}

// Solver runs a non-negative-weight single-source shortest path
// (Dijkstra-style) search lazily per BuildRoute call, using a
// lazy-decrease-key min-heap exactly as the teacher library's dijkstra
// package does. Construct once per graph and reuse; BuildRoute from a
// previously-used source recomputes from scratch (the graph here is
// small enough — one call per query — that result caching across
// distinct sources is not worth the bookkeeping).
type Solver[W Weight] struct {
	g *Graph[W]
}

// NewSolver returns a Solver bound to g. g must not be mutated afterward.
func NewSolver[W Weight](g *Graph[W]) *Solver[W] {
	return &Solver[W]{g: g}
}

// BuildRoute returns the shortest path from->to, or (nil, false) if to is
// unreachable from from. Ties among equal-distance relaxations are broken
// by edge-id (insertion) order: each settled vertex's outgoing edges are
// relaxed in ascending id order and only a strictly shorter distance ever
// overwrites a predecessor, so the first edge to achieve a given distance
// wins.
//
// Complexity: O((V+E) log V).
func (s *Solver[W]) BuildRoute(from, to VertexID) (*Route[W], bool) {
	var zero W
	n := s.g.VertexCount()

	dist := make([]W, n)
	known := make([]bool, n) // dist[v] holds a valid finite distance
	visited := make([]bool, n)
	prevEdge := make([]EdgeID, n)
	for i := range prevEdge {
		prevEdge[i] = -1
	}
	dist[from] = zero
	known[from] = true

	pq := make(nodePQ[W], 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem[W]{vertex: from, dist: zero})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[W])
		u := item.vertex
		if visited[u] {
			continue
		}
		visited[u] = true

		if u == to {
			break
		}

		for _, eid := range s.g.IncidentEdges(u) {
			e := s.g.Edge(eid)
			v := e.To
			if visited[v] {
				continue
			}
			newDist := dist[u] + e.Weight
			if known[v] && !(newDist < dist[v]) {
				continue
			}

			dist[v] = newDist
			known[v] = true
			prevEdge[v] = eid
			heap.Push(&pq, &nodeItem[W]{vertex: v, dist: newDist})
		}
	}

	if to != from && !known[to] {
		return nil, false
	}

	var edgeIDs []EdgeID
	cur := to
	for cur != from {
		eid := prevEdge[cur]
		edgeIDs = append(edgeIDs, eid)
		cur = s.g.Edge(eid).From
	}
	// Reverse into source->target order.
	for i, j := 0, len(edgeIDs)-1; i < j; i, j = i+1, j-1 {
		edgeIDs[i], edgeIDs[j] = edgeIDs[j], edgeIDs[i]
	}

	return &Route[W]{TotalWeight: dist[to], EdgeIDs: edgeIDs}, true
}

// nodeItem is a (vertex, distance) pair stored in the priority queue.
type nodeItem[W Weight] struct {
	vertex VertexID
	dist   W
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance, using
// the lazy-decrease-key pattern: stale entries are skipped via visited[].
type nodePQ[W Weight] []*nodeItem[W]

func (pq nodePQ[W]) Len() int            { return len(pq) }
func (pq nodePQ[W]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[W])) }
func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
