// File: view.go
// Role: Non-mutating graph views (induced subgraphs).
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true, and all edges whose
// endpoints are both kept. Edge IDs are preserved and the ID counter carries
// over so later AddEdge calls cannot collide.
//
// Complexity: O(V + E). Concurrency: read lock only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithCapacity(len(keep)))
	var id string
	for id = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: id}
			out.adjacency[id] = make(map[string]string)
		}
	}

	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out
}
