// File: methods_edges.go
// Role: Edge creation & queries: AddEdge/HasEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between from and to, creating missing
// endpoints on the fly.
//
// Steps:
//  1. Validate IDs and reject loops.
//  2. Lock, ensure both endpoints exist.
//  3. Reject a second edge between the same endpoints.
//  4. Generate eid atomically, store the edge and both adjacency mirrors.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	addVertexLocked(g, from)
	addVertexLocked(g, to)

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether from and to are adjacent. Symmetric in its arguments.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns copies of all edges, endpoints normalized so that From < To,
// sorted by (From, To).
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		ne := &Edge{ID: e.ID, From: e.From, To: e.To}
		if ne.To < ne.From {
			ne.From, ne.To = ne.To, ne.From
		}
		out = append(out, ne)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns "e" + monotonically increasing decimal.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
