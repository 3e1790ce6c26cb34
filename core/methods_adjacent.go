// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList).
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex neighbor slices sorted lex asc.

package core

import "sort"

// NeighborIDs returns the vertex IDs adjacent to id, sorted lexicographically ascending.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Under the read lock, validate existence (ErrVertexNotFound) and copy the bucket keys.
//   - Stage 3: Sort and return.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	bucket, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(bucket))
	for nbr := range bucket {
		ids = append(ids, nbr)
	}
	g.mu.RUnlock()

	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its sorted neighbor IDs.
// Returned slices are freshly allocated and safe to retain.
//
// Complexity: O(V + E log Δ).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make(map[string][]string, len(g.adjacency))
	for from, bucket := range g.adjacency {
		buf := make([]string, 0, len(bucket))
		for to := range bucket {
			buf = append(buf, to)
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}
